package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase records a customer buying a set of books.
// NFe stays nil until the tax-document listener assigns it.
type Purchase struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `json:"customer_id" gorm:"type:uuid;index;not null"`
	Customer   *Customer       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Books      []Book          `json:"books" gorm:"many2many:purchase_books"`
	NFe        *string         `json:"nfe,omitempty" gorm:"column:nfe;type:text"`
	Price      decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Snapshot copies the purchase so later changes to the book slice of the
// original do not leak into the copy.
func (p Purchase) Snapshot() Purchase {
	if p.Books != nil {
		books := make([]Book, len(p.Books))
		copy(books, p.Books)
		p.Books = books
	}
	return p
}

// WithNFe returns a copy of the purchase carrying the given tax-document id.
func (p Purchase) WithNFe(nfe string) Purchase {
	p.NFe = &nfe
	return p
}

// BookIDs lists the identifiers of the purchased books.
func (p Purchase) BookIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Books))
	for _, b := range p.Books {
		ids = append(ids, b.ID)
	}
	return ids
}
