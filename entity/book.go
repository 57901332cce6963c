package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mercadolivro/bookstore-backend/apperror"
)

// BookStatus enumerates the lifecycle of a book listing.
type BookStatus string

const (
	BookActive   BookStatus = "ACTIVE"   // listed, can be purchased or edited
	BookSold     BookStatus = "SOLD"     // part of a purchase
	BookCanceled BookStatus = "CANCELED" // withdrawn by its owner
	BookDeleted  BookStatus = "DELETED"  // owner account was deactivated
)

// Book is a listing owned by a customer.
type Book struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Title      string          `json:"title" gorm:"type:text;index;not null"`
	Author     string          `json:"author" gorm:"type:text"`
	Price      decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Status     BookStatus      `json:"status" gorm:"type:text;index;not null;default:'ACTIVE'"`
	CustomerID *uuid.UUID      `json:"customer_id,omitempty" gorm:"type:uuid;index"`
	Customer   *Customer       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// ChangeStatus moves the book to next. Only ACTIVE books may change status.
func (b *Book) ChangeStatus(next BookStatus) error {
	if b.Status != BookActive {
		return apperror.UpdateNotAllowed(apperror.ML102, b.Status)
	}
	b.Status = next
	return nil
}

// MarkDeleted is the cascade transition used when the owner is deactivated.
// It is not guarded: every state except DELETED ends up DELETED.
func (b *Book) MarkDeleted() { b.Status = BookDeleted }

func (b *Book) IsActive() bool { return b.Status == BookActive }
