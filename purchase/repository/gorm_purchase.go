package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mercadolivro/bookstore-backend/apperror"
	"github.com/mercadolivro/bookstore-backend/entity"
	purchasepkg "github.com/mercadolivro/bookstore-backend/purchase"
)

type GormPurchaseRepo struct{ db *gorm.DB }

func NewGormPurchaseRepo(db *gorm.DB) purchasepkg.PurchaseRepository {
	return &GormPurchaseRepo{db: db}
}

// StorePurchase sells the books and inserts the purchase with its join rows in
// one transaction. The book rows are locked first; a missing or non-ACTIVE
// book aborts with ML-302 and nothing is written.
func (r *GormPurchaseRepo) StorePurchase(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := reserveBooks(tx, p); err != nil {
			return err
		}
		if err := tx.Omit("Customer", "Books").Create(p).Error; err != nil {
			return err
		}
		return replaceBooks(tx, p)
	})
	if err != nil {
		return nil, err
	}
	for i := range p.Books {
		p.Books[i].Status = entity.BookSold
	}
	return p, nil
}

func (r *GormPurchaseRepo) UpdatePurchase(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Customer", "Books").Save(p).Error; err != nil {
			return err
		}
		return replaceBooks(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// reserveBooks moves every book of p from ACTIVE to SOLD in the database. Rows are locked in id
// order so concurrent purchases of overlapping books queue instead of deadlocking.
func reserveBooks(tx *gorm.DB, p *entity.Purchase) error {
	if len(p.Books) == 0 {
		return nil
	}
	ids := p.BookIDs()

	var current []entity.Book
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id").
		Find(&current).Error; err != nil {
		return err
	}
	byID := make(map[uuid.UUID]*entity.Book, len(current))
	for i := range current {
		byID[current[i].ID] = &current[i]
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		b, ok := byID[id]
		if !ok || b.ChangeStatus(entity.BookSold) != nil {
			return apperror.Validation(apperror.ML302, id)
		}
	}

	res := tx.Model(&entity.Book{}).
		Where("id IN ? AND status = ?", ids, entity.BookActive).
		Update("status", entity.BookSold)
	if res.Error != nil {
		return res.Error
	}
	if int(res.RowsAffected) != len(current) {
		return apperror.Validation(apperror.ML302, ids[0])
	}
	return nil
}

// replaceBooks rewrites the join table without touching the book rows.
func replaceBooks(tx *gorm.DB, p *entity.Purchase) error {
	if err := tx.Exec("DELETE FROM purchase_books WHERE purchase_id = ?", p.ID).Error; err != nil {
		return err
	}
	for _, b := range p.Books {
		if err := tx.Exec(
			"INSERT INTO purchase_books (purchase_id, book_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			p.ID, b.ID,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *GormPurchaseRepo) GetPurchaseByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var p entity.Purchase
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Books").
		First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPurchaseRepo) ListPurchasesByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Purchase, error) {
	var list []entity.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Books").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteAllPurchases physically removes every purchase. Test fixtures only.
func (r *GormPurchaseRepo) DeleteAllPurchases(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM purchase_books").Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Purchase{}).Error
	})
}
