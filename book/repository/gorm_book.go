package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookpkg "github.com/mercadolivro/bookstore-backend/book"
	"github.com/mercadolivro/bookstore-backend/database"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// GormBookRepo implements book.BookRepository using GORM.
type GormBookRepo struct {
	db *gorm.DB
}

func NewGormBookRepo(db *gorm.DB) bookpkg.BookRepository {
	return &GormBookRepo{db: db}
}

func (r *GormBookRepo) StoreBook(ctx context.Context, b *entity.Book) (*entity.Book, error) {
	if err := database.Conn(ctx, r.db).Omit("Customer").Create(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (r *GormBookRepo) UpdateBook(ctx context.Context, b *entity.Book) (*entity.Book, error) {
	if err := database.Conn(ctx, r.db).Omit("Customer").Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (r *GormBookRepo) UpdateBooks(ctx context.Context, books []entity.Book) error {
	if len(books) == 0 {
		return nil
	}
	return database.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		for i := range books {
			if err := tx.Omit("Customer").Save(&books[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormBookRepo) GetBookByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var b entity.Book
	if err := database.Conn(ctx, r.db).Preload("Customer").First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func paginate(q *gorm.DB, page bookpkg.Page) *gorm.DB {
	if page.Limit > 0 {
		q = q.Limit(page.Limit)
	}
	if page.Offset > 0 {
		q = q.Offset(page.Offset)
	}
	return q
}

func (r *GormBookRepo) ListBooks(ctx context.Context, page bookpkg.Page) ([]entity.Book, error) {
	var list []entity.Book
	q := database.Conn(ctx, r.db).Order("created_at ASC")
	if err := paginate(q, page).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormBookRepo) ListBooksByStatus(ctx context.Context, status entity.BookStatus, page bookpkg.Page) ([]entity.Book, error) {
	var list []entity.Book
	q := database.Conn(ctx, r.db).Where("status = ?", status).Order("created_at ASC")
	if err := paginate(q, page).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormBookRepo) ListBooksByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Book, error) {
	var list []entity.Book
	if err := database.Conn(ctx, r.db).Where("customer_id = ?", customerID).Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormBookRepo) ListBooksByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Book, error) {
	var list []entity.Book
	if len(ids) == 0 {
		return list, nil
	}
	if err := database.Conn(ctx, r.db).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormBookRepo) BookExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := database.Conn(ctx, r.db).Model(&entity.Book{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteAllBooks physically removes every row. Test fixtures only.
func (r *GormBookRepo) DeleteAllBooks(ctx context.Context) error {
	return database.Conn(ctx, r.db).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Book{}).Error
}
