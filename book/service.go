package book

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// BookService exposes book business operations. Direct status changes of a
// single book are only allowed while it is ACTIVE.
type BookService interface {
	Create(ctx context.Context, b *entity.Book) (*entity.Book, error)
	FindAll(ctx context.Context, page Page) ([]entity.Book, error)
	FindActives(ctx context.Context, page Page) ([]entity.Book, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	FindAllByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Book, error)
	Update(ctx context.Context, b *entity.Book) (*entity.Book, error)
	// Delete cancels the listing (ACTIVE -> CANCELED).
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByCustomer marks every book of c DELETED. Cascade of a customer deletion.
	DeleteByCustomer(ctx context.Context, c *entity.Customer) error
}
