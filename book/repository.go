package book

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// Page selects a window of a listing. A zero Limit means no limit.
type Page struct {
	Limit  int
	Offset int
}

// BookRepository specifies book related database operations.
// GetBookByID returns (nil, nil) when the book does not exist.
type BookRepository interface {
	StoreBook(ctx context.Context, b *entity.Book) (*entity.Book, error)
	UpdateBook(ctx context.Context, b *entity.Book) (*entity.Book, error)
	// UpdateBooks overwrites all given books atomically.
	UpdateBooks(ctx context.Context, books []entity.Book) error
	GetBookByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	ListBooks(ctx context.Context, page Page) ([]entity.Book, error)
	ListBooksByStatus(ctx context.Context, status entity.BookStatus, page Page) ([]entity.Book, error)
	ListBooksByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Book, error)
	ListBooksByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Book, error)
	BookExists(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteAllBooks(ctx context.Context) error
}
