package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mercadolivro/bookstore-backend/apperror"
	bookpkg "github.com/mercadolivro/bookstore-backend/book"
	"github.com/mercadolivro/bookstore-backend/entity"
)

type bookService struct {
	repo   bookpkg.BookRepository
	logger *zap.Logger
}

func NewBookService(repo bookpkg.BookRepository, logger *zap.Logger) bookpkg.BookService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &bookService{repo: repo, logger: logger}
}

func (s *bookService) Create(ctx context.Context, b *entity.Book) (*entity.Book, error) {
	if b.Status == "" {
		b.Status = entity.BookActive
	}
	return s.repo.StoreBook(ctx, b)
}

func (s *bookService) FindAll(ctx context.Context, page bookpkg.Page) ([]entity.Book, error) {
	return s.repo.ListBooks(ctx, page)
}

func (s *bookService) FindActives(ctx context.Context, page bookpkg.Page) ([]entity.Book, error) {
	return s.repo.ListBooksByStatus(ctx, entity.BookActive, page)
}

func (s *bookService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	b, err := s.repo.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperror.NotFound(apperror.ML101, id)
	}
	return b, nil
}

func (s *bookService) FindAllByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Book, error) {
	return s.repo.ListBooksByIDs(ctx, ids)
}

// Update overwrites an ACTIVE book. An empty status keeps the stored one.
func (s *bookService) Update(ctx context.Context, b *entity.Book) (*entity.Book, error) {
	current, err := s.FindByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if b.Status == "" {
		b.Status = current.Status
	}
	if err := current.ChangeStatus(b.Status); err != nil {
		return nil, err
	}
	return s.repo.UpdateBook(ctx, b)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	b, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := b.ChangeStatus(entity.BookCanceled); err != nil {
		return err
	}
	if _, err := s.repo.UpdateBook(ctx, b); err != nil {
		return fmt.Errorf("cancel book: %w", err)
	}
	return nil
}

func (s *bookService) DeleteByCustomer(ctx context.Context, c *entity.Customer) error {
	books, err := s.repo.ListBooksByCustomer(ctx, c.ID)
	if err != nil {
		return err
	}

	changed := make([]entity.Book, 0, len(books))
	for _, b := range books {
		if b.Status == entity.BookDeleted {
			continue
		}
		b.MarkDeleted()
		changed = append(changed, b)
	}
	if err := s.repo.UpdateBooks(ctx, changed); err != nil {
		return err
	}
	s.logger.Info("books deleted with customer",
		zap.String("customer_id", c.ID.String()),
		zap.Int("count", len(changed)),
	)
	return nil
}
