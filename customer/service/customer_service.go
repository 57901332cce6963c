package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mercadolivro/bookstore-backend/apperror"
	"github.com/mercadolivro/bookstore-backend/auth"
	customerpkg "github.com/mercadolivro/bookstore-backend/customer"
	"github.com/mercadolivro/bookstore-backend/database"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// BookDeleter is the part of the book service a customer deletion cascades to.
type BookDeleter interface {
	DeleteByCustomer(ctx context.Context, c *entity.Customer) error
}

// customerService implements CustomerService.
type customerService struct {
	repo    customerpkg.CustomerRepository
	books   BookDeleter
	tx      database.Transactor
	encoder auth.PasswordEncoder
	logger  *zap.Logger
}

// NewCustomerService constructs a CustomerService backed by the provided repository.
// A nil tx runs the deletion cascade without a transaction.
func NewCustomerService(repo customerpkg.CustomerRepository, books BookDeleter, tx database.Transactor, encoder auth.PasswordEncoder, logger *zap.Logger) customerpkg.CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tx == nil {
		tx = database.NoTx{}
	}
	return &customerService{repo: repo, books: books, tx: tx, encoder: encoder, logger: logger}
}

func (s *customerService) GetAll(ctx context.Context, name string) ([]entity.Customer, error) {
	if name != "" {
		return s.repo.ListCustomersByNameContaining(ctx, name)
	}
	return s.repo.ListCustomers(ctx)
}

// Create stores a copy of c whose password is replaced by its hash.
func (s *customerService) Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	exists, err := s.repo.EmailExists(ctx, c.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Validation(apperror.ML202, c.Email)
	}

	hash, err := s.encoder.Encode(c.Password)
	if err != nil {
		return nil, err
	}

	toStore := *c
	toStore.Password = hash
	if toStore.Status == "" {
		toStore.Status = entity.CustomerActive
	}
	if len(toStore.Roles) == 0 {
		toStore.Roles = []entity.Role{entity.RoleCustomer}
	}

	created, err := s.repo.StoreCustomer(ctx, &toStore)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Validation(apperror.ML202, c.Email)
		}
		return nil, fmt.Errorf("store customer: %w", err)
	}
	s.logger.Info("customer created", zap.String("customer_id", created.ID.String()))
	return created, nil
}

func (s *customerService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound(apperror.ML201, id)
	}
	return c, nil
}

func (s *customerService) Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	exists, err := s.repo.CustomerExists(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound(apperror.ML201, c.ID)
	}
	updated, err := s.repo.UpdateCustomer(ctx, c)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperror.Validation(apperror.ML202, c.Email)
	}
	return updated, err
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// the customer and its books change together or not at all
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c.Deactivate()
		if _, err := s.repo.UpdateCustomer(ctx, c); err != nil {
			return fmt.Errorf("deactivate customer: %w", err)
		}
		if err := s.books.DeleteByCustomer(ctx, c); err != nil {
			return fmt.Errorf("delete books of customer %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("customer deactivated", zap.String("customer_id", id.String()))
	return nil
}

func (s *customerService) EmailAvailable(ctx context.Context, email string) (bool, error) {
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
