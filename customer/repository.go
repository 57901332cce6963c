package customer

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// CustomerRepository specifies customer related database operations.
// Lookups by id or email return (nil, nil) when nothing matches.
type CustomerRepository interface {
	StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	// UpdateCustomer overwrites every column of an existing row.
	UpdateCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	ListCustomersByNameContaining(ctx context.Context, name string) ([]entity.Customer, error)
	ListCustomersByStatus(ctx context.Context, status entity.CustomerStatus) ([]entity.Customer, error)
	CustomerExists(ctx context.Context, id uuid.UUID) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	DeleteAllCustomers(ctx context.Context) error
}
