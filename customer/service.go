package customer

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// CustomerService exposes customer-related business operations.
type CustomerService interface {
	// GetAll returns every customer, or those whose name contains name when it is non-empty.
	// Inactive customers are included.
	GetAll(ctx context.Context, name string) ([]entity.Customer, error)
	Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	// Delete deactivates the customer and cascades to the books it owns.
	Delete(ctx context.Context, id uuid.UUID) error
	EmailAvailable(ctx context.Context, email string) (bool, error)
}
