package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// AdminRepository specifies the role related database operations.
// Lookups return (nil, nil) when the customer does not exist.
type AdminRepository interface {
	GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// UpdateRoles overwrites only the roles column.
	UpdateRoles(ctx context.Context, id uuid.UUID, roles []entity.Role) error
}
