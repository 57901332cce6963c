package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// RegisterAdminRequest carries the data required to register an admin.
type RegisterAdminRequest struct {
	Name     string
	Email    string
	Password string
}

// AdminService exposes admin-related business operations.
type AdminService interface {
	// RegisterAdmin creates an ADMIN customer, or grants ADMIN to the
	// customer already using the email. Safe to call on every start.
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (*entity.Customer, error)
	// GrantAdmin adds the ADMIN role to an active customer.
	GrantAdmin(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error)
}
