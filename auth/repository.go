package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// Repository exposes read operations used for authentication.
// Both lookups return (nil, nil) when the customer does not exist.
type Repository interface {
	GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
}
