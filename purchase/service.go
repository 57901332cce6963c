package purchase

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// CreatePurchaseRequest carries the data required to build a purchase.
type CreatePurchaseRequest struct {
	CustomerID uuid.UUID
	BookIDs    []uuid.UUID
}

// PurchaseService exposes purchase-related business operations.
type PurchaseService interface {
	// Create persists p and publishes exactly one PurchaseCreated event for it.
	Create(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error)
	// Update persists p as given.
	Update(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Purchase, error)
}
