package purchase

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// PurchaseRepository specifies purchase related database operations.
// GetPurchaseByID returns (nil, nil) when the purchase does not exist.
type PurchaseRepository interface {
	// StorePurchase marks every book SOLD and inserts the purchase atomically.
	// A missing or non-ACTIVE book fails with ML-302 and nothing is stored.
	StorePurchase(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error)
	// UpdatePurchase overwrites the row and replaces its book set.
	UpdatePurchase(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error)
	GetPurchaseByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	ListPurchasesByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Purchase, error)
	DeleteAllPurchases(ctx context.Context) error
}
