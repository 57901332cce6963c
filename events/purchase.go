package events

import "github.com/mercadolivro/bookstore-backend/entity"

const PurchaseCreatedName = "purchase.created"

// PurchaseCreated carries a snapshot of a purchase right after it was persisted.
type PurchaseCreated struct {
	Purchase entity.Purchase
}

func (PurchaseCreated) EventName() string { return PurchaseCreatedName }

// NewPurchaseCreated snapshots p so listeners never observe later caller edits.
func NewPurchaseCreated(p entity.Purchase) PurchaseCreated {
	return PurchaseCreated{Purchase: p.Snapshot()}
}
