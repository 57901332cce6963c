package listener

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mercadolivro/bookstore-backend/events"
	purchasepkg "github.com/mercadolivro/bookstore-backend/purchase"
)

// GeneratedNfeListener assigns a fresh tax-document id (NFe) to every
// created purchase.
type GeneratedNfeListener struct {
	purchases purchasepkg.PurchaseService
	newID     func() uuid.UUID
	logger    *zap.Logger
}

func NewGeneratedNfeListener(purchases purchasepkg.PurchaseService, logger *zap.Logger) *GeneratedNfeListener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeneratedNfeListener{purchases: purchases, newID: uuid.New, logger: logger}
}

// WithIDGenerator replaces the id source. Used by tests.
func (l *GeneratedNfeListener) WithIDGenerator(fn func() uuid.UUID) *GeneratedNfeListener {
	l.newID = fn
	return l
}

func (l *GeneratedNfeListener) Register(sub events.Subscriber) {
	sub.Subscribe(events.PurchaseCreatedName, l.Listen)
}

// Listen updates a copy of the event payload; the payload itself is never
// modified.
func (l *GeneratedNfeListener) Listen(ctx context.Context, evt events.Event) error {
	created, ok := evt.(events.PurchaseCreated)
	if !ok {
		return fmt.Errorf("nfe listener: unexpected event %T", evt)
	}

	nfe := l.newID().String()
	updated := created.Purchase.WithNFe(nfe)
	if _, err := l.purchases.Update(ctx, &updated); err != nil {
		return fmt.Errorf("assign nfe to purchase %s: %w", updated.ID, err)
	}
	l.logger.Info("nfe generated",
		zap.String("purchase_id", updated.ID.String()),
		zap.String("nfe", nfe),
	)
	return nil
}
