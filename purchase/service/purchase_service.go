package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mercadolivro/bookstore-backend/apperror"
	"github.com/mercadolivro/bookstore-backend/entity"
	"github.com/mercadolivro/bookstore-backend/events"
	purchasepkg "github.com/mercadolivro/bookstore-backend/purchase"
)

type purchaseService struct {
	repo      purchasepkg.PurchaseRepository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewPurchaseService(repo purchasepkg.PurchaseRepository, publisher events.Publisher, logger *zap.Logger) purchasepkg.PurchaseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &purchaseService{repo: repo, publisher: publisher, logger: logger}
}

// Create publishes only after the purchase is stored, so listeners always see
// a purchase with an id. A publish failure is returned to the caller; the
// stored row is kept.
func (s *purchaseService) Create(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error) {
	stored, err := s.repo.StorePurchase(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("store purchase: %w", err)
	}

	if err := s.publisher.Publish(ctx, events.NewPurchaseCreated(*stored)); err != nil {
		return nil, fmt.Errorf("publish %s for purchase %s: %w", events.PurchaseCreatedName, stored.ID, err)
	}
	s.logger.Info("purchase created",
		zap.String("purchase_id", stored.ID.String()),
		zap.String("customer_id", stored.CustomerID.String()),
		zap.Int("books", len(stored.Books)),
	)
	return stored, nil
}

func (s *purchaseService) Update(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error) {
	return s.repo.UpdatePurchase(ctx, p)
}

func (s *purchaseService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	p, err := s.repo.GetPurchaseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound(apperror.ML301, id)
	}
	return p, nil
}

func (s *purchaseService) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Purchase, error) {
	return s.repo.ListPurchasesByCustomer(ctx, customerID)
}
