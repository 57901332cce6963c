package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercadolivro/bookstore-backend/apperror"
	"github.com/mercadolivro/bookstore-backend/entity"
	purchasepkg "github.com/mercadolivro/bookstore-backend/purchase"
)

type CustomerFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
}

type BookFinder interface {
	FindAllByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Book, error)
}

// Mapper turns a purchase request into a priced Purchase.
type Mapper struct {
	customers CustomerFinder
	books     BookFinder
}

func NewMapper(customers CustomerFinder, books BookFinder) *Mapper {
	return &Mapper{customers: customers, books: books}
}

// ToPurchase resolves the customer and the books. The customer must be ACTIVE,
// every book must exist and be ACTIVE; the price is the sum of the book prices.
func (m *Mapper) ToPurchase(ctx context.Context, req purchasepkg.CreatePurchaseRequest) (*entity.Purchase, error) {
	if len(req.BookIDs) == 0 {
		return nil, apperror.Validation(apperror.ML001)
	}

	customer, err := m.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.IsActive() {
		return nil, apperror.Validation(apperror.ML001)
	}

	ids := dedupe(req.BookIDs)
	books, err := m.books.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	ordered := make([]entity.Book, 0, len(ids))
	price := decimal.Zero
	for _, id := range ids {
		b, ok := byID[id]
		if !ok || !b.IsActive() {
			return nil, apperror.Validation(apperror.ML302, id)
		}
		ordered = append(ordered, b)
		price = price.Add(b.Price)
	}

	return &entity.Purchase{
		CustomerID: customer.ID,
		Customer:   customer,
		Books:      ordered,
		Price:      price,
	}, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
