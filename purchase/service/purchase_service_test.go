package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mercadolivro/bookstore-backend/apperror"
	"github.com/mercadolivro/bookstore-backend/entity"
	"github.com/mercadolivro/bookstore-backend/events"
	purchasepkg "github.com/mercadolivro/bookstore-backend/purchase"
)

type mockPurchaseRepo struct{ mock.Mock }

func (m *mockPurchaseRepo) StorePurchase(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*entity.Purchase)
	return out, args.Error(1)
}

func (m *mockPurchaseRepo) UpdatePurchase(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*entity.Purchase)
	return out, args.Error(1)
}

func (m *mockPurchaseRepo) GetPurchaseByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.Purchase)
	return out, args.Error(1)
}

func (m *mockPurchaseRepo) ListPurchasesByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Purchase, error) {
	args := m.Called(ctx, customerID)
	out, _ := args.Get(0).([]entity.Purchase)
	return out, args.Error(1)
}

func (m *mockPurchaseRepo) DeleteAllPurchases(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, evt events.Event) error {
	return m.Called(ctx, evt).Error(0)
}

func buildPurchase() *entity.Purchase {
	return &entity.Purchase{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Books: []entity.Book{
			{ID: uuid.New(), Title: "a", Price: decimal.NewFromInt(4), Status: entity.BookActive},
		},
		Price: decimal.NewFromInt(4),
	}
}

func TestCreateStoresAndPublishesOnce(t *testing.T) {
	repo := &mockPurchaseRepo{}
	pub := &mockPublisher{}
	svc := NewPurchaseService(repo, pub, nil)
	ctx := context.Background()
	p := buildPurchase()

	repo.On("StorePurchase", ctx, p).Return(p, nil).Once()
	pub.On("Publish", ctx, mock.Anything).Return(nil).Once()

	got, err := svc.Create(ctx, p)

	require.NoError(t, err)
	assert.Equal(t, p, got)
	repo.AssertNumberOfCalls(t, "StorePurchase", 1)
	pub.AssertNumberOfCalls(t, "Publish", 1)

	evt, ok := pub.Calls[0].Arguments.Get(1).(events.PurchaseCreated)
	require.True(t, ok)
	assert.Equal(t, events.PurchaseCreatedName, evt.EventName())
	assert.Equal(t, *p, evt.Purchase)
}

func TestCreateDoesNotPublishWhenStoreFails(t *testing.T) {
	repo := &mockPurchaseRepo{}
	pub := &mockPublisher{}
	svc := NewPurchaseService(repo, pub, nil)
	ctx := context.Background()
	p := buildPurchase()
	boom := errors.New("db down")

	repo.On("StorePurchase", ctx, p).Return(nil, boom)

	_, err := svc.Create(ctx, p)

	assert.ErrorIs(t, err, boom)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateSoldBookIsValidationErrorWithoutEvent(t *testing.T) {
	repo := &mockPurchaseRepo{}
	pub := &mockPublisher{}
	svc := NewPurchaseService(repo, pub, nil)
	ctx := context.Background()
	p := buildPurchase()
	taken := p.Books[0].ID

	repo.On("StorePurchase", ctx, p).Return(nil, apperror.Validation(apperror.ML302, taken))

	_, err := svc.Create(ctx, p)

	dErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, dErr.Kind)
	assert.Contains(t, dErr.Message, taken.String())
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateReturnsPublishError(t *testing.T) {
	repo := &mockPurchaseRepo{}
	pub := &mockPublisher{}
	svc := NewPurchaseService(repo, pub, nil)
	ctx := context.Background()
	p := buildPurchase()
	boom := errors.New("listener failed")

	repo.On("StorePurchase", ctx, p).Return(p, nil)
	pub.On("Publish", ctx, mock.Anything).Return(boom)

	_, err := svc.Create(ctx, p)

	assert.ErrorIs(t, err, boom)
}

func TestUpdateSavesOnce(t *testing.T) {
	repo := &mockPurchaseRepo{}
	pub := &mockPublisher{}
	svc := NewPurchaseService(repo, pub, nil)
	ctx := context.Background()
	p := buildPurchase()

	repo.On("UpdatePurchase", ctx, p).Return(p, nil).Once()

	got, err := svc.Update(ctx, p)

	require.NoError(t, err)
	assert.Equal(t, p, got)
	repo.AssertNumberOfCalls(t, "UpdatePurchase", 1)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestFindByIDMissingIsNotFound(t *testing.T) {
	repo := &mockPurchaseRepo{}
	svc := NewPurchaseService(repo, &mockPublisher{}, nil)
	ctx := context.Background()
	id := uuid.New()
	repo.On("GetPurchaseByID", ctx, id).Return(nil, nil)

	_, err := svc.FindByID(ctx, id)

	require.Error(t, err)
	dErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.ML301.Code, dErr.Code)
	assert.Equal(t, apperror.KindNotFound, dErr.Kind)
}

type stubCustomers map[uuid.UUID]*entity.Customer

func (s stubCustomers) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := s[id]
	if !ok {
		return nil, apperror.NotFound(apperror.ML201, id)
	}
	return c, nil
}

type stubBooks []entity.Book

func (s stubBooks) FindAllByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Book, error) {
	var out []entity.Book
	for _, b := range s {
		for _, id := range ids {
			if b.ID == id {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func TestMapperSumsBookPrices(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Ana", Status: entity.CustomerActive}
	b1 := entity.Book{ID: uuid.New(), Price: decimal.RequireFromString("4.50"), Status: entity.BookActive}
	b2 := entity.Book{ID: uuid.New(), Price: decimal.RequireFromString("5.50"), Status: entity.BookActive}
	m := NewMapper(stubCustomers{customer.ID: customer}, stubBooks{b1, b2})

	got, err := m.ToPurchase(context.Background(), purchasepkg.CreatePurchaseRequest{
		CustomerID: customer.ID,
		BookIDs:    []uuid.UUID{b1.ID, b2.ID, b1.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, customer.ID, got.CustomerID)
	assert.Equal(t, []uuid.UUID{b1.ID, b2.ID}, got.BookIDs())
	assert.True(t, got.Price.Equal(decimal.NewFromInt(10)), "got %s", got.Price)
	assert.Nil(t, got.NFe)
}

func TestMapperRejectsUnavailableBooks(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Status: entity.CustomerActive}
	sold := entity.Book{ID: uuid.New(), Price: decimal.NewFromInt(1), Status: entity.BookSold}
	m := NewMapper(stubCustomers{customer.ID: customer}, stubBooks{sold})

	cases := map[string][]uuid.UUID{
		"sold":    {sold.ID},
		"missing": {uuid.New()},
	}
	for name, ids := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.ToPurchase(context.Background(), purchasepkg.CreatePurchaseRequest{CustomerID: customer.ID, BookIDs: ids})
			dErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, apperror.ML302.Code, dErr.Code)
		})
	}
}

func TestMapperUnknownCustomer(t *testing.T) {
	m := NewMapper(stubCustomers{}, stubBooks{})

	_, err := m.ToPurchase(context.Background(), purchasepkg.CreatePurchaseRequest{
		CustomerID: uuid.New(),
		BookIDs:    []uuid.UUID{uuid.New()},
	})

	assert.True(t, apperror.IsNotFound(err))
}

func TestMapperRequiresBooks(t *testing.T) {
	m := NewMapper(stubCustomers{}, stubBooks{})

	_, err := m.ToPurchase(context.Background(), purchasepkg.CreatePurchaseRequest{CustomerID: uuid.New()})

	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestMapperRejectsInactiveCustomer(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Status: entity.CustomerInactive}
	book := entity.Book{ID: uuid.New(), Price: decimal.NewFromInt(1), Status: entity.BookActive}
	m := NewMapper(stubCustomers{customer.ID: customer}, stubBooks{book})

	_, err := m.ToPurchase(context.Background(), purchasepkg.CreatePurchaseRequest{
		CustomerID: customer.ID,
		BookIDs:    []uuid.UUID{book.ID},
	})

	dErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, dErr.Kind)
	assert.Equal(t, apperror.ML001.Code, dErr.Code)
}
