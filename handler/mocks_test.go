package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	adminpkg "github.com/mercadolivro/bookstore-backend/admin"
	authpkg "github.com/mercadolivro/bookstore-backend/auth"
	bookpkg "github.com/mercadolivro/bookstore-backend/book"
	"github.com/mercadolivro/bookstore-backend/entity"
	purchasepkg "github.com/mercadolivro/bookstore-backend/purchase"
)

type mockCustomerService struct{ mock.Mock }

func (m *mockCustomerService) GetAll(ctx context.Context, name string) ([]entity.Customer, error) {
	args := m.Called(ctx, name)
	out, _ := args.Get(0).([]entity.Customer)
	return out, args.Error(1)
}

func (m *mockCustomerService) Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*entity.Customer)
	return out, args.Error(1)
}

func (m *mockCustomerService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.Customer)
	return out, args.Error(1)
}

func (m *mockCustomerService) Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*entity.Customer)
	return out, args.Error(1)
}

func (m *mockCustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCustomerService) EmailAvailable(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockBookService struct{ mock.Mock }

func (m *mockBookService) Create(ctx context.Context, b *entity.Book) (*entity.Book, error) {
	args := m.Called(ctx, b)
	out, _ := args.Get(0).(*entity.Book)
	return out, args.Error(1)
}

func (m *mockBookService) FindAll(ctx context.Context, page bookpkg.Page) ([]entity.Book, error) {
	args := m.Called(ctx, page)
	out, _ := args.Get(0).([]entity.Book)
	return out, args.Error(1)
}

func (m *mockBookService) FindActives(ctx context.Context, page bookpkg.Page) ([]entity.Book, error) {
	args := m.Called(ctx, page)
	out, _ := args.Get(0).([]entity.Book)
	return out, args.Error(1)
}

func (m *mockBookService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.Book)
	return out, args.Error(1)
}

func (m *mockBookService) FindAllByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Book, error) {
	args := m.Called(ctx, ids)
	out, _ := args.Get(0).([]entity.Book)
	return out, args.Error(1)
}

func (m *mockBookService) Update(ctx context.Context, b *entity.Book) (*entity.Book, error) {
	args := m.Called(ctx, b)
	out, _ := args.Get(0).(*entity.Book)
	return out, args.Error(1)
}

func (m *mockBookService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookService) DeleteByCustomer(ctx context.Context, c *entity.Customer) error {
	return m.Called(ctx, c).Error(0)
}

type mockPurchaseService struct{ mock.Mock }

func (m *mockPurchaseService) Create(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*entity.Purchase)
	return out, args.Error(1)
}

func (m *mockPurchaseService) Update(ctx context.Context, p *entity.Purchase) (*entity.Purchase, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*entity.Purchase)
	return out, args.Error(1)
}

func (m *mockPurchaseService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*entity.Purchase)
	return out, args.Error(1)
}

func (m *mockPurchaseService) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Purchase, error) {
	args := m.Called(ctx, customerID)
	out, _ := args.Get(0).([]entity.Purchase)
	return out, args.Error(1)
}

type mockMapper struct{ mock.Mock }

func (m *mockMapper) ToPurchase(ctx context.Context, req purchasepkg.CreatePurchaseRequest) (*entity.Purchase, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*entity.Purchase)
	return out, args.Error(1)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(ctx context.Context, req authpkg.LoginRequest) (*authpkg.Principal, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*authpkg.Principal)
	return out, args.Error(1)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (*authpkg.Principal, error) {
	args := m.Called(ctx, refreshToken)
	out, _ := args.Get(0).(*authpkg.Principal)
	return out, args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) NotifyCustomer(customerID string, event string, payload any) error {
	return m.Called(customerID, event, payload).Error(0)
}

type mockAdminService struct{ mock.Mock }

func (m *mockAdminService) RegisterAdmin(ctx context.Context, req adminpkg.RegisterAdminRequest) (*entity.Customer, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*entity.Customer)
	return out, args.Error(1)
}

func (m *mockAdminService) GrantAdmin(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, customerID)
	out, _ := args.Get(0).(*entity.Customer)
	return out, args.Error(1)
}
