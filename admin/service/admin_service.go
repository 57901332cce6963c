package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	adminpkg "github.com/mercadolivro/bookstore-backend/admin"
	"github.com/mercadolivro/bookstore-backend/apperror"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// CustomerCreator creates customers with hashed passwords.
type CustomerCreator interface {
	Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
}

// adminService implements AdminService.
type adminService struct {
	repo      adminpkg.AdminRepository
	customers CustomerCreator
	logger    *zap.Logger
}

// NewAdminService constructs an AdminService backed by the provided repository.
func NewAdminService(repo adminpkg.AdminRepository, customers CustomerCreator, logger *zap.Logger) adminpkg.AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &adminService{repo: repo, customers: customers, logger: logger}
}

func (s *adminService) RegisterAdmin(ctx context.Context, req adminpkg.RegisterAdminRequest) (*entity.Customer, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperror.Validation(apperror.ML001)
	}
	existing, err := s.repo.GetCustomerByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.grant(ctx, existing)
	}

	name := req.Name
	if name == "" {
		name = "admin"
	}
	created, err := s.customers.Create(ctx, &entity.Customer{
		Name:     name,
		Email:    req.Email,
		Password: req.Password,
		Status:   entity.CustomerActive,
		Roles:    []entity.Role{entity.RoleCustomer, entity.RoleAdmin},
	})
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	s.logger.Info("admin registered", zap.String("customer_id", created.ID.String()))
	return created, nil
}

func (s *adminService) GrantAdmin(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	c, err := s.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound(apperror.ML201, customerID)
	}
	if !c.IsActive() {
		return nil, apperror.Validation(apperror.ML001)
	}
	return s.grant(ctx, c)
}

func (s *adminService) grant(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if c.HasRole(entity.RoleAdmin) {
		return c, nil
	}
	roles := append(append([]entity.Role(nil), c.Roles...), entity.RoleAdmin)
	if err := s.repo.UpdateRoles(ctx, c.ID, roles); err != nil {
		return nil, fmt.Errorf("grant admin: %w", err)
	}
	granted := *c
	granted.Roles = roles
	s.logger.Info("admin role granted", zap.String("customer_id", c.ID.String()))
	return &granted, nil
}
