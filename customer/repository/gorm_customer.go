package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	customerpkg "github.com/mercadolivro/bookstore-backend/customer"
	"github.com/mercadolivro/bookstore-backend/database"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// GormCustomerRepo implements customer.CustomerRepository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) customerpkg.CustomerRepository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := database.Conn(ctx, r.db).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) UpdateCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := database.Conn(ctx, r.db).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var c entity.Customer
	if err := database.Conn(ctx, r.db).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var c entity.Customer
	if err := database.Conn(ctx, r.db).Where("email = ?", email).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := database.Conn(ctx, r.db).Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListCustomersByNameContaining matches a case-sensitive substring of the name.
func (r *GormCustomerRepo) ListCustomersByNameContaining(ctx context.Context, name string) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := database.Conn(ctx, r.db).
		Where("strpos(name, ?) > 0", name).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormCustomerRepo) ListCustomersByStatus(ctx context.Context, status entity.CustomerStatus) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := database.Conn(ctx, r.db).Where("status = ?", status).Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormCustomerRepo) CustomerExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := database.Conn(ctx, r.db).Model(&entity.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := database.Conn(ctx, r.db).Model(&entity.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteAllCustomers physically removes every row. Test fixtures only.
func (r *GormCustomerRepo) DeleteAllCustomers(ctx context.Context) error {
	return database.Conn(ctx, r.db).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Customer{}).Error
}
