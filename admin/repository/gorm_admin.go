package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	adminpkg "github.com/mercadolivro/bookstore-backend/admin"
	"github.com/mercadolivro/bookstore-backend/entity"
)

// GormAdminRepo implements admin.AdminRepository using GORM.
type GormAdminRepo struct {
	db *gorm.DB
}

func NewGormAdminRepo(db *gorm.DB) adminpkg.AdminRepository {
	return &GormAdminRepo{db: db}
}

func (r *GormAdminRepo) GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormAdminRepo) GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// UpdateRoles goes through the model so the json serializer of Roles applies.
func (r *GormAdminRepo) UpdateRoles(ctx context.Context, id uuid.UUID, roles []entity.Role) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Customer{ID: id}).
		Select("Roles").
		Updates(&entity.Customer{Roles: roles})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
