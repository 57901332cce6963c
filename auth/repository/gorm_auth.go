package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authpkg "github.com/mercadolivro/bookstore-backend/auth"
	"github.com/mercadolivro/bookstore-backend/entity"
)

type GormAuthRepo struct {
	db *gorm.DB
}

func NewGormAuthRepo(db *gorm.DB) authpkg.Repository {
	return &GormAuthRepo{db: db}
}

func (r *GormAuthRepo) GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *GormAuthRepo) GetCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormAuthRepo) first(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).Where(query, arg).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
