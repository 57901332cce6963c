package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadolivro/bookstore-backend/entity"
	"github.com/mercadolivro/bookstore-backend/testutil"
)

func TestGetCustomerForLogin(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewGormAuthRepo(db)
	ctx := context.Background()
	c := &entity.Customer{Name: "Ana", Email: "ana@email.com", Password: "hash", Status: entity.CustomerActive, Roles: []entity.Role{entity.RoleCustomer}}
	require.NoError(t, db.Create(c).Error)

	byEmail, err := repo.GetCustomerByEmail(ctx, "ana@email.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, c.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.Password)
	assert.Equal(t, []entity.Role{entity.RoleCustomer}, byEmail.Roles)

	byID, err := repo.GetCustomerByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@email.com", byID.Email)

	missing, err := repo.GetCustomerByEmail(ctx, "ANA@email.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = repo.GetCustomerByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
