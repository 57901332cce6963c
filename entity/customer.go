package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerStatus enumerates the lifecycle of a customer account.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "ACTIVE"
	CustomerInactive CustomerStatus = "INACTIVE" // soft-deleted
)

// Role is an authorization role granted to a customer.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// Customer is a bookstore account. Password always holds a hash once persisted.
type Customer struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"type:text;index;not null"`
	Email     string         `json:"email" gorm:"type:text;uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"type:text;not null"`
	Status    CustomerStatus `json:"status" gorm:"type:text;index;not null;default:'ACTIVE'"`
	Roles     []Role         `json:"roles" gorm:"type:text;serializer:json"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BeforeCreate assigns the identifier when the caller left it empty.
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Deactivate soft-deletes the customer.
func (c *Customer) Deactivate() { c.Status = CustomerInactive }

func (c *Customer) IsActive() bool { return c.Status == CustomerActive }

func (c *Customer) HasRole(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleNames returns the roles as plain strings (token claims, responses).
func (c *Customer) RoleNames() []string {
	out := make([]string, 0, len(c.Roles))
	for _, r := range c.Roles {
		out = append(out, string(r))
	}
	return out
}
