package auth

import (
	"context"
	"time"
)

// LoginRequest holds the credentials of a customer.
type LoginRequest struct {
	Email    string
	Password string
}

// Principal is the authenticated customer returned by Login and Refresh.
type Principal struct {
	CustomerID   string   `json:"customer_id"`
	Roles        []string `json:"roles"`
	Token        string   `json:"token"`
	RefreshToken string   `json:"refresh_token,omitempty"`
}

// TokenConfig controls token issuance.
type TokenConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Service provides login/auth operations.
type Service interface {
	// Login checks email and password. Unknown email, wrong password and
	// inactive customers all yield the same Unauthorized error.
	Login(ctx context.Context, req LoginRequest) (*Principal, error)
	// Refresh issues a new token pair from a valid refresh token.
	Refresh(ctx context.Context, refreshToken string) (*Principal, error)
}
