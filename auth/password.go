package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordEncoder turns a plaintext password into a one-way hash.
type PasswordEncoder interface {
	Encode(raw string) (string, error)
}

// PasswordMatcher checks a plaintext password against a stored hash.
type PasswordMatcher interface {
	Matches(raw, hash string) bool
}

// BcryptEncoder hashes passwords with bcrypt.
type BcryptEncoder struct {
	cost int
}

// NewBcryptEncoder uses bcrypt.DefaultCost when cost is out of range.
func NewBcryptEncoder(cost int) *BcryptEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptEncoder{cost: cost}
}

func (e *BcryptEncoder) Encode(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), e.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (e *BcryptEncoder) Matches(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
