package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mercadolivro/bookstore-backend/apperror"
	authpkg "github.com/mercadolivro/bookstore-backend/auth"
	"github.com/mercadolivro/bookstore-backend/entity"
)

type authService struct {
	repo    authpkg.Repository
	matcher authpkg.PasswordMatcher
	tokens  authpkg.TokenConfig
	logger  *zap.Logger
}

func NewAuthService(repo authpkg.Repository, matcher authpkg.PasswordMatcher, tokens authpkg.TokenConfig, logger *zap.Logger) authpkg.Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authService{repo: repo, matcher: matcher, tokens: tokens, logger: logger}
}

func (s *authService) Login(ctx context.Context, req authpkg.LoginRequest) (*authpkg.Principal, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperror.Unauthorized()
	}

	c, err := s.repo.GetCustomerByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.IsActive() || !s.matcher.Matches(req.Password, c.Password) {
		s.logger.Info("login rejected", zap.String("email", req.Email))
		return nil, apperror.Unauthorized()
	}
	return s.issue(c)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*authpkg.Principal, error) {
	claims, err := authpkg.ParseAndValidate(s.tokens.Secret, refreshToken, authpkg.RefreshToken)
	if err != nil {
		return nil, apperror.Unauthorized().Wrap(err)
	}
	id, err := uuid.Parse(claims.CustomerID)
	if err != nil {
		return nil, apperror.Unauthorized().Wrap(err)
	}

	// roles and status may have changed since the refresh token was issued
	c, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.IsActive() {
		return nil, apperror.Unauthorized()
	}
	return s.issue(c)
}

func (s *authService) issue(c *entity.Customer) (*authpkg.Principal, error) {
	p := &authpkg.Principal{
		CustomerID: c.ID.String(),
		Roles:      c.RoleNames(),
	}
	access, err := authpkg.SignJWT(s.tokens.Secret, s.tokens.Issuer, p, s.tokens.AccessTTL, authpkg.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := authpkg.SignJWT(s.tokens.Secret, s.tokens.Issuer, p, s.tokens.RefreshTTL, authpkg.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	p.Token = access
	p.RefreshToken = refresh
	return p, nil
}
