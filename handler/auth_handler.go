package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authpkg "github.com/mercadolivro/bookstore-backend/auth"
)

type AuthHandler struct {
	service authpkg.Service
}

func NewAuthHandler(svc authpkg.Service) *AuthHandler { return &AuthHandler{service: svc} }

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p loginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			writeBindingError(c, err)
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()
		principal, err := h.service.Login(ctx, authpkg.LoginRequest{Email: p.Email, Password: p.Password})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, principal)
	}
}

type refreshPayload struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Refresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p refreshPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			writeBindingError(c, err)
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()
		principal, err := h.service.Refresh(ctx, p.RefreshToken)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, principal)
	}
}
