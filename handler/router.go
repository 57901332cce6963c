package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mercadolivro/bookstore-backend/entity"
	"github.com/mercadolivro/bookstore-backend/middleware"
)

type Handlers struct {
	Auth      *AuthHandler
	Customers *CustomerHandler
	Books     *BookHandler
	Purchases *PurchaseHandler
	WS        *WSHandler
	Admin     *AdminHandler
}

type RouterConfig struct {
	JWTSecret string
	// AuthLimiter guards login, refresh and signup. Nil disables it.
	AuthLimiter *middleware.IPRateLimiter
}

// NewRouter mounts every route on a fresh gin engine.
func NewRouter(h Handlers, cfg RouterConfig, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	admin := string(entity.RoleAdmin)
	authenticated := middleware.RequireAuth(cfg.JWTSecret)
	limited := func(c *gin.Context) { c.Next() }
	if cfg.AuthLimiter != nil {
		limited = middleware.RateLimit(cfg.AuthLimiter)
	}
	selfOrAdmin := middleware.RequireSelfOrAdmin("id", admin)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/login", limited, h.Auth.Login())
		v1.POST("/refresh", limited, h.Auth.Refresh())

		v1.POST("/customers", limited, h.Customers.Create())
		v1.GET("/customers", authenticated, middleware.RequireRoles(admin), h.Customers.List())
		v1.GET("/customers/:id", authenticated, selfOrAdmin, h.Customers.Get())
		v1.PUT("/customers/:id", authenticated, selfOrAdmin, h.Customers.Update())
		v1.DELETE("/customers/:id", authenticated, selfOrAdmin, h.Customers.Delete())
		v1.GET("/customers/:id/purchases", authenticated, selfOrAdmin, h.Customers.Purchases())
		v1.POST("/customers/:id/admin", authenticated, middleware.RequireRoles(admin), h.Admin.GrantAdmin())

		v1.GET("/books", h.Books.List())
		v1.GET("/books/active", h.Books.ListActive())
		v1.GET("/books/:id", h.Books.Get())
		v1.POST("/books", authenticated, h.Books.Create())
		v1.PUT("/books/:id", authenticated, h.Books.Update())
		v1.DELETE("/books/:id", authenticated, h.Books.Delete())

		v1.POST("/purchases", authenticated, h.Purchases.Create())
		v1.GET("/purchases/:id", authenticated, h.Purchases.Get())

		v1.GET("/ws/customer", authenticated, h.WS.CustomerSocket())
	}
	return r
}
