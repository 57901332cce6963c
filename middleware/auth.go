package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mercadolivro/bookstore-backend/apperror"
	authpkg "github.com/mercadolivro/bookstore-backend/auth"
)

// Context keys set by RequireAuth.
const (
	CustomerIDKey = "customer_id"
	RolesKey      = "roles"
)

// RequireAuth validates a Bearer access token, places claims into context and
// continues. Websocket clients that cannot set headers may pass the token in
// the access_token query parameter.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abort(c, http.StatusUnauthorized, apperror.Unauthorized())
			return
		}

		claims, err := authpkg.ParseAndValidate(secret, tokenString, authpkg.AccessToken)
		if err != nil {
			abort(c, http.StatusUnauthorized, apperror.Unauthorized())
			return
		}

		c.Set(CustomerIDKey, claims.CustomerID)
		c.Set(RolesKey, claims.Roles)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return c.Query("access_token")
}

// RequireRoles ensures the authenticated principal has one of the allowed roles.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	roleSet := map[string]struct{}{}
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		for _, r := range Roles(c) {
			if _, ok := roleSet[r]; ok {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, apperror.Forbidden())
	}
}

// RequireSelfOrAdmin lets the request through when the path parameter param
// is the caller's own customer id, or when the caller is ADMIN.
func RequireSelfOrAdmin(param, adminRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param(param) == c.GetString(CustomerIDKey) || HasRole(c, adminRole) {
			c.Next()
			return
		}
		abort(c, http.StatusForbidden, apperror.Forbidden())
	}
}

// Roles returns the roles stored by RequireAuth.
func Roles(c *gin.Context) []string {
	return c.GetStringSlice(RolesKey)
}

func HasRole(c *gin.Context, role string) bool {
	for _, r := range Roles(c) {
		if r == role {
			return true
		}
	}
	return false
}

func abort(c *gin.Context, status int, err *apperror.Error) {
	c.AbortWithStatusJSON(status, gin.H{
		"http_code":     status,
		"message":       err.Message,
		"internal_code": err.Code,
	})
}
