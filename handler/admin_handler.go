package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminpkg "github.com/mercadolivro/bookstore-backend/admin"
)

type AdminHandler struct {
	service adminpkg.AdminService
}

func NewAdminHandler(svc adminpkg.AdminService) *AdminHandler { return &AdminHandler{service: svc} }

// GrantAdmin gives the ADMIN role to the customer in the path.
func (h *AdminHandler) GrantAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			writeError(c, err)
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()
		customer, err := h.service.GrantAdmin(ctx, id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}
