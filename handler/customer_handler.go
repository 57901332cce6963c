package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mercadolivro/bookstore-backend/apperror"
	customerpkg "github.com/mercadolivro/bookstore-backend/customer"
	"github.com/mercadolivro/bookstore-backend/entity"
	purchasepkg "github.com/mercadolivro/bookstore-backend/purchase"
)

// CustomerHandler bundles dependencies for customer-related HTTP handlers.
type CustomerHandler struct {
	service   customerpkg.CustomerService
	purchases purchasepkg.PurchaseService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.CustomerService, purchases purchasepkg.PurchaseService) *CustomerHandler {
	return &CustomerHandler{service: svc, purchases: purchases}
}

type createCustomerPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email,emailavailable"`
	Password string `json:"password" binding:"required,min=6"`
}

type updateCustomerPayload struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Create signs up a new customer.
func (h *CustomerHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createCustomerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			writeBindingError(c, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()
		created, err := h.service.Create(ctx, &entity.Customer{Name: p.Name, Email: p.Email, Password: p.Password})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// List returns all customers, filtered by the name query parameter when set.
func (h *CustomerHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()
		list, err := h.service.GetAll(ctx, c.Query("name"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func (h *CustomerHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			writeError(c, err)
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()
		customer, err := h.service.FindByID(ctx, id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// Update overwrites name and email; status, roles and password are kept.
func (h *CustomerHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			writeError(c, err)
			return
		}
		var p updateCustomerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			writeBindingError(c, err)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()
		current, err := h.service.FindByID(ctx, id)
		if err != nil {
			writeError(c, err)
			return
		}
		if p.Email != current.Email {
			available, err := h.service.EmailAvailable(ctx, p.Email)
			if err != nil {
				writeError(c, err)
				return
			}
			if !available {
				writeError(c, apperror.Validation(apperror.ML202, p.Email))
				return
			}
		}

		next := *current
		next.Name = p.Name
		next.Email = p.Email
		if _, err := h.service.Update(ctx, &next); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Delete deactivates the customer and the books it owns.
func (h *CustomerHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			writeError(c, err)
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()
		if err := h.service.Delete(ctx, id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Purchases lists the purchase history of the customer.
func (h *CustomerHandler) Purchases() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			writeError(c, err)
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()
		if _, err := h.service.FindByID(ctx, id); err != nil {
			writeError(c, err)
			return
		}
		list, err := h.purchases.FindByCustomer(ctx, id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
