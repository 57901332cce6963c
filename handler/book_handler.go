package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercadolivro/bookstore-backend/apperror"
	bookpkg "github.com/mercadolivro/bookstore-backend/book"
	customerpkg "github.com/mercadolivro/bookstore-backend/customer"
	"github.com/mercadolivro/bookstore-backend/entity"
)

type BookHandler struct {
	service   bookpkg.BookService
	customers customerpkg.CustomerService
}

func NewBookHandler(svc bookpkg.BookService, customers customerpkg.CustomerService) *BookHandler {
	return &BookHandler{service: svc, customers: customers}
}

type createBookPayload struct {
	Title  string           `json:"title" binding:"required"`
	Author string           `json:"author"`
	Price  *decimal.Decimal `json:"price" binding:"required"`
	// CustomerID lets an ADMIN list a book for someone else.
	CustomerID *uuid.UUID `json:"customer_id"`
}

type updateBookPayload struct {
	Title  string             `json:"title"`
	Author string             `json:"author"`
	Price  *decimal.Decimal   `json:"price"`
	Status *entity.BookStatus `json:"status" binding:"omitempty,oneof=ACTIVE CANCELED"`
}

func negativePrice(p *decimal.Decimal) bool { return p != nil && p.IsNegative() }

// Create lists a new ACTIVE book owned by the caller.
func (h *BookHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createBookPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			writeBindingError(c, err)
			return
		}
		if negativePrice(p.Price) {
			writeError(c, apperror.Validation(apperror.ML001))
			return
		}

		owner, err := callerID(c)
		if err != nil {
			writeError(c, err)
			return
		}
		if p.CustomerID != nil && *p.CustomerID != owner {
			if !isAdmin(c) {
				writeError(c, apperror.Forbidden())
				return
			}
			owner = *p.CustomerID
		}

		ctx, cancel := requestContext(c)
		defer cancel()
		customer, err := h.customers.FindByID(ctx, owner)
		if err != nil {
			writeError(c, err)
			return
		}
		if !customer.IsActive() {
			writeError(c, apperror.Validation(apperror.ML001))
			return
		}
		created, err := h.service.Create(ctx, &entity.Book{
			Title:      p.Title,
			Author:     p.Author,
			Price:      *p.Price,
			Status:     entity.BookActive,
			CustomerID: &customer.ID,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (h *BookHandler) List() gin.HandlerFunc {
	return h.list(false)
}

func (h *BookHandler) ListActive() gin.HandlerFunc {
	return h.list(true)
}

func (h *BookHandler) list(activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q pageQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			writeBindingError(c, err)
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()

		var (
			books []entity.Book
			err   error
		)
		if activeOnly {
			books, err = h.service.FindActives(ctx, q.page())
		} else {
			books, err = h.service.FindAll(ctx, q.page())
		}
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, books)
	}
}

func (h *BookHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			writeError(c, err)
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()
		b, err := h.service.FindByID(ctx, id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// Update merges the payload into the stored book. Only the owner or an ADMIN
// may edit it, and only while it is ACTIVE.
func (h *BookHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			writeError(c, err)
			return
		}
		var p updateBookPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			writeBindingError(c, err)
			return
		}
		if negativePrice(p.Price) {
			writeError(c, apperror.Validation(apperror.ML001))
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()
		current, err := h.owned(ctx, c, id)
		if err != nil {
			writeError(c, err)
			return
		}

		next := *current
		next.Customer = nil
		if p.Title != "" {
			next.Title = p.Title
		}
		if p.Author != "" {
			next.Author = p.Author
		}
		if p.Price != nil {
			next.Price = *p.Price
		}
		next.Status = ""
		if p.Status != nil {
			next.Status = *p.Status
		}
		if _, err := h.service.Update(ctx, &next); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Delete cancels the listing.
func (h *BookHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			writeError(c, err)
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()
		if _, err := h.owned(ctx, c, id); err != nil {
			writeError(c, err)
			return
		}
		if err := h.service.Delete(ctx, id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (h *BookHandler) owned(ctx context.Context, c *gin.Context, id uuid.UUID) (*entity.Book, error) {
	b, err := h.service.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if isAdmin(c) {
		return b, nil
	}
	if b.CustomerID == nil || !canActFor(c, *b.CustomerID) {
		return nil, apperror.Forbidden()
	}
	return b, nil
}
