package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mercadolivro/bookstore-backend/apperror"
	"github.com/mercadolivro/bookstore-backend/entity"
	"github.com/mercadolivro/bookstore-backend/events"
	"github.com/mercadolivro/bookstore-backend/logger"
	purchasepkg "github.com/mercadolivro/bookstore-backend/purchase"
	"github.com/mercadolivro/bookstore-backend/realtime"
)

// PurchaseMapper builds a priced purchase from a request.
type PurchaseMapper interface {
	ToPurchase(ctx context.Context, req purchasepkg.CreatePurchaseRequest) (*entity.Purchase, error)
}

// Notifier pushes an event to a connected customer.
type Notifier interface {
	NotifyCustomer(customerID string, event string, payload any) error
}

type PurchaseHandler struct {
	service  purchasepkg.PurchaseService
	mapper   PurchaseMapper
	notifier Notifier
	logger   *zap.Logger
}

func NewPurchaseHandler(svc purchasepkg.PurchaseService, mapper PurchaseMapper, notifier Notifier, log *zap.Logger) *PurchaseHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PurchaseHandler{service: svc, mapper: mapper, notifier: notifier, logger: log}
}

type createPurchasePayload struct {
	BookIDs []uuid.UUID `json:"book_ids" binding:"required,min=1"`
	// CustomerID lets an ADMIN buy on behalf of someone else.
	CustomerID *uuid.UUID `json:"customer_id"`
}

func (h *PurchaseHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createPurchasePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			writeBindingError(c, err)
			return
		}
		buyer, err := callerID(c)
		if err != nil {
			writeError(c, err)
			return
		}
		if p.CustomerID != nil && *p.CustomerID != buyer {
			if !isAdmin(c) {
				writeError(c, apperror.Forbidden())
				return
			}
			buyer = *p.CustomerID
		}

		ctx, cancel := requestContext(c)
		defer cancel()
		purchase, err := h.mapper.ToPurchase(ctx, purchasepkg.CreatePurchaseRequest{CustomerID: buyer, BookIDs: p.BookIDs})
		if err != nil {
			writeError(c, err)
			return
		}
		created, err := h.service.Create(ctx, purchase)
		if err != nil {
			writeError(c, err)
			return
		}

		if h.notifier != nil {
			payload := realtime.PurchasePayload{
				PurchaseID: created.ID.String(),
				Price:      created.Price.StringFixed(2),
				Books:      len(created.Books),
			}
			if err := h.notifier.NotifyCustomer(buyer.String(), events.PurchaseCreatedName, payload); err != nil {
				logger.WithRequestID(c.Request.Context(), h.logger).Warn("notify buyer failed",
					zap.String("purchase_id", created.ID.String()), zap.Error(err))
			}
		}
		c.JSON(http.StatusCreated, created)
	}
}

// Get returns a purchase to its buyer or to an ADMIN.
func (h *PurchaseHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			writeError(c, err)
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()
		purchase, err := h.service.FindByID(ctx, id)
		if err != nil {
			writeError(c, err)
			return
		}
		if !canActFor(c, purchase.CustomerID) {
			writeError(c, apperror.Forbidden())
			return
		}
		c.JSON(http.StatusOK, purchase)
	}
}
