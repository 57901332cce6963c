package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mercadolivro/bookstore-backend/apperror"
	"github.com/mercadolivro/bookstore-backend/middleware"
	"github.com/mercadolivro/bookstore-backend/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type WSHandler struct {
	hub    *realtime.Hub
	logger *zap.Logger
}

func NewWSHandler(hub *realtime.Hub, log *zap.Logger) *WSHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WSHandler{hub: hub, logger: log}
}

// CustomerSocket upgrades to WS and registers the customer connection.
// Auth middleware must run before this handler.
func (h *WSHandler) CustomerSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := c.GetString(middleware.CustomerIDKey)
		if customerID == "" {
			writeError(c, apperror.Unauthorized())
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Debug("ws upgrade failed", zap.Error(err))
			return
		}
		h.hub.RegisterCustomer(customerID, conn)
		// No inbound customer events are expected; maintain connection until closed.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.UnregisterCustomer(customerID, conn)
				break
			}
		}
	}
}
