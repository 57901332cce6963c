// Package realtime pushes notifications to customers connected over websocket.
package realtime

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Conn is the part of *websocket.Conn the hub writes to.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

var _ Conn = (*websocket.Conn)(nil)

// Hub keeps at most one live connection per customer.
type Hub struct {
	mu         sync.RWMutex
	byCustomer map[string]*wsConn
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{byCustomer: make(map[string]*wsConn), logger: logger}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn Conn
	mu   sync.Mutex
}

// Message is the envelope written to clients.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// RegisterCustomer replaces any previous connection of the customer.
func (h *Hub) RegisterCustomer(customerID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.byCustomer[customerID]; ok {
		old.conn.Close()
	}
	h.byCustomer[customerID] = &wsConn{conn: conn}
}

// UnregisterCustomer closes and forgets conn. A connection that was already
// replaced by a newer one is closed without touching the newer one.
func (h *Hub) UnregisterCustomer(customerID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.byCustomer[customerID]
	if !ok || c.conn != conn {
		conn.Close()
		return
	}
	c.conn.Close()
	delete(h.byCustomer, customerID)
}

// Connected reports whether the customer has a live connection.
func (h *Hub) Connected(customerID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.byCustomer[customerID]
	return ok
}

// NotifyCustomer sends an event to the customer if connected.
func (h *Hub) NotifyCustomer(customerID string, event string, payload any) error {
	h.mu.RLock()
	wc, ok := h.byCustomer[customerID]
	h.mu.RUnlock()
	if !ok {
		h.logger.Debug("ws: customer not connected; drop event",
			zap.String("customer_id", customerID), zap.String("event", event))
		return nil
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if err := wc.conn.WriteJSON(Message{Event: event, Data: payload}); err != nil {
		h.logger.Warn("ws: write failed",
			zap.String("customer_id", customerID), zap.String("event", event), zap.Error(err))
		return err
	}
	return nil
}

// CloseAll closes every connection. The read loops unregister themselves.
func (h *Hub) CloseAll(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.byCustomer {
		c.conn.Close()
		delete(h.byCustomer, id)
	}
	return nil
}

// PurchasePayload is sent to the buyer once a purchase is stored.
type PurchasePayload struct {
	PurchaseID string `json:"purchase_id"`
	Price      string `json:"price"`
	Books      int    `json:"books"`
}
