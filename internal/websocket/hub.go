// Package websocket pushes server-rendered HTML fragments to browsers over
// WebSocket connections. The htmx ws extension swaps each received fragment
// into the page by element id.
package websocket

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/psyclinic/internal/middleware"
)

// Hub tracks connected clients and fans fragments out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues payload for every connected client.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		client.SendMessage(payload)
	}
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, client := range h.clients {
		client.Close()
		delete(h.clients, id)
	}
}

func (h *Hub) add(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.ID] = c
	return true
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.ID]; ok {
		delete(h.clients, c.ID)
		c.Close()
	}
}

// Handler upgrades an authenticated request and keeps the socket open until
// the browser leaves or the hub closes. initial, when set, supplies the
// first fragment so the page is current from the moment it connects.
func (h *Hub) Handler(initial func() []byte) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.UserFromContext(c)
		if !ok || user == nil {
			return c.String(http.StatusUnauthorized, "User not authenticated")
		}

		conn, err := websocket.Accept(c.Response(), c.Request(), nil)
		if err != nil {
			// Accept has already written the error response.
			slog.Warn("Failed to upgrade connection to WebSocket", "error", err)
			return nil
		}

		client := newClient(uuid.NewString(), user.Email, conn)
		if !h.add(client) {
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return nil
		}
		defer h.remove(client)
		slog.Info("Dashboard socket connected", "clientID", client.ID, "user", user.Email)

		if initial != nil {
			if msg := initial(); len(msg) > 0 {
				client.SendMessage(msg)
			}
		}

		// The dashboard never sends; CloseRead handles control frames and
		// cancels ctx when the browser goes away.
		ctx := conn.CloseRead(c.Request().Context())
		client.writePump(ctx)
		slog.Info("Dashboard socket disconnected", "clientID", client.ID)
		return nil
	}
}
