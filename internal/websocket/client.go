package websocket

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const (
	sendBuffer   = 16
	writeTimeout = 10 * time.Second
)

// Client is one connected dashboard socket.
type Client struct {
	ID     string
	UserID string
	conn   *websocket.Conn
	send   chan []byte
	mu     sync.RWMutex
}

func newClient(id, userID string, conn *websocket.Conn) *Client {
	return &Client{
		ID:     id,
		UserID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}
}

// SendMessage queues msg without blocking. A client that falls behind loses
// the message; the next fragment replaces it anyway.
func (c *Client) SendMessage(msg []byte) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.send == nil {
		return
	}

	select {
	case c.send <- msg:
	default:
		slog.Warn("Client send channel full, dropping message", "clientID", c.ID)
	}
}

// Close stops the write loop. Safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.send != nil {
		close(c.send)
		c.send = nil
	}
}

// writePump copies queued messages to the connection until the client is
// closed or ctx ends.
func (c *Client) writePump(ctx context.Context) {
	c.mu.RLock()
	send := c.send
	c.mu.RUnlock()
	if send == nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			c.conn.Close(websocket.StatusNormalClosure, "client disconnected")
			return
		case msg, ok := <-send:
			if !ok {
				c.conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				slog.Debug("WebSocket write failed", "clientID", c.ID, "error", err)
				c.conn.CloseNow()
				return
			}
		}
	}
}
