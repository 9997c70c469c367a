package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// WriteTimeout bounds a single write to one client.
const WriteTimeout = 3 * time.Second

// Hub fans field patches out to every connected viewer.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast writes message to every client and drops the ones that fail.
// It returns the number of clients that received it.
func (h *Hub) Broadcast(ctx context.Context, message []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for conn := range h.clients {
		wctx, cancel := context.WithTimeout(ctx, WriteTimeout)
		err := conn.Write(wctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
			continue
		}
		delivered++
	}
	return delivered
}

// CloseAll disconnects every client, typically on shutdown.
func (h *Hub) CloseAll(reason string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.Close(websocket.StatusGoingAway, reason)
		delete(h.clients, conn)
	}
}
