package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func newHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		hub.Add(conn)
		// Keep the handler alive until the client goes away.
		_, _, _ = conn.Read(context.Background())
		hub.Remove(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Len() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", n, hub.Len())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var clients []*websocket.Conn
	for range 2 {
		c, _, err := websocket.Dial(ctx, url, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		defer c.CloseNow()
		clients = append(clients, c)
	}
	waitForClients(t, hub, 2)

	if n := hub.Broadcast(ctx, []byte(`{"type":"SnakeMoved"}`)); n != 2 {
		t.Fatalf("expected 2 deliveries, got %d", n)
	}
	for i, c := range clients {
		_, data, err := c.Read(ctx)
		if err != nil {
			t.Fatalf("client %d read: %v", i, err)
		}
		if string(data) != `{"type":"SnakeMoved"}` {
			t.Errorf("client %d got %s", i, data)
		}
	}
}

func TestHub_CloseAll(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.CloseNow()
	// Read so the client answers the close handshake.
	go func() { _, _, _ = c.Read(ctx) }()
	waitForClients(t, hub, 1)

	hub.CloseAll("shutting down")
	if hub.Len() != 0 {
		t.Errorf("expected no clients after CloseAll, got %d", hub.Len())
	}
	if n := hub.Broadcast(ctx, []byte("x")); n != 0 {
		t.Errorf("expected no deliveries, got %d", n)
	}
}
