// Package observer streams presentation cues to websocket clients.
package observer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/udisondev/herobrine/internal/model"
)

const (
	sendBuffer   = 256
	writeTimeout = 5 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = pongWait * 9 / 10
)

// Message is the JSON envelope sent to observers.
type Message struct {
	Type string    `json:"type"`
	Cue  model.Cue `json:"cue"`
}

type client struct {
	id   uint64
	conn *websocket.Conn
	send chan []byte
}

// Hub fans cues out to connected observers. It implements model.CueSink.
// Cues are presentation only: a slow client loses cues instead of stalling the tick loop.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[uint64]*client

	nextID  atomic.Uint64
	dropped atomic.Uint64
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[uint64]*client),
	}
}

// Emit broadcasts cue to every client without blocking.
func (h *Hub) Emit(cue model.Cue) {
	b, err := json.Marshal(Message{Type: "cue", Cue: cue})
	if err != nil {
		slog.Error("failed to encode cue", "kind", cue.Kind, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- b:
		default:
			h.dropped.Add(1)
		}
	}
}

// ClientCount returns the number of connected observers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dropped returns the number of cues dropped for slow clients.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// ServeHTTP upgrades the request and streams cues until the client disconnects.
func (h *Hub) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		slog.Debug("observer upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := &client{
		id:   h.nextID.Add(1),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	h.register(c)
	slog.Info("observer connected", "client", c.id, "remote", r.RemoteAddr)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writeLoop(c)
	}()

	h.readLoop(c)
	h.unregister(c)
	<-done

	slog.Info("observer disconnected", "client", c.id)
}

// readLoop discards client messages; it returns when the connection closes.
func (h *Hub) readLoop(c *client) {
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case b, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.send)
	}
}

// CloseAll disconnects every client.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.send)
	}
}

// Serve listens on addr and serves the hub at /ws until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("observer listening", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("observer server: %w", err)
	case <-ctx.Done():
	}

	h.CloseAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("observer shutdown: %w", err)
	}
	return nil
}
