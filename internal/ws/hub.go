// Package ws delivers catalog-change notifications to connected websocket
// observers.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iyhunko/realtime-catalog/internal/metrics"
	"github.com/iyhunko/realtime-catalog/internal/model"
	"github.com/iyhunko/realtime-catalog/internal/notifier"
)

const writeTimeout = 5 * time.Second

// Hub tracks connected observers and broadcasts the product collection to
// all of them after every mutation. It keeps no per-client state beyond the
// connection itself; every observer receives the same message.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The views and the websocket endpoint are served from the same
			// origin; cross-origin access control is out of scope.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		clients: map[*websocket.Conn]struct{}{},
	}
}

// Serve upgrades the request to a websocket connection and keeps it
// registered until the client disconnects. Connects and disconnects are
// logged only; they have no effect on catalog state.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade websocket connection", slog.Any("err", err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	metrics.ObserverConnections.Inc()
	slog.Info("Observer connected", slog.String("remote", conn.RemoteAddr().String()))

	go h.readLoop(conn)
}

// readLoop drains inbound frames so close frames and pings are handled, then
// unregisters the connection once the observer goes away.
func (h *Hub) readLoop(conn *websocket.Conn) {
	defer func() {
		h.remove(conn)
		slog.Info("Observer disconnected", slog.String("remote", conn.RemoteAddr().String()))
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// NotifyProductsUpdated broadcasts the collection to every connected
// observer. Observers that fail to receive the message are dropped and
// logged; the broadcast itself never reports their failure to the caller.
func (h *Hub) NotifyProductsUpdated(_ context.Context, products []model.Product) error {
	message, err := json.Marshal(notifier.CatalogMessage{
		Event:    notifier.EventProductsUpdated,
		Products: products,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast message: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			slog.Error("Dropping observer after failed delivery",
				slog.String("remote", conn.RemoteAddr().String()),
				slog.Any("err", err),
			)
			conn.Close()
			delete(h.clients, conn)
		}
	}
	return nil
}

// ClientCount reports the number of currently connected observers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
}
