// Package realtime pushes change events to connected clients so they can
// refresh without polling.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"mensahub/internal/additive"
	"mensahub/internal/provider"
)

type event struct {
	Kind string `json:"kind"`
	Data any    `json:"data,omitempty"`
}

// Hub fans events out to every connected client. It satisfies the event
// publisher interfaces of the additive and mirror packages.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcast(kind string, data any) {
	msg, err := json.Marshal(event{Kind: kind, Data: data})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.clients {
		_ = conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// AdditiveUpdated announces a changed like/dislike preference.
func (h *Hub) AdditiveUpdated(a *additive.Additive) {
	h.broadcast("additive.updated", a)
}

// ProviderUpdated announces a provider whose listing entry changed upstream.
func (h *Hub) ProviderUpdated(p *provider.FoodProvider) {
	h.broadcast("provider.updated", p)
}

// MenusRefreshed announces a completed meal sync.
func (h *Hub) MenusRefreshed() {
	h.broadcast("menus.refreshed", nil)
}
