package socket

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub tracks connected telemetry subscribers and fans frames out to all of
// them. Connections are keyed by a per-connection id assigned at upgrade.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*websocket.Conn
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
		log:     log,
	}
}

func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[clientID] = conn
	h.log.Info("telemetry client registered", zap.String("client", clientID))
}

func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[clientID]; ok {
		delete(h.clients, clientID)
		h.log.Info("telemetry client unregistered", zap.String("client", clientID))
	}
}

// Broadcast sends a frame to every subscriber. Clients whose write fails are
// dropped; their read loop will notice the closed connection and clean up.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	var failed []string
	for id, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			h.log.Warn("telemetry write failed", zap.String("client", id), zap.Error(err))
			failed = append(failed, id)
		}
	}
	h.mu.RUnlock()

	for _, id := range failed {
		h.Unregister(id)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
