package services

import (
	"encoding/json"
	"sync"

	"github.com/carlosmnz/bingo-salas-backend/game"
	"github.com/carlosmnz/bingo-salas-backend/utils/logger"
)

// Hub fans room snapshots out to websocket subscribers. Subscribers only
// ever observe snapshots; they can never touch engine state.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

func (h *Hub) add(roomID string, c *Client) {
	h.mu.Lock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][c] = true
	total := len(h.rooms[roomID])
	h.mu.Unlock()

	logger.Debugf("[WS] client subscribed to room %s (total=%d)", roomID, total)
}

func (h *Hub) remove(roomID string, c *Client) {
	h.mu.Lock()
	if subs, ok := h.rooms[roomID]; ok {
		delete(subs, c)
	}
	h.mu.Unlock()

	c.Close()
}

// Broadcast pushes a snapshot to everyone watching the room. Slow clients
// get dropped messages, not a stalled engine.
func (h *Hub) Broadcast(snap game.Snapshot) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[snap.ID]))
	for c := range h.rooms[snap.ID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	if len(clients) == 0 {
		return
	}

	b, err := json.Marshal(snap)
	if err != nil {
		logger.Errorf("[WS] failed to marshal snapshot for room %s: %v", snap.ID, err)
		return
	}

	for _, c := range clients {
		select {
		case c.send <- b:
		default:
			logger.Warnf("[WS] dropping snapshot for a slow client on room %s", snap.ID)
		}
	}
}
