package game

import "sync"

// Registry creates rooms and routes requests to them. Rooms are never
// deleted; a finished room just stays listed in its terminal state.
type Registry struct {
	mu      sync.RWMutex
	rooms   map[string]*Room
	ordered []*Room // creation order == sequence order
	nextSeq int

	prizePercent int
	newRand      func() Rand
	ledger       *TokenLedger
}

// NewRegistry builds a registry whose rooms pay out prizePercent of the pot.
// Each room gets its own randomness from newRand; pass nil for a
// time-seeded default.
func NewRegistry(ledger *TokenLedger, prizePercent int, newRand func() Rand) *Registry {
	if newRand == nil {
		newRand = newTimeRand
	}
	return &Registry{
		rooms:        make(map[string]*Room),
		prizePercent: prizePercent,
		newRand:      newRand,
		ledger:       ledger,
	}
}

// CreateRoom opens a room with the next sequence number. Stake, capacity and
// prize percentage are frozen into the room here; later config changes only
// affect rooms created afterwards.
func (g *Registry) CreateRoom(stakePerCard int64, capacity int) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextSeq++
	room := newRoom(g.nextSeq, stakePerCard, capacity, g.prizePercent, g.newRand(), g.ledger)
	g.rooms[room.id] = room
	g.ordered = append(g.ordered, room)
	return room
}

// Room routes to the addressed room.
func (g *Registry) Room(roomID string) (*Room, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	room, ok := g.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// ListRooms returns snapshots ordered by sequence number ascending.
func (g *Registry) ListRooms() []Snapshot {
	g.mu.RLock()
	rooms := append([]*Room(nil), g.ordered...)
	g.mu.RUnlock()

	out := make([]Snapshot, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Snapshot())
	}
	return out
}
