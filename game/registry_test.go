package game

import "testing"

func TestRegistry_SequenceAndOrdering(t *testing.T) {
	ledger := NewTokenLedger()
	reg := newTestRegistry(ledger, 300)

	for i := 0; i < 5; i++ {
		reg.CreateRoom(5, 2)
	}

	rooms := reg.ListRooms()
	if len(rooms) != 5 {
		t.Fatalf("expected 5 rooms, got %d", len(rooms))
	}
	for i, snap := range rooms {
		if snap.SequenceNumber != i+1 {
			t.Fatalf("room %d has sequence %d, want %d", i, snap.SequenceNumber, i+1)
		}
		if snap.State != StateOpen || snap.Capacity != 2 || snap.StakePerCard != 5 {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	}
}

func TestRegistry_RouteByID(t *testing.T) {
	ledger := NewTokenLedger()
	reg := newTestRegistry(ledger, 310)

	room := reg.CreateRoom(5, 2)
	got, err := reg.Room(room.ID())
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != room {
		t.Fatal("lookup returned a different room")
	}

	if _, err := reg.Room("missing"); err != ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}
