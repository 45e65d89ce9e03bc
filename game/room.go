package game

import (
	"sync"

	"github.com/google/uuid"
)

type State string

const (
	StateOpen       State = "open"
	StateFull       State = "full"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
)

// Room owns one game's full lifecycle: open → full → in_progress → finished,
// no backward transitions. All operations lock r.mu for their whole duration,
// so everything targeting one room is serialized while different rooms run
// in parallel. Ledger updates have their own per-user locking and are the
// only other synchronization an operation touches.
type Room struct {
	mu sync.Mutex

	id           string
	seq          int
	state        State
	capacity     int
	stakePerCard int64
	prizePercent int
	pot          int64
	prizeTotal   int64

	drawn []int
	pool  *drawPool
	rng   Rand

	cards    map[string]*Card // by card id
	winnerID string
	rev      int64 // bumped on every mutation, orders mirror writes

	ledger *TokenLedger
}

// Snapshot is the read-only view handed to renderers and the websocket feed.
type Snapshot struct {
	ID             string `json:"id"`
	SequenceNumber int    `json:"sequence_number"`
	State          State  `json:"state"`
	CurrentPlayers int    `json:"current_players"`
	Capacity       int    `json:"capacity"`
	StakePerCard   int64  `json:"stake_per_card"`
	Pot            int64  `json:"pot"`
	PrizeTotal     int64  `json:"prize_total"`
	DrawnNumbers   []int  `json:"drawn_numbers"`
	WinnerID       string `json:"winner_id,omitempty"`
	Revision       int64  `json:"revision"`
}

// Refund is one stake returned to a card owner when a room is voided.
type Refund struct {
	UserID  string
	CardID  string
	Amount  int64
	Balance int64 // owner's balance after the credit
}

func newRoom(seq int, stakePerCard int64, capacity, prizePercent int, rng Rand, ledger *TokenLedger) *Room {
	return &Room{
		id:           uuid.NewString(),
		seq:          seq,
		state:        StateOpen,
		capacity:     capacity,
		stakePerCard: stakePerCard,
		prizePercent: prizePercent,
		drawn:        make([]int, 0, BallCount),
		pool:         newDrawPool(),
		rng:          rng,
		cards:        make(map[string]*Card),
		ledger:       ledger,
	}
}

func (r *Room) ID() string { return r.id }

// Join debits the stake, issues a fresh card and grows the pot, all under the
// room lock so the counters can never tear apart from the issued cards.
// A player may buy more than one card; each join is an independent card and
// counts toward capacity. Returns the card and the caller's remaining balance.
func (r *Room) Join(userID string) (*Card, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case StateOpen:
	case StateFull:
		return nil, 0, ErrRoomFull
	default:
		return nil, 0, ErrRoomUnavailable
	}
	if len(r.cards) >= r.capacity {
		return nil, 0, ErrRoomFull
	}

	remaining, err := r.ledger.Debit(userID, r.stakePerCard)
	if err != nil {
		return nil, 0, err
	}

	card := newCard(r.rng, userID, r.id)
	r.cards[card.ID] = card
	r.pot += r.stakePerCard
	if len(r.cards) == r.capacity {
		r.state = StateFull
	}
	r.rev++
	return card, remaining, nil
}

// Start freezes the prize from the percentage captured at room creation:
// prizeTotal = floor(pot * prizePercent / 100). Only a caller the platform
// marks as privileged may start, and only a full room.
func (r *Room) Start(callerIsAdmin bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !callerIsAdmin {
		return 0, ErrUnauthorized
	}
	if r.state != StateFull {
		return 0, ErrInvalidState
	}

	r.prizeTotal = r.pot * int64(r.prizePercent) / 100
	r.state = StateInProgress
	r.rev++
	return r.prizeTotal, nil
}

// DrawNext reveals one not-yet-drawn number. Drawing the last of the 75
// numbers finishes the room with no winner; calls after that report
// ErrGameExhausted. Returns the number plus a copy of the full sequence.
func (r *Room) DrawNext() (int, []int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateInProgress {
		if r.state == StateFinished && r.pool.exhausted() {
			return 0, nil, ErrGameExhausted
		}
		return 0, nil, ErrInvalidState
	}

	n, err := r.pool.next(r.rng)
	if err != nil {
		return 0, nil, err
	}
	r.drawn = append(r.drawn, n)
	if r.pool.exhausted() {
		r.state = StateFinished
	}
	r.rev++
	return n, append([]int(nil), r.drawn...), nil
}

// ClaimWin validates the caller's card against the drawn numbers. A losing
// claim changes nothing, so players can probe freely. The first valid claim
// marks the card, records the winner, credits the prize and finishes the
// room; every claim after settlement fails with ErrAlreadySettled no matter
// how good the card is.
func (r *Room) ClaimWin(userID, cardID string) (bool, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.winnerID != "" {
		return false, 0, ErrAlreadySettled
	}
	if r.state != StateInProgress {
		return false, 0, ErrInvalidState
	}

	card, ok := r.cards[cardID]
	if !ok || card.UserID != userID {
		return false, 0, ErrCardNotOwned
	}

	if !HasBingo(card.Numbers, r.drawn) {
		return false, 0, nil
	}

	card.IsWinner = true
	r.winnerID = userID
	r.ledger.Credit(userID, r.prizeTotal)
	r.state = StateFinished
	r.rev++
	return true, r.prizeTotal, nil
}

// Cancel voids a room that has not started, refunding every card's stake to
// its owner. The room finishes with no winner and an empty pot. The returned
// refunds carry the balance after each credit so callers can audit them.
func (r *Room) Cancel(callerIsAdmin bool) ([]Refund, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !callerIsAdmin {
		return nil, ErrUnauthorized
	}
	if r.state != StateOpen && r.state != StateFull {
		return nil, ErrInvalidState
	}

	refunds := make([]Refund, 0, len(r.cards))
	for _, card := range r.cards {
		balance := r.ledger.Credit(card.UserID, r.stakePerCard)
		r.pot -= r.stakePerCard
		refunds = append(refunds, Refund{
			UserID:  card.UserID,
			CardID:  card.ID,
			Amount:  r.stakePerCard,
			Balance: balance,
		})
	}
	r.state = StateFinished
	r.rev++
	return refunds, nil
}

// Card returns the card with the given id, if it exists in this room.
func (r *Room) Card(cardID string) (*Card, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[cardID]
	return card, ok
}

func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		ID:             r.id,
		SequenceNumber: r.seq,
		State:          r.state,
		CurrentPlayers: len(r.cards),
		Capacity:       r.capacity,
		StakePerCard:   r.stakePerCard,
		Pot:            r.pot,
		PrizeTotal:     r.prizeTotal,
		DrawnNumbers:   append([]int(nil), r.drawn...),
		WinnerID:       r.winnerID,
		Revision:       r.rev,
	}
}
