package services

import (
	"encoding/json"
	"time"

	"github.com/carlosmnz/bingo-salas-backend/config"
	"github.com/carlosmnz/bingo-salas-backend/game"
	"github.com/carlosmnz/bingo-salas-backend/models"
	"github.com/carlosmnz/bingo-salas-backend/utils/logger"
	"gorm.io/datatypes"
)

// RoomService fronts the in-memory engine. The engine is authoritative for
// every game decision; the database is a write-behind mirror kept for audit
// and rendering, never consulted mid-operation (except for the is_admin
// attribute, which the platform owns).
type RoomService struct {
	registry *game.Registry
	ledger   *game.TokenLedger
	economic config.Economic
	hub      *Hub
}

var Rooms *RoomService

// InitRoomService builds the engine and seeds ledger accounts from the
// persisted user balances.
func InitRoomService(eco config.Economic) {
	ledger := game.NewTokenLedger()
	Rooms = &RoomService{
		registry: game.NewRegistry(ledger, eco.PrizePercent, nil),
		ledger:   ledger,
		economic: eco,
		hub:      NewHub(),
	}
	Rooms.loadBalances()
	logger.Infof("[Init] Room service ready (stake=%d capacity=%d prize=%d%%)",
		eco.StakePerCard, eco.Capacity, eco.PrizePercent)
}

func (s *RoomService) loadBalances() {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		logger.Errorf("[Init] failed to load users: %v", err)
		return
	}
	for _, u := range users {
		s.ledger.Credit(u.ID, u.Tokens)
	}
	logger.Infof("[Init] Seeded %d ledger accounts", len(users))
}

func (s *RoomService) Ledger() *game.TokenLedger { return s.ledger }
func (s *RoomService) Hub() *Hub                 { return s.hub }

type JoinResult struct {
	Card             *game.Card `json:"card"`
	RemainingBalance int64      `json:"remaining_balance"`
}

// CreateRoom opens a room. Zero stake or capacity fall back to the
// configured economic defaults.
func (s *RoomService) CreateRoom(stakePerCard int64, capacity int) game.Snapshot {
	if stakePerCard <= 0 {
		stakePerCard = s.economic.StakePerCard
	}
	if capacity <= 0 {
		capacity = s.economic.Capacity
	}

	room := s.registry.CreateRoom(stakePerCard, capacity)
	snap := room.Snapshot()

	mirror := models.Room{
		ID:             snap.ID,
		SequenceNumber: snap.SequenceNumber,
		State:          string(snap.State),
		Capacity:       snap.Capacity,
		StakePerCard:   snap.StakePerCard,
		NumbersJSON:    datatypes.JSON([]byte("[]")),
	}
	if err := config.DB.Create(&mirror).Error; err != nil {
		logger.Errorf("[Room %d] failed to persist room: %v", snap.SequenceNumber, err)
	}

	logger.Infof("[Room %d] created (stake=%d capacity=%d)", snap.SequenceNumber, stakePerCard, capacity)
	return snap
}

func (s *RoomService) ListRooms() []game.Snapshot {
	return s.registry.ListRooms()
}

func (s *RoomService) RoomSnapshot(roomID string) (game.Snapshot, error) {
	room, err := s.registry.Room(roomID)
	if err != nil {
		return game.Snapshot{}, err
	}
	return room.Snapshot(), nil
}

// JoinRoom buys the caller a card in the addressed room.
func (s *RoomService) JoinRoom(userID, roomID string) (JoinResult, error) {
	room, err := s.registry.Room(roomID)
	if err != nil {
		return JoinResult{}, err
	}

	card, remaining, err := room.Join(userID)
	if err != nil {
		return JoinResult{}, err
	}

	go s.mirrorJoin(room.Snapshot(), card, remaining)
	return JoinResult{Card: card, RemainingBalance: remaining}, nil
}

// StartGame freezes the prize and opens the draw phase. Privilege comes from
// the platform-owned is_admin flag.
func (s *RoomService) StartGame(userID, roomID string) (int64, error) {
	room, err := s.registry.Room(roomID)
	if err != nil {
		return 0, err
	}

	prize, err := room.Start(s.isAdmin(userID))
	if err != nil {
		return 0, err
	}

	snap := room.Snapshot()
	go func() {
		now := time.Now()
		s.updateRoomMirror(snap, map[string]interface{}{
			"state":       string(snap.State),
			"prize_total": snap.PrizeTotal,
			"started_at":  &now,
		})
		s.hub.Broadcast(snap)
	}()

	logger.Infof("[Room %d] started, prize=%d", snap.SequenceNumber, prize)
	return prize, nil
}

// DrawNumber reveals the next number for the room.
func (s *RoomService) DrawNumber(roomID string) (int, []int, error) {
	room, err := s.registry.Room(roomID)
	if err != nil {
		return 0, nil, err
	}

	n, drawn, err := room.DrawNext()
	if err != nil {
		return 0, nil, err
	}

	snap := room.Snapshot()
	go func() {
		fields := map[string]interface{}{
			"numbers_json": drawnJSON(snap.DrawnNumbers),
			"state":        string(snap.State),
		}
		if snap.State == game.StateFinished {
			now := time.Now()
			fields["finished_at"] = &now
		}
		s.updateRoomMirror(snap, fields)
		s.hub.Broadcast(snap)
	}()

	return n, drawn, nil
}

// ClaimWin checks the caller's card and settles the room on the first valid
// claim.
func (s *RoomService) ClaimWin(userID, roomID, cardID string) (bool, int64, error) {
	room, err := s.registry.Room(roomID)
	if err != nil {
		return false, 0, err
	}

	won, prize, err := room.ClaimWin(userID, cardID)
	if err != nil || !won {
		return won, 0, err
	}

	snap := room.Snapshot()
	go s.mirrorSettlement(snap, userID, cardID, prize)

	logger.Infof("[Room %d] user %s won %d tokens with card %s", snap.SequenceNumber, userID, prize, cardID)
	return true, prize, nil
}

// CancelRoom voids a not-yet-started room and refunds every stake. Each
// refund is mirrored like any other balance movement: token row sync plus a
// refund transaction per card owner.
func (s *RoomService) CancelRoom(userID, roomID string) error {
	room, err := s.registry.Room(roomID)
	if err != nil {
		return err
	}

	refunds, err := room.Cancel(s.isAdmin(userID))
	if err != nil {
		return err
	}

	snap := room.Snapshot()
	go func() {
		now := time.Now()
		s.updateRoomMirror(snap, map[string]interface{}{
			"state":       string(snap.State),
			"pot":         snap.Pot,
			"finished_at": &now,
		})
		for _, ref := range refunds {
			s.syncUserTokens(ref.UserID, ref.Balance)
			s.recordTransaction(ref.UserID, &snap.ID, models.RefundTransaction, ref.Amount, ref.Balance)
		}
		s.hub.Broadcast(snap)
	}()

	logger.Infof("[Room %d] canceled, %d stakes refunded", snap.SequenceNumber, len(refunds))
	return nil
}

// -------------------- write-behind mirror --------------------

func (s *RoomService) isAdmin(userID string) bool {
	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		return false
	}
	return user.IsAdmin
}

func (s *RoomService) mirrorJoin(snap game.Snapshot, card *game.Card, remaining int64) {
	numbers, _ := json.Marshal(card.Numbers)
	mirror := models.Card{
		ID:      card.ID,
		RoomID:  card.RoomID,
		UserID:  card.UserID,
		Numbers: datatypes.JSON(numbers),
	}
	if err := config.DB.Create(&mirror).Error; err != nil {
		logger.Errorf("[Room %d] failed to persist card %s: %v", snap.SequenceNumber, card.ID, err)
	}

	s.updateRoomMirror(snap, map[string]interface{}{
		"state":           string(snap.State),
		"current_players": snap.CurrentPlayers,
		"pot":             snap.Pot,
	})
	s.syncUserTokens(card.UserID, remaining)
	s.recordTransaction(card.UserID, &card.RoomID, models.StakeTransaction, -snap.StakePerCard, remaining)
	s.hub.Broadcast(snap)
}

func (s *RoomService) mirrorSettlement(snap game.Snapshot, userID, cardID string, prize int64) {
	now := time.Now()
	s.updateRoomMirror(snap, map[string]interface{}{
		"state":       string(snap.State),
		"winner_id":   &userID,
		"finished_at": &now,
	})
	if err := config.DB.Model(&models.Card{}).Where("id = ?", cardID).
		Update("is_winner", true).Error; err != nil {
		logger.Errorf("[Room %d] failed to mark winning card %s: %v", snap.SequenceNumber, cardID, err)
	}

	balance := s.ledger.Balance(userID)
	s.syncUserTokens(userID, balance)
	s.recordTransaction(userID, &snap.ID, models.PrizeTransaction, prize, balance)
	s.hub.Broadcast(snap)
}

// updateRoomMirror applies a snapshot to the room row. Mirror writes run in
// unordered goroutines, so the snapshot revision gates the update: a write
// carrying an older revision than the row already has is a no-op instead of
// clobbering newer state.
func (s *RoomService) updateRoomMirror(snap game.Snapshot, fields map[string]interface{}) {
	fields["revision"] = snap.Revision
	if err := config.DB.Model(&models.Room{}).
		Where("id = ? AND revision <= ?", snap.ID, snap.Revision).
		Updates(fields).Error; err != nil {
		logger.Errorf("[Room %d] failed to update room mirror: %v", snap.SequenceNumber, err)
	}
}

func (s *RoomService) syncUserTokens(userID string, tokens int64) {
	if err := config.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("tokens", tokens).Error; err != nil {
		logger.Errorf("failed to sync tokens for user %s: %v", userID, err)
	}
}

func (s *RoomService) recordTransaction(userID string, roomID *string, kind models.TransactionType, amount, balanceAfter int64) {
	tx := models.Transaction{
		UserID:       userID,
		RoomID:       roomID,
		Type:         kind,
		Amount:       amount,
		BalanceAfter: balanceAfter,
	}
	if err := config.DB.Create(&tx).Error; err != nil {
		logger.Errorf("failed to record %s transaction for user %s: %v", kind, userID, err)
	}
}

func drawnJSON(drawn []int) datatypes.JSON {
	b, err := json.Marshal(drawn)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}
