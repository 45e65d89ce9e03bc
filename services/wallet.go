package services

import (
	"github.com/carlosmnz/bingo-salas-backend/models"
)

// Deposit credits tokens to a user's balance and records the movement.
// Returns the new balance.
func (s *RoomService) Deposit(userID string, amount int64) int64 {
	balance := s.ledger.Credit(userID, amount)
	s.syncUserTokens(userID, balance)
	s.recordTransaction(userID, nil, models.DepositTransaction, amount, balance)
	return balance
}

// Withdraw debits tokens from a user's balance. The whole withdrawal is
// rejected if the balance cannot cover it.
func (s *RoomService) Withdraw(userID string, amount int64) (int64, error) {
	balance, err := s.ledger.Debit(userID, amount)
	if err != nil {
		return balance, err
	}
	s.syncUserTokens(userID, balance)
	s.recordTransaction(userID, nil, models.WithdrawTransaction, -amount, balance)
	return balance, nil
}

// Balance reads the live ledger balance for a user.
func (s *RoomService) Balance(userID string) int64 {
	return s.ledger.Balance(userID)
}
