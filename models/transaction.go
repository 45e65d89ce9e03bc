package models

import "time"

type TransactionType string

const (
	DepositTransaction  TransactionType = "deposit"
	WithdrawTransaction TransactionType = "withdraw"
	StakeTransaction    TransactionType = "stake"
	RefundTransaction   TransactionType = "refund"
	PrizeTransaction    TransactionType = "prize"
)

type Transaction struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       string          `gorm:"index;type:uuid" json:"user_id"`
	RoomID       *string         `gorm:"type:uuid" json:"room_id,omitempty"`
	Type         TransactionType `json:"type"`
	Amount       int64           `json:"amount"`
	BalanceAfter int64           `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}
