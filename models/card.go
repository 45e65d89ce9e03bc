package models

import (
	"time"

	"gorm.io/datatypes"
)

type Card struct {
	ID        string         `gorm:"primaryKey;type:uuid" json:"id"`
	RoomID    string         `gorm:"index;type:uuid" json:"room_id"`
	UserID    string         `gorm:"index;type:uuid" json:"user_id"`
	Numbers   datatypes.JSON `json:"numbers"` // 25 cells, column-major, 0 = free space
	IsWinner  bool           `json:"is_winner"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
