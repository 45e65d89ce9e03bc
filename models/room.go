package models

import (
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID             string         `gorm:"primaryKey;type:uuid" json:"id"`
	SequenceNumber int            `gorm:"uniqueIndex" json:"sequence_number"`
	State          string         `json:"state"` // open | full | in_progress | finished
	CurrentPlayers int            `json:"current_players"`
	Capacity       int            `json:"capacity"`
	StakePerCard   int64          `json:"stake_per_card"`
	Pot            int64          `json:"pot"`
	PrizeTotal     int64          `json:"prize_total"`
	Revision       int64          `json:"revision"`      // engine mutation counter, orders mirror writes
	NumbersJSON    datatypes.JSON `json:"drawn_numbers"` // drawn numbers as JSON array
	WinnerID       *string        `gorm:"type:uuid" json:"winner_id,omitempty"`
	StartedAt      *time.Time     `json:"started_at,omitempty"`
	FinishedAt     *time.Time     `json:"finished_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
