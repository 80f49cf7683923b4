package entity

import (
	"time"

	"gorm.io/gorm"
)

// UserPlogInfo is the per-user aggregate plogging record. It is created
// alongside user registration and mutated only by the activity domain. Rows
// are soft-deleted, never removed.
type UserPlogInfo struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	PlogCount int
	Seed      int
	Score     int

	SumLength float64
	SumTime   int
	SumTrash  int

	// Remaining targets until the next milestone. Decremented by activity
	// recording, clamped at zero.
	MissionLength float64
	MissionTime   int
	MissionTrash  int

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
