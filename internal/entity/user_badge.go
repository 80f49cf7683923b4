package entity

import "time"

// UserBadge marks a badge as unlocked. The existence of the row is the unlock
// signal, which makes unlocking idempotent by an insert-if-absent.
type UserBadge struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	BadgeID string `gorm:"primaryKey"`
	Badge   Badge  `gorm:"foreignKey:BadgeID"`

	CreatedAt time.Time
}
