package entity

import "time"

// UserAnimal is the ownership row of an animal. At most one row exists per
// (user, animal); re-acquiring an owned animal only renames it.
type UserAnimal struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	AnimalID string `gorm:"primaryKey"`
	Animal   Animal `gorm:"foreignKey:AnimalID"`

	UserAnimalName string
	IsSelected     bool

	TimeTogether   int
	TrashTogether  int
	LengthTogether float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
