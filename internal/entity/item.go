package entity

import (
	"time"

	"github.com/zoosum-lab/backend/pkg/enum"
)

type ItemType string

var (
	ItemIsland = enum.New(ItemType("island"))
	ItemTree   = enum.New(ItemType("tree"))
)

// Item is a decoration of the main screen, an island theme or a tree skin.
type Item struct {
	Base
	ItemType ItemType
	Name     string
	FileURL  string
}

// UserItem is the ownership row of an item. The main screen shows exactly
// one selected item per item type.
type UserItem struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	ItemID string `gorm:"primaryKey"`
	Item   Item   `gorm:"foreignKey:ItemID"`

	IsSelected bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
