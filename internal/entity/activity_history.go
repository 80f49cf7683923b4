package entity

import (
	"database/sql"

	"github.com/zoosum-lab/backend/pkg/enum"
)

type ActivityType string

var (
	ActivityPlog = enum.New(ActivityType("plog"))
	ActivityTree = enum.New(ActivityType("tree"))
)

type ActivityHistory struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	ActivityType ActivityType

	// Plogging snapshot fields, set only for plog activities.
	Length float64
	Time   int
	Trash  int

	// Tree campaign fields, set only for tree activities.
	TreeName     string
	PlanterName  string
	PlanterPhone string
	PlanterBirth string

	FileURL string

	// IdempotencyKey deduplicates retried activity recordings. Records
	// without a caller-supplied key can still double-count on retry.
	IdempotencyKey sql.NullString `gorm:"unique"`
}
