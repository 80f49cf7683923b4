package entity

import (
	"context"

	"github.com/zoosum-lab/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&UserPlogInfo{},
		&Animal{},
		&AnimalMotion{},
		&UserAnimal{},
		&Badge{},
		&UserBadge{},
		&Item{},
		&UserItem{},
		&ActivityHistory{},
	)
}
