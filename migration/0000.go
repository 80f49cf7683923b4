package migration

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

// migrate0000 will create the database with the latest version.
func migrate0000(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.UserPlogInfo{},
		&entity.Animal{},
		&entity.AnimalMotion{},
		&entity.UserAnimal{},
		&entity.Badge{},
		&entity.UserBadge{},
		&entity.ActivityHistory{},
	)
}
