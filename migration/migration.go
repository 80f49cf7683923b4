package migration

import (
	"context"
	"errors"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// migrators run in order. Append a new migrator to the end, never reorder or
// remove an entry.
var migrators = []func(ctx context.Context) error{
	migrate0000,
	migrate0001,
	migrate0002,
	migrate0003,
}

type Migration struct {
	Version int
}

func Migrate(ctx context.Context) error {
	if err := xcontext.DB(ctx).AutoMigrate(&Migration{}); err != nil {
		return err
	}

	var current Migration
	err := xcontext.DB(ctx).Take(&current).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		current = Migration{Version: 0}
		if err := xcontext.DB(ctx).Create(&current).Error; err != nil {
			return err
		}
	}

	for version := current.Version; version < len(migrators); version++ {
		if err := migrators[version](ctx); err != nil {
			return err
		}

		err := xcontext.DB(ctx).
			Model(&Migration{}).
			Where("version=?", version).
			Update("version", version+1).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// AutoMigrate creates the full schema at the latest version. When this
// migrator is called, no need to call other migrators.
func AutoMigrate(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
