package migration

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

// migrate0003 creates the main screen decoration tables.
func migrate0003(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.Item{},
		&entity.UserItem{},
	)
}
