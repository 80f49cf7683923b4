package migration

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

// migrate0002 adds the plogging snapshot columns to activity histories so
// every plog row carries its recorded quantities.
func migrate0002(ctx context.Context) error {
	migrator := xcontext.DB(ctx).Migrator()
	for _, column := range []string{"length", "time", "trash"} {
		if migrator.HasColumn(&entity.ActivityHistory{}, column) {
			continue
		}

		if err := migrator.AddColumn(&entity.ActivityHistory{}, column); err != nil {
			return err
		}
	}

	return nil
}
