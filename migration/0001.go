package migration

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

// migrate0001 backfills the idempotency key column for activity histories
// created before deduplication existed.
func migrate0001(ctx context.Context) error {
	migrator := xcontext.DB(ctx).Migrator()
	if migrator.HasColumn(&entity.ActivityHistory{}, "idempotency_key") {
		return nil
	}

	return migrator.AddColumn(&entity.ActivityHistory{}, "idempotency_key")
}
