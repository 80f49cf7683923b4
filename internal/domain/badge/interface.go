package badge

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
)

type BadgeScanner interface {
	// Name returns the name of badge scanner.
	Name() string

	// Scan detects which badges should be given to user. It returns every
	// badge whose threshold the user has reached.
	Scan(ctx context.Context, userID string) ([]entity.Badge, error)
}
