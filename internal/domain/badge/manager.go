package badge

import (
	"context"
	"time"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

type Manager struct {
	// This field is only written at initialization. After that, it is readonly.
	// So no need to use sync map here.
	badgeScanners map[string]BadgeScanner

	userBadgeRepo repository.UserBadgeRepository
}

func NewManager(
	userBadgeRepo repository.UserBadgeRepository,
	badgeScanners ...BadgeScanner,
) *Manager {
	manager := &Manager{
		userBadgeRepo: userBadgeRepo,
		badgeScanners: make(map[string]BadgeScanner),
	}

	for _, b := range badgeScanners {
		manager.badgeScanners[b.Name()] = b
	}

	return manager
}

func (m *Manager) WithBadges(badgeNames ...string) *contextManager {
	return &contextManager{
		manager:    m,
		badgeNames: badgeNames,
	}
}

type contextManager struct {
	manager    *Manager
	badgeNames []string
}

// ScanAndGive runs every requested scanner for the user and records each
// badge the user qualifies for. Giving an already-owned badge is a no-op.
func (c *contextManager) ScanAndGive(ctx context.Context, userID string) error {
	for _, badgeName := range c.badgeNames {
		badgeScanner, ok := c.manager.badgeScanners[badgeName]
		if !ok {
			xcontext.Logger(ctx).Errorf("Not found badge name %s", badgeName)
			return errorx.Unknown
		}

		suitableBadges, err := badgeScanner.Scan(ctx, userID)
		if err != nil {
			return err
		}

		for _, b := range suitableBadges {
			newUserBadge := &entity.UserBadge{
				UserID:    userID,
				BadgeID:   b.ID,
				CreatedAt: time.Now(),
			}

			if err := c.manager.userBadgeRepo.Create(ctx, newUserBadge); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot give badge to user: %v", err)
				return errorx.Unknown
			}
		}
	}

	return nil
}
