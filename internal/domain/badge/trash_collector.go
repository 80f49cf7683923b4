package badge

import (
	"context"
	"errors"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const TrashCollectorBadgeName = "trash_collector"

// trashCollectorBadgeScanner scans badges based on the total pieces of trash
// the user has picked up.
type trashCollectorBadgeScanner struct {
	badgeRepo        repository.BadgeRepository
	userPlogInfoRepo repository.UserPlogInfoRepository
}

func NewTrashCollectorBadgeScanner(
	badgeRepo repository.BadgeRepository,
	userPlogInfoRepo repository.UserPlogInfoRepository,
) *trashCollectorBadgeScanner {
	return &trashCollectorBadgeScanner{
		badgeRepo:        badgeRepo,
		userPlogInfoRepo: userPlogInfoRepo,
	}
}

func (*trashCollectorBadgeScanner) Name() string {
	return TrashCollectorBadgeName
}

func (s *trashCollectorBadgeScanner) Scan(ctx context.Context, userID string) ([]entity.Badge, error) {
	info, err := s.userPlogInfoRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get user plog info: %v", err)
		return nil, errorx.Unknown
	}

	suitableBadges, err := s.badgeRepo.GetByScannerLessThanValue(ctx, s.Name(), info.SumTrash)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get the suitable badge of %s: %v", s.Name(), err)
		return nil, errorx.Unknown
	}

	return suitableBadges, nil
}
