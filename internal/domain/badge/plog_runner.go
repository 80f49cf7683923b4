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

const PlogRunnerBadgeName = "plog_runner"

// plogRunnerBadgeScanner scans badges based on the number of ploggings the
// user has completed.
type plogRunnerBadgeScanner struct {
	badgeRepo        repository.BadgeRepository
	userPlogInfoRepo repository.UserPlogInfoRepository
}

func NewPlogRunnerBadgeScanner(
	badgeRepo repository.BadgeRepository,
	userPlogInfoRepo repository.UserPlogInfoRepository,
) *plogRunnerBadgeScanner {
	return &plogRunnerBadgeScanner{
		badgeRepo:        badgeRepo,
		userPlogInfoRepo: userPlogInfoRepo,
	}
}

func (*plogRunnerBadgeScanner) Name() string {
	return PlogRunnerBadgeName
}

func (s *plogRunnerBadgeScanner) Scan(ctx context.Context, userID string) ([]entity.Badge, error) {
	info, err := s.userPlogInfoRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get user plog info: %v", err)
		return nil, errorx.Unknown
	}

	suitableBadges, err := s.badgeRepo.GetByScannerLessThanValue(ctx, s.Name(), info.PlogCount)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get the suitable badge of %s: %v", s.Name(), err)
		return nil, errorx.Unknown
	}

	return suitableBadges, nil
}
