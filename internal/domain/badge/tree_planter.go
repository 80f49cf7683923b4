package badge

import (
	"context"

	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/errorx"
	"github.com/zoosum-lab/backend/pkg/xcontext"
)

const TreePlanterBadgeName = "tree_planter"

// treePlanterBadgeScanner scans badges based on the number of trees the user
// has planted.
type treePlanterBadgeScanner struct {
	badgeRepo    repository.BadgeRepository
	activityRepo repository.ActivityRepository
}

func NewTreePlanterBadgeScanner(
	badgeRepo repository.BadgeRepository,
	activityRepo repository.ActivityRepository,
) *treePlanterBadgeScanner {
	return &treePlanterBadgeScanner{
		badgeRepo:    badgeRepo,
		activityRepo: activityRepo,
	}
}

func (*treePlanterBadgeScanner) Name() string {
	return TreePlanterBadgeName
}

func (s *treePlanterBadgeScanner) Scan(ctx context.Context, userID string) ([]entity.Badge, error) {
	treeCount, err := s.activityRepo.CountByUserAndType(ctx, userID, entity.ActivityTree)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count planted trees: %v", err)
		return nil, errorx.Unknown
	}

	suitableBadges, err := s.badgeRepo.GetByScannerLessThanValue(ctx, s.Name(), int(treeCount))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get the suitable badge of %s: %v", s.Name(), err)
		return nil, errorx.Unknown
	}

	return suitableBadges, nil
}
