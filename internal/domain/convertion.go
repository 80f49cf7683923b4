package domain

import (
	"github.com/zoosum-lab/backend/internal/entity"
	"github.com/zoosum-lab/backend/internal/model"
	"github.com/zoosum-lab/backend/internal/repository"
	"github.com/zoosum-lab/backend/pkg/dateutil"
)

func convertRankingRow(record repository.RankingRecord) model.RankingRow {
	t := dateutil.Divide(record.SumTime)
	return model.RankingRow{
		Nickname:  record.Nickname,
		Region:    string(record.Region),
		Score:     record.Score,
		PlogCount: record.PlogCount,
		SumLength: record.SumLength,
		SumTrash:  record.SumTrash,
		Hour:      t.Hour,
		Minute:    t.Minute,
		Second:    t.Second,
	}
}

func convertActivitySummary(info *entity.UserPlogInfo) model.RecordActivityResponse {
	t := dateutil.Divide(info.SumTime)
	return model.RecordActivityResponse{
		PlogCount: info.PlogCount,
		Seed:      info.Seed,
		Score:     info.Score,
		SumLength: info.SumLength,
		SumTrash:  info.SumTrash,
		Hour:      t.Hour,
		Minute:    t.Minute,
		Second:    t.Second,
	}
}

// convertBadgeList pairs the full badge catalog with the user's unlocked
// set. The result always contains one entry per catalog badge.
func convertBadgeList(catalog []entity.Badge, owned []entity.UserBadge) []model.BadgeListItem {
	ownedSet := make(map[string]bool, len(owned))
	for _, ub := range owned {
		ownedSet[ub.BadgeID] = true
	}

	items := make([]model.BadgeListItem, 0, len(catalog))
	for _, b := range catalog {
		items = append(items, model.BadgeListItem{
			BadgeID:   b.ID,
			Name:      b.Name,
			FileURL:   b.FileURL,
			Condition: b.Condition,
			IsHave:    ownedSet[b.ID],
		})
	}

	return items
}
