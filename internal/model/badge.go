package model

type BadgeListItem struct {
	BadgeID   string `json:"badge_id"`
	Name      string `json:"name"`
	FileURL   string `json:"file_url"`
	Condition string `json:"condition"`
	IsHave    bool   `json:"is_have"`
}

type GetBadgeListRequest struct {
	Nickname string `json:"nickname"`
}

type GetBadgeListResponse struct {
	Badges []BadgeListItem `json:"badges"`
}
