package model

type GetRankingRequest struct {
	// Region optionally restricts the ranking to a single region code.
	Region string `json:"region"`

	// SortBy is a comma separated list of field:direction tokens, applied in
	// the order given, for example "score:desc,sum_trash:asc".
	SortBy string `json:"sort_by"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type RankingRow struct {
	Nickname  string  `json:"nickname"`
	Region    string  `json:"region"`
	Score     int     `json:"score"`
	PlogCount int     `json:"plog_count"`
	SumLength float64 `json:"sum_length"`
	SumTrash  int     `json:"sum_trash"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Second    int     `json:"second"`
}

type GetRankingResponse struct {
	Ranking []RankingRow `json:"ranking"`
	Total   int64        `json:"total"`
}

type GetMyRankRequest struct{}

type GetMyRankResponse struct {
	Rank uint64 `json:"rank"`
}
