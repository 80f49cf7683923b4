package model

type RecordActivityRequest struct {
	Length float64 `json:"length"`
	Time   int     `json:"time"`
	Trash  int     `json:"trash"`

	// FileURL points to the uploaded snapshot of this plogging run.
	FileURL string `json:"file_url"`

	// IdempotencyKey deduplicates retried recordings. Optional; without it a
	// retried request double-counts.
	IdempotencyKey string `json:"idempotency_key"`
}

type RecordActivityResponse struct {
	PlogCount int     `json:"plog_count"`
	Seed      int     `json:"seed"`
	Score     int     `json:"score"`
	SumLength float64 `json:"sum_length"`
	SumTrash  int     `json:"sum_trash"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Second    int     `json:"second"`
}

type PlantTreeRequest struct {
	TreeName     string `json:"tree_name"`
	PlanterName  string `json:"planter_name"`
	PlanterPhone string `json:"planter_phone"`
	PlanterBirth string `json:"planter_birth"`
}

type PlantTreeResponse struct {
	Seed int `json:"seed"`
}
