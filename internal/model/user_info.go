package model

type GetPlogRecordRequest struct {
	Nickname string `json:"nickname"`
}

type GetPlogRecordResponse struct {
	Nickname  string  `json:"nickname"`
	PlogCount int     `json:"plog_count"`
	SumLength float64 `json:"sum_length"`
	SumTrash  int     `json:"sum_trash"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Second    int     `json:"second"`
}

type GetMainInfoRequest struct{}

type GetMainInfoResponse struct {
	MissionLength float64 `json:"mission_length"`
	MissionTrash  int     `json:"mission_trash"`
	Hour          int     `json:"hour"`
	Minute        int     `json:"minute"`
	Second        int     `json:"second"`
	Seed          int     `json:"seed"`
	TreeAllCount  int64   `json:"tree_all_count"`
	TreeCount     int64   `json:"tree_count"`
}

type SelectedAnimal struct {
	AnimalID string `json:"animal_id"`
	FileURL  string `json:"file_url"`
}

type GetMainRequest struct{}

type GetMainResponse struct {
	IslandURL string           `json:"island_url"`
	TreeURL   string           `json:"tree_url"`
	Animals   []SelectedAnimal `json:"animals"`
}
