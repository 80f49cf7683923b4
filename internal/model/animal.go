package model

import "time"

const (
	AnimalNewlyAcquired = "newly_acquired"
	AnimalAlreadyOwned  = "already_owned"
)

type RegisterAnimalRequest struct {
	AnimalID       string `json:"animal_id"`
	UserAnimalName string `json:"user_animal_name"`
}

type RegisterAnimalResponse struct {
	Status string `json:"status"`
}

type SelectAnimalsRequest struct {
	AnimalIDs []string `json:"animal_ids"`
}

type SelectAnimalsResponse struct{}

type GetAnimalDrawRequest struct{}

type GetAnimalDrawResponse struct {
	AnimalID   string `json:"animal_id"`
	AnimalName string `json:"animal_name"`
	FileURL    string `json:"file_url"`
}

type UserAnimal struct {
	AnimalID       string `json:"animal_id"`
	UserAnimalName string `json:"user_animal_name"`
	FileURL        string `json:"file_url"`
	IsSelected     bool   `json:"is_selected"`
}

type GetMyAnimalsRequest struct{}

type GetMyAnimalsResponse struct {
	Animals []UserAnimal `json:"animals"`
}

type GetAnimalDetailRequest struct {
	AnimalID string `json:"animal_id"`
}

type GetAnimalDetailResponse struct {
	UserAnimalName string    `json:"user_animal_name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	TimeTogether   int       `json:"time_together"`
	TrashTogether  int       `json:"trash_together"`
	LengthTogether float64   `json:"length_together"`
	FileURL        string    `json:"file_url"`
}
