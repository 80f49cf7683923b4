package entity

type Animal struct {
	Base
	Name        string
	Description string
}

// AnimalMotion holds a media reference for an animal. The file url is an
// opaque string owned by the storage layer.
type AnimalMotion struct {
	Base
	AnimalID string
	Animal   Animal `gorm:"foreignKey:AnimalID"`
	FileURL  string
}
