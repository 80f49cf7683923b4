package numberutil

// ToKilometer converts a length in meters to kilometers.
func ToKilometer(meters float64) float64 {
	return meters / 1000
}
