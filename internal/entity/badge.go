package entity

type Badge struct {
	Base
	Name      string
	FileURL   string
	Condition string

	// ScannerName and Value bind this badge to the scanner which decides its
	// unlock eligibility.
	ScannerName string
	Value       int
}
