package dateutil

// DivideTime is the clock decomposition of a number of seconds.
type DivideTime struct {
	Hour   int
	Minute int
	Second int
}

// Divide decomposes a non-negative total of seconds into hours, minutes and
// seconds. Hour*3600 + Minute*60 + Second always equals the input.
func Divide(totalSeconds int) DivideTime {
	return DivideTime{
		Hour:   totalSeconds / 3600,
		Minute: totalSeconds % 3600 / 60,
		Second: totalSeconds % 60,
	}
}
