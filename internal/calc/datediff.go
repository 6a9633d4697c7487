package calc

import (
	"math"
	"time"
)

// DateDifferenceInDays returns the number of whole days between two
// calendar dates, rounded up, always non-negative and symmetric in its
// arguments. Time-of-day components are discarded before differencing.
func DateDifferenceInDays(a, b time.Time) int {
	dayA := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	dayB := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	hours := math.Abs(dayB.Sub(dayA).Hours())
	return int(math.Ceil(hours / 24))
}
