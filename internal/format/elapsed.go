// Package format provides the display helpers for the stopwatch and color
// tools: elapsed-time rendering and RGB/HEX conversion.
package format

import "fmt"

// Elapsed renders a millisecond count as MM:SS.CC, where CC is hundredths
// of a second and every field is zero-padded to two digits. The minutes
// field widens past two digits for values >= 6,000,000 ms; that boundary
// is accepted rather than corrected.
func Elapsed(ms int64) string {
	minutes := ms / 60000
	seconds := ms / 1000 % 60
	hundredths := ms / 10 % 100
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, hundredths)
}
