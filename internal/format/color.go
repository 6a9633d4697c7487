package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrChannelRange signals an RGB channel outside [0, 255].
	ErrChannelRange = errors.New("format: rgb channel out of range")
	// ErrInvalidHex signals a malformed hex color string.
	ErrInvalidHex = errors.New("format: invalid hex color")
)

// RGBToHex renders three channel values as a lowercase #rrggbb string.
func RGBToHex(r, g, b int) (string, error) {
	for _, ch := range []int{r, g, b} {
		if ch < 0 || ch > 255 {
			return "", ErrChannelRange
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), nil
}

// HexToRGB parses a #-prefixed 6-hex-digit color into its channels.
// Malformed input returns an error and no channel values.
func HexToRGB(s string) (r, g, b int, err error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, ErrInvalidHex
	}
	v, parseErr := strconv.ParseUint(s, 16, 32)
	if parseErr != nil {
		return 0, 0, 0, ErrInvalidHex
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), nil
}
