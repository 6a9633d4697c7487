package calc

import "math"

// RectangleArea returns length * width. Negative dimensions are the
// caller's error and are not guarded.
func RectangleArea(length, width float64) float64 {
	return length * width
}

// CircleArea returns pi * radius^2.
func CircleArea(radius float64) float64 {
	return math.Pi * radius * radius
}
