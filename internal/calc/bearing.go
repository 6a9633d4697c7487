// Package calc provides the standalone numeric calculators: great-circle
// bearing, shape areas, calendar-date difference, and decimal-to-fraction
// reduction. All functions are pure and safe for concurrent use.
package calc

import "math"

// Bearing computes the initial great-circle bearing from the observer to
// the target, both given as latitude/longitude in degrees. The result is
// degrees clockwise from north, normalized to [0, 360).
func Bearing(observerLat, observerLon, targetLat, targetLon float64) float64 {
	lat1 := radians(observerLat)
	lat2 := radians(targetLat)
	deltaLon := radians(targetLon - observerLon)

	y := math.Sin(deltaLon)
	x := math.Cos(lat1)*math.Tan(lat2) - math.Sin(lat1)*math.Cos(deltaLon)

	bearing := degrees(math.Atan2(y, x))
	return math.Mod(bearing+360, 360)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
