package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNotANumber signals a decimal string that does not parse as a number.
	ErrNotANumber = errors.New("calc: not a number")
	// ErrFractionOverflow signals a numeric value too large to represent
	// as an int64 numerator/denominator pair.
	ErrFractionOverflow = errors.New("calc: fraction out of range")
)

// maxFractionDigits bounds the power-of-ten denominator. float64 carries
// no more than ~15 significant decimal digits, and 10^15 is far below the
// int64 limit, so extra digits only risk overflow without adding precision.
const maxFractionDigits = 15

// Fraction is a reduced numerator/denominator pair. The denominator is
// always >= 1; the sign lives on the numerator.
type Fraction struct {
	Numerator   int64
	Denominator int64
}

// DecimalToFraction converts a decimal string such as "0.75" into a
// reduced fraction. The denominator is 10^d for d digits after the
// decimal point, then both terms are reduced by their GCD. Inputs without
// a decimal point yield denominator 1.
func DecimalToFraction(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return Fraction{}, ErrNotANumber
	}

	digits := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		digits = len(s) - i - 1
	}
	if digits > maxFractionDigits {
		digits = maxFractionDigits
	}

	denominator := int64(1)
	for i := 0; i < digits; i++ {
		denominator *= 10
	}
	scaled := math.Round(value * float64(denominator))
	if scaled >= math.MaxInt64 || scaled <= math.MinInt64 {
		return Fraction{}, ErrFractionOverflow
	}
	numerator := int64(scaled)

	g := gcd(abs(numerator), denominator)
	if g > 1 {
		numerator /= g
		denominator /= g
	}
	return Fraction{Numerator: numerator, Denominator: denominator}, nil
}

// gcd is the Euclidean greatest common divisor; gcd(a, 0) = a.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
