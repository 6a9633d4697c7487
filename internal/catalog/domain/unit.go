package catalog

import "errors"

var (
	// ErrCategoryNotFound signals an unknown category name.
	ErrCategoryNotFound = errors.New("catalog: category not found")
	// ErrUnitNotFound signals an unknown unit symbol within a category.
	ErrUnitNotFound = errors.New("catalog: unit not found")
	// ErrKindMismatch signals a conversion between units of different kinds.
	ErrKindMismatch = errors.New("catalog: unit kind mismatch")
)

// Kind tags how a unit relates to its category's base unit.
type Kind int

const (
	// KindLinear converts by a pure multiplicative factor.
	KindLinear Kind = iota
	// KindAffine converts through explicit to-base/from-base functions
	// (scale plus offset, temperature scales).
	KindAffine
)

// Unit represents one measurement unit. Units are defined once at catalog
// construction and never mutated.
type Unit struct {
	Name   string
	Symbol string
	Kind   Kind

	// Factor is the multiplier to the category base unit. The base unit
	// carries factor 1. Ignored for affine units.
	Factor float64

	// ToBase and FromBase map an affine unit to and from the category
	// base scale. Nil for linear units.
	ToBase   func(float64) float64
	FromBase func(float64) float64
}

// Category represents a named group of mutually convertible units.
// The order of Units is presentation order: the first two units are the
// default from/to pair.
type Category struct {
	Name  string
	Units []Unit
}

// Unit resolves a unit by symbol. Symbols are unique within a category but
// not globally.
func (c Category) Unit(symbol string) (Unit, error) {
	for _, u := range c.Units {
		if u.Symbol == symbol {
			return u, nil
		}
	}
	return Unit{}, ErrUnitNotFound
}

// Affine reports whether the category converts through affine maps
// rather than linear factors. All units in a category share one kind.
func (c Category) Affine() bool {
	return len(c.Units) > 0 && c.Units[0].Kind == KindAffine
}

// DefaultPair returns the category's default from/to unit pair: the first
// two units in presentation order. A category with fewer than two units
// yields its sole unit (or a zero Unit) in both positions.
func (c Category) DefaultPair() (Unit, Unit) {
	switch len(c.Units) {
	case 0:
		return Unit{}, Unit{}
	case 1:
		return c.Units[0], c.Units[0]
	}
	return c.Units[0], c.Units[1]
}
