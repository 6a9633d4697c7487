package catalog

// Convert maps value from one unit to another within a category.
// Linear units use value * from.Factor / to.Factor; affine units compose
// the from-unit's to-base map with the to-unit's from-base map. Identity
// conversions fall out of either path. Values are not range-checked:
// conversion is an arithmetic mapping, not a physical-validity check.
func Convert(value float64, from, to Unit) (float64, error) {
	if from.Kind != to.Kind {
		return 0, ErrKindMismatch
	}
	// Same-unit conversion returns the input unchanged instead of
	// round-tripping through the base scale, which can lose bits. Unit
	// carries func fields, so compare the identifying fields.
	if from.Symbol == to.Symbol && from.Name == to.Name {
		return value, nil
	}
	if from.Kind == KindAffine {
		return to.FromBase(from.ToBase(value)), nil
	}
	return value * from.Factor / to.Factor, nil
}
