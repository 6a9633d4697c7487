package application

import (
	"errors"
	"math"

	catalog "uniconv/internal/catalog/domain"
	"uniconv/internal/observability/metrics"
)

// ErrNotFinite signals a conversion request whose value is NaN or infinite.
// The engine performs no computation for such inputs.
var ErrNotFinite = errors.New("conversion service: value not finite")

// ConversionService resolves unit symbols against the catalog and runs
// conversions.
type ConversionService struct {
	catalog *catalog.Catalog
}

// NewConversionService constructs a service.
func NewConversionService(c *catalog.Catalog) (*ConversionService, error) {
	if c == nil {
		return nil, errors.New("conversion service: nil catalog")
	}
	return &ConversionService{catalog: c}, nil
}

// Categories returns the catalog categories in presentation order.
func (s *ConversionService) Categories() []catalog.Category {
	return s.catalog.Categories()
}

// Convert converts value between two unit symbols of one category.
func (s *ConversionService) Convert(category, fromSymbol, toSymbol string, value float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		metrics.IncConvertError("not_finite")
		return 0, ErrNotFinite
	}
	from, err := s.catalog.FindUnit(category, fromSymbol)
	if err != nil {
		metrics.IncConvertError("unknown_unit")
		return 0, err
	}
	to, err := s.catalog.FindUnit(category, toSymbol)
	if err != nil {
		metrics.IncConvertError("unknown_unit")
		return 0, err
	}
	result, err := catalog.Convert(value, from, to)
	if err != nil {
		metrics.IncConvertError("kind_mismatch")
		return 0, err
	}
	metrics.IncConversion(category)
	return result, nil
}
