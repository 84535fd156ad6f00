// Package convert converts a value between two units of the same category.
//
// Conversion runs on every keystroke, so every failure is a returned error
// tagged with a serrors kind and never a panic. The only non-finite value
// ever returned in a successful result is +Inf, produced when a reciprocal
// unit divides by an exact zero (e.g. 0 km/L expressed as L/100km). Any other
// non-finite outcome is ErrNonFiniteResult.
package convert

import (
	"math"

	"converter/pkg/catalog"
	"converter/pkg/domain"
	"converter/pkg/serrors"
)

// Convert converts value from the unit with symbol from to the unit with
// symbol to within category.
func Convert(category, from, to string, value float64) (domain.ConversionResult, error) {
	c, err := catalog.Category(category)
	if err != nil {
		return domain.ConversionResult{}, err
	}

	return Units(c, from, to, value)
}

// Units converts value within an already resolved category.
func Units(c domain.Category, from, to string, value float64) (domain.ConversionResult, error) {
	if !isFinite(value) {
		return domain.ConversionResult{}, serrors.With(serrors.ErrInvalidInput, "value %v is not a finite number", value)
	}
	src, ok := c.Unit(from)
	if !ok {
		return domain.ConversionResult{}, serrors.With(serrors.ErrUnitNotFound, "unit %q not found in %s", from, c.Name)
	}
	dst, ok := c.Unit(to)
	if !ok {
		return domain.ConversionResult{}, serrors.With(serrors.ErrUnitNotFound, "unit %q not found in %s", to, c.Name)
	}

	if src.Symbol == dst.Symbol {
		return domain.ConversionResult{Value: value, Unit: dst.Symbol}, nil
	}

	var out float64
	switch c.Family {
	case domain.FamilyAffine:
		out = affine(src, dst, value)
	case domain.FamilyReciprocal:
		v, divByZero := reciprocal(src, dst, value)
		if divByZero {
			return domain.ConversionResult{Value: math.Inf(1), Unit: dst.Symbol}, nil
		}
		out = v
	default:
		out = value * src.Factor / dst.Factor
	}

	if !isFinite(out) {
		return domain.ConversionResult{}, serrors.With(serrors.ErrNonFiniteResult,
			"converting %v %s to %s does not produce a finite number", value, src.Symbol, dst.Symbol)
	}

	return domain.ConversionResult{Value: out, Unit: dst.Symbol}, nil
}

// affine normalises to the anchor unit and expands into the target.
func affine(src, dst domain.Unit, value float64) float64 {
	if src.Affine == nil || dst.Affine == nil {
		return math.NaN()
	}

	return dst.Affine.FromBase(src.Affine.ToBase(value))
}

// reciprocal converts through the category base. It reports divByZero when
// the quantity being inverted on either side is exactly zero.
func reciprocal(src, dst domain.Unit, value float64) (float64, bool) {
	var base float64
	if src.Inverse {
		if value == 0 {
			return 0, true
		}
		base = src.Factor / value
	} else {
		base = value * src.Factor
	}

	if dst.Inverse {
		if base == 0 {
			return 0, true
		}

		return dst.Factor / base, false
	}

	return base / dst.Factor, false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
