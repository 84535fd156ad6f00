package domain

// Family selects the conversion algorithm used for every unit of a category.
type Family int

const (
	// FamilyLinear converts through a multiplicative factor to the base unit.
	FamilyLinear Family = iota
	// FamilyAffine converts through scale-and-offset formulas (temperature).
	FamilyAffine
	// FamilyReciprocal mixes direct and inverse quantities (fuel economy).
	FamilyReciprocal
)

// String returns the lower-case family name.
func (f Family) String() string {
	switch f {
	case FamilyLinear:
		return "linear"
	case FamilyAffine:
		return "affine"
	case FamilyReciprocal:
		return "reciprocal"
	default:
		return "unknown"
	}
}

// Affine holds the formulas mapping an affine unit to and from the
// category's anchor unit.
type Affine struct {
	ToBase   func(float64) float64
	FromBase func(float64) float64
}

// Unit is one entry of a category.
type Unit struct {
	// Name is the human-readable unit name, e.g. "Kilometer".
	Name string `json:"name"`
	// Symbol identifies the unit within its category, e.g. "km".
	Symbol string `json:"symbol"`
	// Factor converts one of this unit into the category's base unit. It is
	// unused for affine units and names the reciprocal base for inverse units.
	Factor float64 `json:"factor"`
	// Inverse marks inverse-consumption units (L/100km) of a reciprocal category.
	Inverse bool `json:"inverse,omitempty"`
	// Affine is set for units of an affine category.
	Affine *Affine `json:"-"`
}

// Category is a named, ordered set of mutually convertible units.
type Category struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Family Family `json:"-"`
	Units  []Unit `json:"units"`
}

// Unit returns the unit with the given symbol.
func (c Category) Unit(symbol string) (Unit, bool) {
	for _, u := range c.Units {
		if u.Symbol == symbol {
			return u, true
		}
	}

	return Unit{}, false
}

// ConversionResult is the converted value and the target unit's symbol.
type ConversionResult struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}
