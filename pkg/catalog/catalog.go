// Package catalog is the static table of measurement categories and their
// units. The table is built once at package initialisation and never mutated;
// every accessor hands out copies, so it is safe for concurrent use.
package catalog

import (
	"strings"

	"converter/pkg/domain"
	"converter/pkg/serrors"
)

// categories holds the catalog in display order.
var categories = []domain.Category{ //nolint: gochecknoglobals
	linear("Length",
		unit("Millimeter", "mm", 0.001),
		unit("Centimeter", "cm", 0.01),
		unit("Meter", "m", 1),
		unit("Kilometer", "km", 1000),
		unit("Inch", "in", 0.0254),
		unit("Foot", "ft", 0.3048),
		unit("Yard", "yd", 0.9144),
		unit("Mile", "mi", 1609.344),
		unit("Nautical Mile", "nmi", 1852),
	),
	linear("Mass",
		unit("Milligram", "mg", 1e-6),
		unit("Gram", "g", 0.001),
		unit("Kilogram", "kg", 1),
		unit("Metric Ton", "t", 1000),
		unit("Ounce", "oz", 0.028349523125),
		unit("Pound", "lb", 0.45359237),
		unit("Stone", "st", 6.35029318),
	),
	temperature(),
	linear("Time",
		unit("Millisecond", "ms", 0.001),
		unit("Second", "s", 1),
		unit("Minute", "min", 60),
		unit("Hour", "h", 3600),
		unit("Day", "d", 86400),
		unit("Week", "wk", 604800),
		unit("Year", "yr", 31536000),
	),
	linear("Pressure",
		unit("Pascal", "Pa", 1),
		unit("Kilopascal", "kPa", 1000),
		unit("Bar", "bar", 100000),
		unit("Pound per Square Inch", "psi", 6894.757293168),
		unit("Atmosphere", "atm", 101325),
		unit("Millimeter of Mercury", "mmHg", 133.322387415),
		unit("Torr", "Torr", 101325.0/760),
	),
	linear("Area",
		unit("Square Millimeter", "mm²", 1e-6),
		unit("Square Centimeter", "cm²", 1e-4),
		unit("Square Meter", "m²", 1),
		unit("Hectare", "ha", 10000),
		unit("Square Kilometer", "km²", 1e6),
		unit("Square Inch", "in²", 0.00064516),
		unit("Square Foot", "ft²", 0.09290304),
		unit("Square Yard", "yd²", 0.83612736),
		unit("Acre", "ac", 4046.8564224),
		unit("Square Mile", "mi²", 2589988.110336),
	),
	linear("Volume",
		unit("Milliliter", "mL", 0.001),
		unit("Liter", "L", 1),
		unit("Cubic Meter", "m³", 1000),
		unit("Teaspoon", "tsp", 0.00492892159375),
		unit("Tablespoon", "tbsp", 0.01478676478125),
		unit("Fluid Ounce", "fl oz", 0.0295735295625),
		unit("Cup", "cup", 0.2365882365),
		unit("Pint", "pt", 0.473176473),
		unit("Quart", "qt", 0.946352946),
		unit("Gallon (US)", "gal", 3.785411784),
		unit("Gallon (UK)", "imp gal", 4.54609),
	),
	linear("Energy",
		unit("Joule", "J", 1),
		unit("Kilojoule", "kJ", 1000),
		unit("Calorie", "cal", 4.184),
		unit("Kilocalorie", "kcal", 4184),
		unit("Watt Hour", "Wh", 3600),
		unit("Kilowatt Hour", "kWh", 3.6e6),
		unit("British Thermal Unit", "BTU", 1055.05585262),
		unit("Electronvolt", "eV", 1.602176634e-19),
	),
	linear("Speed",
		unit("Meter per Second", "m/s", 1),
		unit("Kilometer per Hour", "km/h", 1/3.6),
		unit("Mile per Hour", "mph", 0.44704),
		unit("Knot", "kn", 1852.0/3600),
		unit("Foot per Second", "ft/s", 0.3048),
	),
	reciprocal("Fuel Economy",
		unit("Kilometer per Liter", "km/L", 1),
		unit("Mile per Gallon (US)", "mpg", 1.609344/3.785411784),
		unit("Mile per Gallon (UK)", "mpg (UK)", 1.609344/4.54609),
		inverse("Liter per 100 Kilometers", "L/100km", 100),
	),
	linear("Data Storage",
		unit("Bit", "bit", 0.125),
		unit("Byte", "B", 1),
		unit("Kilobyte", "KB", 1e3),
		unit("Megabyte", "MB", 1e6),
		unit("Gigabyte", "GB", 1e9),
		unit("Terabyte", "TB", 1e12),
		unit("Petabyte", "PB", 1e15),
		unit("Kibibyte", "KiB", 1<<10),
		unit("Mebibyte", "MiB", 1<<20),
		unit("Gibibyte", "GiB", 1<<30),
		unit("Tebibyte", "TiB", 1<<40),
	),
	linear("Data Transfer Rate",
		unit("Bit per Second", "bps", 1),
		unit("Kilobit per Second", "Kbps", 1e3),
		unit("Megabit per Second", "Mbps", 1e6),
		unit("Gigabit per Second", "Gbps", 1e9),
		unit("Byte per Second", "B/s", 8),
		unit("Kilobyte per Second", "KB/s", 8e3),
		unit("Megabyte per Second", "MB/s", 8e6),
		unit("Gigabyte per Second", "GB/s", 8e9),
	),
	linear("Bitcoin",
		unit("Bitcoin", "BTC", 1),
		unit("Millibitcoin", "mBTC", 1e-3),
		unit("Microbitcoin", "μBTC", 1e-6),
		unit("Satoshi", "sat", 1e-8),
	),
}

func unit(name, symbol string, factor float64) domain.Unit {
	return domain.Unit{Name: name, Symbol: symbol, Factor: factor}
}

func inverse(name, symbol string, factor float64) domain.Unit {
	return domain.Unit{Name: name, Symbol: symbol, Factor: factor, Inverse: true}
}

func linear(name string, units ...domain.Unit) domain.Category {
	return domain.Category{Name: name, Slug: slug(name), Family: domain.FamilyLinear, Units: units}
}

func reciprocal(name string, units ...domain.Unit) domain.Category {
	return domain.Category{Name: name, Slug: slug(name), Family: domain.FamilyReciprocal, Units: units}
}

// temperature anchors every unit on Celsius.
func temperature() domain.Category {
	identity := func(v float64) float64 { return v }

	return domain.Category{
		Name:   "Temperature",
		Slug:   "temperature",
		Family: domain.FamilyAffine,
		Units: []domain.Unit{
			{
				Name: "Celsius", Symbol: "°C", Factor: 1,
				Affine: &domain.Affine{ToBase: identity, FromBase: identity},
			},
			{
				Name: "Fahrenheit", Symbol: "°F", Factor: 1,
				Affine: &domain.Affine{
					ToBase:   func(f float64) float64 { return (f - 32) * 5 / 9 },
					FromBase: func(c float64) float64 { return c*9/5 + 32 },
				},
			},
			{
				Name: "Kelvin", Symbol: "K", Factor: 1,
				Affine: &domain.Affine{
					ToBase:   func(k float64) float64 { return k - 273.15 },
					FromBase: func(c float64) float64 { return c + 273.15 },
				},
			},
		},
	}
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// Categories returns every category in display order.
func Categories() []domain.Category {
	out := make([]domain.Category, len(categories))
	for i, c := range categories {
		out[i] = clone(c)
	}

	return out
}

// Category returns the category matching name, either by its display name
// (case-insensitive) or by its slug.
func Category(name string) (domain.Category, error) {
	key := strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(c.Name, key) || c.Slug == strings.ToLower(key) {
			return clone(c), nil
		}
	}

	return domain.Category{}, serrors.With(serrors.ErrCategoryNotFound, "category %q not found", name)
}

// Lookup returns the ordered units of a category.
func Lookup(category string) ([]domain.Unit, error) {
	c, err := Category(category)
	if err != nil {
		return nil, err
	}

	return c.Units, nil
}

// FindUnit returns the unit with the given symbol in a category.
func FindUnit(category, symbol string) (domain.Unit, error) {
	c, err := Category(category)
	if err != nil {
		return domain.Unit{}, err
	}
	u, ok := c.Unit(symbol)
	if !ok {
		return domain.Unit{}, serrors.With(serrors.ErrUnitNotFound, "unit %q not found in %s", symbol, c.Name)
	}

	return u, nil
}

func clone(c domain.Category) domain.Category {
	units := make([]domain.Unit, len(c.Units))
	copy(units, c.Units)
	c.Units = units

	return c
}
