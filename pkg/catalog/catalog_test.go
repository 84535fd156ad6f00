package catalog_test

import (
	"testing"

	"converter/pkg/catalog"
	"converter/pkg/domain"
	"converter/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestCategories_Order(t *testing.T) {
	names := make([]string, 0)
	for _, c := range catalog.Categories() {
		names = append(names, c.Name)
	}

	require.Equal(t, []string{
		"Length", "Mass", "Temperature", "Time", "Pressure", "Area", "Volume", "Energy",
		"Speed", "Fuel Economy", "Data Storage", "Data Transfer Rate", "Bitcoin",
	}, names)
}

func TestCategories_Invariants(t *testing.T) {
	for _, c := range catalog.Categories() {
		t.Run(c.Name, func(t *testing.T) {
			require.NotEmpty(t, c.Units)
			require.NotEmpty(t, c.Slug)

			seen := map[string]bool{}
			bases := 0
			for _, u := range c.Units {
				require.False(t, seen[u.Symbol], "duplicate symbol %q", u.Symbol)
				seen[u.Symbol] = true
				require.Positive(t, u.Factor, "unit %q", u.Symbol)
				if u.Factor == 1 && !u.Inverse {
					bases++
				}
				if c.Family == domain.FamilyAffine {
					require.NotNil(t, u.Affine, "affine unit %q has no formulas", u.Symbol)
				} else {
					require.Nil(t, u.Affine)
				}
				if u.Inverse {
					require.Equal(t, domain.FamilyReciprocal, c.Family)
				}
			}
			if c.Family != domain.FamilyAffine {
				require.Equal(t, 1, bases, "expected exactly one base unit")
			}
		})
	}
}

func TestCategory_Matching(t *testing.T) {
	for _, name := range []string{"Fuel Economy", "fuel economy", "fuel-economy", "  FUEL ECONOMY "} {
		c, err := catalog.Category(name)
		require.NoError(t, err, name)
		require.Equal(t, "Fuel Economy", c.Name)
		require.Equal(t, domain.FamilyReciprocal, c.Family)
	}

	_, err := catalog.Category("Luminosity")
	require.ErrorIs(t, err, serrors.ErrCategoryNotFound)
}

func TestLookup(t *testing.T) {
	units, err := catalog.Lookup("Temperature")
	require.NoError(t, err)
	require.Len(t, units, 3)
	require.Equal(t, "°C", units[0].Symbol)

	_, err = catalog.Lookup("nope")
	require.ErrorIs(t, err, serrors.ErrCategoryNotFound)
}

func TestFindUnit(t *testing.T) {
	u, err := catalog.FindUnit("Length", "ft")
	require.NoError(t, err)
	require.Equal(t, "Foot", u.Name)
	require.InDelta(t, 0.3048, u.Factor, 0)

	_, err = catalog.FindUnit("Length", "FT")
	require.ErrorIs(t, err, serrors.ErrUnitNotFound)

	_, err = catalog.FindUnit("Length", "unknown-symbol")
	require.ErrorIs(t, err, serrors.ErrUnitNotFound)

	_, err = catalog.FindUnit("Nope", "m")
	require.ErrorIs(t, err, serrors.ErrCategoryNotFound)

	u, err = catalog.FindUnit("Fuel Economy", "L/100km")
	require.NoError(t, err)
	require.True(t, u.Inverse)
}

func TestCategories_ReturnsCopies(t *testing.T) {
	first := catalog.Categories()
	first[0].Units[0].Factor = 42
	first[0].Name = "Mutated"

	again := catalog.Categories()
	require.Equal(t, "Length", again[0].Name)
	require.InDelta(t, 0.001, again[0].Units[0].Factor, 0)
}
