package convert_test

import (
	"math"
	"testing"

	"converter/pkg/catalog"
	"converter/pkg/convert"
	"converter/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestConvert_Temperature(t *testing.T) {
	cases := []struct {
		from, to string
		in, want float64
	}{
		{"°C", "°F", 0, 32},
		{"°C", "°F", 100, 212},
		{"°C", "K", 0, 273.15},
		{"°F", "°C", -40, -40},
		{"K", "°F", 0, -459.67},
	}

	for _, tc := range cases {
		res, err := convert.Convert("Temperature", tc.from, tc.to, tc.in)
		require.NoError(t, err)
		require.InDelta(t, tc.want, res.Value, 1e-9, "%v %s -> %s", tc.in, tc.from, tc.to)
		require.Equal(t, tc.to, res.Unit)
	}
}

func TestConvert_Linear(t *testing.T) {
	res, err := convert.Convert("Length", "m", "ft", 1)
	require.NoError(t, err)
	require.InDelta(t, 3.280839895, res.Value, 1e-9)
	require.Equal(t, "ft", res.Unit)

	res, err = convert.Convert("data-storage", "KiB", "B", 2)
	require.NoError(t, err)
	require.InDelta(t, 2048, res.Value, 0)

	res, err = convert.Convert("Bitcoin", "BTC", "sat", 1)
	require.NoError(t, err)
	require.InDelta(t, 1e8, res.Value, 1e-6)
}

func TestConvert_FuelEconomy(t *testing.T) {
	res, err := convert.Convert("Fuel Economy", "km/L", "L/100km", 20)
	require.NoError(t, err)
	require.InDelta(t, 5, res.Value, 1e-12)

	res, err = convert.Convert("Fuel Economy", "L/100km", "km/L", 5)
	require.NoError(t, err)
	require.InDelta(t, 20, res.Value, 1e-12)

	res, err = convert.Convert("Fuel Economy", "mpg", "L/100km", 30)
	require.NoError(t, err)
	require.InDelta(t, 7.840486, res.Value, 1e-6)
}

func TestConvert_ReciprocalZero(t *testing.T) {
	res, err := convert.Convert("Fuel Economy", "L/100km", "km/L", 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(res.Value, 1))
	require.Equal(t, "km/L", res.Unit)

	res, err = convert.Convert("Fuel Economy", "km/L", "L/100km", 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(res.Value, 1))

	res, err = convert.Convert("Fuel Economy", "L/100km", "L/100km", 0)
	require.NoError(t, err)
	require.Zero(t, res.Value)
}

func TestConvert_Identity(t *testing.T) {
	for _, c := range catalog.Categories() {
		for _, u := range c.Units {
			res, err := convert.Convert(c.Name, u.Symbol, u.Symbol, 12.5)
			require.NoError(t, err)
			require.InDelta(t, 12.5, res.Value, 0, "%s %s", c.Name, u.Symbol)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	values := []float64{1, 42.5, 0.003, 1234567}

	for _, c := range catalog.Categories() {
		t.Run(c.Name, func(t *testing.T) {
			for _, a := range c.Units {
				for _, b := range c.Units {
					for _, v := range values {
						there, err := convert.Convert(c.Name, a.Symbol, b.Symbol, v)
						require.NoError(t, err)
						back, err := convert.Convert(c.Name, b.Symbol, a.Symbol, there.Value)
						require.NoError(t, err)
						require.InEpsilon(t, v, back.Value, 1e-9, "%v %s -> %s -> %s", v, a.Symbol, b.Symbol, a.Symbol)
					}
				}
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	_, err := convert.Convert("Length", "m", "ft", math.NaN())
	require.ErrorIs(t, err, serrors.ErrInvalidInput)

	_, err = convert.Convert("Length", "m", "ft", math.Inf(-1))
	require.ErrorIs(t, err, serrors.ErrInvalidInput)

	_, err = convert.Convert("Length", "m", "unknown-symbol", 1)
	require.ErrorIs(t, err, serrors.ErrUnitNotFound)

	_, err = convert.Convert("Length", "°C", "m", 1)
	require.ErrorIs(t, err, serrors.ErrUnitNotFound)

	_, err = convert.Convert("Luminosity", "cd", "lm", 1)
	require.ErrorIs(t, err, serrors.ErrCategoryNotFound)

	_, err = convert.Convert("Length", "nmi", "mm", math.MaxFloat64)
	require.ErrorIs(t, err, serrors.ErrNonFiniteResult)
}
