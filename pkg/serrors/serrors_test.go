package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"converter/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrInvalidInput,
		serrors.ErrUnitNotFound,
		serrors.ErrCategoryNotFound,
		serrors.ErrNonFiniteResult,
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrUnitNotFound, "unit %q not found", "furlong")
	require.Equal(t, `unit "furlong" not found`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "reading history")
	require.Equal(t, "reading history: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrInvalidInput)
	require.Equal(t, "INVALID_INPUT", e3.Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNonFiniteResult, base, "converting")

	require.ErrorIs(t, e, serrors.ErrNonFiniteResult)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrInvalidInput)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{name: "nil", err: nil, want: nil},
		{name: "plain error", err: errors.New("x"), want: nil},
		{name: "bare sentinel", err: serrors.ErrUnitNotFound, want: serrors.ErrUnitNotFound},
		{name: "semantic error", err: serrors.With(serrors.ErrInvalidInput, "empty"), want: serrors.ErrInvalidInput},
		{
			name: "wrapped semantic error",
			err:  fmt.Errorf("could not convert: %w", serrors.KindOnly(serrors.ErrCategoryNotFound)),
			want: serrors.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.KindOf(tt.err))
		})
	}
}
