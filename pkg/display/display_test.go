package display_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"converter/pkg/display"
	"converter/pkg/domain"
)

func TestReconcile(t *testing.T) {
	normal := domain.Selection{Preference: domain.FormatNormal}
	scientific := domain.Selection{Preference: domain.FormatScientific}

	cases := []struct {
		name    string
		actual  domain.NumberFormat
		reason  domain.ScientificReason
		current domain.Selection
		want    domain.Selection
	}{
		{
			name: "magnitude disables normal", actual: domain.FormatScientific, reason: domain.ReasonMagnitude,
			current: normal, want: domain.Selection{Preference: domain.FormatScientific, NormalDisabled: true},
		},
		{
			name: "user choice keeps normal enabled", actual: domain.FormatScientific, reason: domain.ReasonUserChoice,
			current: normal, want: scientific,
		},
		{
			name: "no reason re-enables normal", actual: domain.FormatNormal, reason: domain.ReasonNone,
			current: domain.Selection{Preference: domain.FormatScientific, NormalDisabled: true}, want: scientific,
		},
		{
			name: "no reason keeps normal", actual: domain.FormatNormal, reason: domain.ReasonNone,
			current: normal, want: normal,
		},
		{
			name: "empty preference defaults to normal", actual: domain.FormatNormal, reason: domain.ReasonNone,
			current: domain.Selection{}, want: normal,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, display.Reconcile(tc.actual, tc.reason, tc.current))
		})
	}
}

func TestReset(t *testing.T) {
	require.Equal(t, domain.Selection{Preference: domain.FormatNormal}, display.Reset())
}
