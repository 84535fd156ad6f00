// Package display keeps the "normal / scientific" selection consistent with
// the format the formatter actually used.
package display

import "converter/pkg/domain"

// Reconcile returns the selection to show after a value was rendered with
// actual for the given reason.
//
// When magnitude forced scientific notation the normal option is disabled,
// since picking it would have no effect. A user choice is reflected as is.
// Without a reason the user's current preference is kept.
func Reconcile(actual domain.NumberFormat, reason domain.ScientificReason, current domain.Selection) domain.Selection {
	switch reason {
	case domain.ReasonMagnitude:
		if actual == domain.FormatScientific {
			return domain.Selection{Preference: domain.FormatScientific, NormalDisabled: true}
		}

		return domain.Selection{Preference: current.Preference}
	case domain.ReasonUserChoice:
		return domain.Selection{Preference: actual}
	default:
		return domain.Selection{Preference: preference(current.Preference)}
	}
}

// Reset returns the selection used when the category or unit pair changes.
func Reset() domain.Selection {
	return domain.Selection{Preference: domain.FormatNormal}
}

func preference(f domain.NumberFormat) domain.NumberFormat {
	if f == "" {
		return domain.FormatNormal
	}

	return f
}
