package domain

import "fmt"

// NumberFormat is the display mode for a numeric result.
type NumberFormat string

const (
	FormatNormal     NumberFormat = "normal"
	FormatScientific NumberFormat = "scientific"
)

// ParseNumberFormat parses a format name. The empty string means normal.
func ParseNumberFormat(s string) (NumberFormat, error) {
	switch NumberFormat(s) {
	case "", FormatNormal:
		return FormatNormal, nil
	case FormatScientific:
		return FormatScientific, nil
	default:
		return "", fmt.Errorf("unknown number format %q", s)
	}
}

// ScientificReason explains why scientific notation was used. The zero value
// means it was not used.
type ScientificReason string

const (
	ReasonNone       ScientificReason = ""
	ReasonMagnitude  ScientificReason = "magnitude"
	ReasonUserChoice ScientificReason = "user_choice"
)

// FormatOutcome is a rendered value together with the format actually used.
type FormatOutcome struct {
	Formatted string
	Format    NumberFormat
	Reason    ScientificReason
}

// Selection is the user-visible format preference and whether the normal
// option is currently disabled because magnitude forced scientific notation.
type Selection struct {
	Preference     NumberFormat
	NormalDisabled bool
}
