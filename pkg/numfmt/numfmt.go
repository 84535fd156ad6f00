// Package numfmt renders conversion values for display.
package numfmt

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"converter/pkg/domain"
)

const (
	// UpperThreshold is the magnitude above which scientific notation is forced.
	UpperThreshold = 1e9
	// LowerThreshold is the magnitude below which a non-zero value is forced
	// into scientific notation.
	LowerThreshold = 1e-7

	// Placeholder is rendered for values that cannot be displayed.
	Placeholder = "-"

	fractionDigits = 7
)

// Formatter renders values with the digit grouping of its locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a formatter for the given locale.
func New(tag language.Tag) *Formatter {
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// Parse returns a formatter for a BCP 47 locale string such as "en" or "de-CH".
func Parse(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}

	return New(tag), nil
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

var english = New(language.English) //nolint: gochecknoglobals

// Format renders value with the English formatter.
func Format(value float64, requested domain.NumberFormat) domain.FormatOutcome {
	return english.Format(value, requested)
}

// FormatSource renders an input value with the English formatter.
func FormatSource(value float64) string {
	return english.FormatSource(value)
}

// Format renders value in the requested format. Values too large or too
// small for normal notation switch to scientific notation regardless of the
// request, and the outcome reports magnitude as the reason.
func (f *Formatter) Format(value float64, requested domain.NumberFormat) domain.FormatOutcome {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return domain.FormatOutcome{Formatted: Placeholder, Format: requested, Reason: domain.ReasonNone}
	}
	if value == 0 {
		value = 0 // drops the sign of negative zero
	}

	if Forced(value) {
		return domain.FormatOutcome{
			Formatted: Scientific(value),
			Format:    domain.FormatScientific,
			Reason:    domain.ReasonMagnitude,
		}
	}
	if requested == domain.FormatScientific {
		return domain.FormatOutcome{
			Formatted: Scientific(value),
			Format:    domain.FormatScientific,
			Reason:    domain.ReasonUserChoice,
		}
	}

	return domain.FormatOutcome{Formatted: f.normal(value), Format: domain.FormatNormal, Reason: domain.ReasonNone}
}

// FormatSource renders the value the user typed. It never honours a
// scientific request, only the magnitude thresholds.
func (f *Formatter) FormatSource(value float64) string {
	return f.Format(value, domain.FormatNormal).Formatted
}

// Forced reports whether value must be shown in scientific notation.
func Forced(value float64) bool {
	abs := math.Abs(value)

	return abs > UpperThreshold || (abs < LowerThreshold && value != 0)
}

// Scientific renders value as a mantissa with up to seven fractional digits
// and an unpadded signed exponent, e.g. 1.23E+6 or 5E+3.
func Scientific(value float64) string {
	s := strconv.FormatFloat(value, 'E', fractionDigits, 64)
	mantissa, exponent, ok := strings.Cut(s, "E")
	if !ok {
		return s
	}

	if strings.Contains(mantissa, ".") {
		mantissa = strings.TrimRight(mantissa, "0")
		mantissa = strings.TrimSuffix(mantissa, ".")
	}

	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")
	if digits == "" {
		digits = "0"
	}

	return mantissa + "E" + sign + digits
}

func (f *Formatter) normal(value float64) string {
	rounded := round(value)
	if rounded == 0 {
		rounded = 0
	}

	if rounded == math.Trunc(rounded) {
		return f.printer.Sprintf("%v", number.Decimal(rounded, number.MaxFractionDigits(0)))
	}

	return f.printer.Sprintf("%v", number.Decimal(rounded, number.MaxFractionDigits(fractionDigits)))
}

// round rounds to seven decimal places. Values whose scaled form would lose
// integer precision are already coarser than the seventh place.
func round(value float64) float64 {
	const scale = 1e7
	scaled := value * scale
	if math.Abs(scaled) >= 1<<53 {
		return value
	}

	return math.Round(scaled) / scale
}
