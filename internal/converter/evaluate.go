package converter

import (
	"converter/pkg/convert"
	"converter/pkg/display"
	"converter/pkg/domain"
	"converter/pkg/numfmt"
	"converter/pkg/serrors"
	"math"
	"strconv"
	"strings"
)

// RawValue is the source value as the client sent it, either typed text or
// an already numeric value.
type RawValue struct {
	text     string
	number   float64
	isNumber bool
}

// TextValue wraps user-typed text.
func TextValue(s string) RawValue { return RawValue{text: s} }

// NumberValue wraps a numeric value.
func NumberValue(v float64) RawValue { return RawValue{number: v, isNumber: true} }

// Parse returns the numeric value. Surrounding spaces and English digit
// grouping (1,234.5) are accepted in text; anything else that is not a
// finite decimal or exponent literal is ErrInvalidInput.
func (r RawValue) Parse() (float64, error) {
	if r.isNumber {
		if math.IsNaN(r.number) || math.IsInf(r.number, 0) {
			return 0, serrors.With(serrors.ErrInvalidInput, "value is not a finite number")
		}

		return r.number, nil
	}

	s := strings.ReplaceAll(strings.TrimSpace(r.text), ",", "")
	if s == "" {
		return 0, serrors.With(serrors.ErrInvalidInput, "value is empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, serrors.With(serrors.ErrInvalidInput, "%q is not a number", r.text)
	}

	return v, nil
}

// EvaluateRequest is everything one conversion event depends on. It is
// immutable; every keystroke produces a fresh request.
type EvaluateRequest struct {
	Category string
	From     string
	To       string
	Value    RawValue
	// Format is the format the user asked for.
	Format domain.NumberFormat
	// Selection is the display selection currently shown to the user.
	Selection domain.Selection
	// PairChanged is set when the category or either unit changed since the
	// previous event.
	PairChanged bool
}

// Evaluation is the outcome of one conversion event.
type Evaluation struct {
	// Result is nil when the conversion failed.
	Result *domain.ConversionResult
	// Display is the rendered result, "-" on failure.
	Display domain.FormatOutcome
	// Source is the rendered input value, "-" when it could not be parsed.
	Source    string
	Selection domain.Selection
	// Err is the conversion failure, tagged with a serrors kind.
	Err error
}

// Evaluate runs the conversion pipeline for one event: reset the selection
// if the pair changed, parse, convert, format the result and the source, and
// reconcile the selection with the format actually used. It never fails;
// failures are reported in Evaluation.Err next to placeholder renderings.
func Evaluate(f *numfmt.Formatter, req EvaluateRequest) Evaluation {
	current := req.Selection
	if req.PairChanged {
		current = display.Reset()
	}

	requested := req.Format
	if requested == "" {
		requested = domain.FormatNormal
	}

	failed := func(err error, source string) Evaluation {
		outcome := f.Format(math.NaN(), requested)

		return Evaluation{
			Display:   outcome,
			Source:    source,
			Selection: display.Reconcile(outcome.Format, outcome.Reason, current),
			Err:       err,
		}
	}

	value, err := req.Value.Parse()
	if err != nil {
		return failed(err, numfmt.Placeholder)
	}
	source := f.FormatSource(value)

	res, err := convert.Convert(req.Category, req.From, req.To, value)
	if err != nil {
		return failed(err, source)
	}

	outcome := f.Format(res.Value, requested)

	return Evaluation{
		Result:    &res,
		Display:   outcome,
		Source:    source,
		Selection: display.Reconcile(outcome.Format, outcome.Reason, current),
	}
}

// FormatRequest renders a bare value.
type FormatRequest struct {
	Value     RawValue
	Format    domain.NumberFormat
	Selection domain.Selection
}

// FormatEvaluation is the rendered value and the resulting selection.
type FormatEvaluation struct {
	Display   domain.FormatOutcome
	Selection domain.Selection
	Err       error
}

// FormatValue renders a value without converting it.
func FormatValue(f *numfmt.Formatter, req FormatRequest) FormatEvaluation {
	requested := req.Format
	if requested == "" {
		requested = domain.FormatNormal
	}

	value, err := req.Value.Parse()
	if err != nil {
		value = math.NaN()
	}
	outcome := f.Format(value, requested)

	return FormatEvaluation{
		Display:   outcome,
		Selection: display.Reconcile(outcome.Format, outcome.Reason, req.Selection),
		Err:       err,
	}
}
