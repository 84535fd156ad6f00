package converter

import (
	"converter/pkg/domain"
	"converter/pkg/serrors"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

const (
	maxNameLength  = 100
	maxNotesLength = 2000
)

var notesPolicy = bluemonday.StrictPolicy() //nolint: gochecknoglobals

// FeatureRequestInput is a feature request as submitted by a client.
type FeatureRequestInput struct {
	Category        string
	FromUnit        string
	ToUnit          string
	AdditionalNotes string
}

// Normalize trims and validates the input. Names must be single-line and
// non-empty. Markup is stripped from the notes.
func (in FeatureRequestInput) Normalize() (domain.FeatureRequest, error) {
	req := domain.FeatureRequest{
		Category: strings.TrimSpace(in.Category),
		FromUnit: strings.TrimSpace(in.FromUnit),
		ToUnit:   strings.TrimSpace(in.ToUnit),
	}

	for _, f := range []struct{ name, value string }{
		{"category", req.Category},
		{"fromUnit", req.FromUnit},
		{"toUnit", req.ToUnit},
	} {
		if err := validateName(f.name, f.value); err != nil {
			return domain.FeatureRequest{}, err
		}
	}

	notes := strings.TrimSpace(html.UnescapeString(notesPolicy.Sanitize(in.AdditionalNotes)))
	if utf8.RuneCountInString(notes) > maxNotesLength {
		return domain.FeatureRequest{}, serrors.With(serrors.ErrBadRequest,
			"additionalNotes must be at most %d characters", maxNotesLength)
	}
	req.AdditionalNotes = notes

	return req, nil
}

func validateName(field, v string) error {
	if v == "" {
		return serrors.With(serrors.ErrBadRequest, "%s is required", field)
	}
	if utf8.RuneCountInString(v) > maxNameLength {
		return serrors.With(serrors.ErrBadRequest, "%s must be at most %d characters", field, maxNameLength)
	}
	if strings.ContainsFunc(v, unicode.IsControl) {
		return serrors.With(serrors.ErrBadRequest, "%s must be a single line", field)
	}

	return nil
}
