package notifier

import (
	"fmt"
	"html"
	"strings"

	"converter/pkg/domain"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.UGCPolicy() //nolint: gochecknoglobals

// FeatureRequestMessage builds the notification sent for a feature request.
func FeatureRequestMessage(from, to string, req domain.FeatureRequest) *Message {
	notes := req.AdditionalNotes
	if notes == "" {
		notes = "(none)"
	}

	var text strings.Builder
	fmt.Fprintf(&text, "A new unit conversion was requested.\n\n")
	fmt.Fprintf(&text, "Category: %s\n", req.Category)
	fmt.Fprintf(&text, "From unit: %s\n", req.FromUnit)
	fmt.Fprintf(&text, "To unit: %s\n", req.ToUnit)
	fmt.Fprintf(&text, "Additional notes: %s\n", notes)
	if !req.CreatedAt.IsZero() {
		fmt.Fprintf(&text, "Requested at: %s\n", req.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	}

	var body strings.Builder
	body.WriteString("<h2>New conversion request</h2><ul>")
	fmt.Fprintf(&body, "<li><strong>Category:</strong> %s</li>", html.EscapeString(req.Category))
	fmt.Fprintf(&body, "<li><strong>From unit:</strong> %s</li>", html.EscapeString(req.FromUnit))
	fmt.Fprintf(&body, "<li><strong>To unit:</strong> %s</li>", html.EscapeString(req.ToUnit))
	body.WriteString("</ul>")
	fmt.Fprintf(&body, "<p><strong>Additional notes:</strong></p><p>%s</p>",
		strings.ReplaceAll(html.EscapeString(notes), "\n", "<br>"))

	return &Message{
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("Conversion request: %s (%s to %s)", req.Category, req.FromUnit, req.ToUnit),
		Text:    text.String(),
		HTML:    htmlPolicy.Sanitize(body.String()),
	}
}
