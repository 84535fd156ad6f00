package notifier

import (
	"net/http"

	"converter/pkg/serrors"
)

// classify tags provider failures with a semantic kind based on the HTTP status.
func classify(err error, status int) error {
	switch {
	case status == http.StatusTooManyRequests:
		return serrors.Wrap(serrors.ErrRateLimited, err, "email provider rate limited")
	case status >= http.StatusInternalServerError:
		return serrors.Wrap(serrors.ErrUnavailable, err, "email provider unavailable")
	default:
		return err
	}
}
