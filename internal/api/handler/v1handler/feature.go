package v1handler

import (
	"converter/internal/converter"
	"net/http"

	"github.com/go-faster/jx"
)

// requestFeature stores the request and answers 202; the email is sent by a
// background job.
func (h *Handler) requestFeature(w http.ResponseWriter, r *http.Request) {
	var in converter.FeatureRequestInput
	err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "category":
			in.Category, err = decodeString(d, key)
		case "fromUnit":
			in.FromUnit, err = decodeString(d, key)
		case "toUnit":
			in.ToUnit, err = decodeString(d, key)
		case "additionalNotes":
			if d.Next() == jx.Null {
				return d.Null()
			}
			in.AdditionalNotes, err = decodeString(d, key)
		default:
			err = d.Skip()
		}

		return err
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	req, err := h.deps.Converter.RequestFeature(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, func(e *jx.Encoder) {
		encodeFeatureRequest(e, *req)
	})
}
