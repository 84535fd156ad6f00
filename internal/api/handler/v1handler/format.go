package v1handler

import (
	"converter/internal/converter"
	"net/http"

	"github.com/go-faster/jx"
)

func (h *Handler) format(w http.ResponseWriter, r *http.Request) {
	var req converter.FormatRequest
	err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "value":
			req.Value, err = decodeRawValue(d)
		case "format":
			req.Format, err = decodeFormat(d)
		case "selection":
			req.Selection, err = decodeSelection(d)
		default:
			err = d.Skip()
		}

		return err
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	ev := h.deps.Converter.FormatValue(r.Context(), req)

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeFormatEvaluation(e, ev)
	})
}
