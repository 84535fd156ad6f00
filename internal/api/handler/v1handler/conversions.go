package v1handler

import (
	"converter/internal/converter"
	"converter/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

func decodeEvaluateRequest(w http.ResponseWriter, r *http.Request) (converter.EvaluateRequest, error) {
	var req converter.EvaluateRequest
	err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "category":
			req.Category, err = decodeString(d, key)
		case "from":
			req.From, err = decodeString(d, key)
		case "to":
			req.To, err = decodeString(d, key)
		case "value":
			req.Value, err = decodeRawValue(d)
		case "format":
			req.Format, err = decodeFormat(d)
		case "selection":
			req.Selection, err = decodeSelection(d)
		case "pairChanged":
			req.PairChanged, err = d.Bool()
		default:
			err = d.Skip()
		}

		return err
	})

	return req, err
}

// evaluate runs one conversion event. Conversion failures are part of a 200
// response; only malformed requests fail.
func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeEvaluateRequest(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	ctx, span := h.tracer.Start(r.Context(), "Evaluate", trace.WithAttributes(
		attribute.String("category", req.Category),
		attribute.String("from", req.From),
		attribute.String("to", req.To),
	))
	ev := h.deps.Converter.Evaluate(ctx, req)
	span.End()

	outcome := "ok"
	if ev.Err != nil {
		outcome = serrors.ErrInternal.Error()
		if k := serrors.KindOf(ev.Err); k != nil {
			outcome = k.Error()
		}
	}
	h.conversions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", req.Category),
		attribute.String("outcome", outcome),
	))

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeEvaluation(e, ev)
	})
}
