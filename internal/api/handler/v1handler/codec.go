package v1handler

import (
	"converter/internal/converter"
	"converter/pkg/domain"
	"converter/pkg/serrors"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

const (
	maxBodyBytes = 64 << 10

	// infinity is the JSON rendering of a +Inf result value.
	infinity = "Infinity"
)

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// decodeBody reads a JSON object from the request body and hands every field
// to decodeField. Unknown fields are skipped.
func decodeBody(w http.ResponseWriter, r *http.Request, decodeField func(d *jx.Decoder, key string) error) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	d := jx.DecodeBytes(body)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		return decodeField(d, string(key))
	}); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// decodeRawValue accepts a JSON number, a string or null. Numbers are kept in
// their textual form so that out-of-range literals fail parsing like typed
// input does.
func decodeRawValue(d *jx.Decoder) (converter.RawValue, error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return converter.RawValue{}, errors.Wrap(err, "value")
		}

		return converter.TextValue(s), nil
	case jx.Number:
		num, err := d.Num()
		if err != nil {
			return converter.RawValue{}, errors.Wrap(err, "value")
		}

		return converter.TextValue(string(num)), nil
	case jx.Null:
		return converter.TextValue(""), d.Null()
	default:
		return converter.RawValue{}, errors.New("value must be a number or a string")
	}
}

func decodeFormat(d *jx.Decoder) (domain.NumberFormat, error) {
	s, err := d.Str()
	if err != nil {
		return "", errors.Wrap(err, "format")
	}

	f, err := domain.ParseNumberFormat(s)
	if err != nil {
		return "", errors.Wrap(err, "format")
	}

	return f, nil
}

func decodeSelection(d *jx.Decoder) (domain.Selection, error) {
	var sel domain.Selection
	if d.Next() == jx.Null {
		return sel, d.Null()
	}

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "preference":
			f, err := decodeFormat(d)
			if err != nil {
				return errors.Wrap(err, "selection")
			}
			sel.Preference = f
		case "normalDisabled":
			b, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "selection.normalDisabled")
			}
			sel.NormalDisabled = b
		default:
			return d.Skip()
		}

		return nil
	})

	return sel, err
}

func decodeString(d *jx.Decoder, field string) (string, error) {
	s, err := d.Str()
	if err != nil {
		return "", errors.Wrap(err, field)
	}

	return s, nil
}

func decodeFloat(d *jx.Decoder, field string) (float64, error) {
	v, err := d.Float64()
	if err != nil {
		return 0, errors.Wrap(err, field)
	}

	return v, nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id %q", s)
	}

	return id, nil
}

func encodeError(e *jx.Encoder, res ErrorResponse) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Message) })
	})
}

// encodeFailure renders a conversion failure reported inside a 200 response.
func encodeFailure(e *jx.Encoder, err error) {
	code := serrors.ErrInternal.Error()
	if k := serrors.KindOf(err); k != nil {
		code = k.Error()
	}

	msg := err.Error()
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		msg = se.Message()
	}

	encodeError(e, ErrorResponse{Code: code, Message: msg})
}

func encodeUnit(e *jx.Encoder, u domain.Unit) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(u.Name) })
		e.Field("symbol", func(e *jx.Encoder) { e.Str(u.Symbol) })
		if u.Affine == nil {
			e.Field("factor", func(e *jx.Encoder) { e.Float64(u.Factor) })
		}
		if u.Inverse {
			e.Field("inverse", func(e *jx.Encoder) { e.Bool(true) })
		}
	})
}

func encodeCategory(e *jx.Encoder, c domain.Category) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(c.Name) })
		e.Field("slug", func(e *jx.Encoder) { e.Str(c.Slug) })
		e.Field("family", func(e *jx.Encoder) { e.Str(c.Family.String()) })
		e.Field("units", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, u := range c.Units {
					encodeUnit(e, u)
				}
			})
		})
	})
}

func encodeResult(e *jx.Encoder, res *domain.ConversionResult) {
	if res == nil {
		e.Null()

		return
	}

	e.Obj(func(e *jx.Encoder) {
		if math.IsInf(res.Value, 1) {
			e.Field("value", func(e *jx.Encoder) { e.Str(infinity) })
			e.Field("infinite", func(e *jx.Encoder) { e.Bool(true) })
		} else {
			e.Field("value", func(e *jx.Encoder) { e.Float64(res.Value) })
			e.Field("infinite", func(e *jx.Encoder) { e.Bool(false) })
		}
		e.Field("unit", func(e *jx.Encoder) { e.Str(res.Unit) })
	})
}

func encodeOutcome(e *jx.Encoder, o domain.FormatOutcome) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("formatted", func(e *jx.Encoder) { e.Str(o.Formatted) })
		e.Field("format", func(e *jx.Encoder) { e.Str(string(o.Format)) })
		if o.Reason != domain.ReasonNone {
			e.Field("reason", func(e *jx.Encoder) { e.Str(string(o.Reason)) })
		}
	})
}

func encodeSelection(e *jx.Encoder, s domain.Selection) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("preference", func(e *jx.Encoder) { e.Str(string(s.Preference)) })
		e.Field("normalDisabled", func(e *jx.Encoder) { e.Bool(s.NormalDisabled) })
	})
}

func encodeEvaluation(e *jx.Encoder, ev converter.Evaluation) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("result", func(e *jx.Encoder) { encodeResult(e, ev.Result) })
		e.Field("display", func(e *jx.Encoder) { encodeOutcome(e, ev.Display) })
		e.Field("source", func(e *jx.Encoder) { e.Str(ev.Source) })
		e.Field("selection", func(e *jx.Encoder) { encodeSelection(e, ev.Selection) })
		if ev.Err != nil {
			e.Field("error", func(e *jx.Encoder) { encodeFailure(e, ev.Err) })
		}
	})
}

func encodeFormatEvaluation(e *jx.Encoder, ev converter.FormatEvaluation) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("display", func(e *jx.Encoder) { encodeOutcome(e, ev.Display) })
		e.Field("selection", func(e *jx.Encoder) { encodeSelection(e, ev.Selection) })
		if ev.Err != nil {
			e.Field("error", func(e *jx.Encoder) { encodeFailure(e, ev.Err) })
		}
	})
}

func encodeTime(e *jx.Encoder, t time.Time) {
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func encodeHistoryEntry(e *jx.Encoder, h domain.HistoryEntry) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(uuid.UUID(h.ID).String()) })
		e.Field("category", func(e *jx.Encoder) { e.Str(h.Category) })
		e.Field("fromValue", func(e *jx.Encoder) { e.Float64(h.FromValue) })
		e.Field("fromUnit", func(e *jx.Encoder) { e.Str(h.FromUnit) })
		e.Field("toValue", func(e *jx.Encoder) { e.Float64(h.ToValue) })
		e.Field("toUnit", func(e *jx.Encoder) { e.Str(h.ToUnit) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, h.CreatedAt) })
	})
}

func encodeFavorite(e *jx.Encoder, f domain.Favorite) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(uuid.UUID(f.ID).String()) })
		e.Field("category", func(e *jx.Encoder) { e.Str(f.Category) })
		e.Field("fromUnit", func(e *jx.Encoder) { e.Str(f.FromUnit) })
		e.Field("toUnit", func(e *jx.Encoder) { e.Str(f.ToUnit) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, f.CreatedAt) })
	})
}

func encodeFeatureRequest(e *jx.Encoder, f domain.FeatureRequest) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(uuid.UUID(f.ID).String()) })
		e.Field("category", func(e *jx.Encoder) { e.Str(f.Category) })
		e.Field("fromUnit", func(e *jx.Encoder) { e.Str(f.FromUnit) })
		e.Field("toUnit", func(e *jx.Encoder) { e.Str(f.ToUnit) })
		if f.AdditionalNotes != "" {
			e.Field("additionalNotes", func(e *jx.Encoder) { e.Str(f.AdditionalNotes) })
		}
		e.Field("status", func(e *jx.Encoder) { e.Str(string(f.Status)) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, f.CreatedAt) })
	})
}
