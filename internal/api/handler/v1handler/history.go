package v1handler

import (
	"converter/pkg/domain"
	"converter/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

// listHistory returns the client's history newest first. The cursor query
// parameter is the nextCursor of the previous page.
func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := GetClientIDFromContext(ctx)

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit %q", raw))

			return
		}
	}

	entries, next, err := h.deps.Converter.History(ctx, clientID, r.URL.Query().Get("cursor"), uint(limit))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, entry := range entries {
						encodeHistoryEntry(e, entry)
					}
				})
			})
			e.Field("nextCursor", func(e *jx.Encoder) {
				if next == "" {
					e.Null()
				} else {
					e.Str(next)
				}
			})
		})
	})
}

func (h *Handler) recordHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var entry domain.HistoryEntry
	err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "category":
			entry.Category, err = decodeString(d, key)
		case "fromValue":
			entry.FromValue, err = decodeFloat(d, key)
		case "fromUnit":
			entry.FromUnit, err = decodeString(d, key)
		case "toValue":
			entry.ToValue, err = decodeFloat(d, key)
		case "toUnit":
			entry.ToUnit, err = decodeString(d, key)
		default:
			err = d.Skip()
		}

		return err
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	stored, err := h.deps.Converter.RecordHistory(ctx, GetClientIDFromContext(ctx), entry)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		encodeHistoryEntry(e, *stored)
	})
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.deps.Converter.ClearHistory(ctx, GetClientIDFromContext(ctx))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("deleted", func(e *jx.Encoder) { e.Int64(n) })
		})
	})
}

func (h *Handler) deleteHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Converter.DeleteHistory(ctx, GetClientIDFromContext(ctx), domain.HistoryID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
