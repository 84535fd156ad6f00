package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

func (h *Handler) listCategories(w http.ResponseWriter, _ *http.Request) {
	categories := h.deps.Converter.Categories()

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, c := range categories {
						encodeCategory(e, c)
					}
				})
			})
		})
	})
}

// getCategory accepts a display name or a slug.
func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.deps.Converter.Category(chi.URLParam(r, "category"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeCategory(e, c)
	})
}
