package v1handler

import (
	"converter/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	favorites, err := h.deps.Converter.Favorites(ctx, GetClientIDFromContext(ctx))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, f := range favorites {
						encodeFavorite(e, f)
					}
				})
			})
		})
	})
}

// addFavorite is idempotent; pinning an existing pair returns it again.
func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var fav domain.Favorite
	err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "category":
			fav.Category, err = decodeString(d, key)
		case "fromUnit":
			fav.FromUnit, err = decodeString(d, key)
		case "toUnit":
			fav.ToUnit, err = decodeString(d, key)
		default:
			err = d.Skip()
		}

		return err
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	stored, err := h.deps.Converter.AddFavorite(ctx, GetClientIDFromContext(ctx), fav)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		encodeFavorite(e, *stored)
	})
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Converter.RemoveFavorite(ctx, GetClientIDFromContext(ctx), domain.FavoriteID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
