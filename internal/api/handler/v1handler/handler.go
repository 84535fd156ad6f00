// Package v1handler implements the /v1 HTTP API on a chi router.
package v1handler

import (
	"context"
	"converter/internal/converter"
	"converter/pkg/logger"
	"converter/pkg/serrors"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "converter/internal/api/handler/v1handler"

// Deps are the services the handlers delegate to.
type Deps struct {
	Converter converter.Service
}

// Handler serves the /v1 routes.
type Handler struct {
	deps        Deps
	tracer      trace.Tracer
	conversions metric.Int64Counter
}

// New constructs a Handler. A nil meter provider disables metrics.
func New(deps Deps, mp metric.MeterProvider) (*Handler, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}

	conversions, err := mp.Meter(instrumentationName).Int64Counter("converter.conversions",
		metric.WithDescription("Evaluated conversions by category and outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create conversions counter: %w", err)
	}

	return &Handler{
		deps:        deps,
		tracer:      otel.Tracer(instrumentationName),
		conversions: conversions,
	}, nil
}

// Routes registers the v1 endpoints. Client-owned resources require a bearer
// token verified by sec.
func (h *Handler) Routes(r chi.Router, sec *SecHandler) {
	r.Get("/categories", h.listCategories)
	r.Get("/categories/{category}", h.getCategory)
	r.Post("/conversions", h.evaluate)
	r.Post("/format", h.format)
	r.Post("/feature-requests", h.requestFeature)

	r.Group(func(r chi.Router) {
		r.Use(sec.Middleware)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", h.listHistory)
			r.Post("/", h.recordHistory)
			r.Delete("/", h.clearHistory)
			r.Delete("/{id}", h.deleteHistory)
		})
		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.listFavorites)
			r.Post("/", h.addFavorite)
			r.Delete("/{id}", h.removeFavorite)
		})
	})
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type kindStatus struct {
	kind    serrors.Kind
	status  int
	message string
}

// kindStatuses is ordered; the first kind matching an error wins.
var kindStatuses = []kindStatus{ //nolint: gochecknoglobals
	{serrors.ErrInvalidInput, http.StatusBadRequest, "invalid input"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnitNotFound, http.StatusNotFound, "unit not found"},
	{serrors.ErrCategoryNotFound, http.StatusNotFound, "category not found"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrNonFiniteResult, http.StatusUnprocessableEntity, "result is not a finite number"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to a status code and a client-safe body. Errors without a
// known kind are logged and reported as internal errors.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	for _, ks := range kindStatuses {
		if !errors.Is(err, ks.kind) {
			continue
		}

		msg := ks.message
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			msg = se.Message()
		}

		return &ErrorStatusCode{
			StatusCode: ks.status,
			Response:   ErrorResponse{Code: ks.kind.Error(), Message: msg},
		}
	}

	logger.Error(ctx, "request failed", zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		encodeError(e, res.Response)
	})
}
