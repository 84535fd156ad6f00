package controller

import (
	"context"
	"converter/pkg/logger"
	"net/http"

	"go.uber.org/zap"
)

// Pinger checks a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Healthz answers 200 when p is reachable and 503 otherwise.
func Healthz(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := p.Ping(r.Context()); err != nil {
			logger.Warn(r.Context(), "health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))

			return
		}

		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
