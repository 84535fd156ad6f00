package controller

import (
	"converter/pkg/metrics"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "converter/pkg/controller"

// WithMetrics returns a middleware recording the latency of every request in
// a histogram labelled by method and status code.
func WithMetrics(mp metric.MeterProvider) (func(http.Handler) http.Handler, error) {
	latency, err := mp.Meter(meterName).Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP server requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			latency.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.response.status_code", strconv.Itoa(rec.status)),
			))
		})
	}, nil
}
