// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the converter service.
package api

import (
	"converter/internal/api/handler/v1handler"
	"converter/internal/config"
	"converter/pkg/controller"
	"converter/pkg/metrics"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer authentication for client-owned resources.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins is the CORS allow list, "*" allows any origin.
	AllowedOrigins []string
	// EnablePprof mounts the profiling handlers.
	EnablePprof bool
	// Registerer collects the server's metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
	// Gatherer serves MetricsPath. Defaults to the global registry.
	Gatherer prometheus.Gatherer
}

// NewOptions maps the HTTP settings of cfg to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		EnablePprof:       cfg.HTTP.EnablePprof,
	}
}

// Deps are the services behind the server.
type Deps struct {
	v1handler.Deps

	// Health is pinged by /healthz.
	Health controller.Pinger
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) fed by the OpenTelemetry exporter
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes on a chi router
// - /healthz backed by Deps.Health
// - pprof endpoints when enabled
// It also wraps the mux with CORS, latency metrics and logging middlewares and
// applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	// otel
	mp, err := metrics.NewMeterProvider(opts.Registerer)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	// health
	if deps.Health != nil {
		mux.Handle("/healthz", controller.Healthz(deps.Health))
	}

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Unit Converter",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1, err := v1handler.New(deps.Deps, mp)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 handler: %w", err)
	}
	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		v1.Routes(r, secHandler)
	})
	mux.Handle("/v1/", router)

	// pprof
	if opts.EnablePprof {
		mux.Handle(controller.PprofPrefix, controller.PprofMux())
	}

	// cors
	handler := controller.WithCORS(opts.AllowedOrigins)(mux)

	// latency
	withMetrics, err := controller.WithMetrics(mp)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	handler = withMetrics(handler)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"UNAVAILABLE","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
