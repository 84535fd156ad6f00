package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"converter/internal/api"
	"converter/internal/api/handler/v1handler"
	"converter/internal/converter"
	mockconverter "converter/internal/converter/mock"
	"converter/pkg/domain"
	"converter/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.TestEnvironment, "")
	m.Run()
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func publicKeyPEM(t *testing.T) string {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func newTestServer(t *testing.T, healthErr error, pprof bool) (*httptest.Server, *mockconverter.MockService) {
	t.Helper()

	svc := mockconverter.NewMockService(gomock.NewController(t))
	reg := prometheus.NewRegistry()

	srv, err := api.NewServer(api.Deps{
		Deps:   v1handler.Deps{Converter: svc},
		Health: pingerFunc(func(context.Context) error { return healthErr }),
	}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		MetricsPath:       "/metrics",
		AllowedOrigins:    []string{"*"},
		EnablePprof:       pprof,
		Registerer:        reg,
		Gatherer:          reg,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts, svc
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	res, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestServer_Routes(t *testing.T) {
	ts, svc := newTestServer(t, nil, false)

	svc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(converter.Evaluation{
		Result:    &domain.ConversionResult{Value: 212, Unit: "°F"},
		Display:   domain.FormatOutcome{Formatted: "212", Format: domain.FormatNormal},
		Source:    "100",
		Selection: domain.Selection{Preference: domain.FormatNormal},
	})

	res, err := http.Post(ts.URL+"/v1/conversions", "application/json", //nolint: noctx
		strings.NewReader(`{"category":"Temperature","from":"°C","to":"°F","value":100}`))
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))

	res, body := get(t, ts.URL+"/healthz")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, body)

	res, body = get(t, ts.URL+"/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "openapi: 3.0.3")

	res, _ = get(t, ts.URL+"/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "converter_conversions_total")
	require.Contains(t, body, "http_server_request_duration")

	res, _ = get(t, ts.URL+"/v1/history")
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = get(t, ts.URL+"/debug/pprof/")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestServer_HealthUnavailable(t *testing.T) {
	ts, _ := newTestServer(t, errors.New("db down"), true)

	res, _ := get(t, ts.URL+"/healthz")
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)

	res, _ = get(t, ts.URL+"/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_InvalidPublicKey(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "nope"},
		MetricsPath:       "/metrics",
		Registerer:        reg,
		Gatherer:          reg,
	})
	require.Error(t, err)
}
