package v1handler_test

import (
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"converter/internal/converter"
	"converter/pkg/catalog"
	"converter/pkg/domain"
	"converter/pkg/serrors"
)

func TestEvaluate_Success(t *testing.T) {
	s := newTestServer(t)

	want := converter.EvaluateRequest{
		Category:    "Length",
		From:        "m",
		To:          "ft",
		Value:       converter.TextValue("1"),
		Format:      domain.FormatNormal,
		Selection:   domain.Selection{Preference: domain.FormatNormal},
		PairChanged: true,
	}
	s.svc.EXPECT().Evaluate(gomock.Any(), want).Return(converter.Evaluation{
		Result:    &domain.ConversionResult{Value: 3.2808398950131235, Unit: "ft"},
		Display:   domain.FormatOutcome{Formatted: "3.2808399", Format: domain.FormatNormal},
		Source:    "1",
		Selection: domain.Selection{Preference: domain.FormatNormal},
	})

	res, body := s.do(t, http.MethodPost, "/conversions", `{
		"category": "Length", "from": "m", "to": "ft", "value": 1,
		"format": "normal", "selection": {"preference": "normal", "normalDisabled": false},
		"pairChanged": true, "unknown": [1, 2]
	}`, "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	result := body["result"].(map[string]any)
	require.InDelta(t, 3.2808398950131235, result["value"], 1e-12)
	require.Equal(t, false, result["infinite"])
	require.Equal(t, "ft", result["unit"])

	display := body["display"].(map[string]any)
	require.Equal(t, "3.2808399", display["formatted"])
	require.Equal(t, "normal", display["format"])
	require.NotContains(t, display, "reason")

	require.Equal(t, "1", body["source"])
	require.Equal(t, map[string]any{"preference": "normal", "normalDisabled": false}, body["selection"])
	require.NotContains(t, body, "error")
}

func TestEvaluate_StringValueAndMagnitude(t *testing.T) {
	s := newTestServer(t)

	s.svc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req converter.EvaluateRequest) converter.Evaluation {
			v, err := req.Value.Parse()
			require.NoError(t, err)
			require.InDelta(t, 1234.5, v, 0)
			require.Equal(t, domain.FormatScientific, req.Format)

			return converter.Evaluation{
				Result: &domain.ConversionResult{Value: 1.2345e12, Unit: "mm"},
				Display: domain.FormatOutcome{
					Formatted: "1.2345E+12", Format: domain.FormatScientific, Reason: domain.ReasonMagnitude,
				},
				Source:    "1,234.5",
				Selection: domain.Selection{Preference: domain.FormatScientific, NormalDisabled: true},
			}
		},
	)

	res, body := s.do(t, http.MethodPost, "/conversions",
		`{"category": "Length", "from": "km", "to": "mm", "value": "1,234.5", "format": "scientific"}`, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "magnitude", body["display"].(map[string]any)["reason"])
	require.Equal(t, true, body["selection"].(map[string]any)["normalDisabled"])
}

func TestEvaluate_InfiniteResult(t *testing.T) {
	s := newTestServer(t)

	s.svc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(converter.Evaluation{
		Result:    &domain.ConversionResult{Value: math.Inf(1), Unit: "L/100km"},
		Display:   domain.FormatOutcome{Formatted: "-", Format: domain.FormatNormal},
		Source:    "0",
		Selection: domain.Selection{Preference: domain.FormatNormal},
	})

	res, body := s.do(t, http.MethodPost, "/conversions",
		`{"category": "Fuel Economy", "from": "km/L", "to": "L/100km", "value": 0}`, "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	result := body["result"].(map[string]any)
	require.Equal(t, "Infinity", result["value"])
	require.Equal(t, true, result["infinite"])
	require.Equal(t, "-", body["display"].(map[string]any)["formatted"])
}

func TestEvaluate_ConversionFailureIsReported(t *testing.T) {
	s := newTestServer(t)

	s.svc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(converter.Evaluation{
		Display:   domain.FormatOutcome{Formatted: "-", Format: domain.FormatNormal},
		Source:    "-",
		Selection: domain.Selection{Preference: domain.FormatNormal},
		Err:       serrors.With(serrors.ErrInvalidInput, "value is empty"),
	})

	res, body := s.do(t, http.MethodPost, "/conversions",
		`{"category": "Length", "from": "m", "to": "ft", "value": null}`, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Nil(t, body["result"])
	require.Equal(t, map[string]any{"code": "INVALID_INPUT", "message": "value is empty"}, body["error"])
}

func TestEvaluate_MalformedRequests(t *testing.T) {
	s := newTestServer(t)

	for _, payload := range []string{
		``,
		`[]`,
		`{"category": 1}`,
		`{"format": "fancy"}`,
		`{"value": true}`,
		`{"selection": {"preference": "both"}}`,
	} {
		res, body := s.do(t, http.MethodPost, "/conversions", payload, "")
		require.Equal(t, http.StatusBadRequest, res.StatusCode, payload)
		requireErrorBody(t, body, "BAD_REQUEST")
	}
}

func TestFormat(t *testing.T) {
	s := newTestServer(t)

	s.svc.EXPECT().FormatValue(gomock.Any(), converter.FormatRequest{
		Value:  converter.TextValue("5000"),
		Format: domain.FormatScientific,
	}).Return(converter.FormatEvaluation{
		Display:   domain.FormatOutcome{Formatted: "5E+3", Format: domain.FormatScientific, Reason: domain.ReasonUserChoice},
		Selection: domain.Selection{Preference: domain.FormatScientific},
	})

	res, body := s.do(t, http.MethodPost, "/format", `{"value": 5000, "format": "scientific"}`, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, map[string]any{
		"formatted": "5E+3", "format": "scientific", "reason": "user_choice",
	}, body["display"])
	require.Equal(t, map[string]any{"preference": "scientific", "normalDisabled": false}, body["selection"])
}

func TestCategories(t *testing.T) {
	s := newTestServer(t)

	s.svc.EXPECT().Categories().Return(catalog.Categories())

	res, body := s.do(t, http.MethodGet, "/categories", "", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	items := body["items"].([]any)
	require.Len(t, items, len(catalog.Categories()))

	first := items[0].(map[string]any)
	require.Equal(t, "Length", first["name"])
	require.Equal(t, "linear", first["family"])
	require.NotEmpty(t, first["units"])
}

func TestCategory(t *testing.T) {
	s := newTestServer(t)

	temp, err := catalog.Category("Temperature")
	require.NoError(t, err)
	s.svc.EXPECT().Category("temperature").Return(temp, nil)
	s.svc.EXPECT().Category("luminosity").
		Return(domain.Category{}, serrors.With(serrors.ErrCategoryNotFound, "category %q not found", "luminosity"))

	res, body := s.do(t, http.MethodGet, "/categories/temperature", "", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "Temperature", body["name"])
	for _, u := range body["units"].([]any) {
		require.NotContains(t, u.(map[string]any), "factor")
	}

	res, body = s.do(t, http.MethodGet, "/categories/luminosity", "", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	requireErrorBody(t, body, "CATEGORY_NOT_FOUND")
}
