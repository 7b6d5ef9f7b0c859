package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ascvd/internal/api"
	"ascvd/internal/risk"
	"ascvd/pkg/logger"
)

func TestNewServer_Routes(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	srv, err := api.NewServer(api.Deps{Engine: risk.New()}, api.Options{
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
	})
	require.NoError(t, err)

	body := `{
		"is_male": true, "is_black": false, "smoker": false,
		"hypertensive": false, "diabetic": false,
		"age": 55, "systolic_bp": 120, "diastolic_bp": 80,
		"total_cholesterol": 213, "hdl": 50, "ldl": 140
	}`

	t.Run("v1 risk route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/calculate-ascvd-risk", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Result().StatusCode)
		require.JSONEq(t, `{"ascvd_risk": 5.4}`, rec.Body.String())
	})

	t.Run("unversioned alias route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/calculate-ascvd-risk", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Result().StatusCode)
		require.JSONEq(t, `{"ascvd_risk": 5.4}`, rec.Body.String())
	})

	t.Run("spec document", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/specs/v1.yaml", nil)
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Result().StatusCode)
		require.Contains(t, rec.Body.String(), "calculate-ascvd-risk")
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Result().StatusCode)
	})
}
