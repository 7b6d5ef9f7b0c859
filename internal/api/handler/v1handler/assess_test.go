package v1handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"ascvd/internal/api/handler/v1handler"
	"ascvd/internal/risk"
	"ascvd/pkg/logger"
)

// validBody is a request for the black-female baseline cohort; the engine
// computes 3.0 for it.
const validBody = `{
	"is_male": false,
	"is_black": true,
	"smoker": false,
	"hypertensive": false,
	"diabetic": false,
	"age": 55,
	"systolic_bp": 120,
	"diastolic_bp": 80,
	"total_cholesterol": 213,
	"hdl": 50,
	"ldl": 140
}`

func newTestHandler(t *testing.T) *v1handler.Handler {
	t.Helper()
	logger.Setup(logger.DevelopmentEnvironment)

	h, err := v1handler.New(v1handler.Deps{Engine: risk.New()}, noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	return h
}

func post(t *testing.T, h *v1handler.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/calculate-ascvd-risk", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Mux().ServeHTTP(rec, req)

	return rec
}

// detailOf extracts the "detail" string from an error response body.
func detailOf(t *testing.T, body []byte) string {
	t.Helper()

	var detail string
	d := jx.DecodeBytes(body)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "detail" {
			return d.Skip()
		}
		var err error
		detail, err = d.Str()

		return err
	})
	require.NoError(t, err)

	return detail
}

func TestCalculateRisk_Success(t *testing.T) {
	h := newTestHandler(t)

	rec := post(t, h, validBody)

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))
	require.JSONEq(t, `{"ascvd_risk": 3.0}`, rec.Body.String())
	// the one-decimal rendering is part of the contract
	require.Contains(t, rec.Body.String(), `"ascvd_risk":3.0`)
}

func TestCalculateRisk_RangeViolation(t *testing.T) {
	h := newTestHandler(t)

	body := strings.Replace(validBody, `"age": 55`, `"age": 39`, 1)
	rec := post(t, h, body)

	require.Equal(t, http.StatusBadRequest, rec.Result().StatusCode)
	detail := detailOf(t, rec.Body.Bytes())
	require.Contains(t, detail, "age must be between 40 and 79")
	require.Contains(t, detail, "39")
}

func TestCalculateRisk_RangeViolationHDL(t *testing.T) {
	h := newTestHandler(t)

	body := strings.Replace(validBody, `"hdl": 50`, `"hdl": 101`, 1)
	rec := post(t, h, body)

	require.Equal(t, http.StatusBadRequest, rec.Result().StatusCode)
	require.Contains(t, detailOf(t, rec.Body.Bytes()), "hdl must be between 20 and 100")
}

func TestCalculateRisk_MissingField(t *testing.T) {
	h := newTestHandler(t)

	body := strings.Replace(validBody, `"hdl": 50,`, ``, 1)
	rec := post(t, h, body)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Result().StatusCode)
	require.Contains(t, detailOf(t, rec.Body.Bytes()), `missing required field "hdl"`)
}

func TestCalculateRisk_WrongType(t *testing.T) {
	h := newTestHandler(t)

	body := strings.Replace(validBody, `"age": 55`, `"age": "fifty-five"`, 1)
	rec := post(t, h, body)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Result().StatusCode)
	require.Contains(t, detailOf(t, rec.Body.Bytes()), `"age"`)
}

func TestCalculateRisk_MalformedJSON(t *testing.T) {
	h := newTestHandler(t)

	rec := post(t, h, `{"is_male": tru`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Result().StatusCode)
	require.Contains(t, detailOf(t, rec.Body.Bytes()), "invalid request body")
}

func TestCalculateRisk_EmptyBody(t *testing.T) {
	h := newTestHandler(t)

	rec := post(t, h, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Result().StatusCode)
}

func TestCalculateRisk_UnknownFieldsIgnored(t *testing.T) {
	h := newTestHandler(t)

	body := strings.Replace(validBody, `"ldl": 140`, `"ldl": 140, "glucose": 95`, 1)
	rec := post(t, h, body)

	require.Equal(t, http.StatusOK, rec.Result().StatusCode)
}

func TestMux_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/calculate-ascvd-risk", nil)
	rec := httptest.NewRecorder()
	h.Mux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Result().StatusCode)
}
