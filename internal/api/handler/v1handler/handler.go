// Package v1handler implements the v1 HTTP endpoints: request decoding,
// invocation of the risk engine and the mapping of semantic errors onto
// status codes.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"ascvd/internal/risk"
	"ascvd/pkg/logger"
	"ascvd/pkg/metrics"
	"ascvd/pkg/serrors"
)

// Deps holds the collaborators the handlers delegate to.
type Deps struct {
	// Engine computes the risk percentage for a decoded assessment.
	Engine risk.Engine
}

// Handler serves the v1 API routes.
type Handler struct {
	deps Deps

	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

// New builds a Handler and registers its instruments on the given meter.
func New(deps Deps, meter metric.Meter) (*Handler, error) {
	requests, err := meter.Int64Counter("ascvd_requests_total",
		metric.WithDescription("Number of risk calculation requests by status code."))
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("ascvd_request_duration_seconds",
		metric.WithDescription("Risk calculation request duration in seconds."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, err
	}

	return &Handler{
		deps:     deps,
		requests: requests,
		latency:  latency,
	}, nil
}

// Mux returns the route table of the v1 API, meant to be mounted under /v1.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /calculate-ascvd-risk", h.CalculateRisk)

	return mux
}

// observe records the request instruments for a finished request.
func (h *Handler) observe(ctx context.Context, route string, status int, seconds float64) {
	attrs := metric.WithAttributes(
		attribute.String("route", route),
		attribute.Int("status_code", status),
	)
	h.requests.Add(ctx, 1, attrs)
	h.latency.Record(ctx, seconds, attrs)
}

// statusOf maps a semantic error to its HTTP status code. Anything without a
// recognized kind is an internal error.
func statusOf(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders the `{"detail": ...}` error body shared by both failure
// tiers. Internal errors never leak their message to the client.
func writeError(ctx context.Context, w http.ResponseWriter, err error) int {
	status := statusOf(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		detail = "internal server error"
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("detail")
	e.StrEscape(detail)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())

	return status
}

// writeRisk renders the success body with the percentage kept at one decimal
// place, matching the precision the engine guarantees.
func writeRisk(w http.ResponseWriter, percent float64) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("ascvd_risk")
	e.Raw([]byte(strconv.FormatFloat(percent, 'f', 1, 64)))
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(e.Bytes())
}
