// Package api configures the HTTP server of the risk service: routes,
// metrics, docs and middleware.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"ascvd/internal/api/handler/v1handler"
	"ascvd/internal/config"
	"ascvd/internal/risk"
	"ascvd/pkg/controller"
)

// v1Spec is the embedded OpenAPI document for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds the HTTP server settings, usually derived from config via
// NewOptions. Zero durations fall back to net/http defaults.
type Options struct {
	// Addr is the TCP listen address, e.g. ":8080".
	Addr string
	// ReadTimeout bounds reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout bounds reading the request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration
	// IdleTimeout bounds keep-alive waits between requests.
	IdleTimeout time.Duration
	// RequestTimeout is the per-request cap applied via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes caps the request header size.
	MaxHeaderBytes int
	// MetricsPath is where Prometheus metrics are served.
	MetricsPath string
}

// NewOptions maps the HTTP section of the application config onto Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps holds the collaborators the server hands to its handlers.
type Deps struct {
	// Engine is the risk computation the v1 API exposes.
	Engine risk.Engine
}

// NewServer wires up and returns a configured *http.Server. It mounts:
//   - the Prometheus metrics endpoint (MetricsPath)
//   - the embedded OpenAPI v1 document and its Swagger UI
//   - the v1 API routes
//   - pprof under /debug/pprof/
//
// and wraps the mux with CORS, access logging and a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics endpoint
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel metrics, exported through the default prometheus registry
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// v1 spec document
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"ASCVD Risk Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	v1, err := v1handler.New(v1handler.Deps{Engine: deps.Engine}, mp.Meter("ascvd/api"))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 handler: %w", err)
	}
	mux.Handle("/v1/", http.StripPrefix("/v1", v1.Mux()))
	// unversioned alias, the path the original calculator published
	mux.HandleFunc("POST /calculate-ascvd-risk", v1.CalculateRisk)

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	handler := controller.WithCORS(mux)
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"detail":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
