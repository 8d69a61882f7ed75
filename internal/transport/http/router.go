// Package httptransport wires the registry's HTTP surface: middleware
// stack, authenticated API routes, and the unauthenticated ops endpoints.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kycnet/internal/platform/health"
	platmetrics "kycnet/internal/platform/metrics"
	"kycnet/internal/platform/middleware"
	"kycnet/internal/registry/handler"
	"kycnet/pkg/platform/middleware/auth"
)

// NewRouter assembles the full HTTP handler. Health and metrics stay outside
// the auth boundary; every registry route requires a valid caller token.
func NewRouter(
	registry *handler.Handler,
	healthHandler *health.Handler,
	validator auth.TokenValidator,
	logger *slog.Logger,
	metrics *platmetrics.Metrics,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ClientMetadata)
	r.Use(observe(metrics))

	healthHandler.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(auth.Middleware(validator, logger, metrics))
		registry.Register(r)
	})

	return r
}

// observe records per-endpoint request metrics using the chi route pattern
// so path parameters do not explode label cardinality.
func observe(metrics *platmetrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if metrics == nil {
				next.ServeHTTP(w, r)
				return
			}
			metrics.InFlight.Inc()
			defer metrics.InFlight.Dec()

			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			metrics.ObserveRequest(r.Method, route, ww.status, time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
