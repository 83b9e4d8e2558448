// Package httptransport assembles the HTTP surface: middleware chain,
// feature handlers, health check and metrics.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminHandler "newsletter/internal/admin/handler"
	authHandler "newsletter/internal/auth/handler"
	newsletterHandler "newsletter/internal/newsletter/handler"
	"newsletter/internal/platform/metrics"
	"newsletter/internal/platform/middleware"
	subscriptionHandler "newsletter/internal/subscription/handler"
)

const requestTimeout = 30 * time.Second

// Dependencies carries everything the router needs. Gatherer backs the
// /metrics endpoint; tests pass a private registry.
type Dependencies struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	Subscription *subscriptionHandler.Handler
	Newsletter   *newsletterHandler.Handler
	Auth         *authHandler.Handler
	Admin        *adminHandler.Handler
}

// NewRouter wires the middleware chain and all endpoints.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Latency(deps.Metrics))

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		deps.Subscription.Register(r)
		deps.Newsletter.Register(r)
	})
	deps.Auth.Register(r)
	deps.Admin.Register(r)
	return r
}

// handleHealth answers liveness probes. It checks nothing downstream; a
// mail provider outage must not fail the probe.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
