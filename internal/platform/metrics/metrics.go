package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SubscriptionsCreated   prometheus.Counter
	SubscriptionsConfirmed prometheus.Counter
	EmailsDispatched       prometheus.Counter
	EmailsFailed           prometheus.Counter
	NewslettersPublished   prometheus.Counter
	RequestDuration        *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on reg. Tests pass their
// own registry so parallel suites never collide on registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SubscriptionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "newsletter_subscriptions_created_total",
			Help: "Total number of pending subscriptions persisted",
		}),
		SubscriptionsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "newsletter_subscriptions_confirmed_total",
			Help: "Total number of subscriptions flipped to confirmed",
		}),
		EmailsDispatched: factory.NewCounter(prometheus.CounterOpts{
			Name: "newsletter_emails_dispatched_total",
			Help: "Total number of emails accepted by the mail provider",
		}),
		EmailsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "newsletter_emails_failed_total",
			Help: "Total number of mail provider calls that failed",
		}),
		NewslettersPublished: factory.NewCounter(prometheus.CounterOpts{
			Name: "newsletter_issues_published_total",
			Help: "Total number of newsletter issues published",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "newsletter_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
