package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	BadgesRendered     *prometheus.CounterVec
	BadgeFailures      *prometheus.CounterVec
	ContactSubmissions prometheus.Counter
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers metrics on reg. Tests pass a throwaway registry so
// parallel suites don't collide on duplicate registration.
func NewWith(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		BadgesRendered: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "badgeforge_badges_rendered_total",
			Help: "Total badges rendered, by delivery branch.",
		}, []string{"delivery"}),
		BadgeFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "badgeforge_badge_failures_total",
			Help: "Total badge pipeline failures, by stage.",
		}, []string{"stage"}),
		ContactSubmissions: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "badgeforge_contact_submissions_total",
			Help: "Total accepted contact form submissions.",
		}),
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "badgeforge_http_request_duration_seconds",
			Help:    "HTTP request latency, by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObserveRequest records one request's latency under its route pattern.
func (m *Metrics) ObserveRequest(route string, d time.Duration) {
	m.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// IncBadgeRendered counts a successful render for the given delivery branch
// ("inline" or "email").
func (m *Metrics) IncBadgeRendered(delivery string) {
	m.BadgesRendered.WithLabelValues(delivery).Inc()
}

// IncBadgeFailure counts a pipeline failure at the given stage.
func (m *Metrics) IncBadgeFailure(stage string) {
	m.BadgeFailures.WithLabelValues(stage).Inc()
}

// IncContactSubmission counts an accepted contact submission.
func (m *Metrics) IncContactSubmission() {
	m.ContactSubmissions.Inc()
}
