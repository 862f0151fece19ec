// Package metric provides Prometheus metric registration and the
// standalone metrics HTTP server for linearkit.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the platform-level metrics for the container service
type Metrics struct {
	// Container operation metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	// HTTP facade metrics
	HTTPRequestsTotal *prometheus.CounterVec
	RateLimited       prometheus.Counter

	// Session metrics
	ActiveSessions  prometheus.Gauge
	SessionsCreated prometheus.Counter
	SessionsReaped  prometheus.Counter

	// Event feed metrics
	EventsPublished prometheus.Counter
	WatchClients    prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all platform metrics
func NewMetrics() *Metrics {
	return &Metrics{
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "linearkit",
				Subsystem: "container",
				Name:      "operations_total",
				Help:      "Total container operations by container, operation and outcome",
			},
			[]string{"container", "operation", "outcome"},
		),

		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "linearkit",
				Subsystem: "container",
				Name:      "operation_duration_seconds",
				Help:      "Container operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"container", "operation"},
		),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "linearkit",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests by route and status class",
			},
			[]string{"route", "status"},
		),

		RateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "linearkit",
				Subsystem: "http",
				Name:      "rate_limited_total",
				Help:      "Total requests rejected by the rate limiter",
			},
		),

		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "linearkit",
				Subsystem: "sessions",
				Name:      "active",
				Help:      "Number of live container sessions",
			},
		),

		SessionsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "linearkit",
				Subsystem: "sessions",
				Name:      "created_total",
				Help:      "Total sessions created",
			},
		),

		SessionsReaped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "linearkit",
				Subsystem: "sessions",
				Name:      "reaped_total",
				Help:      "Total sessions removed by the idle reaper",
			},
		),

		EventsPublished: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "linearkit",
				Subsystem: "events",
				Name:      "published_total",
				Help:      "Total mutation events published to the watch feed",
			},
		),

		WatchClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "linearkit",
				Subsystem: "events",
				Name:      "watch_clients",
				Help:      "Number of connected watch feed clients",
			},
		),
	}
}

// RecordOperation increments the operation counter for one container call
func (c *Metrics) RecordOperation(container, operation, outcome string) {
	c.OperationsTotal.WithLabelValues(container, operation, outcome).Inc()
}

// RecordOperationDuration records how long a container operation took
func (c *Metrics) RecordOperationDuration(container, operation string, duration time.Duration) {
	c.OperationDuration.WithLabelValues(container, operation).Observe(duration.Seconds())
}

// RecordHTTPRequest increments the HTTP request counter
func (c *Metrics) RecordHTTPRequest(route, status string) {
	c.HTTPRequestsTotal.WithLabelValues(route, status).Inc()
}

// RecordRateLimited increments the rate limiter rejection counter
func (c *Metrics) RecordRateLimited() {
	c.RateLimited.Inc()
}

// RecordSessionCount sets the live session gauge
func (c *Metrics) RecordSessionCount(n int) {
	c.ActiveSessions.Set(float64(n))
}

// RecordSessionCreated increments the session creation counter
func (c *Metrics) RecordSessionCreated() {
	c.SessionsCreated.Inc()
}

// RecordSessionReaped increments the idle-reap counter
func (c *Metrics) RecordSessionReaped() {
	c.SessionsReaped.Inc()
}

// RecordEventPublished increments the watch feed publish counter
func (c *Metrics) RecordEventPublished() {
	c.EventsPublished.Inc()
}

// RecordWatchClients sets the connected watch client gauge
func (c *Metrics) RecordWatchClients(n int) {
	c.WatchClients.Set(float64(n))
}
