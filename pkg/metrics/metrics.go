// Package metrics collects and exposes prometheus metrics for the daemon.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records the daemon's metrics on its own registry
type Collector struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	loginAttempts *prometheus.CounterVec
	registrations prometheus.Counter
	postsCreated  prometheus.Counter
	postsDeleted  prometheus.Counter
	catalogSize   prometheus.Gauge
}

// NewCollector creates a Collector with a dedicated registry
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hexpd_http_requests_total",
			Help: "HTTP requests by route pattern and status code",
		}, []string{"route", "status"}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hexpd_login_attempts_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hexpd_registrations_total",
			Help: "Successful account registrations",
		}),
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hexpd_posts_created_total",
			Help: "Discussion posts created",
		}),
		postsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hexpd_posts_deleted_total",
			Help: "Discussion posts deleted",
		}),
		catalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hexpd_catalog_monuments",
			Help: "Monuments currently in the catalog",
		}),
	}

	c.registry.MustRegister(
		c.httpRequests,
		c.loginAttempts,
		c.registrations,
		c.postsCreated,
		c.postsDeleted,
		c.catalogSize,
	)
	return c
}

// RecordRequest records one handled HTTP request
func (c *Collector) RecordRequest(route string, status int) {
	c.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// RecordLogin records a login attempt by outcome ("success" or "failure")
func (c *Collector) RecordLogin(outcome string) {
	c.loginAttempts.WithLabelValues(outcome).Inc()
}

// RecordRegistration records a successful registration
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordPostCreated records a created discussion post
func (c *Collector) RecordPostCreated() {
	c.postsCreated.Inc()
}

// RecordPostDeleted records a deleted discussion post
func (c *Collector) RecordPostDeleted() {
	c.postsDeleted.Inc()
}

// SetCatalogSize updates the monument-count gauge
func (c *Collector) SetCatalogSize(n int) {
	c.catalogSize.Set(float64(n))
}

// Handler returns the /metrics HTTP handler for this collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
