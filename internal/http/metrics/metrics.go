package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the service's Prometheus instruments behind the small
// surface the middleware and response packages consume.
type Collector struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	errors   prometheus.Counter
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "career_portal_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "career_portal_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "career_portal_errors_total",
			Help: "Total number of 5xx HTTP responses.",
		}),
	}
	registry.MustRegister(c.requests, c.duration, c.errors)
	return c
}

func (c *Collector) ObserveRequest(method string, status int, elapsed time.Duration) {
	c.requests.WithLabelValues(method, statusClass(status)).Inc()
	c.duration.WithLabelValues(method).Observe(elapsed.Seconds())
	if status >= http.StatusInternalServerError {
		c.errors.Inc()
	}
}

func (c *Collector) IncErrors() {
	c.errors.Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
