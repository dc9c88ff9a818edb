package prometheus

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "launch_dashboard"

// Collector owns the service's metric registry. It records HTTP traffic,
// dispatched chart updates and live session counts.
type Collector struct {
	registry *prom.Registry
	requests *prom.CounterVec
	latency  *prom.HistogramVec
	updates  *prom.CounterVec
	rejected *prom.CounterVec
	sessions prom.Gauge
}

// NewCollector creates a collector on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prom.NewRegistry(),
		requests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prom.DefBuckets,
		}, []string{"method", "route"}),
		updates: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "chart_updates_total",
			Help:      "Charts recomputed, by triggering signal and output.",
		}, []string{"signal", "output"}),
		rejected: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_events_total",
			Help:      "Widget events rejected, by signal.",
		}, []string{"signal"}),
		sessions: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "live_sessions",
			Help:      "Open live dashboard sessions.",
		}),
	}

	c.registry.MustRegister(
		c.requests, c.latency, c.updates, c.rejected, c.sessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Handler exposes the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (c *Collector) ObserveUpdate(signal, output string) {
	c.updates.WithLabelValues(signal, output).Inc()
}

func (c *Collector) ObserveRejected(signal string) {
	c.rejected.WithLabelValues(signal).Inc()
}

func (c *Collector) SessionOpened() { c.sessions.Inc() }
func (c *Collector) SessionClosed() { c.sessions.Dec() }
