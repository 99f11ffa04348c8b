// Package metrics exposes load and request counters in the Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "count_dashboard"

// Metrics holds the application collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	loads           *prometheus.CounterVec
	fileFailures    *prometheus.CounterVec
	renders         *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them, along with the Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Load cycles, by whether they produced usable data.",
		}, []string{"result"}),
		fileFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "file_failures_total",
			Help:      "Input files that failed to load, by error kind.",
		}, []string{"kind"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Reports rendered, by output surface.",
		}, []string{"surface"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route pattern and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
	m.registry.MustRegister(
		m.loads,
		m.fileFailures,
		m.renders,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// LoadCompleted counts one load cycle.
func (m *Metrics) LoadCompleted(usable bool) {
	result := "unusable"
	if usable {
		result = "usable"
	}
	m.loads.WithLabelValues(result).Inc()
}

// FileFailed counts one failed input file.
func (m *Metrics) FileFailed(kind string) {
	m.fileFailures.WithLabelValues(kind).Inc()
}

// Rendered counts one rendered report on surface ("html", "json", "csv", "xlsx", ...).
func (m *Metrics) Rendered(surface string) {
	m.renders.WithLabelValues(surface).Inc()
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
