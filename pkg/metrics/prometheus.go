// Package metrics provides Prometheus metrics for the batstat pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Pipeline metrics
	rowsLoaded       prometheus.Counter
	rowsDropped      prometheus.Counter
	reportsBuilt     prometheus.Counter
	pipelineDuration prometheus.Histogram
	careerCount      prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "batstat",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.rowsLoaded = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "rows_loaded_total",
		Help:      "Raw rows read from the input source.",
	})
	m.rowsDropped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "rows_dropped_total",
		Help:      "Rows dropped by the complete-case filter.",
	})
	m.reportsBuilt = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "reports_built_total",
		Help:      "Reports assembled successfully.",
	})
	m.pipelineDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "pipeline_duration_seconds",
		Help:      "Wall time of one full pipeline run.",
		Buckets:   m.histogramBuckets,
	})
	m.careerCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "qualifying_careers",
		Help:      "Career totals records meeting the at-bats threshold in the last run.",
	})
	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint and status.",
	}, []string{"endpoint", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by endpoint.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint"})

	return m
}

// Handler exposes the global registry for a /metrics route.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// RecordRowsLoaded adds raw rows read from a source.
func RecordRowsLoaded(n int) {
	globalManager.rowsLoaded.Add(float64(n))
}

// RecordRowsDropped adds rows removed during cleaning.
func RecordRowsDropped(n int) {
	globalManager.rowsDropped.Add(float64(n))
}

// RecordReportBuilt counts one assembled report.
func RecordReportBuilt() {
	globalManager.reportsBuilt.Inc()
}

// ObservePipelineDuration records one pipeline run's wall time.
func ObservePipelineDuration(d time.Duration) {
	globalManager.pipelineDuration.Observe(d.Seconds())
}

// UpdateCareerCount sets the qualifying career count from the last run.
func UpdateCareerCount(n int) {
	globalManager.careerCount.Set(float64(n))
}

// RecordHTTPRequest counts a finished request.
func RecordHTTPRequest(endpoint string, status int) {
	globalManager.httpRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// ObserveHTTPDuration records a request's latency.
func ObserveHTTPDuration(endpoint string, d time.Duration) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}
