// Package metrics provides Prometheus metrics for the tierboard service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultRefreshInterval = 10 * time.Second

// Manager owns every collector exported by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Load pipeline
	loads         *prometheus.CounterVec
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	fetchLatency  *prometheus.HistogramVec
	fetchErrors   *prometheus.CounterVec
	rankLatency   prometheus.Histogram
	playersTotal  prometheus.Gauge
	tierPlayers   *prometheus.GaugeVec
	notifications *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
	refreshRejected     prometheus.Counter

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // process-wide collectors

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps default Go collectors out

func init() { //nolint:gochecknoinits // global collectors are registered once
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tierboard",
		subsystem:        "leaderboard",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.loads = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "loads_total",
		Help:      "Leaderboard loads by outcome (success, failure)",
	}, []string{"outcome"})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_hits_total",
		Help:      "Loads served from the gateway cache",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_misses_total",
		Help:      "Loads that had to fetch the source",
	})

	m.fetchLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_latency_milliseconds",
		Help:      "Source fetch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"source"})

	m.fetchErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_errors_total",
		Help:      "Source fetch failures by reason",
	}, []string{"reason"})

	m.rankLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_latency_milliseconds",
		Help:      "Time spent classifying and ranking a fetched document",
		Buckets:   m.histogramBuckets,
	})

	m.playersTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players",
		Help:      "Players in the most recently committed leaderboard",
	})

	m.tierPlayers = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tier_players",
		Help:      "Players per seniority tier in the committed leaderboard",
	}, []string{"level"})

	m.notifications = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_notifications_total",
		Help:      "Listener notifications fired per observable slot",
	}, []string{"slot"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.httpErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_errors_total",
		Help:      "HTTP error responses by endpoint, method, error type and severity",
	}, []string{"endpoint", "method", "error_type", "severity"})

	m.refreshRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_rejected_total",
		Help:      "Refresh requests rejected by the rate limiter",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_bytes",
		Help:      "Heap bytes allocated",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Number of goroutines",
	})
}

// RecordLoad counts a coordinator load with its outcome.
func RecordLoad(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	globalManager.loads.WithLabelValues(outcome).Inc()
}

// RecordCacheHit counts a load served from cache.
func RecordCacheHit() { globalManager.cacheHits.Inc() }

// RecordCacheMiss counts a load that needed a fetch.
func RecordCacheMiss() { globalManager.cacheMisses.Inc() }

// RecordFetchLatency observes one source fetch.
func RecordFetchLatency(source string, latencyMs float64) {
	globalManager.fetchLatency.WithLabelValues(source).Observe(latencyMs)
}

// RecordFetchError counts a failed fetch.
func RecordFetchError(reason string) {
	globalManager.fetchErrors.WithLabelValues(reason).Inc()
}

// RecordRankLatency observes the build-and-rank step.
func RecordRankLatency(latencyMs float64) {
	globalManager.rankLatency.Observe(latencyMs)
}

// UpdatePlayers sets the committed player count and the tier distribution.
func UpdatePlayers(total int, distribution map[string]int) {
	globalManager.playersTotal.Set(float64(total))
	globalManager.tierPlayers.Reset()
	for level, n := range distribution {
		globalManager.tierPlayers.WithLabelValues(level).Set(float64(n))
	}
}

// RecordNotification counts listener fan-out for a slot.
func RecordNotification(slot string, listeners int) {
	globalManager.notifications.WithLabelValues(slot).Add(float64(listeners))
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes HTTP latency.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordHTTPError counts an error response.
func RecordHTTPError(endpoint, method, errorType, severity string) {
	globalManager.httpErrors.WithLabelValues(endpoint, method, errorType, severity).Inc()
}

// RecordRefreshRejected counts a throttled refresh.
func RecordRefreshRejected() { globalManager.refreshRejected.Inc() }

// UpdateSystemMemoryUsage sets allocated heap bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the registry served on /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
