package infrastructure

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"steadyday.app/internal/ports"
)

// PrometheusCollectors holds the process-wide Prometheus instruments
type PrometheusCollectors struct {
	UpstreamRequests *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec
	OperationResults *prometheus.CounterVec
}

var (
	globalCollectors     *PrometheusCollectors
	globalCollectorsOnce sync.Once
)

// promauto registers on the default registry, so the instruments are built once per process.
func getCollectors() *PrometheusCollectors {
	globalCollectorsOnce.Do(func() {
		globalCollectors = &PrometheusCollectors{
			UpstreamRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "steadyday_upstream_requests_total",
					Help: "The total number of upstream data.gov.sg requests",
				},
				[]string{"endpoint", "outcome"},
			),
			UpstreamLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "steadyday_upstream_request_duration_seconds",
					Help:    "Upstream request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"endpoint"},
			),
			OperationResults: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "steadyday_operation_results_total",
					Help: "The total number of fetch operation results by outcome",
				},
				[]string{"operation", "outcome"},
			),
		}
	})
	return globalCollectors
}

// MetricsCollectorAdapter records metrics to Prometheus and keeps an
// in-memory copy for the JSON metrics endpoint.
type MetricsCollectorAdapter struct {
	collectors       *PrometheusCollectors
	upstreamCalls    map[string]int64
	upstreamFailures map[string]int64
	outcomes         map[string]int64
	lastUpdated      time.Time
	now              func() time.Time
	mu               sync.RWMutex
}

// NewMetricsCollectorAdapter creates a new metrics collector
func NewMetricsCollectorAdapter() *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		collectors:       getCollectors(),
		upstreamCalls:    make(map[string]int64),
		upstreamFailures: make(map[string]int64),
		outcomes:         make(map[string]int64),
		now:              time.Now,
	}
}

// RecordUpstreamCall records a single upstream request
func (m *MetricsCollectorAdapter) RecordUpstreamCall(endpoint string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.collectors.UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	m.collectors.UpstreamLatency.WithLabelValues(endpoint).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.upstreamCalls[endpoint]++
	if !success {
		m.upstreamFailures[endpoint]++
	}
	m.lastUpdated = m.now()
}

// RecordOperationResult records the outcome of a fetch operation
func (m *MetricsCollectorAdapter) RecordOperationResult(operation string, outcome string) {
	m.collectors.OperationResults.WithLabelValues(operation, outcome).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[operation+"."+outcome]++
	m.lastUpdated = m.now()
}

// Snapshot returns a copy of the in-memory counters
func (m *MetricsCollectorAdapter) Snapshot() ports.MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return ports.MetricsSnapshot{
		UpstreamCalls:    copyCounts(m.upstreamCalls),
		UpstreamFailures: copyCounts(m.upstreamFailures),
		Outcomes:         copyCounts(m.outcomes),
		LastUpdated:      m.lastUpdated,
	}
}

func copyCounts(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
