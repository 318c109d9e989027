package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GatewayMetrics records outcome counts and latency for outbound
// backend calls.
type GatewayMetrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
}

// NewGatewayMetrics registers the gateway metrics on the provided registerer.
func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	if reg == nil {
		return &GatewayMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backend_request_duration_seconds",
		Help:    "Duration of outbound backend requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_request_outcomes",
		Help: "Outbound backend request results by outcome.",
	}, []string{"method", "outcome"})
	reg.MustRegister(duration, outcomes)
	return &GatewayMetrics{
		duration: duration,
		outcomes: outcomes,
	}
}

// ObserveRequest records one completed call.
func (g *GatewayMetrics) ObserveRequest(method, outcome string, elapsed time.Duration) {
	if g == nil {
		return
	}
	if g.duration != nil {
		g.duration.WithLabelValues(normalizeLabel(method)).Observe(elapsed.Seconds())
	}
	if g.outcomes != nil {
		g.outcomes.WithLabelValues(normalizeLabel(method), normalizeLabel(outcome)).Inc()
	}
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
