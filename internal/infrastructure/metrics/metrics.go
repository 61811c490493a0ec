package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Gateway client metrics
	GatewayRequests *prometheus.CounterVec
	GatewayDuration *prometheus.HistogramVec
	GatewayRetries  prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		GatewayRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_gateway_requests_total",
				Help: "Total number of storage gateway requests",
			},
			[]string{"operation", "outcome"},
		),
		GatewayDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "expenses_gateway_request_duration_seconds",
				Help:    "Duration of storage gateway requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		GatewayRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "expenses_gateway_retries_total",
			Help: "Total number of retried gateway reads",
		}),
	}
}
