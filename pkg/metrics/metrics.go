package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthAttempts records authentication attempts by result (success|failure).
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campuscache_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"result"},
	)

	// FindsLogged counts successfully recorded cache finds.
	FindsLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campuscache_finds_logged_total",
			Help: "Total number of cache finds recorded",
		},
	)

	// CachesCreated counts caches created through the API.
	CachesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campuscache_caches_created_total",
			Help: "Total number of caches created",
		},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campuscache_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
