package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "picture_client",
			Name:      "requests_total",
			Help:      "Calls issued through the transport by outcome.",
		},
		[]string{"method", "path", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "picture_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of calls issued through the transport.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	authRedirectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "picture_client",
			Name:      "auth_redirects_total",
			Help:      "Session-redirect policy decisions for 40100 responses.",
		},
		[]string{"result"},
	)
)
