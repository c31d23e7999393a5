package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "elevateai_client",
			Name:      "requests_total",
			Help:      "API calls by operation and HTTP status (\"error\" when no response).",
		},
		[]string{"operation", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "elevateai_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of API calls.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		},
		[]string{"operation"},
	)

	uploadBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "elevateai_client",
			Name:      "upload_bytes_total",
			Help:      "Multipart bytes sent by media uploads.",
		},
	)

	pollAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "elevateai_client",
			Name:      "poll_attempts_total",
			Help:      "Status polls issued by AwaitProcessed, by outcome.",
		},
		[]string{"outcome"},
	)
)
