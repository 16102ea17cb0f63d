// Package metrics provides Prometheus metrics for the CampusHub server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route, method, and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "campushub",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// RequestDuration measures HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "campushub",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// SearchTotal counts search requests by outcome.
	SearchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "campushub",
			Name:      "search_total",
			Help:      "Total number of search requests",
		},
		[]string{"status"},
	)

	// FeedFallbackTotal counts feeds that fell back to the generic list
	// because the user's interests matched nothing.
	FeedFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "campushub",
			Name:      "feed_fallback_total",
			Help:      "Feeds served from the generic list after an empty interest match",
		},
	)
)
