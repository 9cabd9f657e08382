package twitterapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "twitterapi_requests_total",
	Help: "Lookups sent to the Twitter API, by endpoint and HTTP status (0 for transport errors)",
}, []string{"endpoint", "status"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "twitterapi_request_duration_seconds",
	Help:    "Latency of Twitter API lookups",
	Buckets: prometheus.ExponentialBuckets(0.05, 2, 8),
}, []string{"endpoint"})
