package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analyses counts per-ticker analysis outcomes ("ok" or "skipped").
var Analyses = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "credtech_analyses_total",
	Help: "Per-ticker analysis attempts by outcome.",
}, []string{"outcome"})

// SourceErrors counts upstream data source failures by collaborator.
var SourceErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "credtech_source_errors_total",
	Help: "External data source failures by source name.",
}, []string{"source"})

// RequestDuration tracks HTTP handler latency per route.
var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "credtech_http_request_duration_seconds",
	Help:    "HTTP request duration by route.",
	Buckets: prometheus.DefBuckets,
}, []string{"route"})
