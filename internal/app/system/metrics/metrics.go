// Package metrics exposes Prometheus instruments for upstream API traffic
// and view mounts.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeHTTPError = "http_error"
	OutcomeTransport = "transport_error"
	OutcomeCanceled  = "canceled"
)

var (
	upstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Requests sent to the OctoFit API, by method, resource and outcome.",
	}, []string{"method", "resource", "outcome"})

	upstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "octofit",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Latency of requests sent to the OctoFit API.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "resource"})

	viewMounts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "view",
		Name:      "mounts_total",
		Help:      "Resource view mounts, by view and resulting phase.",
	}, []string{"view", "phase"})
)

func init() {
	prometheus.MustRegister(upstreamRequests, upstreamDuration, viewMounts)
}

// ObserveUpstream records one completed upstream request.
func ObserveUpstream(method, resource, outcome string, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(method, resource, outcome).Inc()
	upstreamDuration.WithLabelValues(method, resource).Observe(elapsed.Seconds())
}

// RecordMount records a view mount that reached phase.
func RecordMount(view, phase string) {
	viewMounts.WithLabelValues(view, phase).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
