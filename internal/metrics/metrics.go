// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so the
// /metrics route only needs promhttp.Handler().
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Completed HTTP requests by method, route pattern, and status.",
		}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"})

	ValidationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Requests halted by validation, by failure code.",
		}, []string{"code"})

	PanicsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_panics_total",
			Help: "Handler panics recovered by the pipeline.",
		})

	UsersStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "users_stored",
			Help: "Number of users currently held in memory.",
		})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ValidationFailuresTotal,
		PanicsTotal,
		UsersStored,
	)
}
