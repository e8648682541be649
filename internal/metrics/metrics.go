package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// result is "success", "exists" or "error"
	BlogGenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_generation_total",
			Help: "Total number of blog post generation attempts",
		},
		[]string{"result"},
	)

	// result is "hit", "fetched", "stale" or "default"
	SettingsCacheFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settings_cache_fetch_total",
			Help: "Site settings reads by how they were served",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordGeneration(result string) {
	BlogGenerationTotal.WithLabelValues(result).Inc()
}

func RecordSettingsRead(result string) {
	SettingsCacheFetchTotal.WithLabelValues(result).Inc()
}
