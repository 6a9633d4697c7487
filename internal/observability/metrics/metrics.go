package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "uniconv_"

// Assist request kinds and results.
const (
	AssistKindConvert = "convert"
	AssistKindImage   = "image"

	AssistResultSuccess = "success"
	AssistResultError   = "error"
)

var (
	conversionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "conversions_total",
			Help: "Completed unit conversions by category",
		},
		[]string{"category"},
	)

	convertErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "convert_errors_total",
			Help: "Failed conversion requests by reason",
		},
		[]string{"reason"},
	)

	assistRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "assist_requests_total",
			Help: "Generative-assist requests by kind and result",
		},
		[]string{"kind", "result"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    metricPrefix + "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// Register registers all collectors with the default registry. Call once
// from the server main.
func Register() {
	prometheus.MustRegister(
		conversionsTotal,
		convertErrorsTotal,
		assistRequestsTotal,
		httpDurationSeconds,
	)
}

// IncConversion counts a completed conversion.
func IncConversion(category string) {
	conversionsTotal.WithLabelValues(category).Inc()
}

// IncConvertError counts a failed conversion request.
func IncConvertError(reason string) {
	convertErrorsTotal.WithLabelValues(reason).Inc()
}

// IncAssistRequest counts a generative-assist call.
func IncAssistRequest(kind, result string) {
	assistRequestsTotal.WithLabelValues(kind, result).Inc()
}

// ObserveHTTP records request latency for a route.
func ObserveHTTP(route string, d time.Duration) {
	httpDurationSeconds.WithLabelValues(route).Observe(d.Seconds())
}
