package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeNotFound    = "not_found"
	OutcomeClientError = "client_error"
	OutcomeServerError = "server_error"
	OutcomeTransport   = "transport_error"
	OutcomeParse       = "parse_error"
)

var (
	registry *prometheus.Registry

	// HTTP request rate by route and status.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTP request latency per route.
	HTTPRequestDuration *prometheus.HistogramVec

	// Forecast provider calls by outcome. Exactly one per forecast request that passes validation.
	WeatherAPICallsTotal *prometheus.CounterVec

	// Forecast provider latency by outcome.
	WeatherAPIDuration *prometheus.HistogramVec

	// Forecast views served, by view and resolution.
	ForecastViewsTotal *prometheus.CounterVec

	// Sky points rendered without an icon.
	MissingAssetsTotal *prometheus.CounterVec
)

func init() {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "httpRequestsTotal",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "statusCode"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "httpRequestDurationSeconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	WeatherAPICallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherApiCallsTotal",
			Help: "Total number of forecast provider calls",
		},
		[]string{"outcome"},
	)
	WeatherAPIDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weatherApiDurationSeconds",
			Help:    "Forecast provider latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
	ForecastViewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forecastViewsTotal",
			Help: "Total number of forecast views built",
		},
		[]string{"view", "resolution"},
	)
	MissingAssetsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "missingAssetsTotal",
			Help: "Sky points rendered without an icon",
		},
		[]string{"condition"},
	)

	registry.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		WeatherAPICallsTotal,
		WeatherAPIDuration,
		ForecastViewsTotal,
		MissingAssetsTotal,
	)
}

// ObserveWeatherAPICall records one provider call.
func ObserveWeatherAPICall(outcome string, elapsed time.Duration) {
	WeatherAPICallsTotal.WithLabelValues(outcome).Inc()
	WeatherAPIDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, statusCode int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// OutcomeForStatus maps a provider HTTP status to an outcome label.
func OutcomeForStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return OutcomeSuccess
	case statusCode == http.StatusNotFound:
		return OutcomeNotFound
	case statusCode >= 400 && statusCode < 500:
		return OutcomeClientError
	case statusCode >= 500:
		return OutcomeServerError
	}
	return OutcomeTransport
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
