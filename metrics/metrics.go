package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HttpRequestsTotal counts the number of HTTP requests processed
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kostennote_http_requests_total",
			Help: "The total number of HTTP requests",
		},
		[]string{"endpoint", "method", "status", "environment"},
	)

	// HttpRequestDuration tracks the duration of HTTP requests
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kostennote_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "environment"},
	)

	// CalculationsTotal counts the Kostennoten computed per domain
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kostennote_calculations_total",
			Help: "The total number of fee calculations performed",
		},
		[]string{"domain", "environment"},
	)

	// CalculationErrors counts calculations rejected by validation or the resolver
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kostennote_calculation_errors_total",
			Help: "The total number of failed fee calculations",
		},
		[]string{"domain", "environment"},
	)

	// UnknownServiceTypes counts services that produced no lines because their type is not recognised
	UnknownServiceTypes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kostennote_unknown_service_types_total",
			Help: "Services skipped because their type or tariff post is not recognised",
		},
		[]string{"domain"},
	)

	// CatalogFetchErrors counts failed remote tariff catalog fetches
	CatalogFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kostennote_catalog_fetch_errors_total",
			Help: "The total number of errors fetching the remote tariff catalog",
		},
		[]string{"environment"},
	)

	// CircuitBreakerState tracks the current state of the circuit breaker (1=closed, 2=half-open, 3=open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kostennote_circuit_breaker_state",
			Help: "Current state of the circuit breaker: 1=closed, 2=half-open, 3=open",
		},
		[]string{"name", "environment"},
	)

	// CircuitBreakerRejected counts requests rejected due to open circuit
	CircuitBreakerRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kostennote_circuit_breaker_rejected_total",
			Help: "Number of requests rejected due to open circuit",
		},
		[]string{"name", "environment"},
	)

	// CircuitBreakerRequests counts requests going through circuit breaker
	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kostennote_circuit_breaker_requests_total",
			Help: "Number of requests going through circuit breaker",
		},
		[]string{"name", "success", "environment"},
	)
)
