package models

// Config holds application configuration
type Config struct {
	Port                  string
	Environment           string
	TariffCatalog         TariffCatalogConfig
	CircuitBreakerEnabled bool
	CircuitBreaker        CircuitBreakerConfig
	Logging               LoggingConfig
	Batch                 BatchConfig
}

// TariffCatalogConfig points at an optional remote tariff catalog.
// An empty URL means the embedded catalog is used.
type TariffCatalogConfig struct {
	URL     string
	Timeout int // Seconds before a catalog fetch is abandoned
}

// CircuitBreakerConfig holds the circuit breaker configuration parameters
type CircuitBreakerConfig struct {
	RequestThreshold int     // Minimum number of requests before the circuit can trip
	FailureRatio     float64 // Percentage (0.0-1.0) of failures required to trip the circuit
	Timeout          int     // Seconds before half-open state is tried after circuit opens
	MaxHalfOpenReqs  int     // Maximum requests allowed when circuit is half-open
}

// LoggingConfig holds configuration for application logging
type LoggingConfig struct {
	Enabled bool   // Whether logging is enabled
	Level   string // Log level (NONE, ERROR, WARN, INFO, DEBUG)
}

// BatchConfig limits the batch calculation endpoint
type BatchConfig struct {
	MaxMatters  int
	Concurrency int
}

// ErrorResponse is returned by the HTTP layer when a request cannot be served
type ErrorResponse struct {
	Error string `json:"error"`
}
