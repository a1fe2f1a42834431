package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// Middleware returns chi-compatible middleware recording request metrics
func Middleware(environment string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return MetricsMiddleware(next, environment)
	}
}

// MetricsMiddleware wraps an HTTP handler with metrics instrumentation
func MetricsMiddleware(next http.Handler, environment string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rww := &responseWriterWrapper{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		startTime := time.Now()
		next.ServeHTTP(rww, r)
		duration := time.Since(startTime).Seconds()

		endpoint := routePattern(r)
		HttpRequestsTotal.WithLabelValues(endpoint, r.Method, strconv.Itoa(rww.statusCode), environment).Inc()
		HttpRequestDuration.WithLabelValues(endpoint, r.Method, environment).Observe(duration)
	})
}

// routePattern prefers the matched chi route so that path parameters do not
// explode label cardinality.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// responseWriterWrapper is a custom response writer that captures the status code
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code before calling the wrapped ResponseWriter
func (rww *responseWriterWrapper) WriteHeader(statusCode int) {
	rww.statusCode = statusCode
	rww.ResponseWriter.WriteHeader(statusCode)
}
