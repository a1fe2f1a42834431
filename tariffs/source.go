package tariffs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sony/gobreaker"

	"kostennote/engine/logger"
	"kostennote/engine/metrics"
	"kostennote/engine/models"
)

const breakerName = "tariff-catalog"

// sourceError is one entry of the error document a catalog service returns
type sourceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Source fetches a tariff catalog published by a remote catalog service.
// Fetches go through a circuit breaker; Load falls back to the embedded
// catalog whenever the remote one is unavailable or invalid.
type Source struct {
	url         string
	client      *http.Client
	cb          *gobreaker.CircuitBreaker
	environment string
	log         *logger.Logger
}

// NewSource creates a Source from the application configuration
func NewSource(cfg models.Config) *Source {
	timeout := time.Duration(cfg.TariffCatalog.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	s := &Source{
		url:         cfg.TariffCatalog.URL,
		client:      &http.Client{Timeout: timeout},
		environment: cfg.Environment,
		log:         logger.Named("tariffs"),
	}
	if cfg.CircuitBreakerEnabled {
		s.cb = newBreaker(cfg.CircuitBreaker, cfg.Environment, s.log)
	}
	return s
}

func newBreaker(cbConfig models.CircuitBreakerConfig, environment string, log *logger.Logger) *gobreaker.CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: uint32(cbConfig.MaxHalfOpenReqs),
		Timeout:     time.Duration(cbConfig.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= uint32(cbConfig.RequestThreshold) && failureRatio >= cbConfig.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Info("Circuit breaker '%s' changed from '%v' to '%v' [threshold=%d, ratio=%.2f]",
				name, from, to, cbConfig.RequestThreshold, cbConfig.FailureRatio)

			var stateValue float64
			switch to {
			case gobreaker.StateClosed:
				stateValue = 1
			case gobreaker.StateHalfOpen:
				stateValue = 2
			case gobreaker.StateOpen:
				stateValue = 3
			}
			metrics.CircuitBreakerState.WithLabelValues(name, environment).Set(stateValue)
		},
	}
	metrics.CircuitBreakerState.WithLabelValues(breakerName, environment).Set(1)
	return gobreaker.NewCircuitBreaker(settings)
}

// Load returns the remote catalog, or the embedded one if no URL is
// configured or the fetch fails.
func (s *Source) Load(ctx context.Context) *Catalog {
	if s.url == "" {
		return Default()
	}
	catalog, err := s.Fetch(ctx)
	if err != nil {
		s.log.Error("Using embedded tariff catalog: %v", err)
		return Default()
	}
	s.log.Info("Loaded tariff catalog from %s (periods: %s)", s.url, strings.Join(catalog.Periods(), ", "))
	return catalog
}

// Fetch retrieves and validates the remote catalog
func (s *Source) Fetch(ctx context.Context) (*Catalog, error) {
	if s.url == "" {
		return nil, errors.New("tariff catalog url is not configured")
	}

	if s.cb == nil {
		catalog, err := s.doFetch(ctx)
		if err != nil {
			metrics.CatalogFetchErrors.WithLabelValues(s.environment).Inc()
			return nil, fmt.Errorf("tariff catalog service error: %w", err)
		}
		return catalog, nil
	}

	result, err := s.cb.Execute(func() (interface{}, error) {
		return s.doFetch(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRejected.WithLabelValues(breakerName, s.environment).Inc()
			return nil, fmt.Errorf("tariff catalog service is unavailable: %w", err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "false", s.environment).Inc()
		metrics.CatalogFetchErrors.WithLabelValues(s.environment).Inc()
		return nil, fmt.Errorf("tariff catalog service error: %w", err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "true", s.environment).Inc()
	return result.(*Catalog), nil
}

// doFetch performs the HTTP request; it is wrapped by the circuit breaker
func (s *Source) doFetch(ctx context.Context) (*Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("Error requesting tariff catalog: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var errorResponse struct {
			Errors []sourceError `json:"errors"`
		}
		if jsonErr := json.Unmarshal(body, &errorResponse); jsonErr == nil && len(errorResponse.Errors) > 0 {
			messages := make([]string, 0, len(errorResponse.Errors))
			for _, e := range errorResponse.Errors {
				messages = append(messages, e.Code+": "+e.Message)
			}
			return nil, fmt.Errorf("catalog service returned %d: %s", resp.StatusCode, strings.Join(messages, "; "))
		}
		return nil, fmt.Errorf("catalog service returned error code: %d", resp.StatusCode)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tariff catalog: %w", err)
	}
	return Build(doc)
}
