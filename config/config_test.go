package config

import (
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Test default "dev" environment
	t.Run("Default Dev Environment", func(t *testing.T) {
		config := Load()

		if config.Port != "8080" {
			t.Errorf("Expected Port to be '8080', got '%s'", config.Port)
		}
		if config.TariffCatalog.URL != "" {
			t.Errorf("Expected the embedded tariff catalog, got '%s'", config.TariffCatalog.URL)
		}
		if config.Logging.Level != "DEBUG" {
			t.Errorf("Expected logging level 'DEBUG', got '%s'", config.Logging.Level)
		}
		if config.Batch.MaxMatters != 100 || config.Batch.Concurrency != 4 {
			t.Errorf("Expected batch limits 100/4, got %d/%d", config.Batch.MaxMatters, config.Batch.Concurrency)
		}
	})

	// Test "prod" environment
	t.Run("Production Environment", func(t *testing.T) {
		config := Load("prod")

		if config.Port != "8081" {
			t.Errorf("Expected Port to be '8081', got '%s'", config.Port)
		}
		if config.TariffCatalog.URL != "http://tariff-catalog:5001/v1/catalog" {
			t.Errorf("Expected remote tariff catalog, got '%s'", config.TariffCatalog.URL)
		}
		if config.CircuitBreaker.RequestThreshold != 10 || config.CircuitBreaker.FailureRatio != 0.3 {
			t.Errorf("Expected production circuit breaker settings, got %+v", config.CircuitBreaker)
		}
		// not overridden by config.prod.yaml
		if config.CircuitBreaker.MaxHalfOpenReqs != 100 {
			t.Errorf("Expected MaxHalfOpenReqs 100 from base config, got %d", config.CircuitBreaker.MaxHalfOpenReqs)
		}
		if config.Environment != "prod" {
			t.Errorf("Expected environment 'prod', got '%s'", config.Environment)
		}
	})

	// Test non-existent environment (should fall back to defaults)
	t.Run("Non-existent Environment", func(t *testing.T) {
		config := Load("nonexistent")

		if config.Port != "8080" {
			t.Errorf("Expected Port to be '8080', got '%s'", config.Port)
		}
		if config.TariffCatalog.Timeout != 10 {
			t.Errorf("Expected catalog timeout 10, got %d", config.TariffCatalog.Timeout)
		}
	})

	// Environment variables take precedence over files
	t.Run("Environment Override", func(t *testing.T) {
		t.Setenv("KOSTENNOTE_PORT", "9090")
		t.Setenv("KOSTENNOTE_BATCH_CONCURRENCY", "2")

		config := Load("prod")

		if config.Port != "9090" {
			t.Errorf("Expected Port to be '9090', got '%s'", config.Port)
		}
		if config.Batch.Concurrency != 2 {
			t.Errorf("Expected batch concurrency 2, got %d", config.Batch.Concurrency)
		}
	})
}
