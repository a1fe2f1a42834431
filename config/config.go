package config

import (
	"log"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"kostennote/engine/logger"
	"kostennote/engine/models"
)

// EnvPrefix prefixes environment variables that override file settings,
// e.g. KOSTENNOTE_TARIFFCATALOG_URL for tariffCatalog.url.
const EnvPrefix = "KOSTENNOTE"

// Load loads application configuration from YAML files, an optional .env
// file and KOSTENNOTE_* environment variables, in increasing precedence.
func Load(env ...string) models.Config {
	// Default to "dev" environment if not specified
	environment := "dev"
	if len(env) > 0 && env[0] != "" {
		environment = env[0]
	}

	// Get the directory where config.go is located to find config files
	_, currentFilePath, _, _ := runtime.Caller(0)
	configDir := filepath.Dir(currentFilePath)

	// A missing .env file is the normal case outside local development
	if err := godotenv.Load(filepath.Join(configDir, ".env")); err == nil {
		log.Printf("Loaded environment overrides from %s", filepath.Join(configDir, ".env"))
	}

	v := viper.New()

	v.SetConfigName("config")
	v.AddConfigPath(configDir)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values in case config files are missing
	v.SetDefault("port", "8080")
	v.SetDefault("tariffCatalog.url", "")               // Empty: use the embedded catalog
	v.SetDefault("tariffCatalog.timeout", 10)           // Seconds
	v.SetDefault("circuitBreakerEnabled", true)         // Default to enabled
	v.SetDefault("circuitBreaker.requestThreshold", 5)  // Default: 5 requests minimum
	v.SetDefault("circuitBreaker.failureRatio", 0.5)    // Default: 50% failures
	v.SetDefault("circuitBreaker.timeout", 60)          // Default: 60 seconds timeout
	v.SetDefault("circuitBreaker.maxHalfOpenReqs", 100) // Default: 100 requests when half-open
	v.SetDefault("logging.enabled", true)               // Default: logging enabled
	v.SetDefault("logging.level", "INFO")               // Default: INFO level logging
	v.SetDefault("batch.maxMatters", 100)
	v.SetDefault("batch.concurrency", 4)

	// Try to read the common config file
	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	} else {
		log.Printf("Loaded base configuration from %s", v.ConfigFileUsed())
	}

	// If we're not in dev environment, try to load env-specific config
	if environment != "dev" {
		v.SetConfigName("config." + environment)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("Warning: Could not read environment config for '%s': %v", environment, err)
		} else {
			log.Printf("Loaded environment configuration from %s", v.ConfigFileUsed())
		}
	}

	config := models.Config{
		Port:        v.GetString("port"),
		Environment: environment,
		TariffCatalog: models.TariffCatalogConfig{
			URL:     v.GetString("tariffCatalog.url"),
			Timeout: v.GetInt("tariffCatalog.timeout"),
		},
		CircuitBreakerEnabled: v.GetBool("circuitBreakerEnabled"),
		CircuitBreaker: models.CircuitBreakerConfig{
			RequestThreshold: v.GetInt("circuitBreaker.requestThreshold"),
			FailureRatio:     v.GetFloat64("circuitBreaker.failureRatio"),
			Timeout:          v.GetInt("circuitBreaker.timeout"),
			MaxHalfOpenReqs:  v.GetInt("circuitBreaker.maxHalfOpenReqs"),
		},
		Logging: models.LoggingConfig{
			Enabled: v.GetBool("logging.enabled"),
			Level:   v.GetString("logging.level"),
		},
		Batch: models.BatchConfig{
			MaxMatters:  v.GetInt("batch.maxMatters"),
			Concurrency: v.GetInt("batch.concurrency"),
		},
	}

	// Configure the logger based on the settings
	logger.Configure(logger.Config{
		Enabled: config.Logging.Enabled,
		Level:   logger.LevelFromString(config.Logging.Level),
	})

	catalogSource := config.TariffCatalog.URL
	if catalogSource == "" {
		catalogSource = "embedded"
	}
	logger.Info("Configuration loaded for environment '%s': Port=%s, TariffCatalog=%s, CircuitBreakerEnabled=%v",
		environment, config.Port, catalogSource, config.CircuitBreakerEnabled)
	logger.Info("Circuit Breaker Config: RequestThreshold=%d, FailureRatio=%.2f, Timeout=%ds, MaxHalfOpenReqs=%d",
		config.CircuitBreaker.RequestThreshold, config.CircuitBreaker.FailureRatio,
		config.CircuitBreaker.Timeout, config.CircuitBreaker.MaxHalfOpenReqs)
	logger.Info("Logging Config: Enabled=%v, Level=%s", config.Logging.Enabled, config.Logging.Level)
	logger.Info("Batch Config: MaxMatters=%d, Concurrency=%d", config.Batch.MaxMatters, config.Batch.Concurrency)

	return config
}
