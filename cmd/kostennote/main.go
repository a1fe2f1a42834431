package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"kostennote/engine/config"
	"kostennote/engine/handlers"
	"kostennote/engine/logger"
	"kostennote/engine/services"
	"kostennote/engine/tariffs"
)

func main() {
	// Get environment from command line args
	env := "dev"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}

	// Log with standard log package until logger is configured
	fmt.Printf("===> Starting application with environment: %v\n", env)

	cfg := config.Load(env)

	logger.Info("===> Application starting with environment: %v", env)
	logger.Debug("===> Loaded configuration: %+v", cfg)

	// The remote catalog is read once; without one the embedded catalog is used
	catalog := tariffs.NewSource(cfg).Load(context.Background())
	logger.Info("Tariff periods: %s", strings.Join(catalog.Periods(), ", "))

	engine := services.NewEngine(catalog, cfg.Environment)
	handler := handlers.NewRouter(cfg, engine)

	logger.Info("Server started on port %s in %s environment", cfg.Port, env)
	logger.Info("Metrics available at http://localhost:%s/metrics", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("Server failed to start: %v", err)
	}
}
