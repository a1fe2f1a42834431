package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kostennote/engine/metrics"
	"kostennote/engine/models"
	"kostennote/engine/services"
)

// NewRouter wires every endpoint of the service behind the metrics middleware
func NewRouter(config models.Config, engine *services.Engine) http.Handler {
	r := chi.NewRouter()
	r.Use(metrics.Middleware(config.Environment))

	NewKostennoteHandler(config, engine).Routes(r)
	r.Get("/healthz", Health)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Health reports that the process is serving
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
