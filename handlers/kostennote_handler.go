package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/sourcegraph/conc/iter"

	"kostennote/engine/ledger"
	"kostennote/engine/logger"
	"kostennote/engine/metrics"
	"kostennote/engine/models"
	"kostennote/engine/services"
)

const maxBodyBytes = 1 << 20

// CalculationResponse is a priced matter, optionally with the lines grouped
// into per-service blocks.
type CalculationResponse struct {
	models.TotalResult
	Blocks []ledger.Block `json:"blocks,omitempty"`
}

// BatchItem is the outcome of one matter of a batch request
type BatchItem struct {
	Index  int                  `json:"index"`
	Result *CalculationResponse `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// KostennoteHandler serves the calculation endpoints
type KostennoteHandler struct {
	engine      *services.Engine
	batch       models.BatchConfig
	environment string
	log         *logger.Logger
}

// NewKostennoteHandler creates a handler pricing matters with engine
func NewKostennoteHandler(config models.Config, engine *services.Engine) *KostennoteHandler {
	batch := config.Batch
	if batch.MaxMatters <= 0 {
		batch.MaxMatters = 100
	}
	if batch.Concurrency <= 0 {
		batch.Concurrency = 4
	}
	return &KostennoteHandler{
		engine:      engine,
		batch:       batch,
		environment: config.Environment,
		log:         logger.Named("handlers"),
	}
}

// Routes mounts the calculation endpoints on r
func (h *KostennoteHandler) Routes(r chi.Router) {
	r.Post("/v1/kostennote", h.Calculate)
	r.Post("/v1/kostennote/batch", h.CalculateBatch)
	r.Get("/v1/defaults", h.Defaults)
}

// Calculate prices one matter. With ?grouped=true the response also carries
// the lines grouped by service.
func (h *KostennoteHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req MatterRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	grouped, _ := strconv.ParseBool(r.URL.Query().Get("grouped"))
	resp, status, err := h.calculate(req, grouped)
	if err != nil {
		h.respondWithError(w, status, err.Error())
		return
	}
	h.respond(w, http.StatusOK, resp)
}

// CalculateBatch prices independent matters concurrently. Failures are
// reported per matter; the request itself only fails on a malformed body.
func (h *KostennoteHandler) CalculateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []MatterRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&reqs); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(reqs) > h.batch.MaxMatters {
		h.respondWithError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("batch of %d matters exceeds the limit of %d", len(reqs), h.batch.MaxMatters))
		return
	}

	grouped, _ := strconv.ParseBool(r.URL.Query().Get("grouped"))
	mapper := iter.Mapper[MatterRequest, BatchItem]{MaxGoroutines: h.batch.Concurrency}
	items := mapper.Map(reqs, func(req *MatterRequest) BatchItem {
		resp, _, err := h.calculate(*req, grouped)
		if err != nil {
			return BatchItem{Error: err.Error()}
		}
		return BatchItem{Result: &resp}
	})
	for i := range items {
		items[i].Index = i
	}

	h.log.Debug("Priced batch of %d matters", len(items))
	h.respond(w, http.StatusOK, items)
}

// Defaults returns the creation defaults of a post or service type
func (h *KostennoteHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	domain := models.Domain(query.Get("domain"))
	if !domain.Valid() {
		h.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("unknown domain %q", domain))
		return
	}

	post := models.TariffPost(query.Get("post"))
	if serviceType := query.Get("type"); post == "" && serviceType != "" {
		var ok bool
		if post, ok = services.PostFor(domain, serviceType); !ok {
			h.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("unknown %s service type %q", domain, serviceType))
			return
		}
	}
	if post == "" {
		h.respondWithError(w, http.StatusBadRequest, "post or type parameter is required")
		return
	}

	h.respond(w, http.StatusOK, services.Defaults(post, domain))
}

// calculate validates and prices one matter. The returned status is the
// HTTP status matching the error.
func (h *KostennoteHandler) calculate(req MatterRequest, grouped bool) (CalculationResponse, int, error) {
	matter, err := req.toMatter()
	if err != nil {
		metrics.CalculationErrors.WithLabelValues(string(req.Context.Mode), h.environment).Inc()
		return CalculationResponse{}, http.StatusBadRequest, err
	}
	if err := models.ValidateMatter(matter); err != nil {
		metrics.CalculationErrors.WithLabelValues(string(req.Context.Mode), h.environment).Inc()
		return CalculationResponse{}, http.StatusBadRequest, err
	}

	result, err := h.engine.Calculate(matter)
	if err != nil {
		if errors.Is(err, services.ErrUnknownDomain) {
			return CalculationResponse{}, http.StatusBadRequest, err
		}
		return CalculationResponse{}, http.StatusInternalServerError, fmt.Errorf("error calculating Kostennote: %w", err)
	}

	resp := CalculationResponse{TotalResult: result}
	if grouped {
		resp.Blocks = ledger.GroupByService(result.Lines)
	}
	return resp, http.StatusOK, nil
}

func (h *KostennoteHandler) respond(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("Error encoding response: %v", err)
	}
}

func (h *KostennoteHandler) respondWithError(w http.ResponseWriter, statusCode int, message string) {
	h.respond(w, statusCode, models.ErrorResponse{Error: message})
}
