package services

import (
	"errors"
	"fmt"

	"kostennote/engine/logger"
	"kostennote/engine/metrics"
	"kostennote/engine/models"
	"kostennote/engine/tariffs"
)

// ErrUnknownDomain is returned for a matter whose mode has no calculator
var ErrUnknownDomain = errors.New("unknown domain")

// Engine dispatches matters to the calculator of their domain
type Engine struct {
	calculators map[models.Domain]Calculator
	environment string
	log         *logger.Logger
}

// NewEngine creates an Engine with the four domain calculators registered
func NewEngine(catalog *tariffs.Catalog, environment string) *Engine {
	e := &Engine{
		calculators: make(map[models.Domain]Calculator, len(models.Domains)),
		environment: environment,
		log:         logger.Named("engine"),
	}
	e.Register(NewCivilCalculator(catalog))
	e.Register(NewCriminalCalculator(catalog))
	e.Register(NewDetentionCalculator(catalog))
	e.Register(NewAdminPenalCalculator(catalog))
	return e
}

// Register adds or replaces the calculator of its domain
func (e *Engine) Register(c Calculator) {
	e.calculators[c.Domain()] = c
}

// Calculate prices one matter. The matter is not validated here; callers
// at a trust boundary use models.ValidateMatter first.
func (e *Engine) Calculate(m models.Matter) (models.TotalResult, error) {
	domain := m.Context.Mode
	calculator, ok := e.calculators[domain]
	if !ok {
		metrics.CalculationErrors.WithLabelValues(string(domain), e.environment).Inc()
		return models.TotalResult{}, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
	}

	result, err := calculator.Calculate(m.Services, m.Context)
	if err != nil {
		metrics.CalculationErrors.WithLabelValues(string(domain), e.environment).Inc()
		e.log.Error("Calculation failed for %s matter: %v", domain, err)
		return models.TotalResult{}, err
	}

	metrics.CalculationsTotal.WithLabelValues(string(domain), e.environment).Inc()
	e.log.Debug("Calculated %s matter: %d services, %d lines, total %s",
		domain, len(m.Services), len(result.Lines), models.FormatCents(result.TotalCents))
	return result, nil
}
