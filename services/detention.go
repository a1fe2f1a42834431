package services

import (
	"fmt"

	"kostennote/engine/ledger"
	"kostennote/engine/models"
	"kostennote/engine/tariffs"
)

// DetentionCalculator prices AHK services in detention matters. There are
// no case-level surcharges.
type DetentionCalculator struct {
	chain
}

// NewDetentionCalculator creates a DetentionCalculator on the given catalog
func NewDetentionCalculator(catalog *tariffs.Catalog) *DetentionCalculator {
	return &DetentionCalculator{chain: newChain(catalog, models.DomainDetention)}
}

// Domain implements Calculator
func (c *DetentionCalculator) Domain() models.Domain { return models.DomainDetention }

// Calculate implements Calculator. Detention services are priced one by one
// on the fixed court basis.
func (c *DetentionCalculator) Calculate(services []models.Service, cc models.CaseContext) (models.TotalResult, error) {
	var lines []models.CalculatedLine
	for _, svc := range services {
		s, ok := svc.(models.DetentionService)
		if !ok {
			continue
		}
		post, ok := detentionPosts[s.Type]
		if !ok {
			c.skip(s, fmt.Sprintf("unknown service type %q", s.Type))
			continue
		}

		out, err := c.price(item{
			id:          s.ID,
			date:        s.Date,
			post:        post,
			basisCents:  fixedBasis(c.catalog, cc, s.Date),
			halfHours:   s.DurationHalfHours,
			waiting:     s.WaitingHalfHours,
			multiplier:  s.ESMultiplier,
			frustrated:  s.Frustrated,
			includeERV:  s.IncludeERV,
			firstFiling: s.FirstFiling,
		})
		if err != nil {
			return models.TotalResult{}, fmt.Errorf("service %s: %w", s.ID, err)
		}
		lines = append(lines, out.lines...)
	}
	return ledger.Aggregate(lines, cc.VATExempt), nil
}
