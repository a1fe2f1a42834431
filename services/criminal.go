package services

import (
	"fmt"

	"kostennote/engine/ledger"
	"kostennote/engine/models"
	"kostennote/engine/tariffs"
)

// CriminalCalculator prices AHK services in criminal matters. Success and
// co-litigant surcharges are added once for the whole matter.
type CriminalCalculator struct {
	chain
}

// NewCriminalCalculator creates a CriminalCalculator on the given catalog
func NewCriminalCalculator(catalog *tariffs.Catalog) *CriminalCalculator {
	return &CriminalCalculator{chain: newChain(catalog, models.DomainCriminal)}
}

// Domain implements Calculator
func (c *CriminalCalculator) Domain() models.Domain { return models.DomainCriminal }

// Calculate implements Calculator
func (c *CriminalCalculator) Calculate(services []models.Service, cc models.CaseContext) (models.TotalResult, error) {
	var (
		lines    []models.CalculatedLine
		subtotal int64
	)
	for _, svc := range services {
		s, ok := svc.(models.CriminalService)
		if !ok {
			continue
		}
		post, ok := criminalPosts[s.Type]
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
			halve:       s.OnlyPenalty && halvesOnPenalty(post),
			includeERV:  s.IncludeERV,
			firstFiling: s.FirstFiling,
		})
		if err != nil {
			return models.TotalResult{}, fmt.Errorf("service %s: %w", s.ID, err)
		}
		lines = append(lines, out.lines...)
		subtotal += out.chainCents
	}

	lines = append(lines, caseSurcharges(subtotal, cc, lastDate(services))...)
	return ledger.Aggregate(lines, cc.VATExempt), nil
}
