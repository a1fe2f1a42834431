package services

import (
	"fmt"

	"kostennote/engine/ledger"
	"kostennote/engine/models"
	"kostennote/engine/tariffs"
)

// AdminPenalCalculator prices administrative-penal matters. Like criminal
// matters, success and co-litigant surcharges apply once per matter.
type AdminPenalCalculator struct {
	chain
}

// NewAdminPenalCalculator creates an AdminPenalCalculator on the given catalog
func NewAdminPenalCalculator(catalog *tariffs.Catalog) *AdminPenalCalculator {
	return &AdminPenalCalculator{chain: newChain(catalog, models.DomainAdminPenal)}
}

// Domain implements Calculator
func (c *AdminPenalCalculator) Domain() models.Domain { return models.DomainAdminPenal }

// Calculate implements Calculator
func (c *AdminPenalCalculator) Calculate(services []models.Service, cc models.CaseContext) (models.TotalResult, error) {
	var (
		lines    []models.CalculatedLine
		subtotal int64
	)
	for _, svc := range services {
		s, ok := svc.(models.AdminPenalService)
		if !ok {
			continue
		}
		post, ok := adminPenalPosts[s.Type]
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
