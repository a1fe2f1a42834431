package services

import (
	"fmt"

	"kostennote/engine/ggg"
	"kostennote/engine/ledger"
	"kostennote/engine/models"
	"kostennote/engine/tariffs"
)

// CivilCalculator prices RATG services and the court fee of civil matters
type CivilCalculator struct {
	chain
}

// NewCivilCalculator creates a CivilCalculator on the given catalog
func NewCivilCalculator(catalog *tariffs.Catalog) *CivilCalculator {
	return &CivilCalculator{chain: newChain(catalog, models.DomainCivil)}
}

// Domain implements Calculator
func (c *CivilCalculator) Domain() models.Domain { return models.DomainCivil }

// Calculate implements Calculator. A service-level custom basis or party
// count overrides the case value for that service only.
func (c *CivilCalculator) Calculate(services []models.Service, cc models.CaseContext) (models.TotalResult, error) {
	var lines []models.CalculatedLine
	for _, svc := range services {
		s, ok := svc.(models.CivilService)
		if !ok {
			continue
		}
		if !civilPosts[s.Post] {
			c.skip(s, fmt.Sprintf("unknown tariff post %q", s.Post))
			continue
		}

		post := s.Post
		if post == models.PostTP7 {
			post = tariffs.KommissionPost(s.RequiresQualifiedRep)
		}
		basis := cc.BasisCents
		if s.CustomBasisCents > 0 {
			basis = s.CustomBasisCents
		}
		parties := cc.AdditionalParties
		if s.CustomPartyCount != nil {
			parties = *s.CustomPartyCount
		}

		out, err := c.price(item{
			id:          s.ID,
			date:        s.Date,
			post:        post,
			basisCents:  basis,
			halfHours:   s.DurationHalfHours,
			waiting:     s.WaitingHalfHours,
			multiplier:  s.ESMultiplier,
			frustrated:  s.Frustrated,
			halve:       s.HalfFee,
			joinder:     s.Joinder,
			includeERV:  s.IncludeERV,
			firstFiling: s.FirstFiling,
			coLitigants: &parties,
		})
		if err != nil {
			return models.TotalResult{}, fmt.Errorf("service %s: %w", s.ID, err)
		}
		lines = append(lines, out.lines...)
	}

	if len(lines) > 0 {
		fee, err := courtFeeLine(c.catalog, services, cc)
		if err != nil {
			return models.TotalResult{}, err
		}
		if fee != nil {
			lines = append(lines, *fee)
		}
	}
	return ledger.Aggregate(lines, cc.VATExempt), nil
}

// courtFeeLine returns the GGG line of a civil matter, or nil when court
// fees are disabled or no service signals one. A manual amount replaces the
// derived fee.
func courtFeeLine(catalog *tariffs.Catalog, services []models.Service, cc models.CaseContext) (*models.CalculatedLine, error) {
	if !cc.CourtFeeEnabled {
		return nil, nil
	}
	line := models.CalculatedLine{
		Date:      lastDate(services),
		Kind:      models.LineCourtFee,
		VATRate:   models.VATRateNone,
		BmglCents: cc.BasisCents,
	}

	if cc.CourtFeeManual {
		if cc.CourtFeeManualCents <= 0 {
			return nil, nil
		}
		line.Label = "Pauschalgebühr"
		line.Section = sectionCourtFeeManual
		line.AmountCents = cc.CourtFeeManualCents
		line.CalculationTrace = "manuell: " + models.FormatCents(cc.CourtFeeManualCents)
		return &line, nil
	}

	category, found := ggg.DeriveCourtFeeCategory(services, cc.ProcedureType)
	if !found {
		return nil, nil
	}
	percent := ggg.PartySurchargePercent(cc.AdditionalParties)
	fee, err := ggg.ComputeCourtFee(catalog, line.Date, cc.BasisCents, category.Post, percent)
	if err != nil {
		return nil, err
	}
	line.Label = fmt.Sprintf("Pauschalgebühr %d. Instanz", category.InstanceLevel)
	line.Section = category.TariffPostLabel
	line.AmountCents = fee.AmountCents
	line.CalculationTrace = fmt.Sprintf("%s %s (%s): %s", category.TariffPostLabel, fee.BracketLabel, fee.PeriodID, models.FormatCents(fee.BaseCents))
	if fee.SurchargeCents > 0 {
		line.CalculationTrace += fmt.Sprintf(" + %d %% Streitgenossen %s", percent, models.FormatCents(fee.SurchargeCents))
	}
	return &line, nil
}
