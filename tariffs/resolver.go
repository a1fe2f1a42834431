package tariffs

import (
	"errors"
	"fmt"

	"kostennote/engine/models"
)

// ErrUnknownTariffPost is returned when a post has no table in the resolved
// period. It indicates a catalog or configuration bug and must be surfaced.
var ErrUnknownTariffPost = errors.New("unknown tariff post")

// Resolved is the outcome of a fixed-amount lookup
type Resolved struct {
	AmountCents int64
	Label       string
	PeriodID    string
}

// TimeRates is the outcome of a half-hour rate lookup
type TimeRates struct {
	FirstCents      int64
	SubsequentCents int64
	Label           string
	PeriodID        string
}

// Period returns the period in force at the given day: the latest period
// that started on or before it. The zero Date selects the latest period and
// days before the first period fall back to the first one.
func (c *Catalog) Period(at models.Date) *Period {
	if len(c.periods) == 0 {
		return nil
	}
	if at.IsZero() {
		return &c.periods[len(c.periods)-1]
	}
	chosen := &c.periods[0]
	for i := range c.periods {
		if c.periods[i].EffectiveFrom.After(at.Time) {
			break
		}
		chosen = &c.periods[i]
	}
	return chosen
}

// ResolveBase looks up the fixed fee of a post for a basis amount.
// A negative basis is treated as zero and resolves to the lowest bracket.
func (c *Catalog) ResolveBase(basisCents int64, post models.TariffPost, at models.Date) (Resolved, error) {
	p := c.Period(at)
	if p == nil {
		return Resolved{}, fmt.Errorf("%w: %s (empty catalog)", ErrUnknownTariffPost, post)
	}
	rows, ok := p.Fixed[post]
	if !ok {
		return Resolved{}, fmt.Errorf("%w: %s in period %s", ErrUnknownTariffPost, post, p.ID)
	}
	row := findRow(rows, basisCents)
	return Resolved{AmountCents: row.AmountCents, Label: row.Label, PeriodID: p.ID}, nil
}

// ResolveTimeRates looks up the half-hour rates of a time post
func (c *Catalog) ResolveTimeRates(basisCents int64, post models.TariffPost, at models.Date) (TimeRates, error) {
	p := c.Period(at)
	if p == nil {
		return TimeRates{}, fmt.Errorf("%w: %s (empty catalog)", ErrUnknownTariffPost, post)
	}
	rows, ok := p.Time[post]
	if !ok {
		return TimeRates{}, fmt.Errorf("%w: %s in period %s", ErrUnknownTariffPost, post, p.ID)
	}
	row := findRow(rows, basisCents)
	return TimeRates{
		FirstCents:      row.FirstCents,
		SubsequentCents: row.SubsequentCents,
		Label:           row.Label,
		PeriodID:        p.ID,
	}, nil
}

// ResolvedCourtFee is the outcome of a court-fee schedule lookup
type ResolvedCourtFee struct {
	CourtFeeBracket
	PeriodID string
}

// ResolveCourtFee looks up the court-fee row of a GGG post for a basis
// amount. A period without a schedule for the post is a catalog bug and
// yields ErrUnknownTariffPost.
func (c *Catalog) ResolveCourtFee(basisCents int64, post models.CourtFeePost, at models.Date) (ResolvedCourtFee, error) {
	p := c.Period(at)
	if p == nil {
		return ResolvedCourtFee{}, fmt.Errorf("%w: %s (empty catalog)", ErrUnknownTariffPost, post)
	}
	rows, ok := p.CourtFees[post]
	if !ok {
		return ResolvedCourtFee{}, fmt.Errorf("%w: %s in period %s", ErrUnknownTariffPost, post, p.ID)
	}
	return ResolvedCourtFee{CourtFeeBracket: findRow(rows, basisCents), PeriodID: p.ID}, nil
}

// CourtBasis returns the fixed basis of a court type at the given day
func (c *Catalog) CourtBasis(court models.CourtType, at models.Date) (int64, bool) {
	p := c.Period(at)
	if p == nil {
		return 0, false
	}
	basis, ok := p.CourtBases[court]
	return basis, ok
}

// ESThreshold returns the basis up to which the higher uniform rate applies
func (c *Catalog) ESThreshold(at models.Date) int64 {
	if p := c.Period(at); p != nil {
		return p.ESThresholdCents
	}
	return 0
}

// ERV returns the electronic-filing tiers in force at the given day
func (c *Catalog) ERV(at models.Date) ERVRates {
	if p := c.Period(at); p != nil {
		return p.ERV
	}
	return ERVRates{}
}

// findRow returns the first row whose bound is >= basis, or the final row.
// Tables are validated to be non-empty when the catalog is built.
func findRow[R interface{ upper() (int64, bool) }](rows []R, basisCents int64) R {
	basisCents = max(basisCents, 0)
	for _, row := range rows {
		bound, open := row.upper()
		if open || basisCents <= bound {
			return row
		}
	}
	return rows[len(rows)-1]
}
