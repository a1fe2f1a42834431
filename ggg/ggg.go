// Package ggg derives the court-fee category of a civil matter from its
// services and prices it from the dated GGG schedules of the tariff catalog.
// Court fees are charged by the court, so they never enter the VAT base.
package ggg

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"kostennote/engine/models"
	"kostennote/engine/surcharges"
	"kostennote/engine/tariffs"
)

// ErrUnknownPost is returned for a post outside the court-fee schedule
var ErrUnknownPost = errors.New("unknown court fee post")

// Post is a tariff post of the court-fee schedule
type Post = models.CourtFeePost

const (
	PostFirstInstance = models.CourtFeeFirstInstance
	PostAppeal        = models.CourtFeeAppeal
	PostRevision      = models.CourtFeeRevision
	PostExecution     = models.CourtFeeExecution
)

// Category is the outcome of the derivation
type Category struct {
	Post            Post
	TariffPostLabel string
	InstanceLevel   int
}

// signals ranks the attorney-fee posts that point at a court-fee post.
// Higher instances take precedence over lower ones.
var signals = map[models.TariffPost]int{
	models.PostTP3C: 3,
	models.PostTP3B: 2,
	models.PostTP2:  1,
	models.PostTP3A: 1,
	models.PostTP7:  1,
	models.PostTP71: 1,
	models.PostTP72: 1,
}

var instancePosts = map[int]Post{
	1: PostFirstInstance,
	2: PostAppeal,
	3: PostRevision,
}

// DeriveCourtFeeCategory picks the court-fee post signalled by the highest
// instance present in services. Services of other domains carry no signal.
// The second result is false when no service signals a court fee.
func DeriveCourtFeeCategory(services []models.Service, procedure models.ProcedureType) (Category, bool) {
	level := 0
	for _, svc := range services {
		civil, ok := svc.(models.CivilService)
		if !ok {
			continue
		}
		level = max(level, signals[civil.Post])
	}
	if level == 0 {
		return Category{}, false
	}

	// An appeal-only mandate never bills the first instance
	if procedure == models.ProcedureAppealOnly {
		level = max(level, 2)
	}
	post := instancePosts[level]
	if level == 1 && procedure == models.ProcedureExecution {
		post = PostExecution
	}
	return Category{Post: post, TariffPostLabel: post.Section(), InstanceLevel: level}, true
}

// Fee is a priced court fee
type Fee struct {
	AmountCents    int64
	BaseCents      int64
	SurchargeCents int64
	BracketLabel   string
	PeriodID       string
}

// ComputeCourtFee prices post for the basis from the schedule in force at
// the given day and adds the party surcharge as a percentage of the
// scheduled amount.
func ComputeCourtFee(catalog *tariffs.Catalog, at models.Date, basisCents int64, post Post, partySurchargePercent int) (Fee, error) {
	if !post.Valid() {
		return Fee{}, fmt.Errorf("%w: %s", ErrUnknownPost, post)
	}
	basisCents = max(basisCents, 0)

	row, err := catalog.ResolveCourtFee(basisCents, post, at)
	if err != nil {
		return Fee{}, err
	}

	base, label := row.AmountCents, row.Label
	if row.Open {
		base += decimal.NewFromInt(basisCents).Mul(row.Rate).Round(0).IntPart()
		label = fmt.Sprintf("%s: %s %% + %s", row.Label, row.Rate.Shift(2).String(), models.FormatCents(row.AmountCents))
	}

	surcharge := surcharges.PercentOf(base, partySurchargePercent)
	return Fee{
		AmountCents:    base + surcharge,
		BaseCents:      base,
		SurchargeCents: surcharge,
		BracketLabel:   label,
		PeriodID:       row.PeriodID,
	}, nil
}

// PartySurchargePercent is the court-fee surcharge for additional parties.
// It follows the same stepped table as the civil co-litigant surcharge.
func PartySurchargePercent(additionalParties int) int {
	return surcharges.CoLitigantPercent(additionalParties)
}
