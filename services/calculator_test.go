package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"kostennote/engine/models"
	"kostennote/engine/surcharges"
	"kostennote/engine/tariffs"
)

// amounts returns the amount of every line of the given kind, in order
func amounts(result models.TotalResult, kind models.LineKind) []int64 {
	var out []int64
	for _, l := range result.Lines {
		if l.Kind == kind {
			out = append(out, l.AmountCents)
		}
	}
	return out
}

func intPtr(n int) *int { return &n }

func TestCivilCalculator(t *testing.T) {
	calculator := NewCivilCalculator(tariffs.Default())

	tests := []struct {
		name     string
		cc       models.CaseContext
		services []models.Service
		want     map[models.LineKind][]int64
	}{
		{
			name: "pleading with simple uniform rate",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: models.PostTP3A, ESMultiplier: 1},
			},
			want: map[models.LineKind][]int64{
				models.LineBase:    {100390},
				models.LineUniform: {50195}, // 50 % above the threshold
			},
		},
		{
			name: "higher uniform rate at or below threshold",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 1017000},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: models.PostTP3A, ESMultiplier: 1},
			},
			want: map[models.LineKind][]int64{
				models.LineBase:    {42740},
				models.LineUniform: {25644}, // 60 % of 427,40 €
			},
		},
		{
			name: "joinder enlarges the uniform rate base",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: models.PostTP3A, ESMultiplier: 1, Joinder: models.JoinderOther},
			},
			want: map[models.LineKind][]int64{
				models.LineBase:    {100390},
				models.LineJoinder: {25098},
				models.LineUniform: {62744},
			},
		},
		{
			name: "half fee",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: models.PostTP3A, HalfFee: true},
			},
			want: map[models.LineKind][]int64{
				models.LineBase: {50195},
			},
		},
		{
			name: "co-litigants on the post-ES subtotal",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000, AdditionalParties: 5},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: models.PostTP3A, ESMultiplier: 1},
			},
			want: map[models.LineKind][]int64{
				models.LineBase:       {100390},
				models.LineUniform:    {50195},
				models.LineCoLitigant: {45176}, // 30 % of 1.505,85 € rounded half up
			},
		},
		{
			name: "per-service party count overrides the case",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000, AdditionalParties: 5},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: models.PostTP3A, CustomPartyCount: intPtr(0)},
			},
			want: map[models.LineKind][]int64{
				models.LineBase: {100390},
			},
		},
		{
			name: "custom basis overrides the case basis",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: models.PostTP3A, CustomBasisCents: 1017000},
			},
			want: map[models.LineKind][]int64{
				models.LineBase: {42740},
			},
		},
		{
			name: "zero basis resolves to the lowest bracket",
			cc:   models.CaseContext{Mode: models.DomainCivil},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: models.PostTP3A},
			},
			want: map[models.LineKind][]int64{
				models.LineBase: {5020},
			},
		},
		{
			name: "generic Kommission with qualified representative",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: models.PostTP7, RequiresQualifiedRep: true,
					DurationHalfHours: 2, WaitingHalfHours: 1, ESMultiplier: 2},
			},
			want: map[models.LineKind][]int64{
				models.LineBase:    {90360},
				models.LineWaiting: {40160},
				models.LineUniform: {65260}, // multiplier capped to 1
			},
		},
		{
			name: "electronic filing tiers by date",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: models.PostTP3A, IncludeERV: true, FirstFiling: true},
				models.CivilService{ID: "s2", Post: models.PostTP3A, IncludeERV: true,
					Date: models.NewDate(2020, time.June, 1)},
			},
			want: map[models.LineKind][]int64{
				models.LineBase: {100390, 85080},
				models.LineERV:  {500, 210},
			},
		},
		{
			name: "excluded post never carries a uniform rate",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: models.PostTP5, ESMultiplier: 4},
			},
			want: map[models.LineKind][]int64{
				models.LineBase: {8030},
			},
		},
		{
			name: "unknown post and foreign services produce no lines",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000},
			services: []models.Service{
				models.CivilService{ID: "s1", Post: "TP99", ESMultiplier: 1},
				models.CriminalService{ID: "c1", Type: models.CriminalHearing},
			},
			want: map[models.LineKind][]int64{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := calculator.Calculate(tc.services, tc.cc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			count := 0
			for kind, want := range tc.want {
				if got := amounts(result, kind); !reflect.DeepEqual(got, want) {
					t.Errorf("%s lines: expected %v but got %v", kind, want, got)
				}
				count += len(want)
			}
			if len(result.Lines) != count {
				t.Errorf("expected %d lines but got %d: %+v", count, len(result.Lines), result.Lines)
			}
		})
	}
}

func TestCivilWorkedExample(t *testing.T) {
	calculator := NewCivilCalculator(tariffs.Default())
	cc := models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000, CourtFeeEnabled: true}
	services := []models.Service{
		models.CivilService{ID: "klage", Post: models.PostTP3A, ESMultiplier: 1},
	}

	result, err := calculator.Calculate(services, cc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Lines) != 3 {
		t.Fatalf("expected base, uniform rate and court fee lines, got %+v", result.Lines)
	}
	if result.NetCents != 150585 {
		t.Errorf("expected net 150585 but got %d", result.NetCents)
	}
	if result.VATCents != 30117 {
		t.Errorf("expected VAT 30117 but got %d", result.VATCents)
	}
	if result.GGGCents != 84300 {
		t.Errorf("expected court fee 84300 (GGG TP 1) but got %d", result.GGGCents)
	}
	if result.TotalCents != 150585+30117+84300 {
		t.Errorf("unexpected total %d", result.TotalCents)
	}

	fee := result.Lines[2]
	if fee.Kind != models.LineCourtFee || fee.VATRate != models.VATRateNone || fee.Section != "TP 1 GGG" {
		t.Errorf("unexpected court fee line %+v", fee)
	}
}

func TestCivilCourtFee(t *testing.T) {
	calculator := NewCivilCalculator(tariffs.Default())
	appeal := []models.Service{
		models.CivilService{ID: "klage", Post: models.PostTP3A},
		models.CivilService{ID: "berufung", Post: models.PostTP3B},
	}

	tests := []struct {
		name string
		cc   models.CaseContext
		want int64
	}{
		{
			name: "disabled",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000},
			want: 0,
		},
		{
			name: "appeal takes precedence",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000, CourtFeeEnabled: true},
			want: 117000,
		},
		{
			name: "party surcharge",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000, CourtFeeEnabled: true, AdditionalParties: 1},
			want: 117000 + 11700,
		},
		{
			name: "manual override",
			cc: models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000, CourtFeeEnabled: true,
				CourtFeeManual: true, CourtFeeManualCents: 12345},
			want: 12345,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := calculator.Calculate(appeal, tc.cc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.GGGCents != tc.want {
				t.Errorf("expected court fee %d but got %d", tc.want, result.GGGCents)
			}
		})
	}
}

func TestCriminalCalculator(t *testing.T) {
	calculator := NewCriminalCalculator(tariffs.Default())

	tests := []struct {
		name     string
		cc       models.CaseContext
		services []models.Service
		want     map[models.LineKind][]int64
	}{
		{
			name: "district court hearing of two half-hours",
			cc:   models.CaseContext{Mode: models.DomainCriminal, CourtType: models.CourtDistrict},
			services: []models.Service{
				models.CriminalService{ID: "hv", Type: models.CriminalHearing, DurationHalfHours: 2},
			},
			want: map[models.LineKind][]int64{
				models.LineBase: {18950 + 15500},
			},
		},
		{
			name: "frustrated hearing bills the first half-hour only",
			cc:   models.CaseContext{Mode: models.DomainCriminal, CourtType: models.CourtDistrict},
			services: []models.Service{
				models.CriminalService{ID: "hv", Type: models.CriminalHearing, DurationHalfHours: 6,
					WaitingHalfHours: 4, ESMultiplier: 1, Frustrated: true},
			},
			want: map[models.LineKind][]int64{
				models.LineBase: {18950},
			},
		},
		{
			name: "case-level surcharges once over all services",
			cc: models.CaseContext{Mode: models.DomainCriminal, CourtType: models.CourtDistrict,
				SuccessPercent: 10, AdditionalParties: 2},
			services: []models.Service{
				models.CriminalService{ID: "hv", Type: models.CriminalHearing, DurationHalfHours: 2, ESMultiplier: 1},
				models.CriminalService{ID: "ss", Type: models.CriminalBrief, ESMultiplier: 1, IncludeERV: true},
			},
			want: map[models.LineKind][]int64{
				models.LineBase:       {34450, 20670},
				models.LineUniform:    {20670, 12402},
				models.LineERV:        {260},
				models.LineSuccess:    {8819},  // 10 % of 881,92 €, ERV excluded
				models.LineCoLitigant: {52915}, // 2 × 30 %
			},
		},
		{
			name: "appeal limited to the sentence is halved",
			cc:   models.CaseContext{Mode: models.DomainCriminal, CourtType: models.CourtDistrict},
			services: []models.Service{
				models.CriminalService{ID: "rm", Type: models.CriminalAppeal, OnlyPenalty: true},
			},
			want: map[models.LineKind][]int64{
				models.LineBase: {18945},
			},
		},
		{
			name: "case basis when no court type is set",
			cc:   models.CaseContext{Mode: models.DomainCriminal, BasisCents: 1690000},
			services: []models.Service{
				models.CriminalService{ID: "hv", Type: models.CriminalHearing, DurationHalfHours: 1},
			},
			want: map[models.LineKind][]int64{
				models.LineBase: {35530},
			},
		},
		{
			name: "unknown type produces no lines",
			cc:   models.CaseContext{Mode: models.DomainCriminal, CourtType: models.CourtDistrict, SuccessPercent: 50},
			services: []models.Service{
				models.CriminalService{ID: "x", Type: "interview"},
			},
			want: map[models.LineKind][]int64{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := calculator.Calculate(tc.services, tc.cc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			count := 0
			for kind, want := range tc.want {
				if got := amounts(result, kind); !reflect.DeepEqual(got, want) {
					t.Errorf("%s lines: expected %v but got %v", kind, want, got)
				}
				count += len(want)
			}
			if len(result.Lines) != count {
				t.Errorf("expected %d lines but got %d: %+v", count, len(result.Lines), result.Lines)
			}
		})
	}
}

func TestFrustratedHearingAcrossDomains(t *testing.T) {
	catalog := tariffs.Default()
	courtBasis := func(court models.CourtType) int64 {
		basis, ok := catalog.CourtBasis(court, models.Date{})
		if !ok {
			t.Fatalf("no basis for court %s", court)
		}
		return basis
	}

	tests := []struct {
		name       string
		calculator Calculator
		cc         models.CaseContext
		service    models.Service
		post       models.TariffPost
		basis      int64
	}{
		{
			name:       "civil Kommission",
			calculator: NewCivilCalculator(catalog),
			cc:         models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000},
			service: models.CivilService{ID: "k", Post: models.PostTP7, DurationHalfHours: 4,
				WaitingHalfHours: 3, ESMultiplier: 1, Frustrated: true},
			post:  models.PostTP71,
			basis: 2500000,
		},
		{
			name:       "civil Kommission with half fee",
			calculator: NewCivilCalculator(catalog),
			cc:         models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000},
			service: models.CivilService{ID: "k", Post: models.PostTP7, RequiresQualifiedRep: true,
				DurationHalfHours: 2, ESMultiplier: 1, HalfFee: true, Frustrated: true},
			post:  models.PostTP72,
			basis: 2500000,
		},
		{
			name:       "detention hearing",
			calculator: NewDetentionCalculator(catalog),
			cc:         models.CaseContext{Mode: models.DomainDetention, CourtType: models.CourtDistrict},
			service: models.DetentionService{ID: "h", Type: models.DetentionHearing, DurationHalfHours: 5,
				WaitingHalfHours: 2, ESMultiplier: 1, Frustrated: true},
			post:  models.PostDetentionHearing,
			basis: courtBasis(models.CourtDistrict),
		},
		{
			name:       "administrative-penal hearing",
			calculator: NewAdminPenalCalculator(catalog),
			cc:         models.CaseContext{Mode: models.DomainAdminPenal, CourtType: models.CourtAuthority},
			service: models.AdminPenalService{ID: "v", Type: models.AdminPenalHearing, DurationHalfHours: 3,
				WaitingHalfHours: 1, ESMultiplier: 1, Frustrated: true},
			post:  models.PostAdminHearing,
			basis: courtBasis(models.CourtAuthority),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rates, err := catalog.ResolveTimeRates(tc.basis, tc.post, models.Date{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			result, err := tc.calculator.Calculate([]models.Service{tc.service}, tc.cc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result.Lines) != 1 {
				t.Fatalf("expected a single base line, got %+v", result.Lines)
			}
			line := result.Lines[0]
			if line.Kind != models.LineBase {
				t.Errorf("expected a base line, got %s", line.Kind)
			}
			if line.AmountCents != rates.FirstCents {
				t.Errorf("expected the first half-hour rate %d but got %d", rates.FirstCents, line.AmountCents)
			}
			if result.NetCents != rates.FirstCents {
				t.Errorf("expected net %d but got %d", rates.FirstCents, result.NetCents)
			}
		})
	}
}

func TestCivilCourtFeeProcedureAndPeriod(t *testing.T) {
	calculator := NewCivilCalculator(tariffs.Default())

	tests := []struct {
		name        string
		cc          models.CaseContext
		services    []models.Service
		want        int64
		wantSection string
	}{
		{
			name:        "appeal-only mandate bills the appellate fee",
			cc:          models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000, CourtFeeEnabled: true, ProcedureType: models.ProcedureAppealOnly},
			services:    []models.Service{models.CivilService{ID: "s", Post: models.PostTP2}},
			want:        117000,
			wantSection: "TP 2 GGG",
		},
		{
			name: "schedule follows the service date",
			cc:   models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000, CourtFeeEnabled: true},
			services: []models.Service{models.CivilService{ID: "s", Post: models.PostTP3A,
				Date: models.NewDate(2020, time.June, 1)}},
			want:        74180,
			wantSection: "TP 1 GGG",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := calculator.Calculate(tc.services, tc.cc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.GGGCents != tc.want {
				t.Errorf("expected court fee %d but got %d", tc.want, result.GGGCents)
			}
			fee := result.Lines[len(result.Lines)-1]
			if fee.Kind != models.LineCourtFee || fee.Section != tc.wantSection {
				t.Errorf("unexpected court fee line %+v", fee)
			}
		})
	}
}

func TestDetentionCalculatorHasNoCaseSurcharges(t *testing.T) {
	calculator := NewDetentionCalculator(tariffs.Default())
	cc := models.CaseContext{Mode: models.DomainDetention, CourtType: models.CourtDistrict,
		SuccessPercent: 20, AdditionalParties: 3}
	services := []models.Service{
		models.DetentionService{ID: "vh", Type: models.DetentionHearing, DurationHalfHours: 2},
		models.DetentionService{ID: "bs", Type: models.DetentionComplaint},
	}

	result, err := calculator.Calculate(services, cc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := amounts(result, models.LineBase); !reflect.DeepEqual(got, []int64{17220 + 13780, 24110}) {
		t.Errorf("unexpected base lines %v", got)
	}
	if len(result.Lines) != 2 {
		t.Errorf("expected only base lines, got %+v", result.Lines)
	}
}

func TestAdminPenalCalculator(t *testing.T) {
	calculator := NewAdminPenalCalculator(tariffs.Default())
	cc := models.CaseContext{Mode: models.DomainAdminPenal, CourtType: models.CourtAuthority,
		SuccessPercent: 50, AdditionalParties: 1}
	services := []models.Service{
		models.AdminPenalService{ID: "vh", Type: models.AdminPenalHearing, DurationHalfHours: 1},
	}

	result, err := calculator.Calculate(services, cc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := amounts(result, models.LineBase); !reflect.DeepEqual(got, []int64{10810}) {
		t.Errorf("unexpected base lines %v", got)
	}
	if got := amounts(result, models.LineSuccess); !reflect.DeepEqual(got, []int64{5405}) {
		t.Errorf("unexpected success lines %v", got)
	}
	if got := amounts(result, models.LineCoLitigant); !reflect.DeepEqual(got, []int64{3243}) {
		t.Errorf("unexpected co-litigant lines %v", got)
	}
	for _, l := range result.Lines[1:] {
		if l.ServiceID != "" {
			t.Errorf("case-level line %q should not reference a service", l.Label)
		}
	}
}

func TestCalculatorsEmptyInput(t *testing.T) {
	engine := NewEngine(tariffs.Default(), "test")

	for _, domain := range models.Domains {
		t.Run(string(domain), func(t *testing.T) {
			cc := models.CaseContext{Mode: domain, BasisCents: 2500000, CourtType: models.CourtDistrict,
				SuccessPercent: 50, AdditionalParties: 9, CourtFeeEnabled: true,
				CourtFeeManual: true, CourtFeeManualCents: 1000}
			result, err := engine.Calculate(models.Matter{Context: cc})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := models.TotalResult{Lines: []models.CalculatedLine{}}
			if !reflect.DeepEqual(result, want) {
				t.Errorf("expected empty result but got %+v", result)
			}
		})
	}
}

func TestCalculatorsDeterministicAndConserving(t *testing.T) {
	engine := NewEngine(tariffs.Default(), "test")
	matters := []models.Matter{
		{
			Context: models.CaseContext{Mode: models.DomainCivil, BasisCents: 3300000, AdditionalParties: 2, CourtFeeEnabled: true},
			Services: []models.Service{
				models.CivilService{ID: "a", Post: models.PostTP3A, ESMultiplier: 2, IncludeERV: true, FirstFiling: true},
				models.CivilService{ID: "b", Post: models.PostTP72, DurationHalfHours: 5, WaitingHalfHours: 2, ESMultiplier: 1},
				models.CivilService{ID: "c", Post: models.PostTP3B, ESMultiplier: 3, IncludeERV: true},
			},
		},
		{
			Context: models.CaseContext{Mode: models.DomainCriminal, CourtType: models.CourtLayJudges, SuccessPercent: 25, AdditionalParties: 1, VATExempt: true},
			Services: []models.Service{
				models.CriminalService{ID: "a", Type: models.CriminalHearing, DurationHalfHours: 7, WaitingHalfHours: 3, ESMultiplier: 1},
				models.CriminalService{ID: "b", Type: models.CriminalNullityPlea, ESMultiplier: 2, IncludeERV: true},
			},
		},
	}

	for _, m := range matters {
		t.Run(string(m.Context.Mode), func(t *testing.T) {
			first, err := engine.Calculate(m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			second, err := engine.Calculate(m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(first, second) {
				t.Error("repeated calculation differs")
			}
			if first.TotalCents != first.NetCents+first.VATCents+first.GGGCents {
				t.Errorf("total %d does not conserve %d + %d + %d", first.TotalCents, first.NetCents, first.VATCents, first.GGGCents)
			}
			if m.Context.VATExempt && first.VATCents != 0 {
				t.Errorf("expected no VAT for exempt matter, got %d", first.VATCents)
			}
			if !m.Context.VATExempt && first.VATCents != surcharges.PercentOf(first.NetCents, 20) {
				t.Errorf("unexpected VAT %d for net %d", first.VATCents, first.NetCents)
			}
		})
	}
}

func TestUniformRateCapEnforcement(t *testing.T) {
	calculator := NewCivilCalculator(tariffs.Default())
	cc := models.CaseContext{Mode: models.DomainCivil, BasisCents: 2500000}

	for post := range civilPosts {
		lookup := post
		if post == models.PostTP7 {
			lookup = tariffs.KommissionPost(false)
		}
		info, _ := tariffs.Info(lookup)
		limit := info.ESClass.Cap()

		t.Run(string(post), func(t *testing.T) {
			atCap, err := calculator.Calculate([]models.Service{
				models.CivilService{ID: "s", Post: post, DurationHalfHours: 2, ESMultiplier: limit},
			}, cc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for m := limit + 1; m <= limit+3; m++ {
				above, err := calculator.Calculate([]models.Service{
					models.CivilService{ID: "s", Post: post, DurationHalfHours: 2, ESMultiplier: m},
				}, cc)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !reflect.DeepEqual(amounts(above, models.LineUniform), amounts(atCap, models.LineUniform)) {
					t.Errorf("multiplier %d should equal cap %d", m, limit)
				}
			}
		})
	}
}

func TestCalculatorSurfacesMissingTables(t *testing.T) {
	catalog, err := tariffs.Parse([]byte(`
periods:
  - id: ONLY-TP2
    effectiveFrom: "2023-01-01"
    esThresholdCents: 1017000
    fixed:
      TP2:
        - {amount: 900}
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewCivilCalculator(catalog).Calculate([]models.Service{
		models.CivilService{ID: "s1", Post: models.PostTP3A},
	}, models.CaseContext{Mode: models.DomainCivil})
	if !errors.Is(err, tariffs.ErrUnknownTariffPost) {
		t.Errorf("expected ErrUnknownTariffPost, got %v", err)
	}
}
