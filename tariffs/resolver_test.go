package tariffs

import (
	"errors"
	"testing"
	"time"

	"kostennote/engine/models"
)

func TestResolveBase(t *testing.T) {
	catalog := Default()

	tests := []struct {
		name       string
		basis      int64
		post       models.TariffPost
		date       models.Date
		wantAmount int64
		wantPeriod string
		wantLabel  string
	}{
		{
			name:       "current period, 25.000 EUR",
			basis:      2500000,
			post:       models.PostTP3A,
			wantAmount: 100390,
			wantPeriod: "RATG-2023",
			wantLabel:  "bis 29.070,00 €",
		},
		{
			name:       "bound is inclusive",
			basis:      2907000,
			post:       models.PostTP3A,
			wantAmount: 100390,
			wantPeriod: "RATG-2023",
		},
		{
			name:       "historical period by date",
			basis:      2500000,
			post:       models.PostTP3A,
			date:       models.NewDate(2020, time.March, 1),
			wantAmount: 85080,
			wantPeriod: "RATG-2016",
		},
		{
			name:       "effective day belongs to new period",
			basis:      2500000,
			post:       models.PostTP3A,
			date:       models.NewDate(2023, time.May, 1),
			wantAmount: 100390,
			wantPeriod: "RATG-2023",
		},
		{
			name:       "day before first period uses first period",
			basis:      2500000,
			post:       models.PostTP3A,
			date:       models.NewDate(2010, time.January, 1),
			wantAmount: 85080,
			wantPeriod: "RATG-2016",
		},
		{
			name:       "zero basis resolves to lowest bracket",
			basis:      0,
			post:       models.PostTP3A,
			wantAmount: 5020,
			wantPeriod: "RATG-2023",
			wantLabel:  "bis 730,00 €",
		},
		{
			name:       "negative basis resolves to lowest bracket",
			basis:      -500,
			post:       models.PostTP3A,
			wantAmount: 5020,
			wantPeriod: "RATG-2023",
		},
		{
			name:       "basis above every bound uses open bracket",
			basis:      99999999999,
			post:       models.PostTP3A,
			wantAmount: 845060,
			wantPeriod: "RATG-2023",
			wantLabel:  "über 363.360,00 €",
		},
		{
			name:       "AHK remedy at district court basis",
			basis:      780000,
			post:       models.PostCriminalRemedy,
			wantAmount: 37890,
			wantPeriod: "RATG-2023",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := catalog.ResolveBase(tc.basis, tc.post, tc.date)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.AmountCents != tc.wantAmount {
				t.Errorf("expected amount %d but got %d", tc.wantAmount, got.AmountCents)
			}
			if got.PeriodID != tc.wantPeriod {
				t.Errorf("expected period %s but got %s", tc.wantPeriod, got.PeriodID)
			}
			if tc.wantLabel != "" && got.Label != tc.wantLabel {
				t.Errorf("expected label %q but got %q", tc.wantLabel, got.Label)
			}
		})
	}
}

func TestResolveBaseUnknownPost(t *testing.T) {
	catalog := Default()

	for _, post := range []models.TariffPost{"TPX", models.PostTP72, models.PostTP7} {
		t.Run(string(post), func(t *testing.T) {
			_, err := catalog.ResolveBase(100000, post, models.Date{})
			if !errors.Is(err, ErrUnknownTariffPost) {
				t.Errorf("expected ErrUnknownTariffPost, got %v", err)
			}
		})
	}

	if _, err := catalog.ResolveTimeRates(100000, models.PostTP3A, models.Date{}); !errors.Is(err, ErrUnknownTariffPost) {
		t.Errorf("expected ErrUnknownTariffPost for fixed post in time lookup, got %v", err)
	}
}

func TestResolveBaseMonotonic(t *testing.T) {
	catalog := Default()

	for _, p := range catalog.periods {
		for post := range p.Fixed {
			t.Run(p.ID+"/"+string(post), func(t *testing.T) {
				at := models.Date{Time: p.EffectiveFrom}
				var prev int64 = -1
				for basis := int64(0); basis <= 50000000; basis += 25000 {
					got, err := catalog.ResolveBase(basis, post, at)
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					if got.AmountCents < prev {
						t.Fatalf("amount decreased at basis %d: %d < %d", basis, got.AmountCents, prev)
					}
					prev = got.AmountCents
				}
			})
		}
	}
}

func TestCourtBasisAndPeriodData(t *testing.T) {
	catalog := Default()

	basis, ok := catalog.CourtBasis(models.CourtDistrict, models.Date{})
	if !ok || basis != 780000 {
		t.Errorf("expected district court basis 780000, got %d (%v)", basis, ok)
	}
	if _, ok := catalog.CourtBasis(models.CourtType("XX"), models.Date{}); ok {
		t.Error("expected unknown court type to be missing")
	}
	if got := catalog.ESThreshold(models.Date{}); got != 1017000 {
		t.Errorf("expected ES threshold 1017000, got %d", got)
	}
	erv := catalog.ERV(models.NewDate(2019, time.June, 1))
	if erv.FirstCents != 410 || erv.RegularCents != 210 {
		t.Errorf("expected 2016 ERV tiers 410/210, got %+v", erv)
	}
}
