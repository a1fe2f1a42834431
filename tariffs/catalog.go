// Package tariffs resolves fee amounts from the versioned RATG/AHK bracket
// tables. A Catalog is immutable once built and safe for concurrent use.
package tariffs

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"kostennote/engine/models"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// ErrInvalidCatalog marks catalog documents that fail validation
var ErrInvalidCatalog = errors.New("invalid tariff catalog")

// Bracket is one row of a fixed-amount table. Open rows have no upper bound.
type Bracket struct {
	UpToCents   int64
	Open        bool
	AmountCents int64
	Label       string
}

// TimeBracket is one row of a half-hour rate table
type TimeBracket struct {
	UpToCents       int64
	Open            bool
	FirstCents      int64
	SubsequentCents int64
	Label           string
}

// CourtFeeBracket is one row of a court-fee schedule. The open row adds
// Rate times the whole basis to its fixed amount.
type CourtFeeBracket struct {
	UpToCents   int64
	Open        bool
	AmountCents int64
	Rate        decimal.Decimal
	Label       string
}

func (b Bracket) upper() (int64, bool)         { return b.UpToCents, b.Open }
func (b TimeBracket) upper() (int64, bool)     { return b.UpToCents, b.Open }
func (b CourtFeeBracket) upper() (int64, bool) { return b.UpToCents, b.Open }

// ERVRates holds the two tiers of the electronic-filing contribution
type ERVRates struct {
	FirstCents   int64 `yaml:"firstCents" json:"firstCents"`
	RegularCents int64 `yaml:"regularCents" json:"regularCents"`
}

// Period is one version of the schedule, valid from EffectiveFrom until the
// next period starts.
type Period struct {
	ID               string
	EffectiveFrom    time.Time
	ESThresholdCents int64
	ERV              ERVRates
	CourtBases       map[models.CourtType]int64
	Fixed            map[models.TariffPost][]Bracket
	Time             map[models.TariffPost][]TimeBracket
	CourtFees        map[models.CourtFeePost][]CourtFeeBracket
}

// Catalog holds every period, ascending by EffectiveFrom
type Catalog struct {
	periods []Period
}

// Periods returns the period ids in effective order
func (c *Catalog) Periods() []string {
	ids := make([]string, len(c.periods))
	for i, p := range c.periods {
		ids[i] = p.ID
	}
	return ids
}

// Document is the serialised form of a catalog, shared by the embedded YAML
// file and the remote JSON source.
type Document struct {
	Periods []PeriodDocument `yaml:"periods" json:"periods"`
}

// PeriodDocument is the serialised form of a Period
type PeriodDocument struct {
	ID               string                                        `yaml:"id" json:"id"`
	EffectiveFrom    string                                        `yaml:"effectiveFrom" json:"effectiveFrom"`
	ESThresholdCents int64                                         `yaml:"esThresholdCents" json:"esThresholdCents"`
	ERV              ERVRates                                      `yaml:"erv" json:"erv"`
	CourtBases       map[models.CourtType]int64                    `yaml:"courtBases" json:"courtBases"`
	Fixed            map[models.TariffPost][]RowDocument           `yaml:"fixed" json:"fixed"`
	Time             map[models.TariffPost][]TimeRowDocument       `yaml:"time" json:"time"`
	CourtFees        map[models.CourtFeePost][]CourtFeeRowDocument `yaml:"courtFees" json:"courtFees"`
}

// RowDocument is a serialised Bracket; a nil UpTo marks the open row.
type RowDocument struct {
	UpTo   *int64 `yaml:"upTo,omitempty" json:"upTo,omitempty"`
	Amount int64  `yaml:"amount" json:"amount"`
}

// TimeRowDocument is a serialised TimeBracket
type TimeRowDocument struct {
	UpTo       *int64 `yaml:"upTo,omitempty" json:"upTo,omitempty"`
	First      int64  `yaml:"first" json:"first"`
	Subsequent int64  `yaml:"subsequent" json:"subsequent"`
}

// CourtFeeRowDocument is a serialised CourtFeeBracket. Rate is a decimal
// string and only allowed on the open row.
type CourtFeeRowDocument struct {
	UpTo   *int64 `yaml:"upTo,omitempty" json:"upTo,omitempty"`
	Amount int64  `yaml:"amount" json:"amount"`
	Rate   string `yaml:"rate,omitempty" json:"rate,omitempty"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog compiled into the binary
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embeddedCatalog)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded tariff catalog: %v", defaultErr))
	}
	return defaultCatalog
}

// Parse reads a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return Build(doc)
}

// Build validates a document and turns it into a Catalog
func Build(doc Document) (*Catalog, error) {
	if len(doc.Periods) == 0 {
		return nil, fmt.Errorf("%w: no periods", ErrInvalidCatalog)
	}

	seen := make(map[string]bool, len(doc.Periods))
	periods := make([]Period, 0, len(doc.Periods))
	for _, pd := range doc.Periods {
		if pd.ID == "" {
			return nil, fmt.Errorf("%w: period without id", ErrInvalidCatalog)
		}
		if seen[pd.ID] {
			return nil, fmt.Errorf("%w: duplicate period %s", ErrInvalidCatalog, pd.ID)
		}
		seen[pd.ID] = true

		p, err := buildPeriod(pd)
		if err != nil {
			return nil, fmt.Errorf("%w: period %s: %v", ErrInvalidCatalog, pd.ID, err)
		}
		periods = append(periods, p)
	}

	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].EffectiveFrom.Before(periods[j].EffectiveFrom)
	})
	for i := 1; i < len(periods); i++ {
		if periods[i].EffectiveFrom.Equal(periods[i-1].EffectiveFrom) {
			return nil, fmt.Errorf("%w: periods %s and %s start on the same day",
				ErrInvalidCatalog, periods[i-1].ID, periods[i].ID)
		}
	}
	return &Catalog{periods: periods}, nil
}

func buildPeriod(pd PeriodDocument) (Period, error) {
	from, err := time.Parse(models.DateLayout, pd.EffectiveFrom)
	if err != nil {
		return Period{}, fmt.Errorf("effectiveFrom: %v", err)
	}
	if pd.ESThresholdCents <= 0 {
		return Period{}, errors.New("esThresholdCents must be positive")
	}
	p := Period{
		ID:               pd.ID,
		EffectiveFrom:    from,
		ESThresholdCents: pd.ESThresholdCents,
		ERV:              pd.ERV,
		CourtBases:       make(map[models.CourtType]int64, len(pd.CourtBases)),
		Fixed:            make(map[models.TariffPost][]Bracket, len(pd.Fixed)),
		Time:             make(map[models.TariffPost][]TimeBracket, len(pd.Time)),
		CourtFees:        make(map[models.CourtFeePost][]CourtFeeBracket, len(pd.CourtFees)),
	}
	for court, basis := range pd.CourtBases {
		if basis <= 0 {
			return Period{}, fmt.Errorf("court basis %s must be positive", court)
		}
		p.CourtBases[court] = basis
	}

	for post, rows := range pd.Fixed {
		if err := checkPost(post, KindFixed); err != nil {
			return Period{}, err
		}
		brackets := make([]Bracket, len(rows))
		for i, row := range rows {
			brackets[i] = Bracket{AmountCents: row.Amount, Open: row.UpTo == nil}
			if row.UpTo != nil {
				brackets[i].UpToCents = *row.UpTo
			}
			if row.Amount < 0 {
				return Period{}, fmt.Errorf("%s row %d: negative amount", post, i)
			}
			if i > 0 && row.Amount < rows[i-1].Amount {
				return Period{}, fmt.Errorf("%s row %d: amount decreases", post, i)
			}
		}
		if err := checkBounds(post, brackets); err != nil {
			return Period{}, err
		}
		labelRows(brackets, func(b *Bracket, label string) { b.Label = label })
		p.Fixed[post] = brackets
	}

	for post, rows := range pd.Time {
		if err := checkPost(post, KindTime); err != nil {
			return Period{}, err
		}
		brackets := make([]TimeBracket, len(rows))
		for i, row := range rows {
			brackets[i] = TimeBracket{FirstCents: row.First, SubsequentCents: row.Subsequent, Open: row.UpTo == nil}
			if row.UpTo != nil {
				brackets[i].UpToCents = *row.UpTo
			}
			if row.First < 0 || row.Subsequent < 0 {
				return Period{}, fmt.Errorf("%s row %d: negative rate", post, i)
			}
			if i > 0 && (row.First < rows[i-1].First || row.Subsequent < rows[i-1].Subsequent) {
				return Period{}, fmt.Errorf("%s row %d: rate decreases", post, i)
			}
		}
		if err := checkBounds(post, brackets); err != nil {
			return Period{}, err
		}
		labelRows(brackets, func(b *TimeBracket, label string) { b.Label = label })
		p.Time[post] = brackets
	}

	for post, rows := range pd.CourtFees {
		brackets, err := buildCourtFees(post, rows)
		if err != nil {
			return Period{}, err
		}
		p.CourtFees[post] = brackets
	}
	return p, nil
}

func buildCourtFees(post models.CourtFeePost, rows []CourtFeeRowDocument) ([]CourtFeeBracket, error) {
	if !post.Valid() {
		return nil, fmt.Errorf("unknown court fee post %s", post)
	}
	brackets := make([]CourtFeeBracket, len(rows))
	for i, row := range rows {
		brackets[i] = CourtFeeBracket{AmountCents: row.Amount, Open: row.UpTo == nil, Rate: decimal.Zero}
		if row.UpTo != nil {
			brackets[i].UpToCents = *row.UpTo
			if row.Rate != "" {
				return nil, fmt.Errorf("%s row %d: rate on a bounded row", post, i)
			}
		} else if row.Rate != "" {
			rate, err := decimal.NewFromString(row.Rate)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: rate: %v", post, i, err)
			}
			if rate.IsNegative() {
				return nil, fmt.Errorf("%s row %d: negative rate", post, i)
			}
			brackets[i].Rate = rate
		}
		if row.Amount < 0 {
			return nil, fmt.Errorf("%s row %d: negative amount", post, i)
		}
		if i > 0 && row.Amount < rows[i-1].Amount {
			return nil, fmt.Errorf("%s row %d: amount decreases", post, i)
		}
	}
	if err := checkBounds(models.TariffPost(post), brackets); err != nil {
		return nil, err
	}
	labelRows(brackets, func(b *CourtFeeBracket, label string) { b.Label = label })
	return brackets, nil
}

func checkPost(post models.TariffPost, kind PostKind) error {
	info, ok := Info(post)
	if !ok {
		return fmt.Errorf("unknown post %s", post)
	}
	if info.Kind != kind {
		return fmt.Errorf("post %s has a table of the wrong kind", post)
	}
	return nil
}

// checkBounds requires ascending upper bounds and exactly one open row at
// the end of the table.
func checkBounds[R interface{ upper() (int64, bool) }](post models.TariffPost, rows []R) error {
	if len(rows) == 0 {
		return fmt.Errorf("%s: empty table", post)
	}
	var prev int64 = -1
	for i, row := range rows {
		bound, open := row.upper()
		last := i == len(rows)-1
		if open != last {
			return fmt.Errorf("%s: only the last row may be open and it must be", post)
		}
		if open {
			continue
		}
		if bound <= prev {
			return fmt.Errorf("%s row %d: bounds must ascend", post, i)
		}
		prev = bound
	}
	return nil
}

func labelRows[R interface{ upper() (int64, bool) }](rows []R, set func(*R, string)) {
	var prev int64
	for i := range rows {
		bound, open := rows[i].upper()
		if open {
			set(&rows[i], "über "+models.FormatCents(prev))
			continue
		}
		set(&rows[i], "bis "+models.FormatCents(bound))
		prev = bound
	}
}
