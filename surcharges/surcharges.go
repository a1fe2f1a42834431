// Package surcharges holds the percentage and flat add-on rules of the fee
// schedules. Every function is pure: it receives the amounts it works on and
// never consults a tariff table.
package surcharges

import (
	"fmt"

	"github.com/shopspring/decimal"

	"kostennote/engine/models"
)

var hundred = decimal.NewFromInt(100)

// Amount is the result of one surcharge rule
type Amount struct {
	Cents   int64
	Percent int
	Trace   string
}

// PercentOf returns baseCents × percent / 100 rounded half-up to whole cents.
func PercentOf(baseCents int64, percent int) int64 {
	if baseCents <= 0 || percent <= 0 {
		return 0
	}
	return decimal.NewFromInt(baseCents).
		Mul(decimal.NewFromInt(int64(percent))).
		Div(hundred).
		Round(0).
		IntPart()
}

// HalfOf halves an amount, rounding half-up.
func HalfOf(cents int64) int64 {
	if cents <= 0 {
		return 0
	}
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(2)).Round(0).IntPart()
}

// ESClass groups tariff posts by how far their uniform-rate surcharge may be
// multiplied.
type ESClass int

const (
	// ClassExcluded posts never carry a uniform-rate surcharge (TP5, TP6, TP8, TP9).
	ClassExcluded ESClass = iota
	// ClassTime covers time-fee posts such as Kommissionen.
	ClassTime
	// ClassHearing covers AHK hearing posts.
	ClassHearing
	// ClassPleading covers standard pleadings.
	ClassPleading
	// ClassAppellate covers TP3B-class appellate posts.
	ClassAppellate
)

var multiplierCaps = map[ESClass]int{
	ClassExcluded:  0,
	ClassTime:      1,
	ClassHearing:   1,
	ClassPleading:  2,
	ClassAppellate: 4,
}

// Cap is the highest multiplier the class allows
func (c ESClass) Cap() int {
	return multiplierCaps[c]
}

func (c ESClass) String() string {
	switch c {
	case ClassExcluded:
		return "excluded"
	case ClassTime:
		return "time"
	case ClassHearing:
		return "hearing"
	case ClassPleading:
		return "pleading"
	case ClassAppellate:
		return "appellate"
	default:
		return fmt.Sprintf("ESClass(%d)", int(c))
	}
}

// CapMultiplier clamps a requested multiplier into [0, class cap].
func CapMultiplier(class ESClass, requested int) int {
	if requested < 0 {
		return 0
	}
	if limit := class.Cap(); requested > limit {
		return limit
	}
	return requested
}

// Uniform-rate percentages per single multiplier step
const (
	UniformRateLow  = 60 // basis up to and including the threshold
	UniformRateHigh = 50
)

// UniformRateInput carries the operands of the Einheitssatz
type UniformRateInput struct {
	// BaseCents is the base fee enlarged by waiting time and joinder surcharge.
	BaseCents      int64
	BasisCents     int64
	ThresholdCents int64
	Multiplier     int
	Class          ESClass
}

// UniformRate computes the Einheitssatz. The multiplier is capped per class
// before the percentage is derived.
func UniformRate(in UniformRateInput) Amount {
	m := CapMultiplier(in.Class, in.Multiplier)
	step := UniformRateHigh
	if in.BasisCents <= in.ThresholdCents {
		step = UniformRateLow
	}
	percent := step * m
	cents := PercentOf(in.BaseCents, percent)
	return Amount{
		Cents:   cents,
		Percent: percent,
		Trace: fmt.Sprintf("%d %% × %d (%s) von %s = %s",
			step, m, MultiplierName(m), models.FormatCents(in.BaseCents), models.FormatCents(cents)),
	}
}

// MultiplierName is the colloquial name of an ES multiplier
func MultiplierName(m int) string {
	switch m {
	case 0:
		return "kein ES"
	case 1:
		return "einfach"
	case 2:
		return "doppelt"
	case 3:
		return "dreifach"
	case 4:
		return "vierfach"
	default:
		return fmt.Sprintf("%d-fach", m)
	}
}

type coLitigantStep struct {
	parties int
	percent int
}

// coLitigantSteps is the civil stepped table, ascending by party count.
// Counts between two steps fall back to the lower step.
var coLitigantSteps = []coLitigantStep{
	{0, 0},
	{1, 10},
	{2, 15},
	{3, 20},
	{4, 25},
	{5, 30},
	{9, 50},
}

// CoLitigantPercent maps the number of additional parties to the civil
// co-litigant percentage.
func CoLitigantPercent(additionalParties int) int {
	percent := 0
	for _, step := range coLitigantSteps {
		if additionalParties < step.parties {
			break
		}
		percent = step.percent
	}
	return percent
}

// CoLitigant applies the civil stepped co-litigant surcharge
func CoLitigant(subtotalCents int64, additionalParties int) Amount {
	percent := CoLitigantPercent(additionalParties)
	cents := PercentOf(subtotalCents, percent)
	return Amount{
		Cents:   cents,
		Percent: percent,
		Trace: fmt.Sprintf("%d weitere Person(en): %d %% von %s = %s",
			max(additionalParties, 0), percent, models.FormatCents(subtotalCents), models.FormatCents(cents)),
	}
}

// CriminalCoLitigantStep is the flat percentage per additional party in
// criminal and administrative-penal matters.
const CriminalCoLitigantStep = 30

// CriminalCoLitigant applies 30 % per additional party without a cap
func CriminalCoLitigant(subtotalCents int64, additionalParties int) Amount {
	n := max(additionalParties, 0)
	percent := CriminalCoLitigantStep * n
	cents := PercentOf(subtotalCents, percent)
	return Amount{
		Cents:   cents,
		Percent: percent,
		Trace: fmt.Sprintf("%d × %d %% von %s = %s",
			n, CriminalCoLitigantStep, models.FormatCents(subtotalCents), models.FormatCents(cents)),
	}
}

// Success applies the success surcharge; the percentage is clamped to 0-50.
func Success(subtotalCents int64, percent int) Amount {
	percent = min(max(percent, 0), models.MaxSuccessPercent)
	cents := PercentOf(subtotalCents, percent)
	return Amount{
		Cents:   cents,
		Percent: percent,
		Trace:   fmt.Sprintf("%d %% von %s = %s", percent, models.FormatCents(subtotalCents), models.FormatCents(cents)),
	}
}

var joinderPercents = map[models.JoinderCategory]int{
	models.JoinderNone:          0,
	models.JoinderPriorDecision: 50,
	models.JoinderSameDomicile:  10,
	models.JoinderOther:         25,
}

// JoinderPercent returns the connection surcharge percentage of a category.
// Unknown categories yield 0 and false.
func JoinderPercent(category models.JoinderCategory) (int, bool) {
	percent, ok := joinderPercents[category]
	return percent, ok
}

// Joinder applies the connection surcharge to a base fee
func Joinder(baseCents int64, category models.JoinderCategory) Amount {
	percent, _ := JoinderPercent(category)
	cents := PercentOf(baseCents, percent)
	return Amount{
		Cents:   cents,
		Percent: percent,
		Trace:   fmt.Sprintf("%d %% von %s = %s", percent, models.FormatCents(baseCents), models.FormatCents(cents)),
	}
}

// ElectronicFiling returns the flat ERV contribution for the requested tier
func ElectronicFiling(firstFiling bool, firstCents, regularCents int64) Amount {
	cents, tier := regularCents, "Folgeeingabe"
	if firstFiling {
		cents, tier = firstCents, "verfahrenseinleitend"
	}
	return Amount{
		Cents: cents,
		Trace: fmt.Sprintf("ERV-Beitrag %s: %s", tier, models.FormatCents(cents)),
	}
}
