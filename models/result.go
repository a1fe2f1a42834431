package models

// VAT rates a line can carry, in percent
const (
	VATRateNone     = 0
	VATRateStandard = 20
)

// LineKind tags what part of the derivation produced a line
type LineKind string

const (
	LineBase       LineKind = "base"
	LineWaiting    LineKind = "waiting"
	LineJoinder    LineKind = "joinder"
	LineUniform    LineKind = "uniform_rate"
	LineCoLitigant LineKind = "co_litigant"
	LineSuccess    LineKind = "success"
	LineERV        LineKind = "erv"
	LineCourtFee   LineKind = "court_fee"
)

// CalculatedLine is one itemised amount of a Kostennote. ServiceID refers
// back to the originating service and is empty for case-level lines.
type CalculatedLine struct {
	Date             Date     `json:"date"`
	Label            string   `json:"label"`
	Section          string   `json:"section"`
	Kind             LineKind `json:"kind"`
	VATRate          int      `json:"vatRate"`
	AmountCents      int64    `json:"amountCents"`
	BmglCents        int64    `json:"bmglCents"`
	CalculationTrace string   `json:"calculationTrace"`
	ServiceID        string   `json:"serviceId,omitempty"`
}

// VATLiable reports whether the line enters the VAT base
func (l CalculatedLine) VATLiable() bool {
	return l.VATRate > 0
}

// TotalResult is the aggregated ledger.
// TotalCents == NetCents + VATCents + GGGCents always holds.
type TotalResult struct {
	Lines      []CalculatedLine `json:"lines"`
	NetCents   int64            `json:"netCents"`
	VATCents   int64            `json:"vatCents"`
	GGGCents   int64            `json:"gggCents"`
	TotalCents int64            `json:"totalCents"`
}
