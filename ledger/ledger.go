// Package ledger sums calculated lines into the totals of a Kostennote
package ledger

import (
	"kostennote/engine/models"
	"kostennote/engine/surcharges"
)

// Aggregate partitions lines into the VAT base and court fees and derives
// the totals. VAT is rounded once over the whole net amount.
func Aggregate(lines []models.CalculatedLine, vatExempt bool) models.TotalResult {
	result := models.TotalResult{Lines: lines}
	if result.Lines == nil {
		result.Lines = []models.CalculatedLine{}
	}

	for _, line := range lines {
		if line.VATLiable() {
			result.NetCents += line.AmountCents
		} else {
			result.GGGCents += line.AmountCents
		}
	}
	if !vatExempt {
		result.VATCents = surcharges.PercentOf(result.NetCents, models.VATRateStandard)
	}
	result.TotalCents = result.NetCents + result.VATCents + result.GGGCents
	return result
}

// Block is a contiguous run of lines sharing a service id
type Block struct {
	ServiceID     string                  `json:"serviceId"`
	Lines         []models.CalculatedLine `json:"lines"`
	SubtotalCents int64                   `json:"subtotalCents"`
}

// GroupByService splits lines into blocks at every change of ServiceID.
// A service id that reappears later starts a new block; case-level lines
// form blocks with an empty id.
func GroupByService(lines []models.CalculatedLine) []Block {
	var blocks []Block
	for _, line := range lines {
		if n := len(blocks); n == 0 || blocks[n-1].ServiceID != line.ServiceID {
			blocks = append(blocks, Block{ServiceID: line.ServiceID})
		}
		last := &blocks[len(blocks)-1]
		last.Lines = append(last.Lines, line)
		last.SubtotalCents += line.AmountCents
	}
	return blocks
}
