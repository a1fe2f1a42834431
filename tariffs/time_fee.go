package tariffs

import (
	"fmt"

	"kostennote/engine/models"
)

// TimeFeeRequest describes one time-based service
type TimeFeeRequest struct {
	Post             models.TariffPost
	BasisCents       int64
	HalfHours        int
	WaitingHalfHours int
	// Frustrated marks a hearing that did not take place: only the first
	// half-hour is billed and duration and waiting are ignored.
	Frustrated bool
	Date       models.Date
}

// TimeFee is the priced result of a time-based service
type TimeFee struct {
	Rates            TimeRates
	HalfHours        int
	WaitingHalfHours int
	BaseCents        int64
	WaitingCents     int64
	Trace            string
	WaitingTrace     string
}

// CalculateTimeFee prices a time-based service as the first half-hour rate
// plus the subsequent rate for every further unit. Waiting time is billed at
// the subsequent rate and kept apart from the base.
func (c *Catalog) CalculateTimeFee(req TimeFeeRequest) (TimeFee, error) {
	rates, err := c.ResolveTimeRates(req.BasisCents, req.Post, req.Date)
	if err != nil {
		return TimeFee{}, err
	}

	if req.Frustrated {
		return TimeFee{
			Rates:     rates,
			HalfHours: 1,
			BaseCents: rates.FirstCents,
			Trace: fmt.Sprintf("vergeblich: nur 1. halbe Stunde %s",
				models.FormatCents(rates.FirstCents)),
		}, nil
	}

	units := max(req.HalfHours, 1)
	waiting := max(req.WaitingHalfHours, 0)
	further := int64(units - 1)

	fee := TimeFee{
		Rates:            rates,
		HalfHours:        units,
		WaitingHalfHours: waiting,
		BaseCents:        rates.FirstCents + further*rates.SubsequentCents,
		WaitingCents:     int64(waiting) * rates.SubsequentCents,
	}
	fee.Trace = fmt.Sprintf("1. halbe Stunde %s + %d × %s = %s",
		models.FormatCents(rates.FirstCents), further,
		models.FormatCents(rates.SubsequentCents), models.FormatCents(fee.BaseCents))
	if waiting > 0 {
		fee.WaitingTrace = fmt.Sprintf("Wartezeit %d × %s = %s",
			waiting, models.FormatCents(rates.SubsequentCents), models.FormatCents(fee.WaitingCents))
	}
	return fee, nil
}
