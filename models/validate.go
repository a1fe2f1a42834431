package models

import (
	"fmt"

	"go.uber.org/multierr"
)

// MaxSuccessPercent is the upper bound of the success surcharge
const MaxSuccessPercent = 50

// ValidateMatter checks the caller contract of a calculation pass. The
// calculators themselves are total; anything reported here is a caller bug.
// All violations are returned together.
func ValidateMatter(m Matter) error {
	err := ValidateContext(m.Context)

	seen := make(map[string]int, len(m.Services))
	for i, svc := range m.Services {
		if svc == nil {
			err = multierr.Append(err, fmt.Errorf("service %d: missing", i))
			continue
		}
		if svc.Domain() != m.Context.Mode {
			err = multierr.Append(err, fmt.Errorf("service %d: %s service in %s matter", i, svc.Domain(), m.Context.Mode))
		}
		if svc.ServiceID() == "" {
			err = multierr.Append(err, fmt.Errorf("service %d: id is required", i))
		} else if prev, ok := seen[svc.ServiceID()]; ok {
			err = multierr.Append(err, fmt.Errorf("service %d: id %q already used by service %d", i, svc.ServiceID(), prev))
		} else {
			seen[svc.ServiceID()] = i
		}
		err = multierr.Append(err, validateService(i, svc))
	}
	return err
}

// ValidateContext checks the case-level parameters
func ValidateContext(cc CaseContext) error {
	var err error
	if !cc.Mode.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown mode %q", cc.Mode))
	}
	if cc.BasisCents < 0 {
		err = multierr.Append(err, fmt.Errorf("basis must not be negative: %d", cc.BasisCents))
	}
	if cc.AdditionalParties < 0 {
		err = multierr.Append(err, fmt.Errorf("additional parties must not be negative: %d", cc.AdditionalParties))
	}
	if cc.SuccessPercent < 0 || cc.SuccessPercent > MaxSuccessPercent {
		err = multierr.Append(err, fmt.Errorf("success percent must be between 0 and %d: %d", MaxSuccessPercent, cc.SuccessPercent))
	}
	if !cc.CourtType.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown court type %q", cc.CourtType))
	}
	if !cc.ProcedureType.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown procedure type %q", cc.ProcedureType))
	}
	if cc.CourtFeeManualCents < 0 {
		err = multierr.Append(err, fmt.Errorf("manual court fee must not be negative: %d", cc.CourtFeeManualCents))
	}
	return err
}

func validateService(i int, svc Service) error {
	var duration, waiting int
	switch s := svc.(type) {
	case CivilService:
		duration, waiting = s.DurationHalfHours, s.WaitingHalfHours
		var err error
		if s.CustomBasisCents < 0 {
			err = multierr.Append(err, fmt.Errorf("service %d: custom basis must not be negative", i))
		}
		if s.CustomPartyCount != nil && *s.CustomPartyCount < 0 {
			err = multierr.Append(err, fmt.Errorf("service %d: custom party count must not be negative", i))
		}
		if !s.Joinder.Valid() {
			err = multierr.Append(err, fmt.Errorf("service %d: unknown joinder category %q", i, s.Joinder))
		}
		return multierr.Append(err, validateUnits(i, duration, waiting))
	case CriminalService:
		duration, waiting = s.DurationHalfHours, s.WaitingHalfHours
	case DetentionService:
		duration, waiting = s.DurationHalfHours, s.WaitingHalfHours
	case AdminPenalService:
		duration, waiting = s.DurationHalfHours, s.WaitingHalfHours
	}
	return validateUnits(i, duration, waiting)
}

func validateUnits(i, duration, waiting int) error {
	var err error
	if duration < 0 {
		err = multierr.Append(err, fmt.Errorf("service %d: duration must not be negative: %d", i, duration))
	}
	if waiting < 0 {
		err = multierr.Append(err, fmt.Errorf("service %d: waiting time must not be negative: %d", i, waiting))
	}
	return err
}
