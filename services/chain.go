package services

import (
	"fmt"

	"kostennote/engine/logger"
	"kostennote/engine/metrics"
	"kostennote/engine/models"
	"kostennote/engine/surcharges"
	"kostennote/engine/tariffs"
)

// Statutory citations of the surcharge lines
const (
	sectionWaiting        = "§ 9 Abs 2 RATG"
	sectionJoinder        = "§ 22 RATG"
	sectionUniformRate    = "§ 23 RATG"
	sectionCoLitigant     = "§ 15 RATG"
	sectionERV            = "§ 23a RATG"
	sectionAHKCoLitigant  = "§ 10 AHK"
	sectionAHKSuccess     = "§ 12 AHK"
	sectionCourtFeeManual = "GGG (manuell)"
)

// item is one service reduced to what the pricing chain needs
type item struct {
	id          string
	date        models.Date
	post        models.TariffPost
	basisCents  int64
	halfHours   int
	waiting     int
	multiplier  int
	frustrated  bool
	halve       bool
	joinder     models.JoinderCategory
	includeERV  bool
	firstFiling bool
	// coLitigants enables the per-service civil co-litigant surcharge
	coLitigants *int
}

// priced holds the lines of one service and its percentage-chain subtotal:
// everything except the ERV contribution.
type priced struct {
	lines      []models.CalculatedLine
	chainCents int64
}

func (p *priced) add(it item, kind models.LineKind, label, section string, cents int64, trace string) {
	if cents == 0 {
		return
	}
	p.lines = append(p.lines, models.CalculatedLine{
		Date:             it.date,
		Label:            label,
		Section:          section,
		Kind:             kind,
		VATRate:          models.VATRateStandard,
		AmountCents:      cents,
		BmglCents:        it.basisCents,
		CalculationTrace: trace,
		ServiceID:        it.id,
	})
	if kind != models.LineERV {
		p.chainCents += cents
	}
}

// chain prices items against one catalog. It is shared by every domain
// calculator; domain rules decide which item fields are set.
type chain struct {
	catalog *tariffs.Catalog
	domain  models.Domain
	log     *logger.Logger
}

func newChain(catalog *tariffs.Catalog, domain models.Domain) chain {
	return chain{catalog: catalog, domain: domain, log: logger.Named("services")}
}

// price runs base, waiting, joinder, uniform rate, co-litigant and ERV for
// one service in that order. Every non-zero step becomes its own line.
func (c chain) price(it item) (priced, error) {
	var out priced

	info, ok := tariffs.Info(it.post)
	if !ok {
		return out, fmt.Errorf("%w: %s", tariffs.ErrUnknownTariffPost, it.post)
	}

	var base, waiting int64
	timeBased := info.Kind == tariffs.KindTime
	if timeBased {
		fee, err := c.catalog.CalculateTimeFee(tariffs.TimeFeeRequest{
			Post:             it.post,
			BasisCents:       it.basisCents,
			HalfHours:        it.halfHours,
			WaitingHalfHours: it.waiting,
			Frustrated:       it.frustrated,
			Date:             it.date,
		})
		if err != nil {
			return out, err
		}
		base, waiting = fee.BaseCents, fee.WaitingCents
		trace := fee.Trace
		// a frustrated hearing keeps its full first half-hour
		if it.halve && !it.frustrated {
			base = surcharges.HalfOf(base)
			trace += fmt.Sprintf("; davon ½ = %s", models.FormatCents(base))
		}
		out.add(it, models.LineBase, fmt.Sprintf("%s (%d × ½ h)", info.Label, fee.HalfHours), info.Section, base, trace)
		out.add(it, models.LineWaiting, "Wartezeit", sectionWaiting, waiting, fee.WaitingTrace)
	} else {
		resolved, err := c.catalog.ResolveBase(it.basisCents, it.post, it.date)
		if err != nil {
			return out, err
		}
		base = resolved.AmountCents
		trace := fmt.Sprintf("%s %s (%s): %s", info.Section, resolved.Label, resolved.PeriodID, models.FormatCents(base))
		if it.halve {
			base = surcharges.HalfOf(base)
			trace += fmt.Sprintf("; davon ½ = %s", models.FormatCents(base))
		}
		out.add(it, models.LineBase, info.Label, info.Section, base, trace)
	}

	var joinder int64
	if it.joinder != models.JoinderNone && !timeBased && info.ESClass != surcharges.ClassExcluded {
		j := surcharges.Joinder(base, it.joinder)
		joinder = j.Cents
		out.add(it, models.LineJoinder, "Verbindungszuschlag", sectionJoinder, joinder, j.Trace)
	}

	if !(timeBased && it.frustrated) {
		capped := surcharges.CapMultiplier(info.ESClass, it.multiplier)
		if capped != it.multiplier {
			c.log.Debug("ES multiplier %d for %s clamped to %d (%s class)", it.multiplier, it.post, capped, info.ESClass)
		}
		es := surcharges.UniformRate(surcharges.UniformRateInput{
			BaseCents:      base + waiting + joinder,
			BasisCents:     it.basisCents,
			ThresholdCents: c.catalog.ESThreshold(it.date),
			Multiplier:     capped,
			Class:          info.ESClass,
		})
		out.add(it, models.LineUniform, fmt.Sprintf("Einheitssatz %d %%", es.Percent), sectionUniformRate, es.Cents, es.Trace)
	}

	if it.coLitigants != nil {
		co := surcharges.CoLitigant(out.chainCents, *it.coLitigants)
		out.add(it, models.LineCoLitigant, fmt.Sprintf("Streitgenossenzuschlag %d %%", co.Percent), sectionCoLitigant, co.Cents, co.Trace)
	}

	if it.includeERV {
		rates := c.catalog.ERV(it.date)
		erv := surcharges.ElectronicFiling(it.firstFiling, rates.FirstCents, rates.RegularCents)
		out.add(it, models.LineERV, "ERV-Beitrag", sectionERV, erv.Cents, erv.Trace)
	}
	return out, nil
}

// skip records a service the calculator cannot price. It produces no lines.
func (c chain) skip(svc models.Service, reason string) {
	c.log.Warn("Skipping service %s in %s matter: %s", svc.ServiceID(), c.domain, reason)
	metrics.UnknownServiceTypes.WithLabelValues(string(c.domain)).Inc()
}

// caseSurcharges adds the AHK success and co-litigant surcharges once over
// the summed chain subtotal of all services.
func caseSurcharges(subtotalCents int64, cc models.CaseContext, date models.Date) []models.CalculatedLine {
	if subtotalCents <= 0 {
		return nil
	}
	var lines []models.CalculatedLine
	add := func(kind models.LineKind, label, section string, a surcharges.Amount) {
		if a.Cents == 0 {
			return
		}
		lines = append(lines, models.CalculatedLine{
			Date:             date,
			Label:            label,
			Section:          section,
			Kind:             kind,
			VATRate:          models.VATRateStandard,
			AmountCents:      a.Cents,
			BmglCents:        subtotalCents,
			CalculationTrace: a.Trace,
		})
	}

	success := surcharges.Success(subtotalCents, cc.SuccessPercent)
	add(models.LineSuccess, fmt.Sprintf("Erfolgszuschlag %d %%", success.Percent), sectionAHKSuccess, success)

	co := surcharges.CriminalCoLitigant(subtotalCents, cc.AdditionalParties)
	add(models.LineCoLitigant, fmt.Sprintf("Zuschlag weitere Personen %d %%", co.Percent), sectionAHKCoLitigant, co)
	return lines
}

// fixedBasis returns the court-type basis, or the case basis when the court
// type is unset or not in the catalog.
func fixedBasis(catalog *tariffs.Catalog, cc models.CaseContext, at models.Date) int64 {
	if cc.CourtType != "" {
		if basis, ok := catalog.CourtBasis(cc.CourtType, at); ok {
			return basis
		}
	}
	return cc.BasisCents
}

// lastDate is the date of the latest service, used for case-level lines
func lastDate(services []models.Service) models.Date {
	var latest models.Date
	for _, svc := range services {
		if svc == nil {
			continue
		}
		if d := svc.ServiceDate(); d.After(latest.Time) {
			latest = d
		}
	}
	return latest
}
