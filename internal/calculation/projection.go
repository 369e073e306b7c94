package calculation

import (
	"fmt"

	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// projectionState is the balance state mutated once per period.
type projectionState struct {
	nominal  decimal.Decimal
	real     decimal.Decimal
	shielded decimal.Decimal
	net      decimal.Decimal
}

// Project runs the period-by-period recurrence for a scenario and samples one
// row per completed year. The nominal and real tracks receive the flat
// contribution; the shielded track receives a contribution escalated with
// inflation once a year. The real track compounds at the Fisher real rate
// rather than being deflated after the fact.
func Project(p domain.ScenarioParameters) (*domain.ProjectionResult, error) {
	if err := ValidateScenario(p); err != nil {
		return nil, fmt.Errorf("projection rejected: %w", err)
	}

	rates := newPeriodRates(p.RatePct, p.InflationPct, p.FeePct, p.Frequency)
	shield := newEscalator(p.Contribution, p.Frequency, rates.inflation)
	drag := p.HasDrag()

	state := projectionState{
		nominal:  p.Principal,
		real:     p.Principal,
		shielded: p.Principal,
		net:      p.Principal,
	}

	totalPeriods := p.Periods()
	series := make([]domain.YearlySample, 0, p.Years)
	var lastDrag dragValues

	for period := 1; period <= totalPeriods; period++ {
		premium := shield.at(period)

		state.nominal = accumulate(state.nominal, p.Contribution, rates.nominal, p.Timing)
		state.real = accumulate(state.real, p.Contribution, rates.real, p.Timing)
		state.shielded = accumulate(state.shielded, premium, rates.nominal, p.Timing)
		if drag {
			state.net = accumulate(state.net, p.Contribution, rates.net, p.Timing)
		}

		if !isYearEnd(period, p.Frequency) {
			continue
		}

		year := period / p.Frequency.PeriodsPerYear()
		row := domain.YearlySample{
			Year:            year,
			Nominal:         toCents(state.nominal),
			RealPower:       toCents(state.real),
			Shielded:        toCents(state.shielded),
			ShieldedPremium: toCents(premium),
		}
		if drag {
			lastDrag = computeDrag(p, rates, state.net, period, year)
			row.Drag = lastDrag.sample()
		}
		series = append(series, row)
	}

	result := &domain.ProjectionResult{
		Parameters:       p,
		Series:           series,
		FinalNominal:     state.nominal,
		FinalReal:        state.real,
		FinalShielded:    state.shielded,
		InflationLoss:    state.nominal.Sub(state.real),
		ShieldAdvantage:  state.shielded.Sub(state.nominal),
		TotalContributed: p.Principal.Add(p.Contribution.Mul(decimal.NewFromInt(int64(totalPeriods)))),
	}
	if drag {
		afterTax := lastDrag.net.Sub(lastDrag.taxDrag)
		result.FeeTax = &domain.FeeTaxSummary{
			FinalNet:          lastDrag.net,
			FinalTaxDrag:      lastDrag.taxDrag,
			FinalAfterTax:     afterTax,
			FinalRealAfterTax: lastDrag.realAfterTax,
			DragLoss:          state.nominal.Sub(afterTax),
		}
	}
	return result, nil
}

// dragValues are the full-precision fee/tax figures of one yearly row.
type dragValues struct {
	net          decimal.Decimal
	invested     decimal.Decimal
	gain         decimal.Decimal
	taxDrag      decimal.Decimal
	realAfterTax decimal.Decimal
}

// computeDrag evaluates the fee/tax columns at a year boundary. Invested
// capital counts the flat contribution only, and exit tax is charged on the
// gain at every reporting year as if the plan were cashed out then.
func computeDrag(p domain.ScenarioParameters, rates periodRates, net decimal.Decimal, period, year int) dragValues {
	invested := p.Principal.Add(p.Contribution.Mul(decimal.NewFromInt(int64(period))))
	gain := decimal.Max(decimal.Zero, net.Sub(invested))
	taxDrag := gain.Mul(p.ExitTaxPct).DivRound(hundred, workingPlaces)
	return dragValues{
		net:          net,
		invested:     invested,
		gain:         gain,
		taxDrag:      taxDrag,
		realAfterTax: net.Sub(taxDrag).DivRound(rates.deflator(year), workingPlaces),
	}
}

func (d dragValues) sample() *domain.FeeTaxSample {
	return &domain.FeeTaxSample{
		NetBalance:    toCents(d.net),
		TotalInvested: toCents(d.invested),
		Gain:          toCents(d.gain),
		TaxDrag:       toCents(d.taxDrag),
		RealAfterTax:  toCents(d.realAfterTax),
	}
}
