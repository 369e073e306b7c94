package calculation

import (
	"fmt"

	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// SolveGoal finds the starting contribution which, escalated with inflation
// once a year, grows to the target by the horizon on top of the initial lump
// sum. The escalating recurrence is linear in its starting value, so one run
// with a unit contribution gives the exact scale factor; no root finding.
func SolveGoal(p domain.GoalParameters) (*domain.GoalResult, error) {
	if err := ValidateGoal(p); err != nil {
		return nil, fmt.Errorf("goal rejected: %w", err)
	}

	rates := newPeriodRates(p.RatePct, p.InflationPct, decimal.Zero, p.Frequency)
	totalPeriods := p.Periods()

	lumpFV := p.Initial.Mul(one.Add(rates.nominal).Pow(decimal.NewFromInt(int64(totalPeriods)))).Round(workingPlaces)
	result := &domain.GoalResult{
		Parameters:         p,
		RealTargetValue:    p.Target.DivRound(rates.deflator(p.Years), workingPlaces),
		LumpSumFutureValue: lumpFV,
		RemainingGoal:      p.Target.Sub(lumpFV),
	}

	if !result.RemainingGoal.IsPositive() {
		result.Degenerate = true
		result.StartingContribution = decimal.Zero
		result.Series = zeroSchedule(p.Years)
		return result, nil
	}

	unitBalance, _ := simulateEscalating(p, rates, one)
	if !unitBalance.IsPositive() {
		return nil, fmt.Errorf("%w: unit contribution series accumulates to %s after %d periods",
			ErrUnsolvableGoal, unitBalance.StringFixed(2), totalPeriods)
	}

	result.StartingContribution = result.RemainingGoal.DivRound(unitBalance, workingPlaces)
	_, result.Series = simulateEscalating(p, rates, result.StartingContribution)
	return result, nil
}

// simulateEscalating accumulates an escalating contribution from a zero
// balance. The lump sum is left out; its growth is netted out of the target
// before the series is scaled.
func simulateEscalating(p domain.GoalParameters, rates periodRates, start decimal.Decimal) (decimal.Decimal, []domain.GoalSample) {
	pmt := newEscalator(start, p.Frequency, rates.inflation)
	balance := decimal.Zero
	schedule := make([]domain.GoalSample, 0, p.Years)

	for period := 1; period <= p.Periods(); period++ {
		premium := pmt.at(period)
		balance = accumulate(balance, premium, rates.nominal, p.Timing)
		if isYearEnd(period, p.Frequency) {
			schedule = append(schedule, domain.GoalSample{
				Year:              period / p.Frequency.PeriodsPerYear(),
				EscalatingPremium: toCents(premium),
				ProjectedBalance:  toCents(balance),
			})
		}
	}
	return balance, schedule
}

func zeroSchedule(years int) []domain.GoalSample {
	schedule := make([]domain.GoalSample, years)
	for i := range schedule {
		schedule[i] = domain.GoalSample{Year: i + 1, EscalatingPremium: decimal.Zero, ProjectedBalance: decimal.Zero}
	}
	return schedule
}
