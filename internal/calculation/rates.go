package calculation

import (
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// workingPlaces is the number of decimal places kept while accumulating.
// Reported amounts are rounded to cents only when a row is emitted.
const workingPlaces int32 = 18

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// growthFactor converts a percentage into 1 + pct/100.
func growthFactor(pct decimal.Decimal) decimal.Decimal {
	return one.Add(pct.DivRound(hundred, workingPlaces))
}

// perPeriod converts an annual percentage into a simple per-period rate: pct/100/m.
func perPeriod(pct decimal.Decimal, freq domain.Frequency) decimal.Decimal {
	return pct.DivRound(hundred.Mul(decimal.NewFromInt(int64(freq.PeriodsPerYear()))), workingPlaces)
}

// fisherRealRate returns the annual real rate (1+rate)/(1+inflation) - 1.
func fisherRealRate(ratePct, inflationPct decimal.Decimal) decimal.Decimal {
	return growthFactor(ratePct).DivRound(growthFactor(inflationPct), workingPlaces).Sub(one)
}

// periodRates holds the per-period rates shared by every track of a run.
type periodRates struct {
	nominal   decimal.Decimal
	real      decimal.Decimal
	net       decimal.Decimal
	inflation decimal.Decimal // 1 + inflation/100, applied once a year
}

func newPeriodRates(ratePct, inflationPct, feePct decimal.Decimal, freq domain.Frequency) periodRates {
	nominal := perPeriod(ratePct, freq)
	realAnnual := fisherRealRate(ratePct, inflationPct)
	return periodRates{
		nominal:   nominal,
		real:      realAnnual.DivRound(decimal.NewFromInt(int64(freq.PeriodsPerYear())), workingPlaces),
		net:       nominal.Sub(perPeriod(feePct, freq)),
		inflation: growthFactor(inflationPct),
	}
}

// deflator is (1+inflation/100)^years.
func (r periodRates) deflator(years int) decimal.Decimal {
	return r.inflation.Pow(decimal.NewFromInt(int64(years)))
}

// accumulate applies one period of contribution and growth in timing order.
// In advance mode growth is earned on the post-contribution balance.
func accumulate(balance, contribution, rate decimal.Decimal, timing domain.Timing) decimal.Decimal {
	if timing == domain.Advance {
		balance = balance.Add(contribution)
		return balance.Add(balance.Mul(rate)).Round(workingPlaces)
	}
	balance = balance.Add(balance.Mul(rate)).Round(workingPlaces)
	return balance.Add(contribution)
}

// escalator tracks a contribution that is re-scaled by the inflation factor at
// the start of every year after the first, never mid-year.
type escalator struct {
	periodsPerYear int
	factor         decimal.Decimal
	current        decimal.Decimal
}

func newEscalator(base decimal.Decimal, freq domain.Frequency, factor decimal.Decimal) *escalator {
	return &escalator{periodsPerYear: freq.PeriodsPerYear(), factor: factor, current: base}
}

// at returns the contribution for the given 1-based period, escalating on year boundaries.
func (e *escalator) at(period int) decimal.Decimal {
	if period > 1 && (period-1)%e.periodsPerYear == 0 {
		e.current = e.current.Mul(e.factor).Round(workingPlaces)
	}
	return e.current
}

// isYearEnd reports whether period closes a year.
func isYearEnd(period int, freq domain.Frequency) bool {
	return period%freq.PeriodsPerYear() == 0
}

func toCents(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
