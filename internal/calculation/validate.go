package calculation

import (
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxYears bounds the horizon so a run stays a short in-memory loop.
const MaxYears = 100

// ValidateScenario rejects projection inputs that would make the recurrence undefined.
func ValidateScenario(p domain.ScenarioParameters) error {
	if err := validateCommon(p.InflationPct, p.Years, p.Frequency, p.Timing); err != nil {
		return err
	}
	if p.Principal.IsNegative() {
		return domain.InvalidParameter("principal", "must not be negative, got %s", p.Principal)
	}
	if p.Contribution.IsNegative() {
		return domain.InvalidParameter("contribution", "must not be negative, got %s", p.Contribution)
	}
	if p.FeePct.IsNegative() {
		return domain.InvalidParameter("fee_pct", "must not be negative, got %s", p.FeePct)
	}
	if p.ExitTaxPct.IsNegative() || p.ExitTaxPct.GreaterThan(hundred) {
		return domain.InvalidParameter("exit_tax_pct", "must be between 0 and 100, got %s", p.ExitTaxPct)
	}
	return nil
}

// ValidateGoal rejects goal-seeking inputs before any simulation runs.
func ValidateGoal(p domain.GoalParameters) error {
	if err := validateCommon(p.InflationPct, p.Years, p.Frequency, p.Timing); err != nil {
		return err
	}
	if !p.Target.IsPositive() {
		return domain.InvalidParameter("target", "must be positive, got %s", p.Target)
	}
	if p.Initial.IsNegative() {
		return domain.InvalidParameter("initial", "must not be negative, got %s", p.Initial)
	}
	return nil
}

func validateCommon(inflationPct decimal.Decimal, years int, freq domain.Frequency, timing domain.Timing) error {
	if years <= 0 || years > MaxYears {
		return domain.InvalidParameter("years", "must be between 1 and %d, got %d", MaxYears, years)
	}
	if !freq.Valid() {
		return domain.InvalidParameter("frequency", "unsupported frequency %d (use 12, 4, 2 or 1 periods per year)", int(freq))
	}
	if !timing.Valid() {
		return domain.InvalidParameter("timing", "unsupported timing %q (use advance or arrears)", string(timing))
	}
	if !growthFactor(inflationPct).IsPositive() {
		return domain.InvalidParameter("inflation_pct", "1 + inflation/100 must be positive, got inflation %s%%", inflationPct)
	}
	return nil
}
