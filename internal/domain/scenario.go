package domain

import "github.com/shopspring/decimal"

// ScenarioParameters describes one projection run. Percentages are given in
// percent (10 means 10%). FeePct and ExitTaxPct are optional; when both are
// zero the fee/tax drag columns are not produced.
type ScenarioParameters struct {
	Principal    decimal.Decimal `yaml:"principal" json:"principal"`
	Contribution decimal.Decimal `yaml:"contribution" json:"contribution"`
	RatePct      decimal.Decimal `yaml:"annual_rate_pct" json:"annual_rate_pct"`
	InflationPct decimal.Decimal `yaml:"inflation_pct" json:"inflation_pct"`
	Years        int             `yaml:"years" json:"years"`
	Frequency    Frequency       `yaml:"frequency" json:"frequency"`
	Timing       Timing          `yaml:"timing" json:"timing"`
	FeePct       decimal.Decimal `yaml:"fee_pct,omitempty" json:"fee_pct,omitempty"`
	ExitTaxPct   decimal.Decimal `yaml:"exit_tax_pct,omitempty" json:"exit_tax_pct,omitempty"`
}

// HasDrag reports whether the fee/tax variant is active.
func (p ScenarioParameters) HasDrag() bool {
	return !p.FeePct.IsZero() || !p.ExitTaxPct.IsZero()
}

// Periods is the total number of compounding periods in the horizon.
func (p ScenarioParameters) Periods() int { return p.Years * p.Frequency.PeriodsPerYear() }

// GoalParameters describes a goal-seeking run: which escalating contribution,
// on top of Initial invested today, reaches Target after Years.
type GoalParameters struct {
	Target       decimal.Decimal `yaml:"target" json:"target"`
	Initial      decimal.Decimal `yaml:"initial" json:"initial"`
	RatePct      decimal.Decimal `yaml:"annual_rate_pct" json:"annual_rate_pct"`
	InflationPct decimal.Decimal `yaml:"inflation_pct" json:"inflation_pct"`
	Years        int             `yaml:"years" json:"years"`
	Frequency    Frequency       `yaml:"frequency" json:"frequency"`
	Timing       Timing          `yaml:"timing" json:"timing"`
}

// Periods is the total number of compounding periods in the horizon.
func (p GoalParameters) Periods() int { return p.Years * p.Frequency.PeriodsPerYear() }
