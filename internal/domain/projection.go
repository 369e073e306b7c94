package domain

import "github.com/shopspring/decimal"

// YearlySample is one row of a projection, captured at the end of each year.
// Every amount is rounded to cents.
type YearlySample struct {
	Year            int             `json:"year"`
	Nominal         decimal.Decimal `json:"nominal"`
	RealPower       decimal.Decimal `json:"real_power"`
	Shielded        decimal.Decimal `json:"shielded"`
	ShieldedPremium decimal.Decimal `json:"shielded_premium"`

	// Drag is only set when fees or exit tax are modeled.
	Drag *FeeTaxSample `json:"drag,omitempty"`
}

// FeeTaxSample holds the fee/tax drag columns of a yearly row.
// TotalInvested ignores contribution escalation.
type FeeTaxSample struct {
	NetBalance    decimal.Decimal `json:"net_balance"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	Gain          decimal.Decimal `json:"gain"`
	TaxDrag       decimal.Decimal `json:"tax_drag"`
	RealAfterTax  decimal.Decimal `json:"real_after_tax"`
}

// ProjectionResult is the output of a projection run. Final amounts keep full
// working precision; round them for display.
type ProjectionResult struct {
	Parameters ScenarioParameters `json:"parameters"`
	Series     []YearlySample     `json:"series"`

	FinalNominal     decimal.Decimal `json:"final_nominal"`
	FinalReal        decimal.Decimal `json:"final_real"`
	FinalShielded    decimal.Decimal `json:"final_shielded"`
	InflationLoss    decimal.Decimal `json:"inflation_loss"`
	ShieldAdvantage  decimal.Decimal `json:"shield_advantage"`
	TotalContributed decimal.Decimal `json:"total_contributed"`

	FeeTax *FeeTaxSummary `json:"fee_tax,omitempty"`
}

// FeeTaxSummary carries the final values of the fee/tax variant.
type FeeTaxSummary struct {
	FinalNet          decimal.Decimal `json:"final_net"`
	FinalTaxDrag      decimal.Decimal `json:"final_tax_drag"`
	FinalAfterTax     decimal.Decimal `json:"final_after_tax"`
	FinalRealAfterTax decimal.Decimal `json:"final_real_after_tax"`
	DragLoss          decimal.Decimal `json:"drag_loss"`
}

// Final returns the last yearly row, if any.
func (r *ProjectionResult) Final() (YearlySample, bool) {
	if r == nil || len(r.Series) == 0 {
		return YearlySample{}, false
	}
	return r.Series[len(r.Series)-1], true
}

// GoalSample is one row of the escalating contribution schedule.
type GoalSample struct {
	Year              int             `json:"year"`
	EscalatingPremium decimal.Decimal `json:"escalating_premium"`
	ProjectedBalance  decimal.Decimal `json:"projected_balance"`
}

// GoalResult is the output of the goal solver.
type GoalResult struct {
	Parameters GoalParameters `json:"parameters"`

	StartingContribution decimal.Decimal `json:"starting_contribution"`
	RealTargetValue      decimal.Decimal `json:"real_target_value"`
	LumpSumFutureValue   decimal.Decimal `json:"lump_sum_future_value"`
	RemainingGoal        decimal.Decimal `json:"remaining_goal"`

	// Degenerate is true when the initial lump sum alone meets the target.
	Degenerate bool         `json:"degenerate"`
	Series     []GoalSample `json:"series"`
}
