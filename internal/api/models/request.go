package models

import (
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectionRequest is the body of a projection call. Frequency and timing
// default to monthly contributions paid in advance.
type ProjectionRequest struct {
	Principal    decimal.Decimal  `json:"principal"`
	Contribution decimal.Decimal  `json:"contribution"`
	RatePct      decimal.Decimal  `json:"annual_rate_pct"`
	InflationPct decimal.Decimal  `json:"inflation_pct"`
	Years        int              `json:"years"`
	Frequency    domain.Frequency `json:"frequency,omitempty"`
	Timing       domain.Timing    `json:"timing,omitempty"`
	FeePct       decimal.Decimal  `json:"fee_pct"`
	ExitTaxPct   decimal.Decimal  `json:"exit_tax_pct"`
}

// ToParameters applies defaults and converts the request.
func (r ProjectionRequest) ToParameters() domain.ScenarioParameters {
	p := domain.ScenarioParameters{
		Principal:    r.Principal,
		Contribution: r.Contribution,
		RatePct:      r.RatePct,
		InflationPct: r.InflationPct,
		Years:        r.Years,
		Frequency:    r.Frequency,
		Timing:       r.Timing,
		FeePct:       r.FeePct,
		ExitTaxPct:   r.ExitTaxPct,
	}
	if p.Frequency == 0 {
		p.Frequency = domain.Monthly
	}
	if p.Timing == "" {
		p.Timing = domain.Advance
	}
	return p
}

// GoalRequest is the body of a goal call.
type GoalRequest struct {
	Target       decimal.Decimal  `json:"target"`
	Initial      decimal.Decimal  `json:"initial"`
	RatePct      decimal.Decimal  `json:"annual_rate_pct"`
	InflationPct decimal.Decimal  `json:"inflation_pct"`
	Years        int              `json:"years"`
	Frequency    domain.Frequency `json:"frequency,omitempty"`
	Timing       domain.Timing    `json:"timing,omitempty"`
}

// ToParameters applies defaults and converts the request.
func (r GoalRequest) ToParameters() domain.GoalParameters {
	p := domain.GoalParameters{
		Target:       r.Target,
		Initial:      r.Initial,
		RatePct:      r.RatePct,
		InflationPct: r.InflationPct,
		Years:        r.Years,
		Frequency:    r.Frequency,
		Timing:       r.Timing,
	}
	if p.Frequency == 0 {
		p.Frequency = domain.Monthly
	}
	if p.Timing == "" {
		p.Timing = domain.Advance
	}
	return p
}

// SessionRequest opens a session.
type SessionRequest struct {
	ClientName string `json:"client_name"`
	Currency   string `json:"currency"`
}
