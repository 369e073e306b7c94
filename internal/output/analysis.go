package output

import (
	"fmt"

	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/cottington/wealth-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// Advisory is the inflation verdict for one projection: how much buying power
// the flat plan loses and what the escalating plan recovers.
type Advisory struct {
	InflationLoss    decimal.Decimal
	LossPct          decimal.Decimal // loss as a share of the nominal value
	EscalationPct    decimal.Decimal
	ShieldedValue    decimal.Decimal
	ShieldAdvantage  decimal.Decimal
	Warning          string
	Advice           string
	ShieldedOutcome  string
	AdvantageSummary string
}

// AnalyzeProjection derives the advisory text shown next to a projection.
// Extracted from the document builder for testability.
func AnalyzeProjection(res *domain.ProjectionResult, currency string) Advisory {
	if res == nil {
		return Advisory{}
	}
	nominal := money.New(res.FinalNominal, currency)
	loss := nominal.Sub(money.New(res.FinalReal, currency)).Round()
	advantage := money.New(res.FinalShielded, currency).Sub(nominal).Round()

	lossPct := decimal.Zero
	if res.FinalNominal.IsPositive() {
		lossPct = loss.Amount.Div(res.FinalNominal).Mul(decimalHundred)
	}
	adv := Advisory{
		InflationLoss:   loss.Amount,
		LossPct:         lossPct,
		EscalationPct:   res.Parameters.InflationPct,
		ShieldedValue:   res.FinalShielded,
		ShieldAdvantage: advantage.Amount,
	}
	if loss.IsNegative() {
		adv.Warning = fmt.Sprintf("Falling prices are projected to add %s to your purchasing power.",
			FormatWhole(loss.Amount.Neg(), currency))
	} else {
		adv.Warning = fmt.Sprintf("Inflation is projected to erode %s of your purchasing power.",
			FormatWhole(loss.Amount, currency))
	}
	adv.Advice = fmt.Sprintf("To stop this loss of buying power, you must increase your contribution by %s annually.",
		FormatRate(res.Parameters.InflationPct))
	adv.ShieldedOutcome = fmt.Sprintf("Outcome if you switch to the Smart Plan: %s",
		FormatWhole(res.FinalShielded, currency))
	if advantage.Amount.IsPositive() {
		adv.AdvantageSummary = fmt.Sprintf("That is %s more than the flat contribution plan.",
			FormatWhole(advantage.Amount, currency))
	}
	return adv
}

var decimalHundred = decimal.NewFromInt(100)
