package output

import (
	"fmt"
	"strings"

	"github.com/cottington/wealth-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions that hold for every report.
var DefaultAssumptions = []string{
	"Real values use the Fisher equation: (1 + return) / (1 + inflation) - 1",
	"Returns and inflation are constant for the whole term",
	"Escalating contributions rise with inflation once a year, from the second year",
}

// GenerateAssumptions creates the assumptions list from the parameters of an analysis.
func GenerateAssumptions(a *domain.Analysis) []string {
	out := append([]string(nil), DefaultAssumptions...)
	if a == nil {
		return out
	}
	if p := a.Projection; p != nil {
		params := p.Parameters
		out = append(out,
			fmt.Sprintf("Projection: %s annual return compounded %s, %s inflation, contributions paid %s",
				FormatRate(params.RatePct), strings.ToLower(params.Frequency.Label()),
				FormatRate(params.InflationPct), timingPhrase(params.Timing)))
		if params.FeePct.IsPositive() {
			out = append(out, fmt.Sprintf("Annual fee of %s deducted from the return", FormatRate(params.FeePct)))
		}
		if params.ExitTaxPct.IsPositive() {
			out = append(out, fmt.Sprintf("Exit tax of %s on gains above the flat contributions, as if cashed out each year", FormatRate(params.ExitTaxPct)))
		}
	}
	if g := a.Goal; g != nil {
		params := g.Parameters
		out = append(out,
			fmt.Sprintf("Goal: %s annual return compounded %s, %s inflation, contributions paid %s",
				FormatRate(params.RatePct), strings.ToLower(params.Frequency.Label()),
				FormatRate(params.InflationPct), timingPhrase(params.Timing)))
	}
	return out
}

func timingPhrase(t domain.Timing) string {
	if t == domain.Arrears {
		return "at the end of each period"
	}
	return "at the start of each period"
}
