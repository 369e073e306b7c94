package calculation

import (
	"errors"
	"testing"

	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

// realityCheck is the default scenario of the dashboard: R1 000 a month at 10%
// with 6% inflation for ten years, paid in advance.
func realityCheck() domain.ScenarioParameters {
	return domain.ScenarioParameters{
		Principal:    decimal.Zero,
		Contribution: decimal.NewFromInt(1000),
		RatePct:      decimal.NewFromInt(10),
		InflationPct: decimal.NewFromInt(6),
		Years:        10,
		Frequency:    domain.Monthly,
		Timing:       domain.Advance,
	}
}

func TestProject_RealityCheckGolden(t *testing.T) {
	result, err := Project(realityCheck())
	require.NoError(t, err)
	require.Len(t, result.Series, 10)

	expected := []struct {
		nominal, real, shielded, premium string
	}{
		{"12670.28", "12248.13", "12670.28", "1000.00"},
		{"26667.31", "24966.54", "27427.52", "1060.00"},
		{"42130.00", "38173.27", "44535.87", "1123.60"},
		{"59211.85", "51887.08", "64289.87", "1191.02"},
		{"78082.38", "66127.44", "87017.79", "1262.48"},
		{"98928.91", "80914.57", "113085.39", "1338.23"},
		{"121958.34", "96269.45", "142899.94", "1418.52"},
		{"147399.25", "112213.89", "176914.85", "1503.63"},
		{"175504.16", "128770.52", "215634.65", "1593.85"},
		{"206552.02", "145962.85", "259620.59", "1689.48"},
	}
	for i, want := range expected {
		row := result.Series[i]
		assert.Equal(t, i+1, row.Year)
		assert.Equal(t, want.nominal, row.Nominal.StringFixed(2), "year %d nominal", row.Year)
		assert.Equal(t, want.real, row.RealPower.StringFixed(2), "year %d real", row.Year)
		assert.Equal(t, want.shielded, row.Shielded.StringFixed(2), "year %d shielded", row.Year)
		assert.Equal(t, want.premium, row.ShieldedPremium.StringFixed(2), "year %d premium", row.Year)
		assert.Nil(t, row.Drag)
	}

	assert.Equal(t, "206552.02", result.FinalNominal.StringFixed(2))
	assert.Equal(t, "145962.85", result.FinalReal.StringFixed(2))
	assert.Equal(t, "259620.59", result.FinalShielded.StringFixed(2))
	assert.Equal(t, "60589.17", result.InflationLoss.StringFixed(2))
	assert.Equal(t, "53068.57", result.ShieldAdvantage.StringFixed(2))
	assert.Equal(t, "120000.00", result.TotalContributed.StringFixed(2))
	assert.Nil(t, result.FeeTax)
}

func TestProject_Arrears(t *testing.T) {
	p := realityCheck()
	p.Timing = domain.Arrears
	result, err := Project(p)
	require.NoError(t, err)

	last, ok := result.Final()
	require.True(t, ok)
	assert.Equal(t, 10, last.Year)
	assert.Equal(t, "204844.98", last.Nominal.StringFixed(2))
	assert.Equal(t, "145505.28", last.RealPower.StringFixed(2))
	assert.Equal(t, "257474.97", last.Shielded.StringFixed(2))
	assert.Equal(t, "1689.48", last.ShieldedPremium.StringFixed(2))
}

func TestProject_SingleYearBoundary(t *testing.T) {
	p := domain.ScenarioParameters{
		Principal:    decimal.NewFromInt(5000),
		Contribution: decimal.NewFromInt(100),
		RatePct:      decimal.NewFromInt(7),
		InflationPct: decimal.NewFromInt(3),
		Years:        1,
		Frequency:    domain.Yearly,
		Timing:       domain.Advance,
	}
	result, err := Project(p)
	require.NoError(t, err)
	require.Len(t, result.Series, 1)

	row := result.Series[0]
	assert.Equal(t, 1, row.Year)
	assert.Equal(t, "5457.00", row.Nominal.StringFixed(2))
	assert.Equal(t, "5298.06", row.RealPower.StringFixed(2))
	// Escalation never triggers inside a single year.
	assert.Equal(t, "5457.00", row.Shielded.StringFixed(2))
	assert.Equal(t, "100.00", row.ShieldedPremium.StringFixed(2))
}

func TestProject_FeeAndExitTaxDrag(t *testing.T) {
	p := domain.ScenarioParameters{
		Principal:    decimal.NewFromInt(10000),
		Contribution: decimal.NewFromInt(500),
		RatePct:      decimal.NewFromInt(8),
		InflationPct: decimal.NewFromInt(5),
		Years:        3,
		Frequency:    domain.Quarterly,
		Timing:       domain.Arrears,
		FeePct:       decimal.NewFromFloat(1.5),
		ExitTaxPct:   decimal.NewFromInt(20),
	}
	result, err := Project(p)
	require.NoError(t, err)
	require.Len(t, result.Series, 3)

	expected := []struct {
		nominal, net, invested, gain, tax, realAfterTax string
	}{
		{"12885.13", "12715.30", "12000.00", "715.30", "143.06", "11973.56"},
		{"16008.08", "15611.44", "14000.00", "1611.44", "322.29", "13867.71"},
		{"19388.46", "18700.46", "16000.00", "2700.46", "540.09", "15687.61"},
	}
	for i, want := range expected {
		row := result.Series[i]
		require.NotNil(t, row.Drag, "year %d", row.Year)
		assert.Equal(t, want.nominal, row.Nominal.StringFixed(2))
		assert.Equal(t, want.net, row.Drag.NetBalance.StringFixed(2))
		assert.Equal(t, want.invested, row.Drag.TotalInvested.StringFixed(2))
		assert.Equal(t, want.gain, row.Drag.Gain.StringFixed(2))
		assert.Equal(t, want.tax, row.Drag.TaxDrag.StringFixed(2))
		assert.Equal(t, want.realAfterTax, row.Drag.RealAfterTax.StringFixed(2))
	}

	require.NotNil(t, result.FeeTax)
	assert.Equal(t, "18700.46", result.FeeTax.FinalNet.StringFixed(2))
	assert.Equal(t, "540.09", result.FeeTax.FinalTaxDrag.StringFixed(2))
	assert.Equal(t, "18160.37", result.FeeTax.FinalAfterTax.StringFixed(2))
	assert.Equal(t, "15687.61", result.FeeTax.FinalRealAfterTax.StringFixed(2))
	assert.True(t, result.FeeTax.DragLoss.IsPositive())
}

func TestProject_GainNeverNegative(t *testing.T) {
	p := realityCheck()
	p.RatePct = decimal.NewFromInt(-5)
	p.ExitTaxPct = decimal.NewFromInt(30)
	result, err := Project(p)
	require.NoError(t, err)
	for _, row := range result.Series {
		require.NotNil(t, row.Drag)
		assert.True(t, row.Drag.Gain.IsZero(), "year %d gain %s", row.Year, row.Drag.Gain)
		assert.True(t, row.Drag.TaxDrag.IsZero())
	}
}

func TestProject_Idempotent(t *testing.T) {
	first, err := Project(realityCheck())
	require.NoError(t, err)
	second, err := Project(realityCheck())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, decimalComparer); diff != "" {
		t.Fatalf("projection is not deterministic (-first +second):\n%s", diff)
	}
}

func TestProject_MonotonicForPositiveRate(t *testing.T) {
	for _, timing := range []domain.Timing{domain.Advance, domain.Arrears} {
		for _, freq := range []domain.Frequency{domain.Monthly, domain.Quarterly, domain.SemiAnnually, domain.Yearly} {
			p := realityCheck()
			p.Principal = decimal.NewFromInt(2500)
			p.Timing = timing
			p.Frequency = freq
			p.Years = 25
			result, err := Project(p)
			require.NoError(t, err)

			for i := 1; i < len(result.Series); i++ {
				prev, cur := result.Series[i-1], result.Series[i]
				assert.True(t, cur.Nominal.GreaterThanOrEqual(prev.Nominal), "%s/%s nominal year %d", timing, freq, cur.Year)
				assert.True(t, cur.RealPower.GreaterThanOrEqual(prev.RealPower), "%s/%s real year %d", timing, freq, cur.Year)
				assert.True(t, cur.Shielded.GreaterThanOrEqual(prev.Shielded), "%s/%s shielded year %d", timing, freq, cur.Year)
			}
		}
	}
}

func TestProject_AdvanceBeatsArrears(t *testing.T) {
	tests := []struct {
		name string
		p    domain.ScenarioParameters
	}{
		{"reality check", realityCheck()},
		{"quarterly with principal", domain.ScenarioParameters{
			Principal: decimal.NewFromInt(20000), Contribution: decimal.NewFromInt(1500),
			RatePct: decimal.NewFromFloat(7.5), InflationPct: decimal.NewFromFloat(4.5),
			Years: 30, Frequency: domain.Quarterly,
		}},
		{"yearly zero contribution", domain.ScenarioParameters{
			Principal: decimal.NewFromInt(1000), Contribution: decimal.Zero,
			RatePct: decimal.NewFromInt(12), InflationPct: decimal.NewFromInt(2),
			Years: 5, Frequency: domain.Yearly,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advance, arrears := tt.p, tt.p
			advance.Timing = domain.Advance
			arrears.Timing = domain.Arrears

			ra, err := Project(advance)
			require.NoError(t, err)
			rr, err := Project(arrears)
			require.NoError(t, err)
			assert.True(t, ra.FinalNominal.GreaterThanOrEqual(rr.FinalNominal),
				"advance %s < arrears %s", ra.FinalNominal.StringFixed(2), rr.FinalNominal.StringFixed(2))
		})
	}
}

func TestProject_FisherConsistencyWithoutInflation(t *testing.T) {
	p := realityCheck()
	p.InflationPct = decimal.Zero
	p.RatePct = decimal.NewFromFloat(7.25)
	p.Principal = decimal.NewFromInt(1234)
	result, err := Project(p)
	require.NoError(t, err)

	for _, row := range result.Series {
		assert.True(t, row.RealPower.Equal(row.Nominal), "year %d: real %s != nominal %s", row.Year, row.RealPower, row.Nominal)
		assert.True(t, row.ShieldedPremium.Equal(p.Contribution), "year %d premium escalated without inflation", row.Year)
	}
	assert.True(t, result.InflationLoss.IsZero())
}

func TestProject_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ScenarioParameters)
		field  string
	}{
		{"inflation at -100%", func(p *domain.ScenarioParameters) { p.InflationPct = decimal.NewFromInt(-100) }, "inflation_pct"},
		{"inflation below -100%", func(p *domain.ScenarioParameters) { p.InflationPct = decimal.NewFromInt(-150) }, "inflation_pct"},
		{"zero years", func(p *domain.ScenarioParameters) { p.Years = 0 }, "years"},
		{"negative years", func(p *domain.ScenarioParameters) { p.Years = -3 }, "years"},
		{"unsupported frequency", func(p *domain.ScenarioParameters) { p.Frequency = domain.Frequency(3) }, "frequency"},
		{"unset frequency", func(p *domain.ScenarioParameters) { p.Frequency = 0 }, "frequency"},
		{"unknown timing", func(p *domain.ScenarioParameters) { p.Timing = "sideways" }, "timing"},
		{"negative principal", func(p *domain.ScenarioParameters) { p.Principal = decimal.NewFromInt(-1) }, "principal"},
		{"negative contribution", func(p *domain.ScenarioParameters) { p.Contribution = decimal.NewFromInt(-1) }, "contribution"},
		{"negative fee", func(p *domain.ScenarioParameters) { p.FeePct = decimal.NewFromInt(-1) }, "fee_pct"},
		{"tax above 100%", func(p *domain.ScenarioParameters) { p.ExitTaxPct = decimal.NewFromInt(101) }, "exit_tax_pct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := realityCheck()
			tt.mutate(&p)
			result, err := Project(p)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrInvalidParameter))

			var perr *domain.ParameterError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestProject_NegativeRateIsAllowed(t *testing.T) {
	p := realityCheck()
	p.RatePct = decimal.NewFromInt(-3)
	result, err := Project(p)
	require.NoError(t, err)
	assert.Len(t, result.Series, 10)
	assert.True(t, result.FinalNominal.LessThan(result.TotalContributed))
}
