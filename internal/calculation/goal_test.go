package calculation

import (
	"errors"
	"testing"

	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func millionGoal() domain.GoalParameters {
	return domain.GoalParameters{
		Target:       decimal.NewFromInt(1000000),
		Initial:      decimal.Zero,
		RatePct:      decimal.NewFromInt(10),
		InflationPct: decimal.NewFromInt(6),
		Years:        10,
		Frequency:    domain.Monthly,
		Timing:       domain.Advance,
	}
}

func TestSolveGoal_MillionGolden(t *testing.T) {
	result, err := SolveGoal(millionGoal())
	require.NoError(t, err)

	assert.False(t, result.Degenerate)
	assert.Equal(t, "3851.77", result.StartingContribution.StringFixed(2))
	assert.Equal(t, "558394.78", result.RealTargetValue.StringFixed(2))
	assert.True(t, result.LumpSumFutureValue.IsZero())
	assert.Equal(t, "1000000.00", result.RemainingGoal.StringFixed(2))

	expected := []struct{ premium, balance string }{
		{"3851.77", "48803.07"},
		{"4082.88", "105644.64"},
		{"4327.85", "171542.14"},
		{"4587.53", "247630.08"},
		{"4862.78", "335172.93"},
		{"5154.54", "435579.43"},
		{"5463.82", "550418.37"},
		{"5791.64", "681436.13"},
		{"6139.14", "830576.08"},
		{"6507.49", "1000000.00"},
	}
	require.Len(t, result.Series, len(expected))
	for i, want := range expected {
		row := result.Series[i]
		assert.Equal(t, i+1, row.Year)
		assert.Equal(t, want.premium, row.EscalatingPremium.StringFixed(2), "year %d premium", row.Year)
		assert.Equal(t, want.balance, row.ProjectedBalance.StringFixed(2), "year %d balance", row.Year)
	}
}

func TestSolveGoal_WithLumpSumArrears(t *testing.T) {
	p := millionGoal()
	p.Initial = decimal.NewFromInt(50000)
	p.Timing = domain.Arrears

	result, err := SolveGoal(p)
	require.NoError(t, err)
	assert.Equal(t, "3358.18", result.StartingContribution.StringFixed(2))
	assert.Equal(t, "135352.07", result.LumpSumFutureValue.StringFixed(2))
	assert.Equal(t, "864647.93", result.RemainingGoal.StringFixed(2))

	last := result.Series[len(result.Series)-1]
	assert.Equal(t, 10, last.Year)
	assert.Equal(t, "5673.58", last.EscalatingPremium.StringFixed(2))
	// The schedule excludes the lump sum; it must close exactly on the remaining goal.
	assert.Equal(t, "864647.93", last.ProjectedBalance.StringFixed(2))
}

// Feeding the solved contribution into the projection engine's shielded track
// (zero principal, same timing) must land on the target.
func TestSolveGoal_ReplayThroughProjection(t *testing.T) {
	for _, timing := range []domain.Timing{domain.Advance, domain.Arrears} {
		for _, freq := range []domain.Frequency{domain.Monthly, domain.Quarterly, domain.SemiAnnually, domain.Yearly} {
			p := millionGoal()
			p.Timing = timing
			p.Frequency = freq
			p.Years = 17
			p.InflationPct = decimal.NewFromFloat(5.5)

			goal, err := SolveGoal(p)
			require.NoError(t, err)

			proj, err := Project(domain.ScenarioParameters{
				Principal:    decimal.Zero,
				Contribution: goal.StartingContribution,
				RatePct:      p.RatePct,
				InflationPct: p.InflationPct,
				Years:        p.Years,
				Frequency:    p.Frequency,
				Timing:       p.Timing,
			})
			require.NoError(t, err)

			relErr := proj.FinalShielded.Sub(goal.RemainingGoal).Abs().Div(goal.RemainingGoal)
			assert.True(t, relErr.LessThan(decimal.NewFromFloat(1e-6)),
				"%s/%s: replay %s vs target %s", timing, freq, proj.FinalShielded.StringFixed(6), goal.RemainingGoal.StringFixed(6))

			for i, row := range proj.Series {
				assert.True(t, row.ShieldedPremium.Equal(goal.Series[i].EscalatingPremium), "%s/%s year %d premium", timing, freq, row.Year)
			}
		}
	}
}

func TestSolveGoal_DegenerateLumpSum(t *testing.T) {
	p := millionGoal()
	p.Target = decimal.NewFromInt(100000)
	p.Initial = decimal.NewFromInt(100000)

	result, err := SolveGoal(p)
	require.NoError(t, err)
	assert.True(t, result.Degenerate)
	assert.True(t, result.StartingContribution.IsZero())
	assert.Equal(t, "270704.15", result.LumpSumFutureValue.StringFixed(2))
	assert.True(t, result.RemainingGoal.IsNegative())
	require.Len(t, result.Series, 10)
	for i, row := range result.Series {
		assert.Equal(t, i+1, row.Year)
		assert.True(t, row.EscalatingPremium.IsZero())
		assert.True(t, row.ProjectedBalance.IsZero())
	}
}

func TestSolveGoal_ExactlyMetIsDegenerate(t *testing.T) {
	p := millionGoal()
	p.RatePct = decimal.Zero
	p.Initial = p.Target
	result, err := SolveGoal(p)
	require.NoError(t, err)
	assert.True(t, result.Degenerate)
	assert.True(t, result.RemainingGoal.IsZero())
}

func TestSolveGoal_UnsolvableWhenUnitSeriesCollapses(t *testing.T) {
	// -100% a year wipes out every advance contribution within its own period.
	p := millionGoal()
	p.RatePct = decimal.NewFromInt(-100)
	p.Frequency = domain.Yearly

	result, err := SolveGoal(p)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrUnsolvableGoal))
	assert.False(t, errors.Is(err, ErrInvalidParameter))
}

func TestSolveGoal_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.GoalParameters)
		field  string
	}{
		{"zero target", func(p *domain.GoalParameters) { p.Target = decimal.Zero }, "target"},
		{"negative initial", func(p *domain.GoalParameters) { p.Initial = decimal.NewFromInt(-10) }, "initial"},
		{"zero years", func(p *domain.GoalParameters) { p.Years = 0 }, "years"},
		{"inflation -100%", func(p *domain.GoalParameters) { p.InflationPct = decimal.NewFromInt(-100) }, "inflation_pct"},
		{"bad frequency", func(p *domain.GoalParameters) { p.Frequency = domain.Frequency(52) }, "frequency"},
		{"empty timing", func(p *domain.GoalParameters) { p.Timing = "" }, "timing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := millionGoal()
			tt.mutate(&p)
			_, err := SolveGoal(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))
			var perr *domain.ParameterError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}
