package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/cottington/wealth-calculator/internal/domain"
)

// CalculationEngine runs projections and goal solves and records them in an Analysis.
type CalculationEngine struct {
	Debug  bool // Log every yearly row at debug level
	Logger Logger
	Now    func() time.Time
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunProjection projects a scenario.
func (ce *CalculationEngine) RunProjection(ctx context.Context, p domain.ScenarioParameters) (*domain.ProjectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := Project(p)
	if err != nil {
		ce.Logger.Warnf("projection rejected: %v", err)
		return nil, err
	}
	ce.Logger.Infof("projection: %d years %s %s, final nominal %s real %s shielded %s",
		p.Years, p.Frequency, p.Timing,
		result.FinalNominal.StringFixed(2), result.FinalReal.StringFixed(2), result.FinalShielded.StringFixed(2))
	if ce.Debug {
		for _, row := range result.Series {
			ce.Logger.Debugf("  year %2d: nominal=%s real=%s shielded=%s premium=%s",
				row.Year, row.Nominal.StringFixed(2), row.RealPower.StringFixed(2), row.Shielded.StringFixed(2), row.ShieldedPremium.StringFixed(2))
		}
	}
	return result, nil
}

// RunGoal solves for the escalating starting contribution.
func (ce *CalculationEngine) RunGoal(ctx context.Context, p domain.GoalParameters) (*domain.GoalResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := SolveGoal(p)
	if err != nil {
		ce.Logger.Warnf("goal solve failed: %v", err)
		return nil, err
	}
	if result.Degenerate {
		ce.Logger.Infof("goal: lump sum future value %s already meets target %s",
			result.LumpSumFutureValue.StringFixed(2), p.Target.StringFixed(2))
		return result, nil
	}
	ce.Logger.Infof("goal: starting contribution %s for target %s (real %s)",
		result.StartingContribution.StringFixed(2), p.Target.StringFixed(2), result.RealTargetValue.StringFixed(2))
	if ce.Debug {
		for _, row := range result.Series {
			ce.Logger.Debugf("  year %2d: premium=%s balance=%s", row.Year, row.EscalatingPremium.StringFixed(2), row.ProjectedBalance.StringFixed(2))
		}
	}
	return result, nil
}

// Run computes every block present in the configuration and returns a fresh Analysis.
func (ce *CalculationEngine) Run(ctx context.Context, config *domain.Configuration) (*domain.Analysis, error) {
	analysis := &domain.Analysis{
		ClientName:  config.ClientName,
		Currency:    config.Currency,
		GeneratedAt: ce.now(),
	}
	if analysis.Currency == "" {
		analysis.Currency = domain.DefaultCurrency
	}
	if config.Projection == nil && config.Goal == nil {
		return nil, fmt.Errorf("%w: configuration has neither a projection nor a goal", ErrInvalidParameter)
	}

	if config.Projection != nil {
		proj, err := ce.RunProjection(ctx, *config.Projection)
		if err != nil {
			return nil, fmt.Errorf("RunProjection failed: %w", err)
		}
		analysis.Projection = proj
	}
	if config.Goal != nil {
		goal, err := ce.RunGoal(ctx, *config.Goal)
		if err != nil {
			return nil, fmt.Errorf("RunGoal failed: %w", err)
		}
		analysis.Goal = goal
	}
	return analysis, nil
}

func (ce *CalculationEngine) now() time.Time {
	if ce.Now == nil {
		return time.Now()
	}
	return ce.Now()
}
