package main

import (
	"fmt"
	"os"

	calc "github.com/cottington/wealth-calculator/internal/calculation"
	"github.com/cottington/wealth-calculator/internal/config"
	"github.com/cottington/wealth-calculator/internal/domain"
)

// verify_goal solves the goal block of a configuration, then replays the
// solved contribution through the projection engine's shielded track and
// prints how far the replay lands from the target.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: verify_goal <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	if cfg.Goal == nil {
		fmt.Println("no goal in configuration")
		return
	}
	g := *cfg.Goal

	res, err := calc.SolveGoal(g)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Target:                %s\n", g.Target.StringFixed(2))
	fmt.Printf("Real target value:     %s\n", res.RealTargetValue.StringFixed(2))
	fmt.Printf("Lump sum FV:           %s\n", res.LumpSumFutureValue.StringFixed(2))
	if res.Degenerate {
		fmt.Println("Lump sum alone meets the target; nothing to replay.")
		return
	}
	fmt.Printf("Starting contribution: %s\n", res.StartingContribution.StringFixed(6))

	replay, err := calc.Project(domain.ScenarioParameters{
		Principal:    g.Initial,
		Contribution: res.StartingContribution,
		RatePct:      g.RatePct,
		InflationPct: g.InflationPct,
		Years:        g.Years,
		Frequency:    g.Frequency,
		Timing:       g.Timing,
	})
	if err != nil {
		panic(err)
	}
	residual := replay.FinalShielded.Sub(g.Target)
	fmt.Printf("Replayed balance:      %s\n", replay.FinalShielded.StringFixed(6))
	fmt.Printf("Residual:              %s\n", residual.StringFixed(9))
}
