package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds the persistent flags and the logger shared by every command.
type cli struct {
	format       string
	output       string
	client       string
	currency     string
	scheduleRows int
	verbose      bool

	logger *zap.Logger
	now    func() time.Time
}

func newRootCmd() *cobra.Command {
	c := &cli{now: time.Now}

	root := &cobra.Command{
		Use:   "wealthcalc",
		Short: "Inflation reality check and goal planner",
		Long: `wealthcalc projects a savings plan three ways: the nominal bank balance,
its real buying power after inflation, and a "shielded" plan whose
contribution rises with inflation every year. It also solves for the
escalating contribution that reaches a savings target.

Reports can be printed to the terminal or exported as markdown, HTML,
CSV or JSON, and the same calculations are served over HTTP by "serve".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.format, "format", "f", "console", "output format (console, csv, html, json, markdown, terminal)")
	flags.StringVarP(&c.output, "output", "o", "", "write the report to this file or directory instead of stdout")
	flags.StringVar(&c.client, "client", "", "client name printed on the report")
	flags.StringVar(&c.currency, "currency", "", "ISO 4217 currency code for amounts (default ZAR)")
	flags.IntVar(&c.scheduleRows, "schedule-rows", 0, "truncate report schedules to this many rows plus the final year (0 = all)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging of every yearly row")

	root.AddCommand(
		newProjectCmd(c),
		newGoalCmd(c),
		newRunCmd(c),
		newExampleConfigCmd(c),
		newServeCmd(c),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
