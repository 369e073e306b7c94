package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cottington/wealth-calculator/internal/api"
	"github.com/cottington/wealth-calculator/internal/calculation"
	"github.com/cottington/wealth-calculator/internal/config"
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/cottington/wealth-calculator/internal/session"
)

func newProjectCmd(c *cli) *cobra.Command {
	var p domain.ScenarioParameters
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project nominal, real and inflation-shielded balances",
		Long: `Runs the inflation reality check for a savings plan and prints the
yearly schedule with the nominal balance, its real buying power and the
balance of a plan whose contribution rises with inflation every year.

Example:
  wealthcalc project --contribution 1000 --rate 10 --inflation 6 --years 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfiguration(cmd, &domain.Configuration{Projection: &p})
		},
	}
	fs := cmd.Flags()
	fs.Var(newDecimalValue(&p.Principal, p.Principal), "principal", "starting capital")
	fs.Var(newDecimalValue(&p.Contribution, p.Contribution), "contribution", "contribution paid every period")
	fs.Var(newDecimalValue(&p.FeePct, p.FeePct), "fee", "annual fee in percent, deducted from the return")
	fs.Var(newDecimalValue(&p.ExitTaxPct, p.ExitTaxPct), "tax", "exit tax on gains in percent")
	addPlanFlags(fs, &p.RatePct, &p.InflationPct, &p.Years, &p.Frequency, &p.Timing)
	return cmd
}

func newGoalCmd(c *cli) *cobra.Command {
	var g domain.GoalParameters
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Solve for the escalating contribution that reaches a target",
		Long: `Finds the first contribution which, raised with inflation once a year,
grows to the target by the end of the term on top of any starting capital.

Example:
  wealthcalc goal --target 1000000 --rate 10 --inflation 6 --years 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfiguration(cmd, &domain.Configuration{Goal: &g})
		},
	}
	fs := cmd.Flags()
	fs.Var(newDecimalValue(&g.Target, g.Target), "target", "target amount in future (nominal) terms")
	fs.Var(newDecimalValue(&g.Initial, g.Initial), "initial", "starting capital")
	addPlanFlags(fs, &g.RatePct, &g.InflationPct, &g.Years, &g.Frequency, &g.Timing)
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newRunCmd(c *cli) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every calculation in a YAML configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(path)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("schedule-rows") {
				c.scheduleRows = cfg.Report.ScheduleRows
			}
			return c.runConfiguration(cmd, cfg)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "path to the YAML configuration")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newExampleConfigCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [path]",
		Short: "Write an example YAML configuration (stdout when no path is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if len(args) == 0 {
				b, err := yaml.Marshal(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := config.SaveConfiguration(cfg, args[0]); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			c.logger.Info("example configuration written", zap.String("path", args[0]))
			return nil
		},
	}
}

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP (configured from WEALTHCALC_* variables)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			if c.currency != "" {
				cfg.Currency = c.currency
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			gin.SetMode(cfg.Mode)

			engine := calculation.NewCalculationEngine()
			engine.Debug = c.verbose
			engine.SetLogger(c.logger.Sugar())
			store := session.NewStore(cfg.SessionTTL)

			router := api.NewRouter(api.Deps{
				Engine:         engine,
				Sessions:       store,
				Logger:         c.logger,
				AllowedOrigins: cfg.AllowedOrigins,
				Currency:       cfg.Currency,
			})
			srv := &api.Server{
				Handler:         router,
				Sessions:        store,
				Logger:          c.logger,
				ShutdownTimeout: cfg.ShutdownTimeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, cfg.Addr)
		},
	}
}
