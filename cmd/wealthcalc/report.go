package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cottington/wealth-calculator/internal/calculation"
	"github.com/cottington/wealth-calculator/internal/config"
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/cottington/wealth-calculator/internal/output"
)

// runConfiguration applies the persistent flags, validates, runs the engine
// and emits the report.
func (c *cli) runConfiguration(cmd *cobra.Command, cfg *domain.Configuration) error {
	if c.client != "" {
		cfg.ClientName = c.client
	}
	if c.currency != "" {
		cfg.Currency = strings.ToUpper(c.currency)
	}
	if c.scheduleRows < 0 {
		return fmt.Errorf("--schedule-rows cannot be negative")
	}
	cfg.Report.ScheduleRows = c.scheduleRows

	parser := config.NewInputParser()
	parser.ApplyDefaults(cfg)
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return err
	}

	// resolve the format before computing so a typo fails fast
	f, err := output.NewFormatter(c.format, output.Options{ScheduleRows: cfg.Report.ScheduleRows})
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.Debug = c.verbose
	engine.Now = c.now
	engine.SetLogger(c.logger.Sugar())

	analysis, err := engine.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return c.emit(cmd, f, analysis)
}

// emit writes the formatted analysis to stdout, a file, or a directory under
// the client's report name.
func (c *cli) emit(cmd *cobra.Command, f output.Formatter, a *domain.Analysis) error {
	if c.output == "" || c.output == "-" {
		data, err := f.Format(a)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if info, err := os.Stat(c.output); err == nil && info.IsDir() {
		path, err := output.WriteFormatted(f, a, c.output)
		if err != nil {
			return err
		}
		c.logger.Info("report written", zap.String("path", path), zap.String("format", f.Name()))
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	data, err := f.Format(a)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(c.output, data, 0644); err != nil {
		return err
	}
	c.logger.Info("report written", zap.String("path", c.output), zap.String("format", f.Name()))
	fmt.Fprintln(cmd.OutOrStdout(), c.output)
	return nil
}
