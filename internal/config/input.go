package config

import (
	"fmt"
	"os"

	"github.com/cottington/wealth-calculator/internal/calculation"
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/cottington/wealth-calculator/pkg/money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultClientName is printed on reports when no client is named.
const DefaultClientName = "Valued Client"

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, defaults and validates a YAML configuration.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ApplyDefaults fills in the values the dashboard preselects: monthly
// contributions paid in advance, the default client name and currency.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.ClientName == "" {
		config.ClientName = DefaultClientName
	}
	if config.Currency == "" {
		config.Currency = domain.DefaultCurrency
	}
	if p := config.Projection; p != nil {
		if p.Frequency == 0 {
			p.Frequency = domain.Monthly
		}
		if p.Timing == "" {
			p.Timing = domain.Advance
		}
	}
	if g := config.Goal; g != nil {
		if g.Frequency == 0 {
			g.Frequency = domain.Monthly
		}
		if g.Timing == "" {
			g.Timing = domain.Advance
		}
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Projection == nil && config.Goal == nil {
		return fmt.Errorf("no projection or goal provided")
	}
	if !money.ValidCurrency(config.Currency) {
		return fmt.Errorf("unknown currency code %q", config.Currency)
	}
	if config.Report.ScheduleRows < 0 {
		return fmt.Errorf("report.schedule_rows cannot be negative")
	}
	if config.Projection != nil {
		if err := calculation.ValidateScenario(*config.Projection); err != nil {
			return fmt.Errorf("projection: %w", err)
		}
	}
	if config.Goal != nil {
		if err := calculation.ValidateGoal(*config.Goal); err != nil {
			return fmt.Errorf("goal: %w", err)
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		ClientName: DefaultClientName,
		Currency:   domain.DefaultCurrency,
		Projection: &domain.ScenarioParameters{
			Principal:    decimal.Zero,
			Contribution: decimal.NewFromInt(1000),
			RatePct:      decimal.NewFromInt(10),
			InflationPct: decimal.NewFromInt(6),
			Years:        10,
			Frequency:    domain.Monthly,
			Timing:       domain.Advance,
		},
		Goal: &domain.GoalParameters{
			Target:       decimal.NewFromInt(1000000),
			Initial:      decimal.Zero,
			RatePct:      decimal.NewFromInt(10),
			InflationPct: decimal.NewFromInt(6),
			Years:        10,
			Frequency:    domain.Monthly,
			Timing:       domain.Advance,
		},
	}
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
