package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/portfolio-projector/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUnknownScenario is returned when a scenario name is not configured.
var ErrUnknownScenario = domain.ErrUnknownScenario

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

// Parse decodes a configuration document, fills in default scenarios and
// validates the result. Tax rates absent from the document keep their
// DefaultTaxSettings values; rates given explicitly, zero included, are
// used as written.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.Configuration{TaxDefaults: domain.DefaultTaxSettings()}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults installs the built-in scenario presets when none are
// configured.
func ApplyDefaults(config *domain.Configuration) {
	if len(config.Scenarios) == 0 {
		config.Scenarios = domain.DefaultScenarios()
	}
}

// ValidateConfiguration rejects configurations the projection would
// still run but whose output would be meaningless. The engine itself
// accepts any numeric input.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateHousehold(&config.Household); err != nil {
		return fmt.Errorf("household validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	for _, name := range config.ScenarioNames() {
		if err := ip.validatePreset(name, config.Scenarios[name]); err != nil {
			return fmt.Errorf("scenario %s validation failed: %w", name, err)
		}
	}

	if err := ip.validateTaxSettings(config.TaxDefaults); err != nil {
		return fmt.Errorf("tax defaults validation failed: %w", err)
	}

	return nil
}

// validateHousehold validates the household parameters
func (ip *InputParser) validateHousehold(p *domain.Params) error {
	if p.CurrentAge < 0 || p.CurrentAge > 120 {
		return fmt.Errorf("current age must be between 0 and 120")
	}
	if p.RetirementAge < p.CurrentAge {
		return fmt.Errorf("retirement age cannot be before current age")
	}
	if p.LifeExpectancy < p.RetirementAge {
		return fmt.Errorf("life expectancy cannot be before retirement age")
	}
	if p.MaxYears < 0 || p.MaxYears > domain.DefaultMaxProjectionYears {
		return fmt.Errorf("max years must be between 0 and %d", domain.DefaultMaxProjectionYears)
	}

	nonNegative := []struct {
		name  string
		value decimal.Decimal
	}{
		{"base salary", p.BaseSalary},
		{"bonus", p.Bonus},
		{"taxable balance", p.TaxableBalance},
		{"traditional 401k balance", p.Traditional401k},
		{"Roth balance", p.RothBalance},
		{"HSA balance", p.HSABalance},
		{"cash balance", p.CashBalance},
		{"taxable contribution", p.TaxableContrib},
		{"employee 401k contribution", p.Employee401k},
		{"employer 401k contribution", p.Employer401k},
		{"Roth contribution", p.RothContrib},
		{"HSA employee contribution", p.HSAEmployee},
		{"HSA employer contribution", p.HSAEmployer},
		{"base withdrawal", p.BaseWithdrawal},
	}
	for _, f := range nonNegative {
		if f.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", f.name)
		}
	}

	if p.InvestmentReturn.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("investment return cannot be less than -100%%")
	}
	if p.Inflation.LessThan(decimal.NewFromFloat(-0.10)) {
		return fmt.Errorf("inflation rate cannot be less than -10%% (extreme deflation)")
	}

	overrides := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"tax drag rate", p.TaxDragRate},
		{"capital gains rate", p.CapitalGainsRate},
		{"ordinary income rate", p.OrdinaryIncomeRate},
		{"taxable gains ratio", p.TaxableGainsRatio},
	}
	for _, o := range overrides {
		if o.value != nil && !isFraction(*o.value) {
			return fmt.Errorf("%s must be between 0 and 1", o.name)
		}
	}

	return nil
}

// validatePreset validates a single scenario preset
func (ip *InputParser) validatePreset(_ string, preset domain.ScenarioPreset) error {
	if preset.Return.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("return cannot be less than -100%%")
	}
	if preset.Inflation.LessThan(decimal.NewFromFloat(-0.10)) {
		return fmt.Errorf("inflation cannot be less than -10%%")
	}
	return nil
}

// validateTaxSettings validates the default tax bundle
func (ip *InputParser) validateTaxSettings(tax domain.TaxSettings) error {
	rates := map[string]decimal.Decimal{
		"tax drag rate":        tax.TaxDragRate,
		"capital gains rate":   tax.CapitalGainsRate,
		"ordinary income rate": tax.OrdinaryIncomeRate,
		"taxable gains ratio":  tax.TaxableGainsRatio,
	}
	var errs []error
	for name, rate := range rates {
		if !isFraction(rate) {
			errs = append(errs, fmt.Errorf("%s must be between 0 and 1", name))
		}
	}
	return errors.Join(errs...)
}

func isFraction(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Household: domain.Params{
			CurrentAge:     30,
			RetirementAge:  60,
			LifeExpectancy: 90,

			BaseSalary:   decimal.NewFromInt(150000),
			Bonus:        decimal.NewFromInt(15000),
			SalaryGrowth: decimal.NewFromFloat(0.03),

			TaxableBalance:  decimal.NewFromInt(50000),
			Traditional401k: decimal.NewFromInt(150000),
			RothBalance:     decimal.NewFromInt(30000),
			HSABalance:      decimal.NewFromInt(10000),
			CashBalance:     decimal.NewFromInt(20000),

			TaxableContrib: decimal.NewFromInt(12000),
			Employee401k:   decimal.NewFromInt(23000),
			Employer401k:   decimal.NewFromInt(10000),
			RothContrib:    decimal.NewFromInt(6500),
			HSAEmployee:    decimal.NewFromInt(4000),
			HSAEmployer:    decimal.NewFromInt(1000),

			InvestmentReturn: decimal.NewFromFloat(0.04),
			Inflation:        decimal.NewFromFloat(0.02),
			BaseWithdrawal:   decimal.NewFromInt(60000),
			IndexWithdrawals: true,
		},
		Scenarios:   domain.DefaultScenarios(),
		TaxDefaults: domain.DefaultTaxSettings(),
	}
}

// MarshalConfiguration renders a configuration as YAML
func MarshalConfiguration(config *domain.Configuration) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}
