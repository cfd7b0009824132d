package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultMaxProjectionYears bounds every projection run.
const DefaultMaxProjectionYears = 75

// Params is the flat set of household inputs for a projection run.
// Rates are fractions (0.06 = 6%).
type Params struct {
	// Demographics
	CurrentAge     int `yaml:"current_age" json:"current_age"`
	RetirementAge  int `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy int `yaml:"life_expectancy" json:"life_expectancy"`

	// Income
	BaseSalary   decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	Bonus        decimal.Decimal `yaml:"bonus" json:"bonus"`
	SalaryGrowth decimal.Decimal `yaml:"salary_growth" json:"salary_growth"`

	// Opening balances
	TaxableBalance  decimal.Decimal `yaml:"taxable_balance" json:"taxable_balance"`
	Traditional401k decimal.Decimal `yaml:"traditional_401k" json:"traditional_401k"`
	RothBalance     decimal.Decimal `yaml:"roth_balance" json:"roth_balance"`
	HSABalance      decimal.Decimal `yaml:"hsa_balance" json:"hsa_balance"`
	CashBalance     decimal.Decimal `yaml:"cash_balance" json:"cash_balance"`

	// Annual contributions
	TaxableContrib decimal.Decimal `yaml:"taxable_contrib" json:"taxable_contrib"`
	Employee401k   decimal.Decimal `yaml:"employee_401k" json:"employee_401k"`
	Employer401k   decimal.Decimal `yaml:"employer_401k" json:"employer_401k"`
	RothContrib    decimal.Decimal `yaml:"roth_contrib" json:"roth_contrib"`
	HSAEmployee    decimal.Decimal `yaml:"hsa_employee" json:"hsa_employee"`
	HSAEmployer    decimal.Decimal `yaml:"hsa_employer" json:"hsa_employer"`

	// Market and spending
	InvestmentReturn   decimal.Decimal `yaml:"investment_return" json:"investment_return"`
	Inflation          decimal.Decimal `yaml:"inflation" json:"inflation"`
	BaseWithdrawal     decimal.Decimal `yaml:"base_withdrawal" json:"base_withdrawal"`
	IndexWithdrawals   bool            `yaml:"index_withdrawals" json:"index_withdrawals"`
	ContributionGrowth decimal.Decimal `yaml:"contribution_growth,omitempty" json:"contribution_growth,omitempty"`

	// Optional overrides of the configured tax defaults
	TaxDragRate        *decimal.Decimal `yaml:"tax_drag_rate,omitempty" json:"tax_drag_rate,omitempty"`
	CapitalGainsRate   *decimal.Decimal `yaml:"capital_gains_rate,omitempty" json:"capital_gains_rate,omitempty"`
	OrdinaryIncomeRate *decimal.Decimal `yaml:"ordinary_income_rate,omitempty" json:"ordinary_income_rate,omitempty"`
	TaxableGainsRatio  *decimal.Decimal `yaml:"taxable_gains_ratio,omitempty" json:"taxable_gains_ratio,omitempty"`

	// StartYear is the calendar year of the first projected year (0 = current year).
	StartYear int `yaml:"start_year,omitempty" json:"start_year,omitempty"`
	// MaxYears caps the simulation horizon (0 = DefaultMaxProjectionYears).
	MaxYears int `yaml:"max_years,omitempty" json:"max_years,omitempty"`
}

// Horizon returns the number of years the projection may run.
func (p Params) Horizon() int {
	if p.MaxYears <= 0 {
		return DefaultMaxProjectionYears
	}
	return p.MaxYears
}

// TaxSettings holds the flat tax rates applied during a run
type TaxSettings struct {
	TaxDragRate        decimal.Decimal `yaml:"tax_drag_rate" json:"tax_drag_rate"`
	CapitalGainsRate   decimal.Decimal `yaml:"capital_gains_rate" json:"capital_gains_rate"`
	OrdinaryIncomeRate decimal.Decimal `yaml:"ordinary_income_rate" json:"ordinary_income_rate"`
	TaxableGainsRatio  decimal.Decimal `yaml:"taxable_gains_ratio" json:"taxable_gains_ratio"`
}

// DefaultTaxSettings returns the tax bundle used when no configuration is given.
func DefaultTaxSettings() TaxSettings {
	return TaxSettings{
		TaxDragRate:        decimal.NewFromFloat(0.15),
		CapitalGainsRate:   decimal.NewFromFloat(0.15),
		OrdinaryIncomeRate: decimal.NewFromFloat(0.22),
		TaxableGainsRatio:  decimal.NewFromFloat(0.70),
	}
}

// ResolveTaxSettings applies the per-household overrides on top of defaults.
func (p Params) ResolveTaxSettings(defaults TaxSettings) TaxSettings {
	out := defaults
	if p.TaxDragRate != nil {
		out.TaxDragRate = *p.TaxDragRate
	}
	if p.CapitalGainsRate != nil {
		out.CapitalGainsRate = *p.CapitalGainsRate
	}
	if p.OrdinaryIncomeRate != nil {
		out.OrdinaryIncomeRate = *p.OrdinaryIncomeRate
	}
	if p.TaxableGainsRatio != nil {
		out.TaxableGainsRatio = *p.TaxableGainsRatio
	}
	return out
}

// ScenarioPreset is a named market assumption pair
type ScenarioPreset struct {
	Return    decimal.Decimal `yaml:"return" json:"return"`
	Inflation decimal.Decimal `yaml:"inflation" json:"inflation"`
}

// ErrUnknownScenario is returned when a scenario name is not configured.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario names shipped by default.
const (
	ScenarioConservative = "conservative"
	ScenarioModerate     = "moderate"
	ScenarioAggressive   = "aggressive"
	ScenarioCustom       = "custom"
)

// DefaultScenarios returns the built-in market presets.
func DefaultScenarios() map[string]ScenarioPreset {
	return map[string]ScenarioPreset{
		ScenarioConservative: {Return: decimal.NewFromFloat(0.04), Inflation: decimal.NewFromFloat(0.02)},
		ScenarioModerate:     {Return: decimal.NewFromFloat(0.06), Inflation: decimal.NewFromFloat(0.025)},
		ScenarioAggressive:   {Return: decimal.NewFromFloat(0.08), Inflation: decimal.NewFromFloat(0.03)},
		ScenarioCustom:       {Return: decimal.NewFromFloat(0.055), Inflation: decimal.NewFromFloat(0.023)},
	}
}

// Apply returns a copy of p using the preset's return and inflation.
func (sp ScenarioPreset) Apply(p Params) Params {
	p.InvestmentReturn = sp.Return
	p.Inflation = sp.Inflation
	return p
}

// Configuration is the complete input for one or more projection runs.
// TaxDefaults is used as given; a zero rate means no tax of that kind.
type Configuration struct {
	Household   Params                    `yaml:"household" json:"household"`
	Scenarios   map[string]ScenarioPreset `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
	TaxDefaults TaxSettings               `yaml:"tax_defaults" json:"tax_defaults"`
}

// NewConfiguration returns a configuration for the household with the
// built-in presets and default tax settings.
func NewConfiguration(household Params) *Configuration {
	return &Configuration{
		Household:   household,
		Scenarios:   DefaultScenarios(),
		TaxDefaults: DefaultTaxSettings(),
	}
}

// ScenarioNames returns the configured preset names in a stable order:
// the built-in presets first in risk order, then any others alphabetically.
func (c *Configuration) ScenarioNames() []string {
	order := map[string]int{
		ScenarioConservative: 0,
		ScenarioModerate:     1,
		ScenarioAggressive:   2,
		ScenarioCustom:       3,
	}
	names := make([]string, 0, len(c.Scenarios))
	for name := range c.Scenarios {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, iok := order[names[i]]
		oj, jok := order[names[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		default:
			return names[i] < names[j]
		}
	})
	return names
}

// Preset looks up a scenario by name
func (c *Configuration) Preset(name string) (ScenarioPreset, error) {
	sp, ok := c.Scenarios[name]
	if !ok {
		return ScenarioPreset{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return sp, nil
}

