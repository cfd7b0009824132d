package domain

import (
	"github.com/shopspring/decimal"

	money "github.com/rpgo/portfolio-projector/pkg/decimal"
)

// WithdrawalOutcome is the result of draining the buckets for one retirement year
type WithdrawalOutcome struct {
	Withdrawals    AmountsByAccount `json:"withdrawals"`
	Taxes          AmountsByAccount `json:"taxes"`
	TotalWithdrawn decimal.Decimal  `json:"total_withdrawn"`
	TotalTaxes     decimal.Decimal  `json:"total_taxes"`
	NetWithdrawn   decimal.Decimal  `json:"net_withdrawn"`
}

// ProjectionYear is the immutable record of one simulated year
type ProjectionYear struct {
	Year      int  `json:"year"`
	Age       int  `json:"age"`
	IsWorking bool `json:"is_working"`

	// Income
	Salary        decimal.Decimal `json:"salary"`
	Bonus         decimal.Decimal `json:"bonus"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	Contributions decimal.Decimal `json:"contributions"`

	PriceIndex decimal.Decimal `json:"price_index"`

	// Withdrawal is the year's target spending need; TotalWithdrawn is what
	// the buckets could actually supply.
	Withdrawal     decimal.Decimal  `json:"withdrawal"`
	TotalWithdrawn decimal.Decimal  `json:"total_withdrawn"`
	TotalTaxes     decimal.Decimal  `json:"total_taxes"`
	NetWithdrawn   decimal.Decimal  `json:"net_withdrawn"`
	Withdrawals    AmountsByAccount `json:"withdrawals"`
	Taxes          AmountsByAccount `json:"taxes"`

	// Balances
	StartBalance   decimal.Decimal `json:"start_balance"`
	EndBalance     decimal.Decimal `json:"end_balance"`
	EndBalanceReal decimal.Decimal `json:"end_balance_real"`
	Depleted       bool            `json:"depleted"`
	Accounts       AccountSet      `json:"accounts"`
}

// Shortfall is the part of the spending target the portfolio could not cover.
func (py ProjectionYear) Shortfall() decimal.Decimal {
	return money.NonNegative(py.Withdrawal.Sub(py.TotalWithdrawn))
}

// ProjectionResult is the complete output of one projection run
type ProjectionResult struct {
	Projections   []ProjectionYear `json:"projections"`
	DepletionYear *int             `json:"depletion_year"`
}

// FindByAge returns the record for the given age, if projected.
func (r ProjectionResult) FindByAge(age int) (ProjectionYear, bool) {
	for _, y := range r.Projections {
		if y.Age == age {
			return y, true
		}
	}
	return ProjectionYear{}, false
}

// FindByYear returns the record for the given calendar year, if projected.
func (r ProjectionResult) FindByYear(year int) (ProjectionYear, bool) {
	for _, y := range r.Projections {
		if y.Year == year {
			return y, true
		}
	}
	return ProjectionYear{}, false
}

// ScenarioSummary provides the key metrics of one scenario run
type ScenarioSummary struct {
	Name      string          `json:"name"`
	Return    decimal.Decimal `json:"return"`
	Inflation decimal.Decimal `json:"inflation"`

	RetirementAge     int             `json:"retirement_age"`
	LifeExpectancy    int             `json:"life_expectancy"`
	RetirementBalance decimal.Decimal `json:"retirement_balance"`
	EndBalance        decimal.Decimal `json:"end_balance"` // at life expectancy
	FinalBalance      decimal.Decimal `json:"final_balance"`
	FinalBalanceReal  decimal.Decimal `json:"final_balance_real"`
	DepletionYear     *int            `json:"depletion_year"`
	DepletionAge      *int            `json:"depletion_age"`
	YearsSustainable  int             `json:"years_sustainable"`

	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalWithdrawn     decimal.Decimal `json:"total_withdrawn"`
	TotalTaxes         decimal.Decimal `json:"total_taxes"`

	Result ProjectionResult `json:"result"`
}

// Sustainable reports whether the portfolio never depleted.
func (s ScenarioSummary) Sustainable() bool {
	return s.DepletionYear == nil
}

// ScenarioComparison collects the summaries of several scenario runs
type ScenarioComparison struct {
	RunID                    string            `json:"run_id,omitempty"`
	Household                Params            `json:"household"`
	TaxSettings              TaxSettings       `json:"tax_settings"`
	Scenarios                []ScenarioSummary `json:"scenarios"`
	BestScenarioForBalance   string            `json:"best_scenario_for_balance"`
	BestScenarioForLongevity string            `json:"best_scenario_for_longevity"`
	Assumptions              []string          `json:"assumptions"`
}
