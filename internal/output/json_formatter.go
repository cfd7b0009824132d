package output

import (
	"encoding/json"

	"github.com/rpgo/portfolio-projector/internal/domain"
)

// priceIndexPlaces is the precision kept for the cumulative inflation index.
const priceIndexPlaces = 6

// JSONFormatter serializes the scenario comparison as pretty-printed JSON.
// Amounts are rounded to cents; the engine's values carry every digit of
// compounding, which is noise in a report.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(roundedComparison(results), "", "  ")
}

// roundedComparison copies results with every amount rounded to cents.
// The input is left untouched.
func roundedComparison(results *domain.ScenarioComparison) *domain.ScenarioComparison {
	out := *results
	out.Scenarios = make([]domain.ScenarioSummary, len(results.Scenarios))
	for i, sc := range results.Scenarios {
		sc.RetirementBalance = sc.RetirementBalance.Round(2)
		sc.EndBalance = sc.EndBalance.Round(2)
		sc.FinalBalance = sc.FinalBalance.Round(2)
		sc.FinalBalanceReal = sc.FinalBalanceReal.Round(2)
		sc.TotalContributions = sc.TotalContributions.Round(2)
		sc.TotalWithdrawn = sc.TotalWithdrawn.Round(2)
		sc.TotalTaxes = sc.TotalTaxes.Round(2)

		years := make([]domain.ProjectionYear, len(sc.Result.Projections))
		for j, y := range sc.Result.Projections {
			years[j] = roundedYear(y)
		}
		sc.Result.Projections = years
		out.Scenarios[i] = sc
	}
	return &out
}

func roundedYear(y domain.ProjectionYear) domain.ProjectionYear {
	y.Salary = y.Salary.Round(2)
	y.Bonus = y.Bonus.Round(2)
	y.TotalIncome = y.TotalIncome.Round(2)
	y.Contributions = y.Contributions.Round(2)
	y.PriceIndex = y.PriceIndex.Round(priceIndexPlaces)
	y.Withdrawal = y.Withdrawal.Round(2)
	y.TotalWithdrawn = y.TotalWithdrawn.Round(2)
	y.TotalTaxes = y.TotalTaxes.Round(2)
	y.NetWithdrawn = y.NetWithdrawn.Round(2)
	y.StartBalance = y.StartBalance.Round(2)
	y.EndBalance = y.EndBalance.Round(2)
	y.EndBalanceReal = y.EndBalanceReal.Round(2)
	for _, kind := range domain.AllAccountKinds {
		y.Withdrawals[kind] = y.Withdrawals[kind].Round(2)
		y.Taxes[kind] = y.Taxes[kind].Round(2)
		acct := y.Accounts.Get(kind)
		y.Accounts[kind] = domain.Account{
			Balance:      acct.Balance.Round(2),
			Contribution: acct.Contribution.Round(2),
			Treatment:    acct.Treatment,
		}
	}
	return y
}
