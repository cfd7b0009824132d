package output

import (
	"github.com/rpgo/portfolio-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName      string
	YearsSustainable  int
	RetirementBalance decimal.Decimal
	// BalanceChange compares the recommended scenario's balance at life
	// expectancy with the first scenario's.
	BalanceChange    decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios describes the scenario that funds retirement the longest
// relative to the first scenario in the comparison.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	baseline := results.Scenarios[0]
	best := baseline
	for _, sc := range results.Scenarios {
		if sc.Name == results.BestScenarioForLongevity {
			best = sc
			break
		}
	}

	delta := best.EndBalance.Sub(baseline.EndBalance)
	pct := decimal.Zero
	if !baseline.EndBalance.IsZero() {
		pct = delta.Div(baseline.EndBalance)
	}
	return Recommendation{
		ScenarioName:      best.Name,
		YearsSustainable:  best.YearsSustainable,
		RetirementBalance: best.RetirementBalance,
		BalanceChange:     delta,
		PercentageChange:  pct,
	}
}
