package calculation

import (
	"github.com/rpgo/portfolio-projector/internal/domain"
)

// Summarize derives the headline metrics of one projection run.
func Summarize(name string, p domain.Params, result domain.ProjectionResult) domain.ScenarioSummary {
	summary := domain.ScenarioSummary{
		Name:           name,
		Return:         p.InvestmentReturn,
		Inflation:      p.Inflation,
		RetirementAge:  p.RetirementAge,
		LifeExpectancy: p.LifeExpectancy,
		DepletionYear:  result.DepletionYear,
		Result:         result,
	}

	if y, ok := result.FindByAge(p.RetirementAge); ok {
		summary.RetirementBalance = y.EndBalance
	}
	if y, ok := result.FindByAge(p.LifeExpectancy); ok {
		summary.EndBalance = y.EndBalance
	}
	if n := len(result.Projections); n > 0 {
		summary.FinalBalance = result.Projections[n-1].EndBalance
		summary.FinalBalanceReal = result.Projections[n-1].EndBalanceReal
	}

	for _, y := range result.Projections {
		summary.TotalContributions = summary.TotalContributions.Add(y.Contributions)
		summary.TotalWithdrawn = summary.TotalWithdrawn.Add(y.TotalWithdrawn)
		summary.TotalTaxes = summary.TotalTaxes.Add(y.TotalTaxes)
	}

	// Years sustainable counts retirement years funded: up to depletion when
	// the money runs out, otherwise through life expectancy.
	if result.DepletionYear != nil {
		if y, ok := result.FindByYear(*result.DepletionYear); ok {
			age := y.Age
			summary.DepletionAge = &age
			summary.YearsSustainable = age - p.RetirementAge
		}
	} else {
		summary.YearsSustainable = p.LifeExpectancy - p.RetirementAge
	}
	if summary.YearsSustainable < 0 {
		summary.YearsSustainable = 0
	}

	return summary
}

// outlasts reports whether scenario a funds retirement longer than b. A
// portfolio that never depletes beats one that does; otherwise more funded
// years win, then the larger real final balance.
func outlasts(a, b domain.ScenarioSummary) bool {
	if a.Sustainable() != b.Sustainable() {
		return a.Sustainable()
	}
	if a.YearsSustainable != b.YearsSustainable {
		return a.YearsSustainable > b.YearsSustainable
	}
	return a.FinalBalanceReal.GreaterThan(b.FinalBalanceReal)
}

// generateLongTermAnalysis picks the scenario with the largest balance at
// life expectancy and the one that funds retirement the longest. Ties keep
// the earlier scenario.
func generateLongTermAnalysis(scenarios []domain.ScenarioSummary) (bestBalance, bestLongevity string) {
	if len(scenarios) == 0 {
		return "", ""
	}
	balanceIdx, longevityIdx := 0, 0
	for i := 1; i < len(scenarios); i++ {
		if scenarios[i].EndBalance.GreaterThan(scenarios[balanceIdx].EndBalance) {
			balanceIdx = i
		}
		if outlasts(scenarios[i], scenarios[longevityIdx]) {
			longevityIdx = i
		}
	}
	return scenarios[balanceIdx].Name, scenarios[longevityIdx].Name
}
