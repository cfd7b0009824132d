package output

import "github.com/rpgo/portfolio-projector/internal/domain"

// DefaultAssumptions lists the modeling assumptions rendered when a
// comparison carries none of its own.
var DefaultAssumptions = domain.Params{IndexWithdrawals: true}.GenerateAssumptions(domain.DefaultTaxSettings())[2:]

func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return DefaultAssumptions
}
