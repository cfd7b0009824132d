package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/portfolio-projector/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PORTFOLIO SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	h := results.Household
	fmt.Fprintf(&buf, "Age %d, retiring at %d, planning to %d\n", h.CurrentAge, h.RetirementAge, h.LifeExpectancy)
	fmt.Fprintln(&buf)
	for _, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "%s: AtRetirement=%s AtLifeExpectancy=%s Depletion=%s Sustainable=%d years\n",
			sc.Name,
			FormatCurrency(sc.RetirementBalance),
			FormatCurrency(sc.EndBalance),
			FormatDepletion(sc.DepletionYear),
			sc.YearsSustainable,
		)
		fmt.Fprintf(&buf, "  Return=%s Inflation=%s Withdrawn=%s Taxes=%s\n",
			FormatPercentage(sc.Return), FormatPercentage(sc.Inflation),
			FormatCurrency(sc.TotalWithdrawn), FormatCurrency(sc.TotalTaxes))
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.BalanceChange), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
