package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/portfolio-projector/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Return", "Inflation", "RetirementAge", "LifeExpectancy", "RetirementBalance", "EndBalance", "FinalBalance", "FinalBalanceReal", "DepletionYear", "DepletionAge", "YearsSustainable", "TotalContributions", "TotalWithdrawn", "TotalTaxes"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		depletionAge := ""
		if sc.DepletionAge != nil {
			depletionAge = intToString(*sc.DepletionAge)
		}
		depletionYear := ""
		if sc.DepletionYear != nil {
			depletionYear = intToString(*sc.DepletionYear)
		}
		row := []string{
			sc.Name,
			sc.Return.String(),
			sc.Inflation.String(),
			intToString(sc.RetirementAge),
			intToString(sc.LifeExpectancy),
			sc.RetirementBalance.StringFixed(2),
			sc.EndBalance.StringFixed(2),
			sc.FinalBalance.StringFixed(2),
			sc.FinalBalanceReal.StringFixed(2),
			depletionYear,
			depletionAge,
			intToString(sc.YearsSustainable),
			sc.TotalContributions.StringFixed(2),
			sc.TotalWithdrawn.StringFixed(2),
			sc.TotalTaxes.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
