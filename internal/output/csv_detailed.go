package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/portfolio-projector/internal/domain"
)

// CSVDetailedExporter provides raw annual projection detail per scenario/year,
// including the per-account withdrawals, taxes and closing balances.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Age", "IsWorking", "Salary", "Bonus", "Contributions", "PriceIndex", "TargetWithdrawal", "TotalWithdrawn", "TotalTaxes", "NetWithdrawn", "StartBalance", "EndBalance", "EndBalanceReal", "Depleted"}
	for _, kind := range domain.AllAccountKinds {
		header = append(header, kind.String()+"_withdrawal", kind.String()+"_tax", kind.String()+"_balance")
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, yr := range sc.Result.Projections {
			row := []string{
				sc.Name,
				intToString(yr.Year),
				intToString(yr.Age),
				boolToString(yr.IsWorking),
				yr.Salary.StringFixed(2),
				yr.Bonus.StringFixed(2),
				yr.Contributions.StringFixed(2),
				yr.PriceIndex.StringFixed(6),
				yr.Withdrawal.StringFixed(2),
				yr.TotalWithdrawn.StringFixed(2),
				yr.TotalTaxes.StringFixed(2),
				yr.NetWithdrawn.StringFixed(2),
				yr.StartBalance.StringFixed(2),
				yr.EndBalance.StringFixed(2),
				yr.EndBalanceReal.StringFixed(2),
				boolToString(yr.Depleted),
			}
			for _, kind := range domain.AllAccountKinds {
				row = append(row,
					yr.Withdrawals[kind].StringFixed(2),
					yr.Taxes[kind].StringFixed(2),
					yr.Accounts[kind].Balance.StringFixed(2),
				)
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
