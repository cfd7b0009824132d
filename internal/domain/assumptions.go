package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func pct(d decimal.Decimal) float64 {
	return d.Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// GenerateAssumptions creates a human readable list of the assumptions
// behind a run, built from the actual inputs.
func (p Params) GenerateAssumptions(tax TaxSettings) []string {
	indexing := "fixed nominal amount"
	if p.IndexWithdrawals {
		indexing = "indexed to inflation"
	}
	return []string{
		fmt.Sprintf("Salary growth: %.1f%% annually; contribution growth: %.1f%% annually", pct(p.SalaryGrowth), pct(p.ContributionGrowth)),
		fmt.Sprintf("Retirement spending: %s per year, %s", decimalString(p.BaseWithdrawal), indexing),
		fmt.Sprintf("Tax drag on taxable growth: %.1f%% of returns", pct(tax.TaxDragRate)),
		fmt.Sprintf("Capital gains: %.1f%% on the %.0f%% gains share of taxable and cash withdrawals", pct(tax.CapitalGainsRate), pct(tax.TaxableGainsRatio)),
		fmt.Sprintf("Traditional withdrawals taxed at %.1f%% ordinary income rate; Roth and HSA withdrawals tax free", pct(tax.OrdinaryIncomeRate)),
		"Withdrawal order: taxable, cash, traditional, Roth, HSA",
		"No required minimum distributions, bracket management or Roth conversions modeled",
	}
}

func decimalString(d decimal.Decimal) string {
	return "$" + d.StringFixed(0)
}
