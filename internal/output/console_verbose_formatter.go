package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/portfolio-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the detailed console report: assumptions,
// the scenario comparison and a year-by-year table per scenario.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED PORTFOLIO PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	if results.RunID != "" {
		fmt.Fprintf(&buf, "Run: %s\n", results.RunID)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeHousehold(&buf, results.Household)
	writeScenarioComparison(&buf, results)

	for i, scenario := range results.Scenarios {
		title := fmt.Sprintf("SCENARIO %d: %s (return %s, inflation %s)", i+1, scenario.Name,
			FormatPercentage(scenario.Return), FormatPercentage(scenario.Inflation))
		fmt.Fprintln(&buf, title)
		fmt.Fprintln(&buf, strings.Repeat("=", len(title)))
		writeFirstRetirementYear(&buf, scenario)
		writeYearTable(&buf, scenario)
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "RECOMMENDATION")
		fmt.Fprintln(&buf, "==============")
		fmt.Fprintf(&buf, "Longest funded: %s (%d years of retirement funded)\n", rec.ScenarioName, rec.YearsSustainable)
		fmt.Fprintf(&buf, "Highest balance at life expectancy: %s\n", results.BestScenarioForBalance)
		fmt.Fprintf(&buf, "Balance at retirement: %s\n", FormatCurrency(rec.RetirementBalance))
		fmt.Fprintf(&buf, "Change vs %s: %s (%s)\n", results.Scenarios[0].Name, FormatCurrency(rec.BalanceChange), FormatPercentage(rec.PercentageChange))
	}

	return buf.Bytes(), nil
}

func writeHousehold(buf *bytes.Buffer, h domain.Params) {
	fmt.Fprintln(buf, "HOUSEHOLD")
	fmt.Fprintln(buf, "=========")
	fmt.Fprintf(buf, "Current age: %d   Retirement age: %d   Life expectancy: %d\n", h.CurrentAge, h.RetirementAge, h.LifeExpectancy)
	fmt.Fprintf(buf, "Salary: %s   Bonus: %s\n", FormatCurrency(h.BaseSalary), FormatCurrency(h.Bonus))
	accounts := domain.NewAccountSet(h)
	fmt.Fprintf(buf, "%-14s %15s %15s\n", "ACCOUNT", "BALANCE", "CONTRIBUTION")
	fmt.Fprintln(buf, strings.Repeat("-", 46))
	for _, kind := range domain.AllAccountKinds {
		a := accounts.Get(kind)
		fmt.Fprintf(buf, "%-14s %15s %15s\n", kind, FormatCurrency(a.Balance), FormatCurrency(a.Contribution))
	}
	fmt.Fprintln(buf, strings.Repeat("-", 46))
	fmt.Fprintf(buf, "%-14s %15s %15s\n", "total", FormatCurrency(accounts.TotalBalance()), FormatCurrency(accounts.TotalContributions(decimal.NewFromInt(1))))
	fmt.Fprintln(buf)
}

func writeScenarioComparison(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	fmt.Fprintln(buf, "SCENARIO COMPARISON")
	fmt.Fprintln(buf, "===================")
	fmt.Fprintf(buf, "%-14s %18s %18s %10s %12s\n", "SCENARIO", "AT RETIREMENT", "AT LIFE EXP.", "DEPLETES", "SUSTAINABLE")
	fmt.Fprintln(buf, strings.Repeat("-", 76))
	for _, sc := range results.Scenarios {
		fmt.Fprintf(buf, "%-14s %18s %18s %10s %9d yr\n", sc.Name, FormatCurrency(sc.RetirementBalance),
			FormatCurrency(sc.EndBalance), FormatDepletion(sc.DepletionYear), sc.YearsSustainable)
	}
	fmt.Fprintln(buf)
}

func writeFirstRetirementYear(buf *bytes.Buffer, scenario domain.ScenarioSummary) {
	var first *domain.ProjectionYear
	for i := range scenario.Result.Projections {
		if !scenario.Result.Projections[i].IsWorking {
			first = &scenario.Result.Projections[i]
			break
		}
	}
	if first == nil {
		fmt.Fprintln(buf, "Retirement is beyond the projection horizon.")
		return
	}
	fmt.Fprintf(buf, "FIRST RETIREMENT YEAR (%d, age %d) WITHDRAWALS:\n", first.Year, first.Age)
	fmt.Fprintf(buf, "%-14s %15s %15s\n", "ACCOUNT", "WITHDRAWN", "TAX")
	for _, kind := range domain.AllAccountKinds {
		fmt.Fprintf(buf, "%-14s %15s %15s\n", kind, FormatCurrency(first.Withdrawals[kind]), FormatCurrency(first.Taxes[kind]))
	}
	fmt.Fprintf(buf, "%-14s %15s %15s\n", "total", FormatCurrency(first.TotalWithdrawn), FormatCurrency(first.TotalTaxes))
	fmt.Fprintf(buf, "Target %s, net spendable %s\n", FormatCurrency(first.Withdrawal), FormatCurrency(first.NetWithdrawn))
	if short := first.Shortfall(); short.IsPositive() {
		fmt.Fprintf(buf, "Shortfall: %s\n", FormatCurrency(short))
	}
	fmt.Fprintln(buf)
}

func writeYearTable(buf *bytes.Buffer, scenario domain.ScenarioSummary) {
	fmt.Fprintf(buf, "%-6s %4s %-8s %16s %14s %14s %12s %18s %18s\n",
		"YEAR", "AGE", "STATUS", "INCOME", "CONTRIB", "WITHDRAWN", "TAXES", "END BALANCE", "REAL BALANCE")
	fmt.Fprintln(buf, strings.Repeat("-", 118))
	for _, y := range scenario.Result.Projections {
		status := "working"
		if !y.IsWorking {
			status = "retired"
		}
		if y.Depleted {
			status = "depleted"
		}
		fmt.Fprintf(buf, "%-6d %4d %-8s %16s %14s %14s %12s %18s %18s\n",
			y.Year, y.Age, status,
			FormatCurrency(y.TotalIncome), FormatCurrency(y.Contributions),
			FormatCurrency(y.TotalWithdrawn), FormatCurrency(y.TotalTaxes),
			FormatCurrency(y.EndBalance), FormatCurrency(y.EndBalanceReal))
	}
}
