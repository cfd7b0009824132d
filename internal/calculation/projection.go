package calculation

import (
	"github.com/rpgo/portfolio-projector/internal/domain"
	money "github.com/rpgo/portfolio-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ProjectionEngine simulates a household portfolio one year at a time.
// A single engine may be shared by concurrent runs; all per-run state lives
// inside Run.
type ProjectionEngine struct {
	Withdrawal *TaxOrderedWithdrawal
	Debug      bool // Enable per-year debug output
	Logger     Logger
}

// NewProjectionEngine creates a projection engine with a no-op logger
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Withdrawal: NewTaxOrderedWithdrawal(),
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Run projects the portfolio from the current age until the horizon is
// reached or the retiree runs out of money. It never fails: implausible
// inputs (retirement before the current age, negative rates) produce
// degenerate but complete output.
func (pe *ProjectionEngine) Run(p domain.Params, tax domain.TaxSettings) domain.ProjectionResult {
	startYear := p.StartYear
	if startYear == 0 {
		startYear = currentYear()
	}
	horizon := p.Horizon()

	accounts := domain.NewAccountSet(p)
	priceIndex := decimal.NewFromInt(1)
	inflationFactor := decimal.NewFromInt(1).Add(p.Inflation)

	projections := make([]domain.ProjectionYear, 0, horizon)
	var depletionYear *int

	for offset := 0; offset < horizon; offset++ {
		year := startYear + offset
		age := p.CurrentAge + offset
		isWorking := age < p.RetirementAge
		startBalance := accounts.TotalBalance()

		// Income
		salary := decimal.Zero
		bonus := decimal.Zero
		if isWorking {
			salary = p.BaseSalary.Mul(money.GrowthFactor(p.SalaryGrowth, offset))
			bonus = p.Bonus
		}

		// The price index compounds every year, working or not
		priceIndex = priceIndex.Mul(inflationFactor)

		var outcome domain.WithdrawalOutcome
		target := decimal.Zero
		if !isWorking {
			target = p.BaseWithdrawal
			if p.IndexWithdrawals {
				target = target.Mul(priceIndex)
			}
			outcome = pe.Withdrawal.Execute(target, &accounts, tax)
		}

		contributionMultiplier := money.GrowthFactor(p.ContributionGrowth, offset)
		contributions := decimal.Zero
		if isWorking {
			contributions = accounts.TotalContributions(contributionMultiplier)
		}
		accounts.Grow(p.InvestmentReturn, isWorking, tax, contributionMultiplier)

		endBalance := accounts.TotalBalance()
		endBalanceReal := money.SafeDiv(endBalance, priceIndex)
		depleted := endBalance.LessThanOrEqual(decimal.Zero)
		if depleted && depletionYear == nil {
			y := year
			depletionYear = &y
			pe.Logger.Infof("portfolio depleted in %d at age %d", year, age)
		}

		projections = append(projections, domain.ProjectionYear{
			Year:           year,
			Age:            age,
			IsWorking:      isWorking,
			Salary:         salary,
			Bonus:          bonus,
			TotalIncome:    salary.Add(bonus),
			Contributions:  contributions,
			PriceIndex:     priceIndex,
			Withdrawal:     target,
			TotalWithdrawn: outcome.TotalWithdrawn,
			TotalTaxes:     outcome.TotalTaxes,
			NetWithdrawn:   outcome.NetWithdrawn,
			Withdrawals:    outcome.Withdrawals,
			Taxes:          outcome.Taxes,
			StartBalance:   startBalance,
			EndBalance:     endBalance,
			EndBalanceReal: endBalanceReal,
			Depleted:       depleted,
			Accounts:       accounts.Clone(),
		})

		if pe.Debug {
			pe.Logger.Debugf("year %d age %d working=%t start=%s withdrawal=%s taxes=%s end=%s real=%s",
				year, age, isWorking, startBalance.StringFixed(2), outcome.TotalWithdrawn.StringFixed(2),
				outcome.TotalTaxes.StringFixed(2), endBalance.StringFixed(2), endBalanceReal.StringFixed(2))
		}

		// Out of money after retirement: nothing can refill the portfolio
		if depleted && !isWorking {
			break
		}
	}

	return domain.ProjectionResult{
		Projections:   projections,
		DepletionYear: depletionYear,
	}
}
