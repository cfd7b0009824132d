package calculation

import (
	"github.com/rpgo/portfolio-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// withdrawalOrder drains capital-gains buckets first, then tax-deferred,
// then tax-free. It is intentionally not configurable.
var withdrawalOrder = [...]domain.AccountKind{
	domain.Taxable,
	domain.Cash,
	domain.Traditional,
	domain.Roth,
	domain.HSA,
}

// WithdrawalOrder returns the bucket priority used by TaxOrderedWithdrawal.
func WithdrawalOrder() []domain.AccountKind {
	out := make([]domain.AccountKind, len(withdrawalOrder))
	copy(out, withdrawalOrder[:])
	return out
}

// TaxOrderedWithdrawal meets a cash need from the buckets in a fixed
// priority order and computes the flat-rate tax owed on each draw.
type TaxOrderedWithdrawal struct{}

// NewTaxOrderedWithdrawal creates the withdrawal strategy
func NewTaxOrderedWithdrawal() *TaxOrderedWithdrawal {
	return &TaxOrderedWithdrawal{}
}

// GetStrategyName returns the name of this strategy
func (tow *TaxOrderedWithdrawal) GetStrategyName() string {
	return "taxable_first"
}

// Execute withdraws up to target from accounts, mutating balances in place.
// When the buckets cannot cover the target, TotalWithdrawn is simply lower
// than target; the caller treats that as depletion.
func (tow *TaxOrderedWithdrawal) Execute(target decimal.Decimal, accounts *domain.AccountSet, tax domain.TaxSettings) domain.WithdrawalOutcome {
	var out domain.WithdrawalOutcome
	for _, kind := range domain.AllAccountKinds {
		out.Withdrawals[kind] = decimal.Zero
		out.Taxes[kind] = decimal.Zero
	}

	remaining := target
	for _, kind := range withdrawalOrder {
		if !remaining.IsPositive() {
			break
		}
		taken := accounts.Withdraw(kind, remaining)
		out.Withdrawals[kind] = taken
		remaining = remaining.Sub(taken)
	}

	for _, kind := range domain.AllAccountKinds {
		if out.Withdrawals[kind].IsPositive() {
			out.Taxes[kind] = accounts.TaxOnWithdrawal(kind, out.Withdrawals[kind], tax)
		}
	}

	out.TotalWithdrawn = out.Withdrawals.Total()
	out.TotalTaxes = out.Taxes.Total()
	out.NetWithdrawn = out.TotalWithdrawn.Sub(out.TotalTaxes)
	return out
}
