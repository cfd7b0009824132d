package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	money "github.com/rpgo/portfolio-projector/pkg/decimal"
)

// AccountKind identifies one of the five household investment buckets
type AccountKind int

const (
	Taxable AccountKind = iota
	Traditional
	Roth
	HSA
	Cash

	numAccountKinds
)

// AllAccountKinds lists every bucket in declaration order.
var AllAccountKinds = [numAccountKinds]AccountKind{Taxable, Traditional, Roth, HSA, Cash}

var accountKindNames = [numAccountKinds]string{"taxable", "traditional", "roth", "hsa", "cash"}

func (k AccountKind) String() string {
	if k < 0 || k >= numAccountKinds {
		return fmt.Sprintf("AccountKind(%d)", int(k))
	}
	return accountKindNames[k]
}

// ParseAccountKind maps a bucket name back to its kind
func ParseAccountKind(name string) (AccountKind, error) {
	for i, n := range accountKindNames {
		if n == name {
			return AccountKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown account kind %q", name)
}

// TaxTreatment describes how growth and withdrawals of a bucket are taxed
type TaxTreatment int

const (
	TreatmentTaxable  TaxTreatment = iota // gains taxed; growth subject to tax drag
	TreatmentDeferred                     // withdrawals taxed as ordinary income
	TreatmentFree                         // tax-free growth and withdrawals
)

func (t TaxTreatment) String() string {
	switch t {
	case TreatmentTaxable:
		return "taxable"
	case TreatmentDeferred:
		return "deferred"
	case TreatmentFree:
		return "free"
	}
	return fmt.Sprintf("TaxTreatment(%d)", int(t))
}

func (t TaxTreatment) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Account is a single tax-treated balance pool
type Account struct {
	Balance      decimal.Decimal `json:"balance" yaml:"balance"`
	Contribution decimal.Decimal `json:"annual_contribution" yaml:"annual_contribution"`
	Treatment    TaxTreatment    `json:"tax_treatment" yaml:"tax_treatment"`
}

// AccountSet holds the five buckets indexed by AccountKind. It is a plain
// array so assignment and Clone produce independent copies.
type AccountSet [numAccountKinds]Account

// NewAccountSet builds the buckets from household parameters. Negative
// amounts are treated as zero.
func NewAccountSet(p Params) AccountSet {
	var s AccountSet
	s[Taxable] = Account{
		Balance:      money.NonNegative(p.TaxableBalance),
		Contribution: money.NonNegative(p.TaxableContrib),
		Treatment:    TreatmentTaxable,
	}
	s[Traditional] = Account{
		Balance:      money.NonNegative(p.Traditional401k),
		Contribution: money.NonNegative(p.Employee401k).Add(money.NonNegative(p.Employer401k)),
		Treatment:    TreatmentDeferred,
	}
	s[Roth] = Account{
		Balance:      money.NonNegative(p.RothBalance),
		Contribution: money.NonNegative(p.RothContrib),
		Treatment:    TreatmentFree,
	}
	s[HSA] = Account{
		Balance:      money.NonNegative(p.HSABalance),
		Contribution: money.NonNegative(p.HSAEmployee).Add(money.NonNegative(p.HSAEmployer)),
		Treatment:    TreatmentFree,
	}
	s[Cash] = Account{
		Balance:      money.NonNegative(p.CashBalance),
		Contribution: decimal.Zero,
		Treatment:    TreatmentTaxable,
	}
	return s
}

// Get returns a copy of one bucket
func (s *AccountSet) Get(kind AccountKind) Account {
	return s[kind]
}

// Clone returns an independent copy of the set.
func (s *AccountSet) Clone() AccountSet {
	return *s
}

// TotalBalance sums the balances of all buckets.
func (s *AccountSet) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s {
		total = total.Add(a.Balance)
	}
	return total
}

// TotalContributions sums annual contributions, each scaled by multiplier.
func (s *AccountSet) TotalContributions(multiplier decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range s {
		total = total.Add(a.Contribution.Mul(multiplier))
	}
	return total
}

// TaxOnWithdrawal computes the flat-rate tax owed on withdrawing amount from
// the given bucket. Taxable and cash withdrawals pay capital gains on the
// assumed gains share; traditional withdrawals pay ordinary income tax in
// full; Roth and HSA withdrawals are tax free.
func (s *AccountSet) TaxOnWithdrawal(kind AccountKind, amount decimal.Decimal, tax TaxSettings) decimal.Decimal {
	switch kind {
	case Taxable, Cash:
		return amount.Mul(tax.TaxableGainsRatio).Mul(tax.CapitalGainsRate)
	case Traditional:
		return amount.Mul(tax.OrdinaryIncomeRate)
	default:
		return decimal.Zero
	}
}

// Withdraw removes up to requested from the bucket and returns the amount
// actually taken, which never exceeds the bucket balance. Negative requests
// withdraw nothing.
func (s *AccountSet) Withdraw(kind AccountKind, requested decimal.Decimal) decimal.Decimal {
	if !requested.IsPositive() {
		return decimal.Zero
	}
	acct := &s[kind]
	actual := money.NonNegative(money.Min(requested, acct.Balance))
	acct.Balance = acct.Balance.Sub(actual)
	return actual
}

// Grow applies one year of investment return to every bucket. Growth is
// applied to the opening balance; contributions (scaled by multiplier) are
// added afterwards when working and only start compounding next year.
// Taxable-treatment buckets earn the return reduced by the tax drag rate.
func (s *AccountSet) Grow(investmentReturn decimal.Decimal, isWorking bool, tax TaxSettings, multiplier decimal.Decimal) {
	one := decimal.NewFromInt(1)
	dragged := investmentReturn.Mul(one.Sub(tax.TaxDragRate))

	for i := range s {
		acct := &s[i]
		effective := investmentReturn
		if acct.Treatment == TreatmentTaxable {
			effective = dragged
		}
		acct.Balance = money.NonNegative(acct.Balance.Mul(one.Add(effective)))
		if isWorking {
			acct.Balance = acct.Balance.Add(acct.Contribution.Mul(multiplier))
		}
	}
}

// Map returns the set keyed by bucket name.
func (s AccountSet) Map() map[string]Account {
	m := make(map[string]Account, numAccountKinds)
	for _, k := range AllAccountKinds {
		m[k.String()] = s[k]
	}
	return m
}

// MarshalJSON renders the set as an object keyed by bucket name.
func (s AccountSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// MarshalYAML renders the set as a mapping keyed by bucket name.
func (s AccountSet) MarshalYAML() (interface{}, error) {
	return s.Map(), nil
}

// AmountsByAccount is a per-bucket amount (withdrawals, taxes).
type AmountsByAccount [numAccountKinds]decimal.Decimal

// Total sums all bucket amounts.
func (a AmountsByAccount) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range a {
		total = total.Add(v)
	}
	return total
}

func (a AmountsByAccount) MarshalJSON() ([]byte, error) {
	m := make(map[string]decimal.Decimal, numAccountKinds)
	for _, k := range AllAccountKinds {
		m[k.String()] = a[k]
	}
	return json.Marshal(m)
}

var _ yaml.Marshaler = AccountSet{}
