package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func testParams() Params {
	return Params{
		TaxableBalance:  d(100000),
		Traditional401k: d(200000),
		RothBalance:     d(50000),
		HSABalance:      d(25000),
		CashBalance:     d(30000),
		TaxableContrib:  d(10000),
		Employee401k:    d(15000),
		Employer401k:    d(5000),
		RothContrib:     d(6000),
		HSAEmployee:     d(3000),
		HSAEmployer:     d(1000),
	}
}

func testTaxSettings() TaxSettings {
	return TaxSettings{
		TaxDragRate:        d(0.15),
		CapitalGainsRate:   d(0.15),
		OrdinaryIncomeRate: d(0.22),
		TaxableGainsRatio:  d(0.70),
	}
}

func TestAccountKind_String(t *testing.T) {
	want := []string{"taxable", "traditional", "roth", "hsa", "cash"}
	for i, k := range AllAccountKinds {
		assert.Equal(t, want[i], k.String())
		parsed, err := ParseAccountKind(want[i])
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := ParseAccountKind("brokerage")
	assert.Error(t, err)
	assert.Equal(t, "AccountKind(9)", AccountKind(9).String())
}

func TestNewAccountSet(t *testing.T) {
	accounts := NewAccountSet(testParams())

	assert.True(t, accounts[Taxable].Balance.Equal(d(100000)))
	assert.True(t, accounts[Traditional].Balance.Equal(d(200000)))
	assert.True(t, accounts[Roth].Balance.Equal(d(50000)))
	assert.True(t, accounts[HSA].Balance.Equal(d(25000)))
	assert.True(t, accounts[Cash].Balance.Equal(d(30000)))

	assert.True(t, accounts[Traditional].Contribution.Equal(d(20000)), "employee + employer 401k")
	assert.True(t, accounts[HSA].Contribution.Equal(d(4000)), "employee + employer HSA")
	assert.True(t, accounts[Cash].Contribution.IsZero())

	assert.Equal(t, TreatmentTaxable, accounts[Taxable].Treatment)
	assert.Equal(t, TreatmentDeferred, accounts[Traditional].Treatment)
	assert.Equal(t, TreatmentFree, accounts[Roth].Treatment)
	assert.Equal(t, TreatmentFree, accounts[HSA].Treatment)
	assert.Equal(t, TreatmentTaxable, accounts[Cash].Treatment)

	assert.True(t, accounts.TotalBalance().Equal(d(405000)))
	assert.True(t, accounts.TotalContributions(decimal.NewFromInt(1)).Equal(d(40000)))
	assert.True(t, accounts.TotalContributions(d(1.5)).Equal(d(60000)))
}

func TestNewAccountSet_DefaultsAndNegatives(t *testing.T) {
	accounts := NewAccountSet(Params{TaxableBalance: d(-500), RothContrib: d(-10)})
	assert.True(t, accounts.TotalBalance().IsZero())
	assert.True(t, accounts.TotalContributions(decimal.NewFromInt(1)).IsZero())
}

func TestTaxOnWithdrawal(t *testing.T) {
	accounts := NewAccountSet(Params{})
	tax := testTaxSettings()
	amount := d(10000)

	testCases := []struct {
		kind     AccountKind
		expected decimal.Decimal
	}{
		{Taxable, d(1050)},
		{Cash, d(1050)},
		{Traditional, d(2200)},
		{Roth, decimal.Zero},
		{HSA, decimal.Zero},
	}
	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			got := accounts.TaxOnWithdrawal(tc.kind, amount, tax)
			assert.True(t, got.Equal(tc.expected), "got %s want %s", got, tc.expected)
		})
	}
}

func TestWithdraw(t *testing.T) {
	accounts := NewAccountSet(testParams())

	got := accounts.Withdraw(Taxable, d(40000))
	assert.True(t, got.Equal(d(40000)))
	assert.True(t, accounts[Taxable].Balance.Equal(d(60000)))

	got = accounts.Withdraw(Taxable, d(90000))
	assert.True(t, got.Equal(d(60000)), "clamped to available balance")
	assert.True(t, accounts[Taxable].Balance.IsZero())

	got = accounts.Withdraw(Taxable, d(1))
	assert.True(t, got.IsZero())

	got = accounts.Withdraw(Roth, d(-100))
	assert.True(t, got.IsZero())
	assert.True(t, accounts[Roth].Balance.Equal(d(50000)))

	assert.True(t, accounts.TotalBalance().Equal(d(305000)))
}

func TestWithdraw_NeverBelowZero(t *testing.T) {
	for _, req := range []float64{0, 1, 24999.99, 25000, 25000.01, 1e9} {
		accounts := NewAccountSet(testParams())
		prior := accounts[HSA].Balance
		got := accounts.Withdraw(HSA, d(req))
		assert.True(t, got.Equal(decimal.Min(d(req), prior)))
		assert.False(t, accounts[HSA].Balance.IsNegative())
		assert.True(t, accounts[HSA].Balance.Add(got).Equal(prior))
	}
}

func TestGrow_TaxDrag(t *testing.T) {
	accounts := NewAccountSet(Params{
		TaxableBalance:  d(100000),
		Traditional401k: d(100000),
		RothBalance:     d(100000),
		TaxableContrib:  d(10000),
		Employee401k:    d(10000),
		RothContrib:     d(10000),
	})
	before := accounts.TotalBalance()

	accounts.Grow(d(0.06), true, testTaxSettings(), decimal.NewFromInt(1))

	assert.True(t, accounts.TotalBalance().GreaterThan(before))
	// 6% less 15% drag = 5.1%
	assert.True(t, accounts[Taxable].Balance.Equal(d(115100)), "got %s", accounts[Taxable].Balance)
	assert.True(t, accounts[Traditional].Balance.Equal(d(116000)))
	assert.True(t, accounts[Roth].Balance.Equal(d(116000)))
	assert.True(t, accounts[HSA].Balance.IsZero())
}

func TestGrow_ContributionsOnlyWhenWorking(t *testing.T) {
	accounts := NewAccountSet(Params{RothBalance: d(1000), RothContrib: d(500)})
	accounts.Grow(d(0.10), false, testTaxSettings(), decimal.NewFromInt(1))
	assert.True(t, accounts[Roth].Balance.Equal(d(1100)))

	accounts.Grow(decimal.Zero, true, testTaxSettings(), d(2))
	assert.True(t, accounts[Roth].Balance.Equal(d(2100)), "contribution scaled by multiplier")
}

func TestGrow_ContributionDoesNotCompoundSameYear(t *testing.T) {
	accounts := NewAccountSet(Params{Traditional401k: decimal.Zero, Employee401k: d(1000)})
	accounts.Grow(d(0.5), true, testTaxSettings(), decimal.NewFromInt(1))
	assert.True(t, accounts[Traditional].Balance.Equal(d(1000)))
	accounts.Grow(d(0.5), true, testTaxSettings(), decimal.NewFromInt(1))
	assert.True(t, accounts[Traditional].Balance.Equal(d(2500)))
}

func TestGrow_TotalLossFloorsAtZero(t *testing.T) {
	accounts := NewAccountSet(Params{RothBalance: d(1000)})
	accounts.Grow(d(-1.5), false, testTaxSettings(), decimal.NewFromInt(1))
	assert.True(t, accounts[Roth].Balance.IsZero())
}

func TestClone_IsIndependent(t *testing.T) {
	accounts := NewAccountSet(testParams())
	snapshot := accounts.Clone()
	accounts.Withdraw(Taxable, d(100000))
	accounts.Grow(d(0.10), true, testTaxSettings(), decimal.NewFromInt(1))

	assert.True(t, snapshot[Taxable].Balance.Equal(d(100000)))
	assert.True(t, snapshot.TotalBalance().Equal(d(405000)))
}

func TestAccountSet_JSON(t *testing.T) {
	accounts := NewAccountSet(Params{CashBalance: d(42)})
	data, err := json.Marshal(accounts)
	require.NoError(t, err)

	var decoded map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 5)
	assert.Equal(t, "42", decoded["cash"]["balance"])
	assert.Equal(t, "taxable", decoded["cash"]["tax_treatment"])
	assert.Equal(t, "deferred", decoded["traditional"]["tax_treatment"])
}

func TestAmountsByAccount_Total(t *testing.T) {
	var a AmountsByAccount
	a[Taxable] = d(10)
	a[HSA] = d(5.5)
	assert.True(t, a.Total().Equal(d(15.5)))
}
