package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rpgo/portfolio-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks a bag value that could not be parsed as a number.
// ParseParams recovers from it by using 0 and reports it as a warning.
var ErrInvalidInput = errors.New("invalid input")

// Parameter bag keys recognized by ParseParams.
const (
	KeyCurrentAge         = "currentAge"
	KeyRetirementAge      = "retirementAge"
	KeyLifeExpectancy     = "lifeExpectancy"
	KeyBaseSalary         = "baseSalary"
	KeyBonus              = "bonus"
	KeySalaryGrowth       = "salaryGrowth"
	KeyTaxableBalance     = "taxableBalance"
	KeyTraditional401k    = "traditional401k"
	KeyRothBalance        = "rothBalance"
	KeyHSABalance         = "hsaBalance"
	KeyCashBalance        = "cashBalance"
	KeyTaxableContrib     = "taxableContrib"
	KeyEmployee401k       = "employee401k"
	KeyEmployer401k       = "employer401k"
	KeyRothContrib        = "rothContrib"
	KeyHSAEmployee        = "hsaEmployee"
	KeyHSAEmployer        = "hsaEmployer"
	KeyInvestmentReturn   = "investmentReturn"
	KeyInflation          = "inflation"
	KeyBaseWithdrawal     = "baseWithdrawal"
	KeyIndexWithdrawals   = "indexWithdrawals"
	KeyContributionGrowth = "contributionGrowth"
	KeyTaxDragRate        = "taxDragRate"
	KeyCapitalGainsRate   = "capitalGainsRate"
	KeyOrdinaryIncomeRate = "ordinaryIncomeRate"
	KeyTaxableGainsRatio  = "taxableGainsRatio"
)

// bagParser accumulates parse warnings while reading one bag.
type bagParser struct {
	bag      map[string]string
	warnings []error
}

func (bp *bagParser) raw(key string) (string, bool) {
	v, ok := bp.bag[key]
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (bp *bagParser) number(key string) decimal.Decimal {
	v, ok := bp.raw(key)
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		bp.warnings = append(bp.warnings, fmt.Errorf("%w: %s=%q", ErrInvalidInput, key, v))
		return decimal.Zero
	}
	return d
}

// money reads a balance or contribution; negatives are clamped to 0.
func (bp *bagParser) money(key string) decimal.Decimal {
	d := bp.number(key)
	if d.IsNegative() {
		bp.warnings = append(bp.warnings, fmt.Errorf("%w: %s=%s is negative, using 0", ErrInvalidInput, key, d))
		return decimal.Zero
	}
	return d
}

func (bp *bagParser) integer(key string) int {
	return int(bp.number(key).IntPart())
}

func (bp *bagParser) optional(key string) *decimal.Decimal {
	if _, ok := bp.raw(key); !ok {
		return nil
	}
	d := bp.number(key)
	return &d
}

func (bp *bagParser) flag(key string) bool {
	v, ok := bp.raw(key)
	if !ok {
		return false
	}
	switch strings.ToLower(v) {
	case "yes", "y", "on":
		return true
	case "no", "n", "off":
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		bp.warnings = append(bp.warnings, fmt.Errorf("%w: %s=%q", ErrInvalidInput, key, v))
		return false
	}
	return b
}

// ParseParams builds household parameters from a flat string bag, the
// shape a form or query string produces. Absent fields default to 0.
// Malformed numbers also become 0 and are returned as warnings wrapping
// ErrInvalidInput; they never abort parsing. Rates are fractions
// (0.06 = 6%).
func ParseParams(bag map[string]string) (domain.Params, []error) {
	bp := &bagParser{bag: bag}
	p := domain.Params{
		CurrentAge:     bp.integer(KeyCurrentAge),
		RetirementAge:  bp.integer(KeyRetirementAge),
		LifeExpectancy: bp.integer(KeyLifeExpectancy),

		BaseSalary:   bp.money(KeyBaseSalary),
		Bonus:        bp.money(KeyBonus),
		SalaryGrowth: bp.number(KeySalaryGrowth),

		TaxableBalance:  bp.money(KeyTaxableBalance),
		Traditional401k: bp.money(KeyTraditional401k),
		RothBalance:     bp.money(KeyRothBalance),
		HSABalance:      bp.money(KeyHSABalance),
		CashBalance:     bp.money(KeyCashBalance),

		TaxableContrib: bp.money(KeyTaxableContrib),
		Employee401k:   bp.money(KeyEmployee401k),
		Employer401k:   bp.money(KeyEmployer401k),
		RothContrib:    bp.money(KeyRothContrib),
		HSAEmployee:    bp.money(KeyHSAEmployee),
		HSAEmployer:    bp.money(KeyHSAEmployer),

		InvestmentReturn:   bp.number(KeyInvestmentReturn),
		Inflation:          bp.number(KeyInflation),
		BaseWithdrawal:     bp.money(KeyBaseWithdrawal),
		IndexWithdrawals:   bp.flag(KeyIndexWithdrawals),
		ContributionGrowth: bp.number(KeyContributionGrowth),

		TaxDragRate:        bp.optional(KeyTaxDragRate),
		CapitalGainsRate:   bp.optional(KeyCapitalGainsRate),
		OrdinaryIncomeRate: bp.optional(KeyOrdinaryIncomeRate),
		TaxableGainsRatio:  bp.optional(KeyTaxableGainsRatio),
	}

	var unknown []string
	for key := range bag {
		if !knownKeys[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		bp.warnings = append(bp.warnings, fmt.Errorf("unrecognized parameter %q ignored", key))
	}

	return p, bp.warnings
}

var knownKeys = map[string]bool{
	KeyCurrentAge: true, KeyRetirementAge: true, KeyLifeExpectancy: true,
	KeyBaseSalary: true, KeyBonus: true, KeySalaryGrowth: true,
	KeyTaxableBalance: true, KeyTraditional401k: true, KeyRothBalance: true,
	KeyHSABalance: true, KeyCashBalance: true,
	KeyTaxableContrib: true, KeyEmployee401k: true, KeyEmployer401k: true,
	KeyRothContrib: true, KeyHSAEmployee: true, KeyHSAEmployer: true,
	KeyInvestmentReturn: true, KeyInflation: true, KeyBaseWithdrawal: true,
	KeyIndexWithdrawals: true, KeyContributionGrowth: true,
	KeyTaxDragRate: true, KeyCapitalGainsRate: true,
	KeyOrdinaryIncomeRate: true, KeyTaxableGainsRatio: true,
}
