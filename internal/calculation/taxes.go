package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/rothcompare/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal Tax Brackets: 2025 Married Filing Separately brackets by default
//    - Held constant for every projection year (no inflation indexing)
//    - Contiguous bands: each upper bound is the next band's lower bound
//
// 2. Standard deduction is applied by the caller (the withdrawal solver), not here
//
// 3. No state, local or FICA taxes are modelled

// ErrInvalidBrackets is returned when a bracket table is malformed.
var ErrInvalidBrackets = errors.New("invalid tax bracket table")

// DefaultBrackets2025MFS returns the 2025 federal brackets for Married Filing Separately.
func DefaultBrackets2025MFS() []domain.TaxBracket {
	return []domain.TaxBracket{
		{Min: decimal.Zero, Max: decimal.NewFromInt(11925), Rate: decimal.NewFromFloat(0.10)},
		{Min: decimal.NewFromInt(11925), Max: decimal.NewFromInt(48475), Rate: decimal.NewFromFloat(0.12)},
		{Min: decimal.NewFromInt(48475), Max: decimal.NewFromInt(103350), Rate: decimal.NewFromFloat(0.22)},
		{Min: decimal.NewFromInt(103350), Max: decimal.NewFromInt(197300), Rate: decimal.NewFromFloat(0.24)},
		{Min: decimal.NewFromInt(197300), Max: decimal.NewFromInt(250525), Rate: decimal.NewFromFloat(0.32)},
		{Min: decimal.NewFromInt(250525), Max: decimal.NewFromInt(375800), Rate: decimal.NewFromFloat(0.35)},
		{Min: decimal.NewFromInt(375800), Rate: decimal.NewFromFloat(0.37)},
	}
}

// BracketTaxCalculator computes progressive income tax from an ordered bracket table.
type BracketTaxCalculator struct {
	Brackets []domain.TaxBracket
}

// NewBracketTaxCalculator creates a calculator over a validated bracket table.
func NewBracketTaxCalculator(brackets []domain.TaxBracket) (*BracketTaxCalculator, error) {
	if err := ValidateBrackets(brackets); err != nil {
		return nil, err
	}
	return &BracketTaxCalculator{Brackets: brackets}, nil
}

// NewDefaultTaxCalculator creates a calculator over the 2025 MFS brackets.
func NewDefaultTaxCalculator() *BracketTaxCalculator {
	return &BracketTaxCalculator{Brackets: DefaultBrackets2025MFS()}
}

// CalculateTax returns the tax owed on a non-negative taxable income.
func (btc *BracketTaxCalculator) CalculateTax(income decimal.Decimal) decimal.Decimal {
	var totalTax decimal.Decimal
	for _, bracket := range btc.Brackets {
		if income.LessThanOrEqual(bracket.Min) {
			break
		}
		upper := income
		if !bracket.Unbounded() {
			upper = decimal.Min(income, bracket.Max)
		}
		totalTax = totalTax.Add(upper.Sub(bracket.Min).Mul(bracket.Rate))
	}
	return totalTax
}

// MarginalRate returns the rate applied to the next dollar above income.
func (btc *BracketTaxCalculator) MarginalRate(income decimal.Decimal) decimal.Decimal {
	rate := decimal.Zero
	for _, bracket := range btc.Brackets {
		if income.LessThan(bracket.Min) {
			break
		}
		rate = bracket.Rate
	}
	return rate
}

// EffectiveRate returns total tax as a fraction of income (zero for zero income).
func (btc *BracketTaxCalculator) EffectiveRate(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return btc.CalculateTax(income).Div(income)
}

// ValidateBrackets checks that a table is ascending, contiguous, open-ended and
// has non-decreasing rates in [0, 1).
func ValidateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: at least one bracket is required", ErrInvalidBrackets)
	}
	if brackets[0].Min.IsNegative() {
		return fmt.Errorf("%w: first bracket cannot start below zero", ErrInvalidBrackets)
	}
	one := decimal.NewFromInt(1)
	last := len(brackets) - 1
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThanOrEqual(one) {
			return fmt.Errorf("%w: bracket %d rate %s must be in [0, 1)", ErrInvalidBrackets, i, b.Rate)
		}
		if i == last {
			if !b.Unbounded() {
				return fmt.Errorf("%w: final bracket must have no upper bound", ErrInvalidBrackets)
			}
			break
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("%w: bracket %d upper bound %s must exceed lower bound %s", ErrInvalidBrackets, i, b.Max, b.Min)
		}
		next := brackets[i+1]
		if !next.Min.Equal(b.Max) {
			return fmt.Errorf("%w: bracket %d starts at %s, expected %s", ErrInvalidBrackets, i+1, next.Min, b.Max)
		}
		if next.Rate.LessThan(b.Rate) {
			return fmt.Errorf("%w: bracket %d rate decreases", ErrInvalidBrackets, i+1)
		}
	}
	return nil
}
