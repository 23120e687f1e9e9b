package calculation

import (
	money "github.com/rpgo/rothcompare/pkg/decimal"
	"github.com/shopspring/decimal"
)

// GrossUpResult is the outcome of a single gross-up solve.
type GrossUpResult struct {
	Gross      decimal.Decimal
	Tax        decimal.Decimal
	Iterations int
	// Converged is false when MaxIterations ran out; Gross and Tax are then
	// the last evaluated guess and are only approximately correct.
	Converged bool
}

// Net returns the after-tax amount implied by the result.
func (r GrossUpResult) Net() decimal.Decimal {
	return r.Gross.Sub(r.Tax)
}

// WithdrawalSolver finds the pre-tax withdrawal that nets a target after tax.
type WithdrawalSolver struct {
	TaxCalc       *BracketTaxCalculator
	Tolerance     decimal.Decimal
	MaxIterations int
}

// NewWithdrawalSolver creates a solver with the given bounds.
func NewWithdrawalSolver(taxCalc *BracketTaxCalculator, tolerance decimal.Decimal, maxIterations int) *WithdrawalSolver {
	return &WithdrawalSolver{
		TaxCalc:       taxCalc,
		Tolerance:     tolerance,
		MaxIterations: maxIterations,
	}
}

// Solve grosses up netTarget given a deduction taken off the withdrawal before tax.
//
// Starting from guess = netTarget, each step taxes max(guess-deduction, 0) and moves
// the guess by the remaining shortfall. Since every marginal rate is below 1 the
// shortfall shrinks geometrically.
func (ws *WithdrawalSolver) Solve(netTarget, deduction decimal.Decimal) GrossUpResult {
	guess := netTarget
	result := GrossUpResult{Gross: guess, Tax: ws.taxOn(guess, deduction)}

	for i := 1; i <= ws.MaxIterations; i++ {
		result.Gross = guess
		result.Tax = ws.taxOn(guess, deduction)
		result.Iterations = i

		shortfall := netTarget.Sub(result.Net())
		if shortfall.Abs().LessThan(ws.Tolerance) {
			result.Converged = true
			return result
		}
		guess = guess.Add(shortfall)
	}
	return result
}

func (ws *WithdrawalSolver) taxOn(gross, deduction decimal.Decimal) decimal.Decimal {
	return ws.TaxCalc.CalculateTax(money.ClampZero(gross.Sub(deduction)))
}
