package calculation

import (
	"github.com/rpgo/rothcompare/internal/domain"
	money "github.com/rpgo/rothcompare/pkg/decimal"
	"github.com/shopspring/decimal"
)

// PostTaxSimulator projects a Roth (tax-exempt) account. Contributions are reduced
// by the effective tax rate on salary; withdrawals are untaxed.
type PostTaxSimulator struct {
	TaxCalc *BracketTaxCalculator
	Logger  Logger
}

// NewPostTaxSimulator creates a simulator around a tax calculator.
func NewPostTaxSimulator(taxCalc *BracketTaxCalculator, logger Logger) *PostTaxSimulator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &PostTaxSimulator{TaxCalc: taxCalc, Logger: logger}
}

// ContributionAfterTax returns the contribution left after the salary haircut and
// the salary tax that produced it. Salary must be positive.
//
// The haircut is the overall effective rate on gross salary (no deduction), not
// the tax attributable to the contributed dollars.
func (s *PostTaxSimulator) ContributionAfterTax(contribution, salary decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	salaryTax := s.TaxCalc.CalculateTax(salary)
	haircut := salaryTax.Div(salary)
	return contribution.Sub(contribution.Mul(haircut)), salaryTax
}

// Simulate runs one year at a time from CurrentAge until MaxAge or until the
// balance reaches zero. The depleting year is always recorded.
func (s *PostTaxSimulator) Simulate(params domain.SimulationParameters) []domain.YearRecord {
	balance := params.StartingBalance
	growth := money.GrowthFactor(params.AnnualGrowthRate)
	records := make([]domain.YearRecord, 0, params.MaxAge-params.CurrentAge)

	for age := params.CurrentAge; age < params.MaxAge; age++ {
		record := newYearRecord(params, age)

		if record.Phase == domain.PhaseAccumulation {
			contribution, salaryTax := s.ContributionAfterTax(params.AnnualContribution, params.AnnualGrossSalary)
			balance = balance.Add(contribution)
			record.TaxPaid = salaryTax
		}
		balance = balance.Mul(growth)

		if record.Phase == domain.PhaseDistribution {
			record.Withdrawal = money.RoundCents(RetirementNeed(params, age))
			balance = money.RoundCents(balance.Sub(record.Withdrawal))
		}

		record.EndingBalance = balance
		records = append(records, record)
		s.Logger.Debugf("roth age=%d phase=%s balance=%s withdrawal=%s tax=%s",
			age, record.Phase, balance.StringFixed(2), record.Withdrawal.StringFixed(2), record.TaxPaid.StringFixed(2))

		if record.IsDepleted() {
			s.Logger.Infof("roth account depleted at age %d", age)
			break
		}
	}
	return records
}
