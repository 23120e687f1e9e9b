package calculation

import (
	"github.com/rpgo/rothcompare/internal/domain"
	money "github.com/rpgo/rothcompare/pkg/decimal"
)

// PreTaxSimulator projects a traditional (tax-deferred) account. Contributions go in
// untaxed; every retirement withdrawal is grossed up so the net covers expenses.
type PreTaxSimulator struct {
	Solver *WithdrawalSolver
	Logger Logger
}

// NewPreTaxSimulator creates a simulator around a withdrawal solver.
func NewPreTaxSimulator(solver *WithdrawalSolver, logger Logger) *PreTaxSimulator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &PreTaxSimulator{Solver: solver, Logger: logger}
}

// Simulate runs one year at a time from CurrentAge until MaxAge or until the
// balance reaches zero. The depleting year is always recorded.
func (s *PreTaxSimulator) Simulate(params domain.SimulationParameters) []domain.YearRecord {
	balance := params.StartingBalance
	growth := money.GrowthFactor(params.AnnualGrowthRate)
	records := make([]domain.YearRecord, 0, params.MaxAge-params.CurrentAge)

	for age := params.CurrentAge; age < params.MaxAge; age++ {
		record := newYearRecord(params, age)

		if record.Phase == domain.PhaseAccumulation {
			balance = balance.Add(params.AnnualContribution)
		}
		balance = balance.Mul(growth) // growth before withdrawal

		if record.Phase == domain.PhaseDistribution {
			netNeeded := RetirementNeed(params, age)
			result := s.Solver.Solve(netNeeded, params.StandardDeduction)
			if !result.Converged {
				s.Logger.Warnf("traditional: gross-up for age %d did not converge after %d iterations (gross %s, net %s, target %s)",
					age, result.Iterations, result.Gross.StringFixed(2), result.Net().StringFixed(2), netNeeded.StringFixed(2))
			}
			record.Withdrawal = money.RoundCents(result.Gross)
			record.TaxPaid = money.RoundCents(result.Tax)
			record.SolverConverged = result.Converged
			balance = money.RoundCents(balance.Sub(record.Withdrawal))
		}

		record.EndingBalance = balance
		records = append(records, record)
		s.Logger.Debugf("traditional age=%d phase=%s balance=%s withdrawal=%s tax=%s",
			age, record.Phase, balance.StringFixed(2), record.Withdrawal.StringFixed(2), record.TaxPaid.StringFixed(2))

		if record.IsDepleted() {
			s.Logger.Infof("traditional account depleted at age %d", age)
			break
		}
	}
	return records
}
