package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/rothcompare/internal/domain"
	money "github.com/rpgo/rothcompare/pkg/decimal"
	"github.com/rpgo/rothcompare/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// CalculationEngine runs the traditional and Roth projections side by side.
type CalculationEngine struct {
	TaxCalc *BracketTaxCalculator
	Logger  Logger
}

// NewCalculationEngine creates an engine using the 2025 MFS brackets.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxCalc: NewDefaultTaxCalculator(),
		Logger:  NopLogger{},
	}
}

// NewCalculationEngineWithBrackets creates an engine over a custom bracket table.
func NewCalculationEngineWithBrackets(brackets []domain.TaxBracket) (*CalculationEngine, error) {
	taxCalc, err := NewBracketTaxCalculator(brackets)
	if err != nil {
		return nil, err
	}
	return &CalculationEngine{TaxCalc: taxCalc, Logger: NopLogger{}}, nil
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// NewSolver builds a withdrawal solver bound by the run's solver settings.
func (ce *CalculationEngine) NewSolver(params domain.SimulationParameters) *WithdrawalSolver {
	params = params.WithDefaults()
	return NewWithdrawalSolver(ce.TaxCalc, params.Solver.Tolerance, params.Solver.MaxIterations)
}

// RunComparison projects both accounts from the same parameters. The returned
// record sequences are exactly what the simulators produced.
func (ce *CalculationEngine) RunComparison(ctx context.Context, params domain.SimulationParameters) (*domain.Comparison, error) {
	params = params.WithDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ce.Logger.Infof("projecting ages %d-%d, %d years until retirement at %d",
		params.CurrentAge, params.MaxAge-1, max(params.RetirementAge-params.CurrentAge, 0), params.RetirementAge)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("comparison cancelled: %w", err)
	}
	preTax := NewPreTaxSimulator(ce.NewSolver(params), ce.Logger)
	traditional := domain.NewAccountProjection(domain.AccountTraditional, preTax.Simulate(params))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("comparison cancelled: %w", err)
	}
	postTax := NewPostTaxSimulator(ce.TaxCalc, ce.Logger)
	roth := domain.NewAccountProjection(domain.AccountRoth, postTax.Simulate(params))

	if traditional.Summary.UnconvergedYears > 0 {
		ce.Logger.Warnf("%d traditional withdrawals are approximate (solver iteration limit %d)",
			traditional.Summary.UnconvergedYears, params.Solver.MaxIterations)
	}

	return &domain.Comparison{
		Parameters:  params,
		TaxBrackets: ce.TaxCalc.Brackets,
		Traditional: traditional,
		Roth:        roth,
		Assumptions: params.GenerateAssumptions(),
	}, nil
}

// newYearRecord starts a record for the given age.
func newYearRecord(params domain.SimulationParameters, age int) domain.YearRecord {
	record := domain.YearRecord{
		Age:             age,
		Phase:           domain.PhaseForAge(age, params.RetirementAge),
		SolverConverged: true,
	}
	if params.BirthDate != nil {
		record.CalendarYear = dateutil.CalendarYearAtAge(*params.BirthDate, age)
	}
	return record
}

// socialSecurityIncome returns the benefit received at age, which starts the year
// after SocialSecurityAge.
func socialSecurityIncome(params domain.SimulationParameters, age int) decimal.Decimal {
	if age > params.SocialSecurityAge {
		return params.AnnualSocialSecurityBenefit
	}
	return decimal.Zero
}

// RetirementNeed is the after-tax amount an account must supply at age:
// expenses less any Social Security, floored at zero.
func RetirementNeed(params domain.SimulationParameters, age int) decimal.Decimal {
	return money.ClampZero(params.AnnualRetirementExpenses.Sub(socialSecurityIncome(params, age)))
}
