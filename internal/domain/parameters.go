package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidParameters is returned when a parameter set cannot drive a projection.
var ErrInvalidParameters = errors.New("invalid simulation parameters")

// Default values applied when a configuration leaves a field unset.
const (
	DefaultSocialSecurityAge   = 65
	DefaultMaxAge              = 110
	DefaultSolverMaxIterations = 100
)

// DefaultSolverTolerance is the net-amount tolerance of the gross-up solver (one cent).
var DefaultSolverTolerance = decimal.NewFromFloat(0.01)

// TaxBracket represents a single band of a progressive tax schedule.
// The final bracket of a table leaves Max unset to mean "no upper bound".
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max,omitempty" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the bracket has no upper limit.
func (b TaxBracket) Unbounded() bool {
	return b.Max.IsZero()
}

// SolverSettings bounds the gross-up solver.
type SolverSettings struct {
	Tolerance     decimal.Decimal `yaml:"tolerance" json:"tolerance"`
	MaxIterations int             `yaml:"max_iterations" json:"max_iterations"`
}

// SimulationParameters is the immutable input of a single projection run.
// The same values drive both the traditional and the Roth account.
type SimulationParameters struct {
	StartingBalance             decimal.Decimal `yaml:"starting_balance" json:"starting_balance"`
	AnnualContribution          decimal.Decimal `yaml:"annual_contribution" json:"annual_contribution"`
	AnnualGrowthRate            decimal.Decimal `yaml:"annual_growth_rate" json:"annual_growth_rate"`
	CurrentAge                  int             `yaml:"current_age" json:"current_age"`
	RetirementAge               int             `yaml:"retirement_age" json:"retirement_age"`
	AnnualRetirementExpenses    decimal.Decimal `yaml:"annual_retirement_expenses" json:"annual_retirement_expenses"`
	AnnualSocialSecurityBenefit decimal.Decimal `yaml:"annual_social_security_benefit" json:"annual_social_security_benefit"`
	SocialSecurityAge           int             `yaml:"social_security_age" json:"social_security_age"`
	StandardDeduction           decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	AnnualGrossSalary           decimal.Decimal `yaml:"annual_gross_salary" json:"annual_gross_salary"` // Roth contribution haircut only
	MaxAge                      int             `yaml:"max_age" json:"max_age"`

	// BirthDate is optional; when present records carry calendar years.
	BirthDate *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`

	Solver SolverSettings `yaml:"solver" json:"solver"`
}

// WithDefaults returns a copy with unset optional fields filled in.
func (p SimulationParameters) WithDefaults() SimulationParameters {
	if p.SocialSecurityAge == 0 {
		p.SocialSecurityAge = DefaultSocialSecurityAge
	}
	if p.MaxAge == 0 {
		p.MaxAge = DefaultMaxAge
	}
	if p.Solver.Tolerance.IsZero() {
		p.Solver.Tolerance = DefaultSolverTolerance
	}
	if p.Solver.MaxIterations == 0 {
		p.Solver.MaxIterations = DefaultSolverMaxIterations
	}
	return p
}

// Validate checks the invariants the simulators rely on.
func (p SimulationParameters) Validate() error {
	switch {
	case p.CurrentAge < 0:
		return fmt.Errorf("%w: current age cannot be negative", ErrInvalidParameters)
	case p.RetirementAge < 0:
		return fmt.Errorf("%w: retirement age cannot be negative", ErrInvalidParameters)
	case p.MaxAge <= p.CurrentAge:
		return fmt.Errorf("%w: max age (%d) must be greater than current age (%d)", ErrInvalidParameters, p.MaxAge, p.CurrentAge)
	case p.StartingBalance.IsNegative():
		return fmt.Errorf("%w: starting balance cannot be negative", ErrInvalidParameters)
	case p.AnnualContribution.IsNegative():
		return fmt.Errorf("%w: annual contribution cannot be negative", ErrInvalidParameters)
	case p.AnnualGrowthRate.LessThanOrEqual(decimal.NewFromInt(-1)):
		return fmt.Errorf("%w: growth rate must be greater than -100%%", ErrInvalidParameters)
	case p.AnnualRetirementExpenses.IsNegative():
		return fmt.Errorf("%w: retirement expenses cannot be negative", ErrInvalidParameters)
	case p.AnnualSocialSecurityBenefit.IsNegative():
		return fmt.Errorf("%w: social security benefit cannot be negative", ErrInvalidParameters)
	case p.StandardDeduction.IsNegative():
		return fmt.Errorf("%w: standard deduction cannot be negative", ErrInvalidParameters)
	case !p.AnnualGrossSalary.IsPositive():
		// the Roth haircut divides by salary
		return fmt.Errorf("%w: annual gross salary must be positive", ErrInvalidParameters)
	case !p.Solver.Tolerance.IsPositive():
		return fmt.Errorf("%w: solver tolerance must be positive", ErrInvalidParameters)
	case p.Solver.MaxIterations <= 0:
		return fmt.Errorf("%w: solver max iterations must be positive", ErrInvalidParameters)
	}
	return nil
}

// GenerateAssumptions describes the modelling assumptions behind a run.
func (p SimulationParameters) GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("Investment growth: %.2f%% annually, applied every year", p.AnnualGrowthRate.Mul(decimal.NewFromInt(100)).InexactFloat64()),
		fmt.Sprintf("Contributions stop at age %d; withdrawals start the year after", p.RetirementAge),
		fmt.Sprintf("Social Security begins after age %d", p.SocialSecurityAge),
		"Traditional withdrawals are grossed up for federal tax after the standard deduction",
		"Roth contributions are reduced by the effective federal tax rate on salary",
		"Tax brackets and deduction held constant (no inflation indexing)",
	}
}

// Configuration is the root of a YAML configuration file.
type Configuration struct {
	Parameters  SimulationParameters `yaml:"parameters" json:"parameters"`
	TaxBrackets []TaxBracket         `yaml:"tax_brackets" json:"tax_brackets"`
}
