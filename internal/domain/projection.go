package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind identifies which tax treatment an account follows.
type AccountKind string

const (
	AccountTraditional AccountKind = "traditional" // pre-tax, taxed on withdrawal
	AccountRoth        AccountKind = "roth"        // post-tax, exempt on withdrawal
)

// Phase is the lifecycle stage of a simulated year.
type Phase string

const (
	PhaseAccumulation Phase = "accumulation"
	PhaseRetirement   Phase = "retirement" // the retirement-age year: growth only
	PhaseDistribution Phase = "distribution"
)

// PhaseForAge classifies a year relative to the retirement age.
func PhaseForAge(age, retirementAge int) Phase {
	switch {
	case age < retirementAge:
		return PhaseAccumulation
	case age > retirementAge:
		return PhaseDistribution
	default:
		return PhaseRetirement
	}
}

// YearRecord is the end-of-year state of one account.
type YearRecord struct {
	Age           int             `json:"age"`
	CalendarYear  int             `json:"calendar_year,omitempty"`
	Phase         Phase           `json:"phase"`
	EndingBalance decimal.Decimal `json:"ending_balance"`
	Withdrawal    decimal.Decimal `json:"withdrawal"`
	TaxPaid       decimal.Decimal `json:"tax_paid"`

	// SolverConverged is false only when the gross-up solver hit its iteration bound.
	SolverConverged bool `json:"solver_converged"`
}

// IsDepleted returns true if the account is empty or overdrawn.
func (r YearRecord) IsDepleted() bool {
	return r.EndingBalance.LessThanOrEqual(decimal.Zero)
}

// AccountSummary aggregates a record sequence.
type AccountSummary struct {
	Years            int             `json:"years"`
	FinalBalance     decimal.Decimal `json:"final_balance"`
	PeakBalance      decimal.Decimal `json:"peak_balance"`
	PeakAge          int             `json:"peak_age"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	TotalTaxPaid     decimal.Decimal `json:"total_tax_paid"`
	DepletionAge     int             `json:"depletion_age,omitempty"` // 0 if the account lasted
	UnconvergedYears int             `json:"unconverged_years,omitempty"`
}

// AccountProjection is the full result for one account.
type AccountProjection struct {
	Account AccountKind    `json:"account"`
	Records []YearRecord   `json:"records"`
	Summary AccountSummary `json:"summary"`
}

// NewAccountProjection wraps a record sequence and computes its summary.
func NewAccountProjection(kind AccountKind, records []YearRecord) AccountProjection {
	return AccountProjection{
		Account: kind,
		Records: records,
		Summary: Summarize(records),
	}
}

// Summarize computes totals, the peak balance and the depletion age.
func Summarize(records []YearRecord) AccountSummary {
	var s AccountSummary
	s.Years = len(records)
	for i, r := range records {
		s.TotalWithdrawals = s.TotalWithdrawals.Add(r.Withdrawal)
		s.TotalTaxPaid = s.TotalTaxPaid.Add(r.TaxPaid)
		if i == 0 || r.EndingBalance.GreaterThan(s.PeakBalance) {
			s.PeakBalance = r.EndingBalance
			s.PeakAge = r.Age
		}
		if !r.SolverConverged {
			s.UnconvergedYears++
		}
		if r.IsDepleted() && s.DepletionAge == 0 {
			s.DepletionAge = r.Age
		}
	}
	if len(records) > 0 {
		s.FinalBalance = records[len(records)-1].EndingBalance
	}
	return s
}

// Comparison holds both account projections produced from one parameter set.
type Comparison struct {
	Parameters  SimulationParameters `json:"parameters"`
	TaxBrackets []TaxBracket         `json:"tax_brackets"`
	Traditional AccountProjection    `json:"traditional"`
	Roth        AccountProjection    `json:"roth"`
	Assumptions []string             `json:"assumptions"`
}

// Projections returns both accounts in display order.
func (c *Comparison) Projections() []AccountProjection {
	return []AccountProjection{c.Traditional, c.Roth}
}
