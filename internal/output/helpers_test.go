package output

import (
	"context"
	"testing"
	"time"

	"github.com/rpgo/rothcompare/internal/calculation"
	"github.com/rpgo/rothcompare/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// smallComparison runs a five-year, zero-growth scenario whose rows are easy to
// check by hand: both accounts run dry at 67.
func smallComparison(t *testing.T) *domain.Comparison {
	t.Helper()
	params := domain.SimulationParameters{
		StartingBalance:             decimal.NewFromInt(1000),
		AnnualContribution:          decimal.NewFromInt(100),
		AnnualGrowthRate:            decimal.Zero,
		CurrentAge:                  63,
		RetirementAge:               64,
		AnnualRetirementExpenses:    decimal.NewFromInt(500),
		AnnualSocialSecurityBenefit: decimal.Zero,
		StandardDeduction:           decimal.NewFromInt(10000),
		AnnualGrossSalary:           decimal.NewFromInt(10000),
		MaxAge:                      70,
	}
	results, err := calculation.NewCalculationEngine().RunComparison(context.Background(), params)
	require.NoError(t, err)
	return results
}

// referenceComparison is the 23-to-110 reference scenario.
func referenceComparison(t *testing.T) *domain.Comparison {
	t.Helper()
	birth := time.Date(2002, time.March, 1, 0, 0, 0, 0, time.UTC)
	params := domain.SimulationParameters{
		AnnualContribution:          decimal.NewFromInt(20000),
		AnnualGrowthRate:            decimal.NewFromFloat(0.05),
		CurrentAge:                  23,
		RetirementAge:               65,
		AnnualRetirementExpenses:    decimal.NewFromInt(125000),
		AnnualSocialSecurityBenefit: decimal.NewFromInt(15000),
		StandardDeduction:           decimal.NewFromInt(15000),
		AnnualGrossSalary:           decimal.NewFromInt(100000),
		BirthDate:                   &birth,
	}
	results, err := calculation.NewCalculationEngine().RunComparison(context.Background(), params)
	require.NoError(t, err)
	return results
}

// fixClock pins output file timestamps for the duration of a test.
func fixClock(t *testing.T) {
	t.Helper()
	previous := Clock
	Clock = func() time.Time { return time.Date(2025, time.June, 1, 9, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { Clock = previous })
}
