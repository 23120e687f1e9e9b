package calculation

import (
	"github.com/rpgo/rothcompare/internal/domain"
	"github.com/shopspring/decimal"
)

// baselineParams mirrors the reference scenario: a 23 year old saving 20k a year
// until 65 and spending 125k a year in retirement.
func baselineParams() domain.SimulationParameters {
	return domain.SimulationParameters{
		StartingBalance:             decimal.Zero,
		AnnualContribution:          decimal.NewFromInt(20000),
		AnnualGrowthRate:            decimal.NewFromFloat(0.05),
		CurrentAge:                  23,
		RetirementAge:               65,
		AnnualRetirementExpenses:    decimal.NewFromInt(125000),
		AnnualSocialSecurityBenefit: decimal.NewFromInt(15000),
		StandardDeduction:           decimal.NewFromInt(15000),
		AnnualGrossSalary:           decimal.NewFromInt(100000),
	}.WithDefaults()
}

// flatParams has no growth, so every balance change is a contribution or withdrawal.
func flatParams() domain.SimulationParameters {
	p := baselineParams()
	p.AnnualGrowthRate = decimal.Zero
	p.StartingBalance = decimal.NewFromInt(1000000)
	p.AnnualContribution = decimal.Zero
	p.CurrentAge = 60
	p.RetirementAge = 60
	return p
}
