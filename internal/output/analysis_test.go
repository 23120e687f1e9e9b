package output

import (
	"testing"

	"github.com/rpgo/rothcompare/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeComparison(t *testing.T) {
	summary := func(final int64, depletion int, tax int64) domain.AccountSummary {
		return domain.AccountSummary{
			FinalBalance: decimal.NewFromInt(final),
			DepletionAge: depletion,
			TotalTaxPaid: decimal.NewFromInt(tax),
		}
	}

	tests := []struct {
		name        string
		trad, roth  domain.AccountSummary
		wantAccount domain.AccountKind
		wantReason  string
	}{
		{
			name:        "Roth depletes, traditional lasts",
			trad:        summary(100, 0, 5000),
			roth:        summary(-10, 90, 3000),
			wantAccount: domain.AccountTraditional,
			wantReason:  "Roth runs out first",
		},
		{
			name:        "Traditional depletes, Roth lasts",
			trad:        summary(-10, 88, 5000),
			roth:        summary(500, 0, 3000),
			wantAccount: domain.AccountRoth,
			wantReason:  "traditional runs out first",
		},
		{
			name:        "Both deplete, Roth later",
			trad:        summary(-10, 80, 5000),
			roth:        summary(-20, 85, 3000),
			wantAccount: domain.AccountRoth,
			wantReason:  "lasts longer",
		},
		{
			name:        "Neither depletes, traditional larger",
			trad:        summary(900, 0, 5000),
			roth:        summary(800, 0, 3000),
			wantAccount: domain.AccountTraditional,
			wantReason:  "larger final balance",
		},
		{
			name:       "Level",
			trad:       summary(800, 0, 5000),
			roth:       summary(800, 0, 3000),
			wantReason: "accounts finish level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := &domain.Comparison{
				Traditional: domain.AccountProjection{Account: domain.AccountTraditional, Summary: tt.trad},
				Roth:        domain.AccountProjection{Account: domain.AccountRoth, Summary: tt.roth},
			}
			rec := AnalyzeComparison(results)
			assert.Equal(t, tt.wantAccount, rec.Account)
			assert.Equal(t, tt.wantReason, rec.Reason)
			assert.True(t, rec.TaxDifference.Equal(decimal.NewFromInt(2000)))
		})
	}
}

func TestAnalyzeComparison_SmallScenario(t *testing.T) {
	rec := AnalyzeComparison(smallComparison(t))

	// both run dry at 67; traditional ends 10 dollars less overdrawn
	assert.Equal(t, domain.AccountTraditional, rec.Account)
	assert.Equal(t, "10.00", rec.FinalBalanceDifference.StringFixed(2))
	assert.Equal(t, "-1000.00", rec.TaxDifference.StringFixed(2))
}
