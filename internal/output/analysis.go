package output

import (
	"github.com/rpgo/rothcompare/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates which account type came out ahead.
type Recommendation struct {
	Account                domain.AccountKind // empty when both finish level
	Reason                 string
	FinalBalanceDifference decimal.Decimal // traditional minus Roth
	TaxDifference          decimal.Decimal // traditional minus Roth, lifetime
}

// AnalyzeComparison picks the account that lasts longer, then the one with the
// larger final balance.
func AnalyzeComparison(results *domain.Comparison) Recommendation {
	trad := results.Traditional.Summary
	roth := results.Roth.Summary
	rec := Recommendation{
		FinalBalanceDifference: trad.FinalBalance.Sub(roth.FinalBalance),
		TaxDifference:          trad.TotalTaxPaid.Sub(roth.TotalTaxPaid),
	}

	switch {
	case trad.DepletionAge == 0 && roth.DepletionAge != 0:
		rec.Account, rec.Reason = domain.AccountTraditional, "Roth runs out first"
	case roth.DepletionAge == 0 && trad.DepletionAge != 0:
		rec.Account, rec.Reason = domain.AccountRoth, "traditional runs out first"
	case trad.DepletionAge != roth.DepletionAge:
		if trad.DepletionAge > roth.DepletionAge {
			rec.Account, rec.Reason = domain.AccountTraditional, "lasts longer"
		} else {
			rec.Account, rec.Reason = domain.AccountRoth, "lasts longer"
		}
	case rec.FinalBalanceDifference.IsPositive():
		rec.Account, rec.Reason = domain.AccountTraditional, "larger final balance"
	case rec.FinalBalanceDifference.IsNegative():
		rec.Account, rec.Reason = domain.AccountRoth, "larger final balance"
	default:
		rec.Reason = "accounts finish level"
	}
	return rec
}
