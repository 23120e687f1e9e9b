package output

import (
	"encoding/json"

	"github.com/rpgo/rothcompare/internal/domain"
	money "github.com/rpgo/rothcompare/pkg/decimal"
)

// JSONFormatter serializes the comparison as pretty-printed JSON, with every
// record amount rounded to cents.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(results *domain.Comparison) ([]byte, error) {
	rounded := *results
	rounded.Traditional = roundProjection(results.Traditional)
	rounded.Roth = roundProjection(results.Roth)
	return json.MarshalIndent(rounded, "", "  ")
}

func roundProjection(p domain.AccountProjection) domain.AccountProjection {
	records := make([]domain.YearRecord, len(p.Records))
	for i, r := range p.Records {
		r.EndingBalance = money.RoundCents(r.EndingBalance)
		r.Withdrawal = money.RoundCents(r.Withdrawal)
		r.TaxPaid = money.RoundCents(r.TaxPaid)
		records[i] = r
	}
	s := p.Summary
	s.FinalBalance = money.RoundCents(s.FinalBalance)
	s.PeakBalance = money.RoundCents(s.PeakBalance)
	s.TotalWithdrawals = money.RoundCents(s.TotalWithdrawals)
	s.TotalTaxPaid = money.RoundCents(s.TotalTaxPaid)
	return domain.AccountProjection{Account: p.Account, Records: records, Summary: s}
}
