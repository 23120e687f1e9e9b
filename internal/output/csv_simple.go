package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/rothcompare/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per account).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv-summary" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.Comparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Account", "Years", "FinalBalance", "PeakBalance", "PeakAge", "TotalWithdrawals", "TotalTaxPaid", "DepletionAge", "UnconvergedYears"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, proj := range results.Projections() {
		s := proj.Summary
		row := []string{
			string(proj.Account),
			intToString(s.Years),
			s.FinalBalance.StringFixed(2),
			s.PeakBalance.StringFixed(2),
			intToString(s.PeakAge),
			s.TotalWithdrawals.StringFixed(2),
			s.TotalTaxPaid.StringFixed(2),
			intToString(s.DepletionAge),
			intToString(s.UnconvergedYears),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
