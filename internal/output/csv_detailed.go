package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/rothcompare/internal/domain"
)

// CSVDetailedExporter writes one row per account per simulated year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(results *domain.Comparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Account", "Age", "CalendarYear", "Phase", "EndingBalance", "Withdrawal", "TaxPaid", "SolverConverged"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, proj := range results.Projections() {
		for _, yr := range proj.Records {
			row := []string{
				string(proj.Account),
				intToString(yr.Age),
				calendarYearString(yr.CalendarYear),
				string(yr.Phase),
				yr.EndingBalance.StringFixed(2),
				yr.Withdrawal.StringFixed(2),
				yr.TaxPaid.StringFixed(2),
				boolToString(yr.SolverConverged),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
