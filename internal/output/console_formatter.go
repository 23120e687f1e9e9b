package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rpgo/rothcompare/internal/domain"
)

// ConsoleFormatter renders assumptions, account summaries and the full
// year-by-year table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.Comparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "TRADITIONAL 401(k) vs ROTH IRA PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range results.Assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeSummaries(&buf, results)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "YEAR BY YEAR")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))
	if err := writeYearTable(&buf, results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConsoleSummaryFormatter prints only the per-account summary and recommendation.
type ConsoleSummaryFormatter struct{}

func (c ConsoleSummaryFormatter) Name() string      { return "summary" }
func (c ConsoleSummaryFormatter) Extension() string { return "txt" }

func (c ConsoleSummaryFormatter) Format(results *domain.Comparison) ([]byte, error) {
	var buf bytes.Buffer
	writeSummaries(&buf, results)
	return buf.Bytes(), nil
}

func writeSummaries(buf *bytes.Buffer, results *domain.Comparison) {
	fmt.Fprintln(buf, "ACCOUNT SUMMARY")
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	for _, proj := range results.Projections() {
		s := proj.Summary
		fmt.Fprintf(buf, "%s:\n", accountLabel(proj.Account))
		fmt.Fprintf(buf, "  Final Balance:      %s (age %d)\n", FormatCurrency(s.FinalBalance), finalAge(proj))
		fmt.Fprintf(buf, "  Peak Balance:       %s (age %d)\n", FormatCurrency(s.PeakBalance), s.PeakAge)
		fmt.Fprintf(buf, "  Total Withdrawals:  %s\n", FormatCurrency(s.TotalWithdrawals))
		fmt.Fprintf(buf, "  Total Tax Paid:     %s\n", FormatCurrency(s.TotalTaxPaid))
		if s.DepletionAge > 0 {
			fmt.Fprintf(buf, "  Depleted At Age:    %d\n", s.DepletionAge)
		}
		if s.UnconvergedYears > 0 {
			fmt.Fprintf(buf, "  Approximate Years:  %d (solver iteration limit reached)\n", s.UnconvergedYears)
		}
	}

	rec := AnalyzeComparison(results)
	fmt.Fprintln(buf)
	if rec.Account == "" {
		fmt.Fprintf(buf, "Result: %s\n", rec.Reason)
		return
	}
	fmt.Fprintf(buf, "Result: %s (%s; final balance Δ %s)\n", accountLabel(rec.Account), rec.Reason, FormatCurrency(rec.FinalBalanceDifference))
}

func writeYearTable(buf *bytes.Buffer, results *domain.Comparison) error {
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Age\tTrad Balance\tTrad Withdrawal\tTrad Tax\tRoth Balance\tRoth Withdrawal\tRoth Tax\t")

	trad := results.Traditional.Records
	roth := results.Roth.Records
	for i := 0; i < max(len(trad), len(roth)); i++ {
		age := 0
		cells := make([]string, 0, 6)
		for _, records := range [][]domain.YearRecord{trad, roth} {
			if i >= len(records) {
				cells = append(cells, "", "", "")
				continue
			}
			r := records[i]
			age = r.Age
			cells = append(cells, FormatCurrency(r.EndingBalance), FormatCurrency(r.Withdrawal), FormatCurrency(r.TaxPaid))
		}
		fmt.Fprintf(tw, "%d\t%s\t\n", age, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func finalAge(proj domain.AccountProjection) int {
	if len(proj.Records) == 0 {
		return 0
	}
	return proj.Records[len(proj.Records)-1].Age
}
