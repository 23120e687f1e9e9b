package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/rothcompare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"console", "console"},
		{"TABLE", "console"},
		{"text", "console"},
		{"lite", "summary"},
		{"detailed-csv", "csv"},
		{" csv-summary ", "csv-summary"},
		{"json-pretty", "json"},
		{"chart", "pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := GetFormatterByName(tt.input)
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("html"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.ElementsMatch(t, []string{"console", "summary", "csv", "csv-summary", "json", "pdf"}, names)
	assert.Contains(t, AvailableFormatAliases(), "chart")
}

func TestRender_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, smallComparison(t), "html")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "console")
	assert.Zero(t, buf.Len())
}

func TestConsoleFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, referenceComparison(t), "console"))

	out := buf.String()
	assert.Contains(t, out, "KEY ASSUMPTIONS:")
	assert.Contains(t, out, "Traditional 401(k):")
	assert.Contains(t, out, "Roth IRA:")
	assert.Contains(t, out, "$130,588.15")
	assert.Contains(t, out, "$110,000.00")
	assert.Contains(t, out, "Result: ")
	// header plus one row per age from 23 through 109
	table := out[strings.Index(out, "YEAR BY YEAR"):]
	assert.Equal(t, 1+1+1+87, strings.Count(table, "\n"))
}

func TestConsoleFormatter_UnevenLengths(t *testing.T) {
	results := smallComparison(t)
	results.Roth.Records = results.Roth.Records[:2]

	data, err := ConsoleFormatter{}.Format(results)
	require.NoError(t, err)
	// summaries are untouched; only the traditional table row shows 67
	assert.Equal(t, 2, strings.Count(string(data), "-$400.00"))
	assert.Equal(t, 1, strings.Count(string(data), "-$410.00"))
}

func TestConsoleSummaryFormatter(t *testing.T) {
	data, err := ConsoleSummaryFormatter{}.Format(smallComparison(t))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Depleted At Age:    67")
	assert.Contains(t, out, "Total Tax Paid:     $1,000.00")
	assert.NotContains(t, out, "YEAR BY YEAR")
}

func TestJSONFormatter_RoundsAmounts(t *testing.T) {
	data, err := JSONFormatter{}.Format(referenceComparison(t))
	require.NoError(t, err)

	var decoded domain.Comparison
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Traditional.Records, 87)
	require.Len(t, decoded.Roth.Records, 87)

	for _, proj := range decoded.Projections() {
		for _, r := range proj.Records {
			assert.True(t, r.EndingBalance.Equal(r.EndingBalance.Round(2)), "age %d balance %s", r.Age, r.EndingBalance)
		}
	}
	assert.Equal(t, "17448.06", decoded.Roth.Records[0].EndingBalance.StringFixed(2))
	assert.Equal(t, 2025, decoded.Roth.Records[0].CalendarYear)
}

func TestJSONFormatter_DoesNotMutateInput(t *testing.T) {
	results := referenceComparison(t)
	before := results.Traditional.Records[1].EndingBalance

	_, err := JSONFormatter{}.Format(results)
	require.NoError(t, err)
	assert.True(t, before.Equal(results.Traditional.Records[1].EndingBalance))
}

func TestPDFChartFormatter(t *testing.T) {
	fixClock(t)
	data, err := PDFChartFormatter{}.Format(referenceComparison(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPDFChartFormatter_EmptyProjection(t *testing.T) {
	fixClock(t)
	data, err := PDFChartFormatter{}.Format(&domain.Comparison{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGenerateReport(t *testing.T) {
	fixClock(t)
	dir := t.TempDir()

	files, err := GenerateReport(smallComparison(t), "detailed-csv", dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "roth_comparison_csv_20250601_093000.csv"), files[0])

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Account,Age,"))
}

func TestGenerateReport_All(t *testing.T) {
	fixClock(t)
	dir := t.TempDir()

	files, err := GenerateReport(smallComparison(t), "all", dir)
	require.NoError(t, err)
	require.Len(t, files, 4)

	var bases []string
	for _, f := range files {
		_, err := os.Stat(f)
		require.NoError(t, err)
		bases = append(bases, filepath.Base(f))
	}
	assert.Equal(t, []string{
		"roth_comparison_csv_20250601_093000.csv",
		"roth_comparison_csv-summary_20250601_093000.csv",
		"roth_comparison_json_20250601_093000.json",
		"roth_comparison_pdf_20250601_093000.pdf",
	}, bases)
}

func TestGenerateReport_UnsupportedFormat(t *testing.T) {
	_, err := GenerateReport(smallComparison(t), "xlsx", t.TempDir())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
