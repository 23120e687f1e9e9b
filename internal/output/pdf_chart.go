package output

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/rothcompare/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	chartPageWidth  = 297.0
	chartMarginLeft = 28.0
	chartMarginTop  = 28.0
	chartWidth      = chartPageWidth - chartMarginLeft - 15.0
	chartHeight     = 120.0
	chartGridLines  = 5
)

type rgb struct{ r, g, b int }

// chartSeries is one polyline on the chart.
type chartSeries struct {
	label  string
	color  rgb
	dashed bool
	points []chartPoint
}

type chartPoint struct {
	age   int
	value float64
}

// PDFChartFormatter draws balances, withdrawals and taxes for both accounts
// against age, followed by a summary table.
type PDFChartFormatter struct{}

func (p PDFChartFormatter) Name() string      { return "pdf" }
func (p PDFChartFormatter) Extension() string { return "pdf" }

func (p PDFChartFormatter) Format(results *domain.Comparison) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(chartMarginLeft, chartMarginTop, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle("Traditional 401(k) vs Roth IRA", false)
	pdf.SetCreator("rothcompare", false)
	pdf.SetCreationDate(Clock())

	series := buildSeries(results)

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(chartWidth, 10, "Traditional 401(k) vs Roth IRA", "", 1, "C", false, 0, "")
	drawChart(pdf, series)
	drawLegend(pdf, series)

	pdf.AddPage()
	drawSummaryTable(pdf, results)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildSeries(results *domain.Comparison) []chartSeries {
	pick := func(records []domain.YearRecord, field func(domain.YearRecord) decimal.Decimal) []chartPoint {
		points := make([]chartPoint, len(records))
		for i, r := range records {
			points[i] = chartPoint{age: r.Age, value: field(r).InexactFloat64()}
		}
		return points
	}
	balance := func(r domain.YearRecord) decimal.Decimal { return r.EndingBalance }
	withdrawal := func(r domain.YearRecord) decimal.Decimal { return r.Withdrawal }
	tax := func(r domain.YearRecord) decimal.Decimal { return r.TaxPaid }

	trad := results.Traditional.Records
	roth := results.Roth.Records
	return []chartSeries{
		{label: "Traditional balance", color: rgb{0, 51, 102}, points: pick(trad, balance)},
		{label: "Roth balance", color: rgb{200, 80, 0}, points: pick(roth, balance)},
		{label: "Traditional withdrawal", color: rgb{60, 120, 200}, dashed: true, points: pick(trad, withdrawal)},
		{label: "Roth withdrawal", color: rgb{240, 150, 60}, dashed: true, points: pick(roth, withdrawal)},
		{label: "Traditional tax", color: rgb{120, 120, 120}, points: pick(trad, tax)},
		{label: "Roth tax", color: rgb{0, 140, 70}, points: pick(roth, tax)},
	}
}

// chartBounds returns the age and value ranges covered by every series. The
// value range always includes zero.
func chartBounds(series []chartSeries) (minAge, maxAge int, minVal, maxVal float64) {
	minAge, maxAge = math.MaxInt, math.MinInt
	for _, s := range series {
		for _, pt := range s.points {
			minAge = min(minAge, pt.age)
			maxAge = max(maxAge, pt.age)
			minVal = math.Min(minVal, pt.value)
			maxVal = math.Max(maxVal, pt.value)
		}
	}
	if minAge > maxAge {
		minAge, maxAge = 0, 1
	}
	if maxAge == minAge {
		maxAge++
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}
	return minAge, maxAge, minVal, maxVal
}

func drawChart(pdf *fpdf.Fpdf, series []chartSeries) {
	minAge, maxAge, minVal, maxVal := chartBounds(series)
	top := pdf.GetY() + 4
	bottom := top + chartHeight
	left := chartMarginLeft
	right := left + chartWidth

	x := func(age int) float64 {
		return left + float64(age-minAge)/float64(maxAge-minAge)*chartWidth
	}
	y := func(v float64) float64 {
		return bottom - (v-minVal)/(maxVal-minVal)*chartHeight
	}

	// grid and value labels
	pdf.SetFont("Arial", "", 7)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetLineWidth(0.1)
	pdf.SetDrawColor(220, 220, 220)
	for i := 0; i <= chartGridLines; i++ {
		v := minVal + (maxVal-minVal)*float64(i)/chartGridLines
		gy := y(v)
		pdf.Line(left, gy, right, gy)
		pdf.SetXY(left-26, gy-2)
		pdf.CellFormat(24, 4, FormatCurrency(decimal.NewFromFloat(v).Round(0)), "", 0, "R", false, 0, "")
	}

	// age ticks
	step := max((maxAge-minAge)/10, 1)
	for age := minAge; age <= maxAge; age += step {
		pdf.Line(x(age), bottom, x(age), bottom+1.5)
		pdf.SetXY(x(age)-5, bottom+2)
		pdf.CellFormat(10, 4, intToString(age), "", 0, "C", false, 0, "")
	}
	pdf.SetXY(left, bottom+7)
	pdf.CellFormat(chartWidth, 4, "Age", "", 1, "C", false, 0, "")

	// axes
	pdf.SetLineWidth(0.3)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(left, top, left, bottom)
	pdf.Line(left, y(0), right, y(0))

	pdf.SetLineWidth(0.5)
	for _, s := range series {
		pdf.SetDrawColor(s.color.r, s.color.g, s.color.b)
		if s.dashed {
			pdf.SetDashPattern([]float64{1.5, 1}, 0)
		} else {
			pdf.SetDashPattern([]float64{}, 0)
		}
		for i := 1; i < len(s.points); i++ {
			a, b := s.points[i-1], s.points[i]
			pdf.Line(x(a.age), y(a.value), x(b.age), y(b.value))
		}
	}
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetY(bottom + 14)
}

func drawLegend(pdf *fpdf.Fpdf, series []chartSeries) {
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(50, 50, 50)
	colWidth := chartWidth / 3
	for i, s := range series {
		col := i % 3
		if col == 0 && i > 0 {
			pdf.Ln(6)
		}
		lx := chartMarginLeft + float64(col)*colWidth
		ly := pdf.GetY() + 2
		pdf.SetFillColor(s.color.r, s.color.g, s.color.b)
		pdf.Rect(lx, ly, 6, 2, "F")
		pdf.SetXY(lx+8, ly-1)
		pdf.CellFormat(colWidth-8, 4, s.label, "", 0, "L", false, 0, "")
		pdf.SetY(ly - 2)
	}
	pdf.Ln(8)
}

func drawSummaryTable(pdf *fpdf.Fpdf, results *domain.Comparison) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(chartWidth, 10, "Account Summary", "", 1, "L", false, 0, "")

	headers := []string{"Account", "Final Balance", "Peak Balance", "Total Withdrawals", "Total Tax Paid", "Depleted At"}
	widths := []float64{50, 40, 40, 40, 40, 30}

	pdf.SetFillColor(0, 51, 102)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 6, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFillColor(250, 250, 250)
	pdf.SetTextColor(50, 50, 50)
	pdf.SetFont("Arial", "", 9)
	for _, proj := range results.Projections() {
		s := proj.Summary
		depleted := "-"
		if s.DepletionAge > 0 {
			depleted = fmt.Sprintf("age %d", s.DepletionAge)
		}
		cells := []string{
			accountLabel(proj.Account),
			FormatCurrency(s.FinalBalance),
			FormatCurrency(s.PeakBalance),
			FormatCurrency(s.TotalWithdrawals),
			FormatCurrency(s.TotalTaxPaid),
			depleted,
		}
		for i, c := range cells {
			align := "L"
			if i > 0 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 5, c, "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(chartWidth, 8, "Key Assumptions", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(50, 50, 50)
	for _, a := range results.Assumptions {
		pdf.MultiCell(chartWidth, 5, "- "+a, "", "L", false)
	}
}
