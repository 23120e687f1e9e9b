package decimal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// RoundCents rounds an amount to cents using banker's rounding.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// Max returns the larger of two amounts.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// ClampZero floors an amount at zero.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	return Max(d, decimal.Zero)
}

// GrowthFactor returns 1 + rate.
func GrowthFactor(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate)
}

// FormatCurrency formats an amount as grouped US dollars, e.g. -$1,234.50.
func FormatCurrency(d decimal.Decimal) string {
	rounded := d.Round(2)
	if rounded.IsNegative() {
		return "-$" + printer.Sprintf("%.2f", rounded.Neg().InexactFloat64())
	}
	return "$" + printer.Sprintf("%.2f", rounded.InexactFloat64())
}

// FormatPercent formats a fractional rate as a percentage, e.g. 0.22 -> 22.00%.
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
