package output

import (
	"strconv"

	"github.com/rpgo/rothcompare/internal/domain"
	money "github.com/rpgo/rothcompare/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as grouped USD with 2 decimals.
// Kept here so it can be reused by multiple formatters.
func FormatCurrency(amount decimal.Decimal) string { return money.FormatCurrency(amount) }

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string { return money.FormatPercent(rate) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// calendarYearString leaves the column empty when no birth date was configured.
func calendarYearString(year int) string {
	if year == 0 {
		return ""
	}
	return intToString(year)
}

// accountLabel is the display name of an account kind.
func accountLabel(kind domain.AccountKind) string {
	switch kind {
	case domain.AccountTraditional:
		return "Traditional 401(k)"
	case domain.AccountRoth:
		return "Roth IRA"
	}
	return string(kind)
}
