package util

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var frPrinter = message.NewPrinter(language.French)

// FormatNumber renders n with French digit grouping (spaces as thousand
// separators), matching how the dashboard displays amounts.
func FormatNumber(n int64) string {
	return frPrinter.Sprintf("%d", n)
}

// FormatKMF renders a monetary amount as Comorian francs. KMF carries no
// fractional subunit, so amounts are rounded to zero decimal places. The
// separator before the unit is a non-breaking space, matching fr-FR
// currency rendering.
func FormatKMF(amount decimal.Decimal) string {
	return FormatNumber(amount.Round(0).IntPart()) + "\u00a0KMF"
}

var frMonths = []string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// MonthLabel renders a "YYYY-MM" bucket key as a French month label,
// e.g. "2024-01" -> "janvier 2024". Malformed keys are returned as-is.
func MonthLabel(monthKey string) string {
	t, err := ParseMonthKey(monthKey)
	if err != nil {
		return monthKey
	}
	return frMonths[int(t.Month())-1] + " " + t.Format("2006")
}

// NormalizeLabel makes a display label filesystem-safe for filenames.
func NormalizeLabel(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}
