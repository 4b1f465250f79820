package util

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// digitsOf strips grouping separators so assertions don't depend on the
// exact separator codepoint the locale tables emit.
func digitsOf(s string) string {
	out := strings.Builder{}
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '-' {
			out.WriteRune(r)
		}
	}
	return out.String()
}

func Test_FormatNumber(t *testing.T) {
	require.Equal(t, "0", FormatNumber(0))
	require.Equal(t, "123", FormatNumber(123))

	grouped := FormatNumber(1234567)
	require.Equal(t, "1234567", digitsOf(grouped))
	// French grouping inserts a separator, so the rendering is longer
	// than the bare digits
	require.Greater(t, len(grouped), len("1234567"))
}

func Test_FormatKMF(t *testing.T) {
	// the unit is joined with a non-breaking space, as fr-FR renders currency
	require.Equal(t, "500\u00a0KMF", FormatKMF(decimal.NewFromInt(500)))
	require.True(t, strings.HasSuffix(FormatKMF(decimal.NewFromInt(500)), "\u00a0KMF"))

	// KMF has no subunit; fractional amounts round
	rounded, err := decimal.NewFromString("1250.6")
	require.NoError(t, err)
	require.Equal(t, "1251", digitsOf(strings.TrimSuffix(FormatKMF(rounded), "\u00a0KMF")))
}

func Test_MonthLabel(t *testing.T) {
	require.Equal(t, "janvier 2024", MonthLabel("2024-01"))
	require.Equal(t, "décembre 2023", MonthLabel("2023-12"))
	require.Equal(t, "août 2024", MonthLabel("2024-08"))

	// malformed keys pass through untouched
	require.Equal(t, "not-a-month", MonthLabel("not-a-month"))
}

func Test_NormalizeLabel(t *testing.T) {
	require.Equal(t, "Tous_les_magasins", NormalizeLabel("Tous les magasins"))
	require.Equal(t, "Moroni", NormalizeLabel("Moroni"))
}
