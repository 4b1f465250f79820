package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_SameDay(t *testing.T) {
	require.True(t, SameDay(NewDate(2024, 1, 5), time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC)))
	require.False(t, SameDay(NewDate(2024, 1, 5), NewDate(2024, 1, 6)))
}

func Test_MonthKey(t *testing.T) {
	require.Equal(t, "2024-01", MonthKey(NewDate(2024, 1, 31)))
	require.Equal(t, "2023-12", MonthKey(NewDate(2023, 12, 1)))
}

func Test_MonthBounds(t *testing.T) {
	require.Equal(t, NewDate(2024, 2, 1), MonthStart(NewDate(2024, 2, 15)))
	// leap year February
	require.Equal(t, NewDate(2024, 2, 29), MonthEnd(NewDate(2024, 2, 15)))
	require.Equal(t, NewDate(2023, 2, 28), MonthEnd(NewDate(2023, 2, 1)))
}

func Test_ParseMonthKey(t *testing.T) {
	start, err := ParseMonthKey("2024-03")
	require.NoError(t, err)
	require.Equal(t, 2024, start.Year())
	require.Equal(t, time.March, start.Month())

	_, err = ParseMonthKey("03/2024")
	require.Error(t, err)
}
