// Package reporting holds the pure aggregation core: every function here is
// a deterministic, synchronous transformation from a record set (already
// filtered upstream) to a derived summary. Nothing in this package performs
// I/O or caches state.
package reporting

import (
	"time"

	"recouvra/internal/domain"
	"recouvra/internal/util"
)

// Totals sums expected, recovered, expenses and gap independently across
// all records. An empty input yields all-zero totals, never an error.
func Totals(records []domain.DailyRecovery) domain.PeriodTotals {
	totals := domain.ZeroTotals()
	for _, r := range records {
		totals = totals.Add(r)
	}
	return totals
}

// TotalsForDay sums only the records whose date matches day exactly.
func TotalsForDay(records []domain.DailyRecovery, day time.Time) domain.PeriodTotals {
	totals := domain.ZeroTotals()
	for _, r := range records {
		if util.SameDay(r.Date, day) {
			totals = totals.Add(r)
		}
	}
	return totals
}
