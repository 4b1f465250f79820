package reporting

import (
	"sort"
	"time"

	"recouvra/internal/domain"
	"recouvra/internal/util"

	"go.uber.org/zap"
)

// StoreStats partitions a month-to-date record set by store in a single
// pass. Every record contributes to its store's month totals; a record
// additionally contributes to the today totals iff its date equals the
// reference date exactly. Only stores with at least one record appear in
// the output. Records whose store join is missing are skipped and logged
// as a data anomaly; they still count toward ungrouped period totals,
// which are computed separately by Totals.
func StoreStats(records []domain.DailyRecovery, today time.Time) []domain.StoreStats {
	byStore := map[string]*domain.StoreStats{}

	for _, r := range records {
		if r.Store == nil {
			zap.S().Warnw("recovery record has no store join, skipping for store stats",
				"recoveryId", r.ID, "date", util.FormatISODate(r.Date))
			continue
		}

		key := r.StoreID.String()
		stats, ok := byStore[key]
		if !ok {
			stats = &domain.StoreStats{
				StoreID:   r.StoreID,
				StoreName: r.Store.Name,
				StoreCode: r.Store.Code,
				Today:     domain.ZeroTotals(),
				Month:     domain.ZeroTotals(),
			}
			byStore[key] = stats
		}

		stats.Month = stats.Month.Add(r)
		if util.SameDay(r.Date, today) {
			stats.Today = stats.Today.Add(r)
		}
	}

	out := make([]domain.StoreStats, 0, len(byStore))
	for _, stats := range byStore {
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StoreName < out[j].StoreName
	})

	return out
}
