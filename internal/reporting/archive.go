package reporting

import (
	"sort"

	"recouvra/internal/domain"
	"recouvra/internal/util"
)

const (
	// Sentinel labels for records whose store join is missing. The archive
	// tolerates the anomaly instead of dropping the record.
	unknownStoreName = "Inconnu"
	unknownStoreCode = "???"
)

// MonthlyArchive buckets an unbounded, unordered record history by the
// calendar month of each record's date, with a nested per-store breakdown
// keyed by store name. Buckets are returned sorted by month key descending;
// callers rely on that ordering.
func MonthlyArchive(records []domain.DailyRecovery) []domain.MonthlyBucket {
	byMonth := map[string]*domain.MonthlyBucket{}

	for _, r := range records {
		key := util.MonthKey(r.Date)

		bucket, ok := byMonth[key]
		if !ok {
			bucket = &domain.MonthlyBucket{
				Month:  key,
				Totals: domain.ZeroTotals(),
				Stores: map[string]*domain.StoreBucket{},
			}
			byMonth[key] = bucket
		}

		bucket.Totals = bucket.Totals.Add(r)
		bucket.RecordCount++

		storeName := unknownStoreName
		storeCode := unknownStoreCode
		if r.Store != nil {
			storeName = r.Store.Name
			storeCode = r.Store.Code
		}

		storeBucket, ok := bucket.Stores[storeName]
		if !ok {
			storeBucket = &domain.StoreBucket{
				StoreName: storeName,
				StoreCode: storeCode,
				Totals:    domain.ZeroTotals(),
			}
			bucket.Stores[storeName] = storeBucket
		}
		storeBucket.Totals = storeBucket.Totals.Add(r)
		storeBucket.RecordCount++
	}

	out := make([]domain.MonthlyBucket, 0, len(byMonth))
	for _, bucket := range byMonth {
		bucket.RecoveryRate = bucket.Totals.RecoveryRate()
		for _, storeBucket := range bucket.Stores {
			storeBucket.RecoveryRate = storeBucket.Totals.RecoveryRate()
		}
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month > out[j].Month
	})

	return out
}
