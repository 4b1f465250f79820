// Package insights derives store-comparison metrics from daily recovery
// history, backing the comparison table on the dashboard.
package insights

import (
	"fmt"
	"sort"

	"recouvra/internal/domain"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

type StoreInsight struct {
	StoreID    uuid.UUID `json:"storeId"`
	StoreName  string    `json:"storeName"`
	StoreCode  string    `json:"storeCode"`
	Days       int       `json:"days"`
	MeanRate   float64   `json:"meanRate"`
	RateStdDev float64   `json:"rateStdDev"`
}

func dailyRate(r domain.DailyRecovery) float64 {
	if !r.ExpectedAmount.IsPositive() {
		return 0
	}
	return r.RecoveredAmount.Div(r.ExpectedAmount).InexactFloat64() * 100
}

// PerStore computes, for each store present in the window, the mean and
// sample standard deviation of its daily recovery rates. Stores are ranked
// by mean rate descending. A single-day store has a zero deviation;
// records without a store join are skipped.
func PerStore(records []domain.DailyRecovery) ([]StoreInsight, error) {
	type group struct {
		insight StoreInsight
		rates   []float64
	}
	byStore := map[string]*group{}

	for _, r := range records {
		if r.Store == nil {
			zap.S().Warnw("recovery record has no store join, skipping for insights", "recoveryId", r.ID)
			continue
		}
		key := r.StoreID.String()
		g, ok := byStore[key]
		if !ok {
			g = &group{insight: StoreInsight{
				StoreID:   r.StoreID,
				StoreName: r.Store.Name,
				StoreCode: r.Store.Code,
			}}
			byStore[key] = g
		}
		g.rates = append(g.rates, dailyRate(r))
	}

	out := make([]StoreInsight, 0, len(byStore))
	for _, g := range byStore {
		mean, err := stats.Mean(g.rates)
		if err != nil {
			return nil, fmt.Errorf("failed to compute mean rate for %s: %w", g.insight.StoreName, err)
		}
		g.insight.MeanRate = mean
		g.insight.Days = len(g.rates)

		if len(g.rates) > 1 {
			stdev, err := stats.StandardDeviationSample(g.rates)
			if err != nil {
				return nil, fmt.Errorf("failed to compute rate deviation for %s: %w", g.insight.StoreName, err)
			}
			g.insight.RateStdDev = stdev
		}

		out = append(out, g.insight)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanRate != out[j].MeanRate {
			return out[i].MeanRate > out[j].MeanRate
		}
		return out[i].StoreName < out[j].StoreName
	})

	return out, nil
}
