package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodTotals is the sum of each monetary field across a record set.
// The gap total always equals expected minus recovered at the aggregate
// level, since it is summed from per-record gaps holding the same identity.
type PeriodTotals struct {
	Expected  decimal.Decimal `json:"expected"`
	Recovered decimal.Decimal `json:"recovered"`
	Expenses  decimal.Decimal `json:"expenses"`
	Gap       decimal.Decimal `json:"gap"`
}

func ZeroTotals() PeriodTotals {
	return PeriodTotals{
		Expected:  decimal.Zero,
		Recovered: decimal.Zero,
		Expenses:  decimal.Zero,
		Gap:       decimal.Zero,
	}
}

func (t PeriodTotals) Add(r DailyRecovery) PeriodTotals {
	return PeriodTotals{
		Expected:  t.Expected.Add(r.ExpectedAmount),
		Recovered: t.Recovered.Add(r.RecoveredAmount),
		Expenses:  t.Expenses.Add(r.Expenses),
		Gap:       t.Gap.Add(r.Gap),
	}
}

// RecoveryRate is recovered over expected as a percentage. A zero expected
// total yields 0, never NaN or Inf.
func (t PeriodTotals) RecoveryRate() float64 {
	if !t.Expected.IsPositive() {
		return 0
	}
	return t.Recovered.Div(t.Expected).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// StoreStats pairs today and month-to-date totals for one store.
type StoreStats struct {
	StoreID   uuid.UUID    `json:"storeId"`
	StoreName string       `json:"storeName"`
	StoreCode string       `json:"storeCode"`
	Today     PeriodTotals `json:"today"`
	Month     PeriodTotals `json:"month"`
}

// DashboardStats is the derived read model behind the dashboard page.
type DashboardStats struct {
	Today  PeriodTotals `json:"today"`
	Month  PeriodTotals `json:"month"`
	Stores []StoreStats `json:"stores"`
}

// MonthlyBucket aggregates one calendar month of history, with a nested
// per-store breakdown keyed by store name.
type MonthlyBucket struct {
	Month        string                  `json:"month"`
	Totals       PeriodTotals            `json:"totals"`
	RecordCount  int                     `json:"recordCount"`
	RecoveryRate float64                 `json:"recoveryRate"`
	Stores       map[string]*StoreBucket `json:"stores"`
}

type StoreBucket struct {
	StoreName    string       `json:"storeName"`
	StoreCode    string       `json:"storeCode"`
	Totals       PeriodTotals `json:"totals"`
	RecordCount  int          `json:"recordCount"`
	RecoveryRate float64      `json:"recoveryRate"`
}
