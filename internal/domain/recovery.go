package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyAssigned = errors.New("ce propriétaire est déjà assigné à ce magasin")
	ErrNoRecords       = errors.New("no records to export")
)

// StoreRef carries the denormalized store fields joined onto a recovery
// record at read time. A nil StoreRef means the join was missing.
type StoreRef struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// DailyRecovery is one day of cash-recovery figures for one store.
// Gap is stored redundantly and must always equal ExpectedAmount minus
// RecoveredAmount; ComputeGap re-derives it whenever either side changes.
type DailyRecovery struct {
	ID              uuid.UUID       `json:"id"`
	StoreID         uuid.UUID       `json:"storeId"`
	Date            time.Time       `json:"date"`
	ExpectedAmount  decimal.Decimal `json:"expectedAmount"`
	RecoveredAmount decimal.Decimal `json:"recoveredAmount"`
	Expenses        decimal.Decimal `json:"expenses"`
	Gap             decimal.Decimal `json:"gap"`
	Observations    *string         `json:"observations"`
	CreatedBy       uuid.UUID       `json:"createdBy"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Store           *StoreRef       `json:"store"`
	Trend           GapTrend        `json:"trend"`
}

func (r DailyRecovery) ComputeGap() decimal.Decimal {
	return r.ExpectedAmount.Sub(r.RecoveredAmount)
}

// RecoveryInput is the mutable subset accepted from clients.
type RecoveryInput struct {
	StoreID         uuid.UUID
	Date            time.Time
	ExpectedAmount  decimal.Decimal
	RecoveredAmount decimal.Decimal
	Expenses        decimal.Decimal
	Observations    *string
}

func (in RecoveryInput) Validate() error {
	if in.StoreID == uuid.Nil {
		return errors.New("store is required")
	}
	if in.Date.IsZero() {
		return errors.New("date is required")
	}
	if in.ExpectedAmount.IsNegative() {
		return errors.New("expected amount cannot be negative")
	}
	if in.RecoveredAmount.IsNegative() {
		return errors.New("recovered amount cannot be negative")
	}
	if in.Expenses.IsNegative() {
		return errors.New("expenses cannot be negative")
	}
	return nil
}

// ParseAmount decodes a monetary field that may arrive as a numeric-looking
// string. A field that does not parse is a data-integrity error surfaced to
// the caller, never absorbed into a sum.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

type GapTrend string

const (
	GapDeficit  GapTrend = "deficit"
	GapSurplus  GapTrend = "surplus"
	GapBalanced GapTrend = "balanced"
)

// ClassifyGap maps a signed gap to its display trend. A positive gap means
// the store recovered less than expected.
func ClassifyGap(gap decimal.Decimal) GapTrend {
	switch gap.Sign() {
	case 1:
		return GapDeficit
	case -1:
		return GapSurplus
	default:
		return GapBalanced
	}
}
