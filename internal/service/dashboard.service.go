package service

import (
	"bytes"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"recouvra/internal/cache"
	"recouvra/internal/domain"
	"recouvra/internal/export"
	"recouvra/internal/feed"
	"recouvra/internal/insights"
	"recouvra/internal/reporting"
	"recouvra/internal/repository"
	"recouvra/internal/util"

	"github.com/google/uuid"
)

const (
	cachePrefixDashboardStats = "dashboardStats"
	cachePrefixMonthlyArchive = "monthlyArchive"
	cachePrefixStoreInsights  = "storeInsights"
)

const allStoresLabel = "Tous les magasins"

// ExportPayload is a rendered monthly report ready to stream to a client
// or write to disk.
type ExportPayload struct {
	Filename string
	Content  []byte
}

type DashboardService interface {
	GetDashboardStats(storeID *uuid.UUID, scope []uuid.UUID, today time.Time) (*domain.DashboardStats, error)
	GetMonthlyArchive(storeID *uuid.UUID, scope []uuid.UUID) ([]domain.MonthlyBucket, error)
	GetStoreInsights(storeID *uuid.UUID, scope []uuid.UUID, startDate, endDate *time.Time) ([]insights.StoreInsight, error)
	ExportMonth(storeID *uuid.UUID, scope []uuid.UUID, monthKey string) (*ExportPayload, error)
}

type dashboardServiceHandler struct {
	Db                 *sql.DB
	RecoveryRepository repository.RecoveryRepository
	StoreRepository    repository.StoreRepository
	Cache              *cache.Cache
}

// NewDashboardService wires the aggregate read paths to the shared cache.
// Any mutation published on the change feed invalidates every cached
// aggregate, so a dashboard read after a write always recomputes.
func NewDashboardService(
	db *sql.DB,
	recoveryRepository repository.RecoveryRepository,
	storeRepository repository.StoreRepository,
	resultCache *cache.Cache,
	changeFeed *feed.Feed,
) DashboardService {
	changeFeed.Subscribe(func(feed.Event) {
		resultCache.Invalidate(
			cachePrefixDashboardStats,
			cachePrefixMonthlyArchive,
			cachePrefixStoreInsights,
		)
	})

	return dashboardServiceHandler{
		Db:                 db,
		RecoveryRepository: recoveryRepository,
		StoreRepository:    storeRepository,
		Cache:              resultCache,
	}
}

func storeKeyPart(storeID *uuid.UUID) string {
	if storeID == nil {
		return "all"
	}
	return storeID.String()
}

// scopeKeyPart folds the caller's row-level scope into the cache key so an
// owner's cached aggregates are never served to a differently-scoped caller.
func scopeKeyPart(scope []uuid.UUID) string {
	if scope == nil {
		return "unscoped"
	}
	parts := make([]string, len(scope))
	for i, id := range scope {
		parts[i] = id.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func dateKeyPart(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return util.FormatISODate(*t)
}

func (h dashboardServiceHandler) GetDashboardStats(storeID *uuid.UUID, scope []uuid.UUID, today time.Time) (*domain.DashboardStats, error) {
	key := cache.Key(cachePrefixDashboardStats, storeKeyPart(storeID), scopeKeyPart(scope), util.FormatISODate(today))
	if cached, ok := h.Cache.Get(key); ok {
		return cached.(*domain.DashboardStats), nil
	}

	monthStart := util.MonthStart(today)
	monthEnd := util.MonthEnd(today)
	records, err := h.RecoveryRepository.List(h.Db, repository.RecoveryFilter{
		StoreID:       storeID,
		StartDate:     &monthStart,
		EndDate:       &monthEnd,
		ScopeStoreIDs: scope,
	})
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		Today:  reporting.TotalsForDay(records, today),
		Month:  reporting.Totals(records),
		Stores: reporting.StoreStats(records, today),
	}
	h.Cache.Set(key, stats)

	return stats, nil
}

func (h dashboardServiceHandler) GetMonthlyArchive(storeID *uuid.UUID, scope []uuid.UUID) ([]domain.MonthlyBucket, error) {
	key := cache.Key(cachePrefixMonthlyArchive, storeKeyPart(storeID), scopeKeyPart(scope))
	if cached, ok := h.Cache.Get(key); ok {
		return cached.([]domain.MonthlyBucket), nil
	}

	records, err := h.RecoveryRepository.List(h.Db, repository.RecoveryFilter{
		StoreID:       storeID,
		ScopeStoreIDs: scope,
	})
	if err != nil {
		return nil, err
	}

	archive := reporting.MonthlyArchive(records)
	h.Cache.Set(key, archive)

	return archive, nil
}

func (h dashboardServiceHandler) GetStoreInsights(storeID *uuid.UUID, scope []uuid.UUID, startDate, endDate *time.Time) ([]insights.StoreInsight, error) {
	key := cache.Key(cachePrefixStoreInsights, storeKeyPart(storeID), scopeKeyPart(scope), dateKeyPart(startDate), dateKeyPart(endDate))
	if cached, ok := h.Cache.Get(key); ok {
		return cached.([]insights.StoreInsight), nil
	}

	records, err := h.RecoveryRepository.List(h.Db, repository.RecoveryFilter{
		StoreID:       storeID,
		StartDate:     startDate,
		EndDate:       endDate,
		ScopeStoreIDs: scope,
	})
	if err != nil {
		return nil, err
	}

	out, err := insights.PerStore(records)
	if err != nil {
		return nil, err
	}
	h.Cache.Set(key, out)

	return out, nil
}

func (h dashboardServiceHandler) ExportMonth(storeID *uuid.UUID, scope []uuid.UUID, monthKey string) (*ExportPayload, error) {
	monthStart, err := util.ParseMonthKey(monthKey)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", monthKey, err)
	}
	monthEnd := util.MonthEnd(monthStart)

	records, err := h.RecoveryRepository.List(h.Db, repository.RecoveryFilter{
		StoreID:       storeID,
		StartDate:     &monthStart,
		EndDate:       &monthEnd,
		ScopeStoreIDs: scope,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNoRecords
	}

	storeLabel := allStoresLabel
	if storeID != nil {
		store, err := h.StoreRepository.Get(h.Db, *storeID)
		if err != nil {
			return nil, err
		}
		storeLabel = store.Name
	}

	buf := bytes.Buffer{}
	if err := export.WriteReport(&buf, records, reporting.Totals(records)); err != nil {
		return nil, err
	}

	return &ExportPayload{
		Filename: export.ReportFilename(storeLabel, util.MonthLabel(monthKey)),
		Content:  buf.Bytes(),
	}, nil
}
