package service

import (
	"strings"
	"testing"
	"time"

	"recouvra/internal/cache"
	"recouvra/internal/db/models/postgres/public/model"
	"recouvra/internal/domain"
	"recouvra/internal/feed"
	"recouvra/internal/repository"
	"recouvra/internal/util"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeRecoveryRepository struct {
	records   []domain.DailyRecovery
	listCalls int
}

func (f *fakeRecoveryRepository) List(db qrm.Queryable, filter repository.RecoveryFilter) ([]domain.DailyRecovery, error) {
	f.listCalls++
	out := []domain.DailyRecovery{}
	for _, r := range f.records {
		if filter.StoreID != nil && r.StoreID != *filter.StoreID {
			continue
		}
		if filter.StartDate != nil && r.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && r.Date.After(*filter.EndDate) {
			continue
		}
		if filter.ScopeStoreIDs != nil {
			inScope := false
			for _, id := range filter.ScopeStoreIDs {
				if r.StoreID == id {
					inScope = true
					break
				}
			}
			if !inScope {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecoveryRepository) Get(db qrm.Queryable, id uuid.UUID) (*domain.DailyRecovery, error) {
	for _, r := range f.records {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRecoveryRepository) Add(db qrm.Queryable, m model.DailyRecoveries) (*model.DailyRecoveries, error) {
	m.ID = uuid.New()
	f.records = append(f.records, domain.DailyRecovery{
		ID:              m.ID,
		StoreID:         m.StoreID,
		Date:            m.Date,
		ExpectedAmount:  m.ExpectedAmount,
		RecoveredAmount: m.RecoveredAmount,
		Expenses:        m.Expenses,
		Gap:             m.Gap,
		Observations:    m.Observations,
		CreatedBy:       m.CreatedBy,
	})
	return &m, nil
}

func (f *fakeRecoveryRepository) Update(db qrm.Queryable, m model.DailyRecoveries) (*model.DailyRecoveries, error) {
	for i, r := range f.records {
		if r.ID == m.ID {
			f.records[i].StoreID = m.StoreID
			f.records[i].Date = m.Date
			f.records[i].ExpectedAmount = m.ExpectedAmount
			f.records[i].RecoveredAmount = m.RecoveredAmount
			f.records[i].Expenses = m.Expenses
			f.records[i].Gap = m.Gap
			f.records[i].Observations = m.Observations
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRecoveryRepository) Delete(db qrm.Executable, id uuid.UUID) error {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeStoreRepository struct {
	repository.StoreRepository
	stores []domain.Store
}

func (f *fakeStoreRepository) Get(db qrm.Queryable, id uuid.UUID) (*domain.Store, error) {
	for _, s := range f.stores {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func amt(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testRecord(storeID uuid.UUID, name string, date time.Time, expected, recovered, expenses string) domain.DailyRecovery {
	r := domain.DailyRecovery{
		ID:              uuid.New(),
		StoreID:         storeID,
		Date:            date,
		ExpectedAmount:  amt(expected),
		RecoveredAmount: amt(recovered),
		Expenses:        amt(expenses),
		Store:           &domain.StoreRef{Name: name, Code: strings.ToUpper(name[:3])},
	}
	r.Gap = r.ComputeGap()
	return r
}

func TestGetDashboardStats(t *testing.T) {
	storeA := uuid.New()
	storeB := uuid.New()
	today := util.NewDate(2024, 1, 5)

	repo := &fakeRecoveryRepository{records: []domain.DailyRecovery{
		testRecord(storeA, "Moroni Centre", util.NewDate(2024, 1, 5), "1000", "800", "50"),
		testRecord(storeB, "Mutsamudu", util.NewDate(2024, 1, 3), "500", "500", "25"),
		// previous month, must stay out of the window
		testRecord(storeA, "Moroni Centre", util.NewDate(2023, 12, 30), "9999", "1", "0"),
	}}
	svc := NewDashboardService(nil, repo, &fakeStoreRepository{}, cache.New(), feed.New())

	stats, err := svc.GetDashboardStats(nil, nil, today)
	require.NoError(t, err)

	require.Equal(t, "800", stats.Today.Recovered.String())
	require.Equal(t, "1300", stats.Month.Recovered.String())
	require.Equal(t, "200", stats.Month.Gap.String())
	require.Len(t, stats.Stores, 2)
}

func TestGetDashboardStatsCaching(t *testing.T) {
	storeA := uuid.New()
	today := util.NewDate(2024, 1, 5)

	repo := &fakeRecoveryRepository{records: []domain.DailyRecovery{
		testRecord(storeA, "Moroni Centre", util.NewDate(2024, 1, 5), "1000", "800", "50"),
	}}
	changeFeed := feed.New()
	svc := NewDashboardService(nil, repo, &fakeStoreRepository{}, cache.New(), changeFeed)

	_, err := svc.GetDashboardStats(nil, nil, today)
	require.NoError(t, err)
	_, err = svc.GetDashboardStats(nil, nil, today)
	require.NoError(t, err)
	require.Equal(t, 1, repo.listCalls)

	// a differently-scoped caller must not be served the cached aggregate
	_, err = svc.GetDashboardStats(nil, []uuid.UUID{storeA}, today)
	require.NoError(t, err)
	require.Equal(t, 2, repo.listCalls)

	changeFeed.Publish(feed.Event{Table: "daily_recoveries", Op: feed.OpInsert, RecordID: uuid.New()})

	_, err = svc.GetDashboardStats(nil, nil, today)
	require.NoError(t, err)
	require.Equal(t, 3, repo.listCalls)
}

func TestGetMonthlyArchive(t *testing.T) {
	storeA := uuid.New()
	repo := &fakeRecoveryRepository{records: []domain.DailyRecovery{
		testRecord(storeA, "Moroni Centre", util.NewDate(2024, 2, 1), "100", "90", "0"),
		testRecord(storeA, "Moroni Centre", util.NewDate(2024, 1, 15), "100", "80", "0"),
	}}
	svc := NewDashboardService(nil, repo, &fakeStoreRepository{}, cache.New(), feed.New())

	archive, err := svc.GetMonthlyArchive(nil, nil)
	require.NoError(t, err)
	require.Len(t, archive, 2)
	require.Equal(t, "2024-02", archive[0].Month)
	require.Equal(t, "2024-01", archive[1].Month)

	_, err = svc.GetMonthlyArchive(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, repo.listCalls)
}

func TestGetStoreInsightsScoped(t *testing.T) {
	storeA := uuid.New()
	storeB := uuid.New()
	repo := &fakeRecoveryRepository{records: []domain.DailyRecovery{
		testRecord(storeA, "Moroni Centre", util.NewDate(2024, 1, 1), "100", "95", "0"),
		testRecord(storeB, "Mutsamudu", util.NewDate(2024, 1, 1), "100", "50", "0"),
	}}
	svc := NewDashboardService(nil, repo, &fakeStoreRepository{}, cache.New(), feed.New())

	out, err := svc.GetStoreInsights(nil, []uuid.UUID{storeA}, nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "Moroni Centre", out[0].StoreName)
}

func TestExportMonth(t *testing.T) {
	storeA := uuid.New()
	repo := &fakeRecoveryRepository{records: []domain.DailyRecovery{
		testRecord(storeA, "Moroni Centre", util.NewDate(2024, 1, 5), "1000", "800", "50"),
	}}
	stores := &fakeStoreRepository{stores: []domain.Store{
		{ID: storeA, Name: "Moroni Centre", Code: "MOR", IsActive: true},
	}}
	svc := NewDashboardService(nil, repo, stores, cache.New(), feed.New())

	payload, err := svc.ExportMonth(&storeA, nil, "2024-01")
	require.NoError(t, err)
	require.Equal(t, "rapport_Moroni_Centre_janvier_2024.csv", payload.Filename)
	require.Contains(t, string(payload.Content), "Total Recouvré;800")

	_, err = svc.ExportMonth(&storeA, nil, "2024-03")
	require.ErrorIs(t, err, domain.ErrNoRecords)

	_, err = svc.ExportMonth(nil, nil, "not-a-month")
	require.Error(t, err)
}
