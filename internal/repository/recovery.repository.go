package repository

import (
	"errors"
	"fmt"
	"time"

	"recouvra/internal/db/models/postgres/public/model"
	"recouvra/internal/db/models/postgres/public/table"
	"recouvra/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// RecoveryFilter narrows a listing. ScopeStoreIDs is the row-level scope
// applied for owner-role callers; nil means unscoped (admin).
type RecoveryFilter struct {
	StoreID       *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	ScopeStoreIDs []uuid.UUID
}

type RecoveryRepository interface {
	List(db qrm.Queryable, filter RecoveryFilter) ([]domain.DailyRecovery, error)
	Get(db qrm.Queryable, id uuid.UUID) (*domain.DailyRecovery, error)
	Add(db qrm.Queryable, m model.DailyRecoveries) (*model.DailyRecoveries, error)
	Update(db qrm.Queryable, m model.DailyRecoveries) (*model.DailyRecoveries, error)
	Delete(db qrm.Executable, id uuid.UUID) error
}

type recoveryRepositoryHandler struct{}

func NewRecoveryRepository() RecoveryRepository {
	return recoveryRepositoryHandler{}
}

type recoveryRow struct {
	model.DailyRecoveries
	Stores *model.Stores
}

func (row recoveryRow) toDomain() domain.DailyRecovery {
	out := domain.DailyRecovery{
		ID:              row.DailyRecoveries.ID,
		StoreID:         row.DailyRecoveries.StoreID,
		Date:            row.DailyRecoveries.Date,
		ExpectedAmount:  row.DailyRecoveries.ExpectedAmount,
		RecoveredAmount: row.DailyRecoveries.RecoveredAmount,
		Expenses:        row.DailyRecoveries.Expenses,
		Gap:             row.DailyRecoveries.Gap,
		Observations:    row.DailyRecoveries.Observations,
		CreatedBy:       row.DailyRecoveries.CreatedBy,
		CreatedAt:       row.DailyRecoveries.CreatedAt,
		UpdatedAt:       row.DailyRecoveries.UpdatedAt,
		Trend:           domain.ClassifyGap(row.DailyRecoveries.Gap),
	}
	if row.Stores != nil {
		out.Store = &domain.StoreRef{
			Name: row.Stores.Name,
			Code: row.Stores.Code,
		}
	}
	return out
}

func (f RecoveryFilter) conditions() []postgres.BoolExpression {
	conds := []postgres.BoolExpression{}
	if f.StoreID != nil {
		conds = append(conds, table.DailyRecoveries.StoreID.EQ(postgres.UUID(*f.StoreID)))
	}
	if f.StartDate != nil {
		conds = append(conds, table.DailyRecoveries.Date.GT_EQ(postgres.DateT(*f.StartDate)))
	}
	if f.EndDate != nil {
		conds = append(conds, table.DailyRecoveries.Date.LT_EQ(postgres.DateT(*f.EndDate)))
	}
	if f.ScopeStoreIDs != nil {
		// a scoped caller with no stores sees nothing, not everything
		if len(f.ScopeStoreIDs) == 0 {
			conds = append(conds, postgres.Bool(false))
			return conds
		}
		ids := make([]postgres.Expression, 0, len(f.ScopeStoreIDs))
		for _, id := range f.ScopeStoreIDs {
			ids = append(ids, postgres.UUID(id))
		}
		conds = append(conds, table.DailyRecoveries.StoreID.IN(ids...))
	}
	return conds
}

func (h recoveryRepositoryHandler) List(db qrm.Queryable, filter RecoveryFilter) ([]domain.DailyRecovery, error) {
	query := postgres.
		SELECT(table.DailyRecoveries.AllColumns, table.Stores.Name, table.Stores.Code).
		FROM(table.DailyRecoveries.
			LEFT_JOIN(table.Stores, table.Stores.ID.EQ(table.DailyRecoveries.StoreID))).
		ORDER_BY(table.DailyRecoveries.Date.DESC())

	if conds := filter.conditions(); len(conds) > 0 {
		query = query.WHERE(postgres.AND(conds...))
	}

	rows := []recoveryRow{}
	err := query.Query(db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list recoveries: %w", err)
	}

	out := make([]domain.DailyRecovery, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (h recoveryRepositoryHandler) Get(db qrm.Queryable, id uuid.UUID) (*domain.DailyRecovery, error) {
	query := postgres.
		SELECT(table.DailyRecoveries.AllColumns, table.Stores.Name, table.Stores.Code).
		FROM(table.DailyRecoveries.
			LEFT_JOIN(table.Stores, table.Stores.ID.EQ(table.DailyRecoveries.StoreID))).
		WHERE(table.DailyRecoveries.ID.EQ(postgres.UUID(id)))

	row := recoveryRow{}
	err := query.Query(db, &row)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get recovery %s: %w", id, err)
	}

	out := row.toDomain()
	return &out, nil
}

func (h recoveryRepositoryHandler) Add(db qrm.Queryable, m model.DailyRecoveries) (*model.DailyRecoveries, error) {
	m.ID = uuid.New()
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt

	query := table.DailyRecoveries.
		INSERT(table.DailyRecoveries.MutableColumns).
		MODEL(m).
		RETURNING(table.DailyRecoveries.AllColumns)

	out := model.DailyRecoveries{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert recovery: %w", err)
	}

	return &out, nil
}

func (h recoveryRepositoryHandler) Update(db qrm.Queryable, m model.DailyRecoveries) (*model.DailyRecoveries, error) {
	m.UpdatedAt = time.Now().UTC()

	query := table.DailyRecoveries.
		UPDATE(
			table.DailyRecoveries.StoreID,
			table.DailyRecoveries.Date,
			table.DailyRecoveries.ExpectedAmount,
			table.DailyRecoveries.RecoveredAmount,
			table.DailyRecoveries.Expenses,
			table.DailyRecoveries.Gap,
			table.DailyRecoveries.Observations,
			table.DailyRecoveries.UpdatedAt,
		).
		MODEL(m).
		WHERE(table.DailyRecoveries.ID.EQ(postgres.UUID(m.ID))).
		RETURNING(table.DailyRecoveries.AllColumns)

	out := model.DailyRecoveries{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to update recovery %s: %w", m.ID, err)
	}

	return &out, nil
}

func (h recoveryRepositoryHandler) Delete(db qrm.Executable, id uuid.UUID) error {
	query := table.DailyRecoveries.
		DELETE().
		WHERE(table.DailyRecoveries.ID.EQ(postgres.UUID(id)))

	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete recovery %s: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}

	return nil
}
