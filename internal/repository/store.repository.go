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

type StoreRepository interface {
	// ListActive returns active stores only, for selection lists. Inactive
	// stores stay out of pickers but remain part of historical aggregation.
	ListActive(db qrm.Queryable) ([]domain.Store, error)
	Get(db qrm.Queryable, id uuid.UUID) (*domain.Store, error)
	Add(db qrm.Queryable, m model.Stores) (*model.Stores, error)
	Update(db qrm.Queryable, m model.Stores) (*model.Stores, error)
	Deactivate(db qrm.Executable, id uuid.UUID) error
}

type storeRepositoryHandler struct{}

func NewStoreRepository() StoreRepository {
	return storeRepositoryHandler{}
}

func storeToDomain(m model.Stores) domain.Store {
	return domain.Store{
		ID:        m.ID,
		Name:      m.Name,
		Code:      m.Code,
		Address:   m.Address,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (h storeRepositoryHandler) ListActive(db qrm.Queryable) ([]domain.Store, error) {
	query := table.Stores.
		SELECT(table.Stores.AllColumns).
		WHERE(table.Stores.IsActive.IS_TRUE()).
		ORDER_BY(table.Stores.Name.ASC())

	rows := []model.Stores{}
	err := query.Query(db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	out := make([]domain.Store, len(rows))
	for i, row := range rows {
		out[i] = storeToDomain(row)
	}
	return out, nil
}

func (h storeRepositoryHandler) Get(db qrm.Queryable, id uuid.UUID) (*domain.Store, error) {
	query := table.Stores.
		SELECT(table.Stores.AllColumns).
		WHERE(table.Stores.ID.EQ(postgres.UUID(id)))

	row := model.Stores{}
	err := query.Query(db, &row)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get store %s: %w", id, err)
	}

	out := storeToDomain(row)
	return &out, nil
}

func (h storeRepositoryHandler) Add(db qrm.Queryable, m model.Stores) (*model.Stores, error) {
	m.ID = uuid.New()
	m.IsActive = true
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt

	query := table.Stores.
		INSERT(table.Stores.MutableColumns).
		MODEL(m).
		RETURNING(table.Stores.AllColumns)

	out := model.Stores{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert store: %w", err)
	}

	return &out, nil
}

func (h storeRepositoryHandler) Update(db qrm.Queryable, m model.Stores) (*model.Stores, error) {
	m.UpdatedAt = time.Now().UTC()

	query := table.Stores.
		UPDATE(
			table.Stores.Name,
			table.Stores.Code,
			table.Stores.Address,
			table.Stores.UpdatedAt,
		).
		MODEL(m).
		WHERE(table.Stores.ID.EQ(postgres.UUID(m.ID))).
		RETURNING(table.Stores.AllColumns)

	out := model.Stores{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to update store %s: %w", m.ID, err)
	}

	return &out, nil
}

// Deactivate soft-deletes: the store drops out of selection lists but its
// history keeps aggregating.
func (h storeRepositoryHandler) Deactivate(db qrm.Executable, id uuid.UUID) error {
	query := table.Stores.
		UPDATE(table.Stores.IsActive, table.Stores.UpdatedAt).
		SET(postgres.Bool(false), postgres.TimestampzT(time.Now().UTC())).
		WHERE(table.Stores.ID.EQ(postgres.UUID(id)))

	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to deactivate store %s: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}

	return nil
}
