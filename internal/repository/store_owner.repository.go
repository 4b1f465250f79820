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
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type StoreOwnerRepository interface {
	List(db qrm.Queryable, storeID *uuid.UUID) ([]domain.StoreOwner, error)
	ListStoreIDsForUser(db qrm.Queryable, userID uuid.UUID) ([]uuid.UUID, error)
	Assign(db qrm.Queryable, m model.StoreOwners) (*model.StoreOwners, error)
	Remove(db qrm.Executable, id uuid.UUID) error
}

type storeOwnerRepositoryHandler struct{}

func NewStoreOwnerRepository() StoreOwnerRepository {
	return storeOwnerRepositoryHandler{}
}

type storeOwnerRow struct {
	model.StoreOwners
	Stores   *model.Stores
	Profiles *model.Profiles
}

func (h storeOwnerRepositoryHandler) List(db qrm.Queryable, storeID *uuid.UUID) ([]domain.StoreOwner, error) {
	query := postgres.
		SELECT(
			table.StoreOwners.AllColumns,
			table.Stores.Name,
			table.Stores.Code,
			table.Profiles.FullName,
		).
		FROM(table.StoreOwners.
			LEFT_JOIN(table.Stores, table.Stores.ID.EQ(table.StoreOwners.StoreID)).
			LEFT_JOIN(table.Profiles, table.Profiles.UserID.EQ(table.StoreOwners.UserID))).
		ORDER_BY(table.StoreOwners.CreatedAt.DESC())

	if storeID != nil {
		query = query.WHERE(table.StoreOwners.StoreID.EQ(postgres.UUID(*storeID)))
	}

	rows := []storeOwnerRow{}
	err := query.Query(db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list store owners: %w", err)
	}

	out := make([]domain.StoreOwner, len(rows))
	for i, row := range rows {
		owner := domain.StoreOwner{
			ID:        row.StoreOwners.ID,
			StoreID:   row.StoreOwners.StoreID,
			UserID:    row.StoreOwners.UserID,
			CreatedAt: row.StoreOwners.CreatedAt,
		}
		if row.Stores != nil {
			owner.Store = &domain.StoreRef{Name: row.Stores.Name, Code: row.Stores.Code}
		}
		if row.Profiles != nil {
			owner.FullName = row.Profiles.FullName
		}
		out[i] = owner
	}
	return out, nil
}

func (h storeOwnerRepositoryHandler) ListStoreIDsForUser(db qrm.Queryable, userID uuid.UUID) ([]uuid.UUID, error) {
	query := table.StoreOwners.
		SELECT(table.StoreOwners.AllColumns).
		WHERE(table.StoreOwners.UserID.EQ(postgres.UUID(userID)))

	rows := []model.StoreOwners{}
	err := query.Query(db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores for user %s: %w", userID, err)
	}

	out := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		out[i] = row.StoreID
	}
	return out, nil
}

// Assign inserts the (store, user) pair. A duplicate pair surfaces as
// domain.ErrAlreadyAssigned so callers can reply with a conflict rather
// than a generic failure.
func (h storeOwnerRepositoryHandler) Assign(db qrm.Queryable, m model.StoreOwners) (*model.StoreOwners, error) {
	m.ID = uuid.New()
	m.CreatedAt = time.Now().UTC()

	query := table.StoreOwners.
		INSERT(table.StoreOwners.MutableColumns).
		MODEL(m).
		RETURNING(table.StoreOwners.AllColumns)

	out := model.StoreOwners{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, translateAssignError(err)
	}

	return &out, nil
}

// translateAssignError maps the unique-constraint violation on
// (store_id, user_id) to the domain conflict sentinel.
func translateAssignError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
		return domain.ErrAlreadyAssigned
	}
	return fmt.Errorf("failed to assign store owner: %w", err)
}

func (h storeOwnerRepositoryHandler) Remove(db qrm.Executable, id uuid.UUID) error {
	query := table.StoreOwners.
		DELETE().
		WHERE(table.StoreOwners.ID.EQ(postgres.UUID(id)))

	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to remove store owner %s: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}

	return nil
}
