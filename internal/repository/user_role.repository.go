package repository

import (
	"errors"
	"fmt"

	"recouvra/internal/db/models/postgres/public/model"
	"recouvra/internal/db/models/postgres/public/table"
	"recouvra/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type UserRoleRepository interface {
	// GetRole resolves the application role for a user. A user without a
	// role row gets domain.ErrNotFound; callers treat that as forbidden.
	GetRole(db qrm.Queryable, userID uuid.UUID) (domain.Role, error)
	ListOwnerProfiles(db qrm.Queryable) ([]domain.OwnerProfile, error)
}

type userRoleRepositoryHandler struct{}

func NewUserRoleRepository() UserRoleRepository {
	return userRoleRepositoryHandler{}
}

func (h userRoleRepositoryHandler) GetRole(db qrm.Queryable, userID uuid.UUID) (domain.Role, error) {
	query := table.UserRoles.
		SELECT(table.UserRoles.AllColumns).
		WHERE(table.UserRoles.UserID.EQ(postgres.UUID(userID))).
		LIMIT(1)

	row := model.UserRoles{}
	err := query.Query(db, &row)
	if errors.Is(err, qrm.ErrNoRows) {
		return "", domain.ErrNotFound
	} else if err != nil {
		return "", fmt.Errorf("failed to get role for user %s: %w", userID, err)
	}

	return domain.Role(row.Role), nil
}

type ownerProfileRow struct {
	model.UserRoles
	Profiles *model.Profiles
}

func (h userRoleRepositoryHandler) ListOwnerProfiles(db qrm.Queryable) ([]domain.OwnerProfile, error) {
	query := postgres.
		SELECT(table.UserRoles.AllColumns, table.Profiles.FullName).
		FROM(table.UserRoles.
			LEFT_JOIN(table.Profiles, table.Profiles.UserID.EQ(table.UserRoles.UserID))).
		WHERE(table.UserRoles.Role.EQ(postgres.String(string(model.AppRole_Owner))))

	rows := []ownerProfileRow{}
	err := query.Query(db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner profiles: %w", err)
	}

	out := make([]domain.OwnerProfile, len(rows))
	for i, row := range rows {
		profile := domain.OwnerProfile{
			UserID: row.UserRoles.UserID,
			Role:   domain.RoleOwner,
		}
		if row.Profiles != nil {
			profile.FullName = row.Profiles.FullName
		}
		out[i] = profile
	}
	return out, nil
}
