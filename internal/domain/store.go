package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   *string   `json:"address"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type StoreInput struct {
	Name    string
	Code    string
	Address *string
}

func (in StoreInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("store name is required")
	}
	if strings.TrimSpace(in.Code) == "" {
		return errors.New("store code is required")
	}
	return nil
}

// StoreOwner links an owner-role user to a store. The pair is unique;
// assigning the same pair twice is a conflict, not a silent no-op.
type StoreOwner struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"storeId"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Store     *StoreRef `json:"store"`
	FullName  string    `json:"fullName"`
}

type OwnerProfile struct {
	UserID   uuid.UUID `json:"userId"`
	FullName string    `json:"fullName"`
	Role     Role      `json:"role"`
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
)

// CanMutate is the single capability check gating every mutating route.
func CanMutate(role Role) bool {
	return role == RoleAdmin
}
