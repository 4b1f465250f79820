package service

import (
	"database/sql"
	"fmt"
	"time"

	"recouvra/internal/db/models/postgres/public/model"
	"recouvra/internal/domain"
	"recouvra/internal/feed"
	"recouvra/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecoveryPatch is a partial update; nil fields keep their current value.
// The gap is always recomputed from the resulting amounts, so the stored
// redundancy can never drift.
type RecoveryPatch struct {
	StoreID         *uuid.UUID
	Date            *time.Time
	ExpectedAmount  *decimal.Decimal
	RecoveredAmount *decimal.Decimal
	Expenses        *decimal.Decimal
	Observations    *string
}

type RecoveryService interface {
	List(filter repository.RecoveryFilter) ([]domain.DailyRecovery, error)
	Create(in domain.RecoveryInput, createdBy uuid.UUID) (*domain.DailyRecovery, error)
	Update(id uuid.UUID, patch RecoveryPatch) (*domain.DailyRecovery, error)
	Delete(id uuid.UUID) error
}

type recoveryServiceHandler struct {
	Db                 *sql.DB
	RecoveryRepository repository.RecoveryRepository
	Feed               *feed.Feed
}

func NewRecoveryService(db *sql.DB, recoveryRepository repository.RecoveryRepository, changeFeed *feed.Feed) RecoveryService {
	return recoveryServiceHandler{
		Db:                 db,
		RecoveryRepository: recoveryRepository,
		Feed:               changeFeed,
	}
}

func (h recoveryServiceHandler) List(filter repository.RecoveryFilter) ([]domain.DailyRecovery, error) {
	return h.RecoveryRepository.List(h.Db, filter)
}

func (h recoveryServiceHandler) Create(in domain.RecoveryInput, createdBy uuid.UUID) (*domain.DailyRecovery, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m := model.DailyRecoveries{
		StoreID:         in.StoreID,
		Date:            in.Date,
		ExpectedAmount:  in.ExpectedAmount,
		RecoveredAmount: in.RecoveredAmount,
		Expenses:        in.Expenses,
		Gap:             in.ExpectedAmount.Sub(in.RecoveredAmount),
		Observations:    in.Observations,
		CreatedBy:       createdBy,
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	inserted, err := h.RecoveryRepository.Add(tx, m)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	h.Feed.Publish(feed.Event{Table: "daily_recoveries", Op: feed.OpInsert, RecordID: inserted.ID})

	return h.RecoveryRepository.Get(h.Db, inserted.ID)
}

func (h recoveryServiceHandler) Update(id uuid.UUID, patch RecoveryPatch) (*domain.DailyRecovery, error) {
	existing, err := h.RecoveryRepository.Get(h.Db, id)
	if err != nil {
		return nil, err
	}

	m := model.DailyRecoveries{
		ID:              existing.ID,
		StoreID:         existing.StoreID,
		Date:            existing.Date,
		ExpectedAmount:  existing.ExpectedAmount,
		RecoveredAmount: existing.RecoveredAmount,
		Expenses:        existing.Expenses,
		Observations:    existing.Observations,
		CreatedBy:       existing.CreatedBy,
		CreatedAt:       existing.CreatedAt,
	}
	if patch.StoreID != nil {
		m.StoreID = *patch.StoreID
	}
	if patch.Date != nil {
		m.Date = *patch.Date
	}
	if patch.ExpectedAmount != nil {
		m.ExpectedAmount = *patch.ExpectedAmount
	}
	if patch.RecoveredAmount != nil {
		m.RecoveredAmount = *patch.RecoveredAmount
	}
	if patch.Expenses != nil {
		m.Expenses = *patch.Expenses
	}
	if patch.Observations != nil {
		m.Observations = patch.Observations
	}
	m.Gap = m.ExpectedAmount.Sub(m.RecoveredAmount)

	in := domain.RecoveryInput{
		StoreID:         m.StoreID,
		Date:            m.Date,
		ExpectedAmount:  m.ExpectedAmount,
		RecoveredAmount: m.RecoveredAmount,
		Expenses:        m.Expenses,
		Observations:    m.Observations,
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := h.RecoveryRepository.Update(tx, m); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	h.Feed.Publish(feed.Event{Table: "daily_recoveries", Op: feed.OpUpdate, RecordID: id})

	return h.RecoveryRepository.Get(h.Db, id)
}

func (h recoveryServiceHandler) Delete(id uuid.UUID) error {
	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := h.RecoveryRepository.Delete(tx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	h.Feed.Publish(feed.Event{Table: "daily_recoveries", Op: feed.OpDelete, RecordID: id})

	return nil
}
