package repository

import (
	"context"
	"database/sql"
	"time"

	"machine_monitoring/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// OverrideRepo stores manual temperature overrides keyed by machine id.
type OverrideRepo interface {
	Save(ctx context.Context, o models.TemperatureOverride) error
	Load(ctx context.Context, machineID string) (*models.TemperatureOverride, error)
	Delete(ctx context.Context, machineID string) (bool, error)
	List(ctx context.Context) ([]models.TemperatureOverride, error)
}

// EventFilter narrows EventRepo.List. Zero values mean "no constraint".
type EventFilter struct {
	From      time.Time
	To        time.Time
	Type      string
	MachineID string
}

type EventRepo interface {
	Append(ctx context.Context, e models.MachineEvent) error
	List(ctx context.Context, f EventFilter) ([]models.MachineEvent, error)
}

type Repository struct {
	OverrideRepo OverrideRepo
	EventRepo    EventRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		OverrideRepo: NewOverrideSQLite(db),
		EventRepo:    NewEventSQLite(db),
		Auth:         NewUserRepository(db),
	}
}
