package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"machine_monitoring/internal/models"
)

type OverrideSQLite struct {
	db *sql.DB
}

func NewOverrideSQLite(db *sql.DB) *OverrideSQLite {
	return &OverrideSQLite{db: db}
}

var _ OverrideRepo = (*OverrideSQLite)(nil)

const (
	upsertOverrideSQL = `
		INSERT INTO machine_overrides (machine_id, temp_c, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(machine_id) DO UPDATE SET
			temp_c=excluded.temp_c,
			updated_at=excluded.updated_at
	`

	selectOverrideSQL = `
		SELECT machine_id, temp_c, updated_at
		FROM machine_overrides WHERE machine_id=?
	`

	selectOverridesSQL = `
		SELECT machine_id, temp_c, updated_at
		FROM machine_overrides ORDER BY machine_id ASC
	`

	deleteOverrideSQL = `DELETE FROM machine_overrides WHERE machine_id=?`
)

// Save inserts or replaces the override for o.MachineID.
func (r *OverrideSQLite) Save(ctx context.Context, o models.TemperatureOverride) error {
	ts := o.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}
	if _, err := r.db.ExecContext(ctx, upsertOverrideSQL, o.MachineID, o.TemperatureC, ts); err != nil {
		return fmt.Errorf("upsert override for %q: %w", o.MachineID, err)
	}
	return nil
}

// Load returns the override for machineID, or (nil, nil) when none is set.
func (r *OverrideSQLite) Load(ctx context.Context, machineID string) (*models.TemperatureOverride, error) {
	var o models.TemperatureOverride
	err := r.db.QueryRowContext(ctx, selectOverrideSQL, machineID).Scan(&o.MachineID, &o.TemperatureC, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select override for %q: %w", machineID, err)
	}
	o.UpdatedAt = o.UpdatedAt.UTC()
	return &o, nil
}

// Delete removes the override; the bool reports whether one existed.
func (r *OverrideSQLite) Delete(ctx context.Context, machineID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteOverrideSQL, machineID)
	if err != nil {
		return false, fmt.Errorf("delete override for %q: %w", machineID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for %q: %w", machineID, err)
	}
	return n > 0, nil
}

// List returns all overrides ordered by machine id.
func (r *OverrideSQLite) List(ctx context.Context) ([]models.TemperatureOverride, error) {
	rows, err := r.db.QueryContext(ctx, selectOverridesSQL)
	if err != nil {
		return nil, fmt.Errorf("select overrides: %w", err)
	}
	defer rows.Close()

	out := make([]models.TemperatureOverride, 0, 8)
	for rows.Next() {
		var o models.TemperatureOverride
		if err := rows.Scan(&o.MachineID, &o.TemperatureC, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.UpdatedAt = o.UpdatedAt.UTC()
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
