package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"machine_monitoring/internal/models"

	"github.com/google/uuid"
)

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

const (
	sqliteTimestampLayout = "2006-01-02 15:04:05"

	insertEventSQL = `
		INSERT INTO machine_events (id, occurred_at, machine_id, type, message, meta)
		VALUES (?, ?, ?, ?, ?, ?)
	`
)

// Append inserts a new event. If EventID or OccurredAt are empty, they’re set.
func (r *EventSQLite) Append(ctx context.Context, e models.MachineEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	var metaPtr *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		e.OccurredAt.Format(sqliteTimestampLayout),
		e.MachineID,
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Description,
		metaPtr,
	)
	return err
}

// List returns events matching f, ordered by occurrence ascending.
func (r *EventSQLite) List(ctx context.Context, f EventFilter) ([]models.MachineEvent, error) {
	var (
		conds []string
		args  []any
	)

	if !f.From.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, f.From.UTC().Format(sqliteTimestampLayout))
	}
	if !f.To.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, f.To.UTC().Format(sqliteTimestampLayout))
	}
	if typ := strings.ToUpper(strings.TrimSpace(f.Type)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}
	if id := strings.TrimSpace(f.MachineID); id != "" {
		conds = append(conds, "machine_id = ?")
		args = append(args, id)
	}

	q := `SELECT id, occurred_at, machine_id, type, message, meta FROM machine_events`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.MachineEvent, 0, 64)
	for rows.Next() {
		var (
			ev         models.MachineEvent
			occurredAt string
			machineID  sql.NullString
			metaStr    sql.NullString
		)
		if err := rows.Scan(&ev.EventID, &occurredAt, &machineID, &ev.Type, &ev.Description, &metaStr); err != nil {
			return nil, err
		}
		ts, err := parseSQLiteTime(occurredAt)
		if err != nil {
			return nil, err
		}
		ev.OccurredAt = ts
		ev.MachineID = machineID.String

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				ev.Metadata = v
			} else {
				ev.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// parseSQLiteTime accepts the stored layout and RFC3339 for rows written by other tools.
func parseSQLiteTime(s string) (time.Time, error) {
	if t, err := time.Parse(sqliteTimestampLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
