package repository

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"machine_monitoring/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEventSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(insertEventSQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Machine-2",
			"COMPONENT_FAIL", "temperature out of range",
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(testCtx(t), models.MachineEvent{
		// EventID and OccurredAt are filled in by the repo
		MachineID:   "Machine-2",
		Type:        "  component_fail ",
		Description: "temperature out of range",
		Metadata:    map[string]any{"temperature": 1000},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
}

func TestAppend_DBError(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEventSQLite(db)

	mock.ExpectExec("INSERT INTO machine_events").
		WillReturnError(errors.New("down"))

	err := repo.Append(testCtx(t), models.MachineEvent{Type: "override_set", Description: "x"})
	if err == nil || !contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
}

func TestList_NoFilters_And_MetadataParsing(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEventSQLite(db)

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	js, _ := json.Marshal(map[string]any{"a": "b"})

	rows := sqlmock.NewRows([]string{"id", "occurred_at", "machine_id", "type", "message", "meta"}).
		AddRow("1", now.Format(sqliteTimestampLayout), "Machine-1", "MAINTENANCE_REQUIRED", "m1", string(js)).
		AddRow("2", now.Add(time.Hour).Format(time.RFC3339), nil, "OVERRIDE_SET", "m2", nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, occurred_at, machine_id, type, message, meta FROM machine_events ORDER BY occurred_at ASC`)).
		WillReturnRows(rows)

	got, err := repo.List(testCtx(t), EventFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2, got %d", len(got))
	}
	if got[0].EventID != "1" || got[1].EventID != "2" {
		t.Fatalf("unexpected ids: %v, %v", got[0].EventID, got[1].EventID)
	}
	if !got[0].OccurredAt.Equal(now) || !got[1].OccurredAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("timestamps not parsed: %v, %v", got[0].OccurredAt, got[1].OccurredAt)
	}
	if got[0].MachineID != "Machine-1" || got[1].MachineID != "" {
		t.Fatalf("unexpected machine ids: %q, %q", got[0].MachineID, got[1].MachineID)
	}
	b1, _ := json.Marshal(got[0].Metadata)
	if string(b1) != string(js) {
		t.Fatalf("metadata mismatch: %s vs %s", string(b1), string(js))
	}
	if got[1].Metadata != nil {
		t.Fatalf("expected nil meta, got %#v", got[1].Metadata)
	}
}

func TestList_WithFilters_OrderAndArgs(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEventSQLite(db)

	from := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	query := `SELECT id, occurred_at, machine_id, type, message, meta FROM machine_events WHERE occurred_at >= ? AND occurred_at <= ? AND type = ? AND machine_id = ? ORDER BY occurred_at ASC`

	rows := sqlmock.NewRows([]string{"id", "occurred_at", "machine_id", "type", "message", "meta"}).
		AddRow("2", from.Format(sqliteTimestampLayout), "Machine-3", "COMPONENT_FAIL", "b", nil).
		AddRow("3", to.Format(sqliteTimestampLayout), "Machine-3", "COMPONENT_FAIL", "c", nil)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(from.Format(sqliteTimestampLayout), to.Format(sqliteTimestampLayout), "COMPONENT_FAIL", "Machine-3").
		WillReturnRows(rows)

	got, err := repo.List(testCtx(t), EventFilter{From: from, To: to, Type: " component_fail ", MachineID: "Machine-3"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].EventID != "2" || got[1].EventID != "3" {
		t.Fatalf("unexpected results: %+v", got)
	}
}

func TestList_BadTimestamp(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewEventSQLite(db)

	rows := sqlmock.NewRows([]string{"id", "occurred_at", "machine_id", "type", "message", "meta"}).
		AddRow("x", "yesterday", "Machine-1", "OVERRIDE_SET", "msg", nil)

	mock.ExpectQuery("SELECT id, occurred_at").WillReturnRows(rows)

	if _, err := repo.List(testCtx(t), EventFilter{}); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}
