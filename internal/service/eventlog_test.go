package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"machine_monitoring/internal/models"
)

func TestNormalizeFilter(t *testing.T) {
	t.Parallel()

	plus5 := time.FixedZone("UTC+5", 5*3600)
	minus2 := time.FixedZone("UTC-2", -2*3600)

	cases := []struct {
		name    string
		in      LogFilter
		wantErr bool
		check   func(t *testing.T, f LogFilter)
	}{
		{
			name: "converts bounds to UTC and normalizes type",
			in: LogFilter{
				From:      time.Date(2025, 10, 1, 10, 0, 0, 0, plus5),
				To:        time.Date(2025, 10, 1, 12, 30, 0, 0, minus2),
				Type:      "  component_fail ",
				MachineID: " Machine-2 ",
			},
		},
		{
			name:    "inverted range",
			in:      LogFilter{From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), To: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			wantErr: true,
		},
		{
			name: "zero bounds stay zero",
			in:   LogFilter{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeFilter(tc.in)
			if tc.wantErr {
				if !errors.Is(err, errInvalidTimeRange) {
					t.Fatalf("expected errInvalidTimeRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.From.Equal(tc.in.From) || !got.To.Equal(tc.in.To) {
				t.Fatalf("bounds changed instant: %v/%v", got.From, got.To)
			}
			if !got.From.IsZero() && got.From.Location() != time.UTC {
				t.Fatalf("from not UTC: %v", got.From.Location())
			}
			if tc.in.Type != "" && got.Type != "COMPONENT_FAIL" {
				t.Fatalf("type=%q", got.Type)
			}
			if tc.in.MachineID != "" && got.MachineID != "Machine-2" {
				t.Fatalf("machine=%q", got.MachineID)
			}
		})
	}
}

func TestEventLogService_List_DelegatesNormalizedParams(t *testing.T) {
	t.Parallel()

	frepo := &fakeEventRepo{events: []models.MachineEvent{{EventID: "1"}}}
	svc := NewEventLogService(frepo)

	from := time.Date(2025, time.October, 1, 10, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))
	out, err := svc.List(context.Background(), LogFilter{From: from, Type: " override_set "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].EventID != "1" {
		t.Fatalf("unexpected events: %+v", out)
	}
	wantFrom := time.Date(2025, time.October, 1, 5, 0, 0, 0, time.UTC)
	if !frepo.gotFilter.From.Equal(wantFrom) || frepo.gotFilter.Type != EventOverrideSet {
		t.Fatalf("unexpected filter passed to repo: %+v", frepo.gotFilter)
	}
}

func TestEventLogService_List_Errors(t *testing.T) {
	t.Parallel()

	frepo := &fakeEventRepo{}
	svc := NewEventLogService(frepo)
	_, err := svc.List(context.Background(), LogFilter{
		From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("expected errInvalidTimeRange; got %v", err)
	}
	if frepo.calls != 0 {
		t.Fatalf("repo should not be called on validation error, calls=%d", frepo.calls)
	}

	frepo.listErr = errors.New("db down")
	if _, err := svc.List(context.Background(), LogFilter{}); !errors.Is(err, frepo.listErr) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
}
