package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"machine_monitoring/internal/models"
	"machine_monitoring/internal/repository"
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeFilter trims and uppercases the type, converts bounds to UTC and
// rejects inverted ranges.
func normalizeFilter(f LogFilter) (repository.EventFilter, error) {
	out := repository.EventFilter{
		From:      normalizeToUTC(f.From),
		To:        normalizeToUTC(f.To),
		Type:      strings.TrimSpace(strings.ToUpper(f.Type)),
		MachineID: strings.TrimSpace(f.MachineID),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return repository.EventFilter{}, errInvalidTimeRange
	}
	return out, nil
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.MachineEvent, error) {
	rf, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, rf)
}
