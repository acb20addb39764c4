package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"machine_monitoring/internal/logger"
	"machine_monitoring/internal/models"
	"machine_monitoring/internal/repository"

	"github.com/google/uuid"
)

var ErrInvalidOverride = errors.New("invalid override temperature")

type OverrideService struct {
	registry     *MachineRegistry
	overrideRepo repository.OverrideRepo
	eventRepo    repository.EventRepo
	log          *logger.Logger
}

func NewOverrideService(registry *MachineRegistry, overrideRepo repository.OverrideRepo, eventRepo repository.EventRepo, log *logger.Logger) *OverrideService {
	if log == nil {
		log = logger.Nop()
	}
	return &OverrideService{registry: registry, overrideRepo: overrideRepo, eventRepo: eventRepo, log: log}
}

// Get returns the current override, or nil when the machine runs on random draws.
func (s *OverrideService) Get(ctx context.Context, machineID string) (*models.TemperatureOverride, error) {
	if err := s.registry.Check(machineID); err != nil {
		return nil, err
	}
	return s.overrideRepo.Load(ctx, machineID)
}

// Set pins the temperature of machineID. Values outside the process range are
// accepted on purpose; the generator reports them as component failures.
func (s *OverrideService) Set(ctx context.Context, machineID string, tempC float64) (models.TemperatureOverride, error) {
	if err := s.registry.Check(machineID); err != nil {
		return models.TemperatureOverride{}, err
	}
	if math.IsNaN(tempC) || math.IsInf(tempC, 0) {
		return models.TemperatureOverride{}, fmt.Errorf("%w: %v", ErrInvalidOverride, tempC)
	}

	o := models.TemperatureOverride{
		MachineID:    machineID,
		TemperatureC: tempC,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.overrideRepo.Save(ctx, o); err != nil {
		return models.TemperatureOverride{}, err
	}

	s.appendEvent(ctx, models.MachineEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  o.UpdatedAt,
		MachineID:   machineID,
		Type:        EventOverrideSet,
		Description: fmt.Sprintf("Temperature override set to %.1f°C", tempC),
		Metadata:    map[string]any{"temperature": tempC},
	})
	return o, nil
}

// Clear removes the override. Clearing a machine without one is a no-op.
func (s *OverrideService) Clear(ctx context.Context, machineID string) error {
	if err := s.registry.Check(machineID); err != nil {
		return err
	}
	existed, err := s.overrideRepo.Delete(ctx, machineID)
	if err != nil || !existed {
		return err
	}
	s.appendEvent(ctx, models.MachineEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		MachineID:   machineID,
		Type:        EventOverrideCleared,
		Description: "Temperature override cleared",
	})
	return nil
}

// appendEvent records an override change. The override itself is already
// stored, so a log failure is reported but does not fail the request.
func (s *OverrideService) appendEvent(ctx context.Context, ev models.MachineEvent) {
	if err := s.eventRepo.Append(ctx, ev); err != nil {
		s.log.Errorw("override_event_append_failed", "type", ev.Type, "machine", ev.MachineID, "err", err)
	}
}

func (s *OverrideService) List(ctx context.Context) ([]models.TemperatureOverride, error) {
	return s.overrideRepo.List(ctx)
}
