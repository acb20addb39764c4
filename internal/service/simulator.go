package service

import (
	"context"
	"time"

	"machine_monitoring/internal/logger"
	"machine_monitoring/internal/metrics"
	"machine_monitoring/internal/models"
	"machine_monitoring/internal/repository"

	"github.com/google/uuid"
)

const DefaultPollInterval = 5 * time.Second

// SimulatorDeps groups what one poll iteration touches.
type SimulatorDeps struct {
	Registry   *MachineRegistry
	Generator  Generator
	Aggregator *Aggregator
	Overrides  repository.OverrideRepo
	Events     repository.EventRepo
	Publishers []ReadingPublisher
	Metrics    *metrics.Metrics
	Log        *logger.Logger
}

// SimulatorService runs generate → aggregate → publish for every machine.
type SimulatorService struct {
	registry   *MachineRegistry
	generator  Generator
	aggregator *Aggregator
	overrides  repository.OverrideRepo
	events     repository.EventRepo
	publishers []ReadingPublisher
	metrics    *metrics.Metrics
	log        *logger.Logger
}

func NewSimulatorService(d SimulatorDeps) *SimulatorService {
	return &SimulatorService{
		registry:   d.Registry,
		generator:  d.Generator,
		aggregator: d.Aggregator,
		overrides:  d.Overrides,
		events:     d.Events,
		publishers: d.Publishers,
		metrics:    d.Metrics,
		log:        d.Log,
	}
}

// Run ticks at the given interval until ctx is canceled. Iterations never overlap.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultPollInterval
	}
	t := time.NewTicker(tick)
	defer t.Stop()

	if s.log != nil {
		s.log.Infow("simulator_started", "interval", tick, "machines", len(s.registry.IDs()))
	}
	for {
		select {
		case <-ctx.Done():
			if s.log != nil {
				s.log.Infow("simulator_stopped")
			}
			return
		case <-t.C:
			s.Step(ctx)
		}
	}
}

// Step runs one poll iteration over all machines and returns the new readings.
func (s *SimulatorService) Step(ctx context.Context) []models.Reading {
	ids := s.registry.IDs()
	out := make([]models.Reading, 0, len(ids))
	for _, id := range ids {
		prev, hadPrev := s.aggregator.Latest(id)

		r := s.generator.Generate(id, s.loadOverride(ctx, id))
		total := s.aggregator.Record(r)

		s.metrics.ObserveReading(r)
		s.metrics.SetHourlyTotal(total)

		s.logTransitions(ctx, prev, hadPrev, r)
		s.publish(ctx, r)
		out = append(out, r)
	}
	return out
}

// loadOverride returns nil when no override is set or the store is unavailable.
func (s *SimulatorService) loadOverride(ctx context.Context, machineID string) *float64 {
	if s.overrides == nil {
		return nil
	}
	o, err := s.overrides.Load(ctx, machineID)
	if err != nil {
		if s.log != nil {
			s.log.Warnw("override_load_failed", "machine", machineID, "err", err)
		}
		return nil
	}
	if o == nil {
		return nil
	}
	v := o.TemperatureC
	return &v
}

// logTransitions appends an event when a machine enters maintenance or a
// component check starts failing.
func (s *SimulatorService) logTransitions(ctx context.Context, prev models.Reading, hadPrev bool, r models.Reading) {
	if s.events == nil {
		return
	}
	if r.Status == models.StatusMaintenanceRequired && (!hadPrev || prev.Status != r.Status) {
		s.appendEvent(ctx, models.MachineEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  r.Timestamp,
			MachineID:   r.MachineID,
			Type:        EventMaintenanceRequired,
			Description: r.MachineID + " requires maintenance",
			Metadata:    map[string]any{"process": r.Process, "vibration": r.Vibration},
		})
	}
	if r.ComponentStatus == models.ComponentFail && (!hadPrev || prev.ComponentStatus != r.ComponentStatus) {
		s.appendEvent(ctx, models.MachineEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  r.Timestamp,
			MachineID:   r.MachineID,
			Type:        EventComponentFail,
			Description: r.ComponentFailureReason,
			Metadata: map[string]any{
				"process":     r.Process,
				"temperature": r.Temperature,
				"overridden":  r.Overridden,
			},
		})
	}
}

func (s *SimulatorService) appendEvent(ctx context.Context, ev models.MachineEvent) {
	if err := s.events.Append(ctx, ev); err != nil && s.log != nil {
		s.log.Errorw("event_append_failed", "type", ev.Type, "machine", ev.MachineID, "err", err)
	}
}

// publish forwards r to every sink; a failing sink does not stop the others.
func (s *SimulatorService) publish(ctx context.Context, r models.Reading) {
	for _, p := range s.publishers {
		if err := p.Publish(ctx, r); err != nil && s.log != nil {
			s.log.Warnw("reading_publish_failed", "machine", r.MachineID, "err", err)
		}
	}
}
