package service

import (
	"context"
	"sync"
	"time"

	"machine_monitoring/internal/models"
	"machine_monitoring/internal/repository"
)

// fakeEventRepo records appends and List filters.
type fakeEventRepo struct {
	mu        sync.Mutex
	appended  []models.MachineEvent
	appendErr error

	gotFilter repository.EventFilter
	events    []models.MachineEvent
	listErr   error
	calls     int
}

func (f *fakeEventRepo) Append(_ context.Context, e models.MachineEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(_ context.Context, filter repository.EventFilter) ([]models.MachineEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotFilter = filter
	return f.events, f.listErr
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.appended))
	for _, e := range f.appended {
		out = append(out, e.Type)
	}
	return out
}

// fakeOverrideRepo is an in-memory repository.OverrideRepo.
type fakeOverrideRepo struct {
	mu      sync.Mutex
	data    map[string]models.TemperatureOverride
	loadErr error
	saveErr error
}

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{data: map[string]models.TemperatureOverride{}}
}

func (f *fakeOverrideRepo) Save(_ context.Context, o models.TemperatureOverride) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[o.MachineID] = o
	return nil
}

func (f *fakeOverrideRepo) Load(_ context.Context, machineID string) (*models.TemperatureOverride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	o, ok := f.data[machineID]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (f *fakeOverrideRepo) Delete(_ context.Context, machineID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[machineID]
	delete(f.data, machineID)
	return ok, nil
}

func (f *fakeOverrideRepo) List(_ context.Context) ([]models.TemperatureOverride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.TemperatureOverride, 0, len(f.data))
	for _, o := range f.data {
		out = append(out, o)
	}
	return out, nil
}

// scriptedGenerator returns prepared readings in order, stamping the machine id.
type scriptedGenerator struct {
	readings  []models.Reading
	next      int
	overrides []*float64
}

func (g *scriptedGenerator) Generate(machineID string, override *float64) models.Reading {
	g.overrides = append(g.overrides, override)
	r := g.readings[g.next%len(g.readings)]
	g.next++
	r.MachineID = machineID
	return r
}

// recordingPublisher captures published readings.
type recordingPublisher struct {
	mu   sync.Mutex
	got  []models.Reading
	fail error
}

func (p *recordingPublisher) Publish(_ context.Context, r models.Reading) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, r)
	return p.fail
}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 3, hour, minute, 0, 0, time.UTC)
}
