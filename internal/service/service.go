package service

import (
	"context"
	"math/rand"
	"time"

	"machine_monitoring/internal/logger"
	"machine_monitoring/internal/metrics"
	"machine_monitoring/internal/models"
	"machine_monitoring/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Generator produces one synthetic reading per call.
type Generator interface {
	Generate(machineID string, override *float64) models.Reading
}

// Monitoring exposes the aggregated session buffers and chart series.
type Monitoring interface {
	Machines() []string
	Readings(machineID string) ([]models.Reading, error)
	Hourly(machineID string) ([]models.HourlyTotal, error)
	Chart(machineID, chartType string) (models.Chart, error)
}

// Overrides manages the manual temperature override per machine.
type Overrides interface {
	Get(ctx context.Context, machineID string) (*models.TemperatureOverride, error)
	Set(ctx context.Context, machineID string, tempC float64) (models.TemperatureOverride, error)
	Clear(ctx context.Context, machineID string) error
	List(ctx context.Context) ([]models.TemperatureOverride, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.MachineEvent, error)
}

// Simulator runs the poll loop until ctx is canceled.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Sensors serves the static sample payload.
type Sensors interface {
	Snapshot() map[string]models.SensorSnapshot
}

// Feed exposes the latest readings received from the broker.
type Feed interface {
	Latest(machineID string) (models.Reading, bool)
	All() map[string]models.Reading
}

// ReadingPublisher forwards generated readings to an external sink.
type ReadingPublisher interface {
	Publish(ctx context.Context, r models.Reading) error
}

type Service struct {
	Monitoring
	Overrides
	EventLog
	Simulator
	Authorization
	Sensors
	Feed Feed
}

// Options carries the non-repository dependencies of the service layer.
type Options struct {
	Machines        []string
	HistoryLimit    int
	HourlyRetention time.Duration
	SigningKey      string
	TokenTTL        time.Duration
	RandSource      rand.Source
	Publishers      []ReadingPublisher
	Feed            Feed
	Metrics         *metrics.Metrics
	Log             *logger.Logger
}

// NewService wires the repository layer and session state into services.
// The aggregator is created here and shared by the simulator (writer) and
// monitoring (reader).
func NewService(repos *repository.Repository, opts Options) *Service {
	src := opts.RandSource
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	registry := NewMachineRegistry(opts.Machines)
	aggregator := NewAggregator(opts.HistoryLimit, opts.HourlyRetention)
	generator := NewGeneratorService(src)

	return &Service{
		Monitoring: NewMonitoringService(registry, aggregator),
		Overrides:  NewOverrideService(registry, repos.OverrideRepo, repos.EventRepo, opts.Log),
		EventLog:   NewEventLogService(repos.EventRepo),
		Simulator: NewSimulatorService(SimulatorDeps{
			Registry:   registry,
			Generator:  generator,
			Aggregator: aggregator,
			Overrides:  repos.OverrideRepo,
			Events:     repos.EventRepo,
			Publishers: opts.Publishers,
			Metrics:    opts.Metrics,
			Log:        opts.Log,
		}),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
		Sensors:       NewSensorService(),
		Feed:          opts.Feed,
	}
}
