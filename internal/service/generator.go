package service

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"machine_monitoring/internal/models"
)

// Draw ranges for the process-independent sensors.
const (
	pressureMinBar    = 1.5
	pressureMaxBar    = 3.0
	humidityMinPct    = 30
	humidityMaxPct    = 70
	vibrationMin      = 0.1
	vibrationMax      = 2.0
	consumptionMinKWh = 10.0
	consumptionMaxKWh = 20.0
	nominalDurationM  = 3.0
)

// Status ladder cut points over a single uniform draw.
const (
	operatingBelow = 0.90
	idleBelow      = 0.95
)

// GeneratorService produces synthetic readings. Safe for concurrent use.
type GeneratorService struct {
	mu        sync.Mutex
	rnd       *rand.Rand
	now       func() time.Time
	processes []models.Process
}

// NewGeneratorService builds a generator drawing from src. When processes is
// empty the standard heat-treatment table is used.
func NewGeneratorService(src rand.Source, processes ...models.Process) *GeneratorService {
	if len(processes) == 0 {
		processes = HeatTreatmentProcesses
	}
	return &GeneratorService{
		rnd:       rand.New(src),
		now:       time.Now,
		processes: processes,
	}
}

// Generate returns one reading for machineID. A non-nil override is used
// verbatim as the temperature, even when it falls outside the process range.
func (g *GeneratorService) Generate(machineID string, override *float64) models.Reading {
	g.mu.Lock()
	defer g.mu.Unlock()

	process := g.processes[g.rnd.Intn(len(g.processes))]

	var temperature float64
	if override != nil {
		temperature = *override
	} else {
		temperature = float64(process.MinTempC + g.rnd.Intn(process.MaxTempC-process.MinTempC+1))
	}

	pressure := g.uniform(pressureMinBar, pressureMaxBar)
	consumption := g.uniform(consumptionMinKWh, consumptionMaxKWh) * (float64(process.DurationMinutes) / nominalDurationM)
	humidity := humidityMinPct + g.rnd.Intn(humidityMaxPct-humidityMinPct+1)
	vibration := g.uniform(vibrationMin, vibrationMax)
	status := statusFor(g.rnd.Float64())

	componentStatus, reason := checkComponent(process, temperature)

	return models.Reading{
		MachineID:              machineID,
		Process:                process.Name,
		Temperature:            temperature,
		Pressure:               pressure,
		Humidity:               humidity,
		Vibration:              vibration,
		ConsumptionKWh:         consumption,
		Cost:                   costFor(consumption),
		EmissionsKg:            emissionsFor(consumption),
		Evaluation:             evaluateConsumption(consumption),
		Status:                 status,
		ComponentStatus:        componentStatus,
		ComponentFailureReason: reason,
		Overridden:             override != nil,
		Timestamp:              g.now().UTC(),
	}
}

// uniform draws from [lo, hi).
func (g *GeneratorService) uniform(lo, hi float64) float64 {
	return lo + g.rnd.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func costFor(consumptionKWh float64) float64 {
	return round2(consumptionKWh * ElectricityTariffZARPerKWh)
}

func emissionsFor(consumptionKWh float64) float64 {
	return round2(consumptionKWh * EmissionsFactorKgPerKWh)
}

func evaluateConsumption(consumptionKWh float64) string {
	switch {
	case consumptionKWh < goodConsumptionBelow:
		return models.EvaluationGood
	case consumptionKWh < moderateConsumptionBelow:
		return models.EvaluationModerate
	default:
		return models.EvaluationHigh
	}
}

// statusFor maps one uniform draw in [0,1) onto the 90/5/5 status ladder.
func statusFor(u float64) string {
	switch {
	case u < operatingBelow:
		return models.StatusOperating
	case u < idleBelow:
		return models.StatusIdle
	default:
		return models.StatusMaintenanceRequired
	}
}

func checkComponent(p models.Process, temperature float64) (status, reason string) {
	if p.InRange(temperature) {
		return models.ComponentPass, ""
	}
	return models.ComponentFail, fmt.Sprintf(
		"temperature %.1f°C outside %s range %d-%d°C",
		temperature, p.Name, p.MinTempC, p.MaxTempC,
	)
}
