package service

import "machine_monitoring/internal/models"

// Tariff and emission constants applied to every reading.
const (
	ElectricityTariffZARPerKWh = 2.20
	EmissionsFactorKgPerKWh    = 0.9
)

// Consumption thresholds (kWh) for the Good/Moderate/High evaluation.
const (
	goodConsumptionBelow     = 5.0
	moderateConsumptionBelow = 15.0
)

// HeatTreatmentProcesses is the fixed process table, in selection order.
var HeatTreatmentProcesses = []models.Process{
	{Name: "Annealing", MinTempC: 800, MaxTempC: 900, DurationMinutes: 3},
	{Name: "Quenching", MinTempC: 800, MaxTempC: 900, DurationMinutes: 3},
	{Name: "Tempering", MinTempC: 150, MaxTempC: 650, DurationMinutes: 3},
	{Name: "Normalizing", MinTempC: 850, MaxTempC: 950, DurationMinutes: 3},
	{Name: "Hardening", MinTempC: 800, MaxTempC: 900, DurationMinutes: 3},
}

// LookupProcess finds a process by name.
func LookupProcess(name string) (models.Process, bool) {
	for _, p := range HeatTreatmentProcesses {
		if p.Name == name {
			return p, true
		}
	}
	return models.Process{}, false
}
