package models

import "time"

// Consumption evaluation buckets.
const (
	EvaluationGood     = "Good"
	EvaluationModerate = "Moderate"
	EvaluationHigh     = "High"
)

// Machine status values.
const (
	StatusOperating           = "Operating"
	StatusIdle                = "Idle"
	StatusMaintenanceRequired = "Maintenance Required"
)

// Component check results.
const (
	ComponentPass = "Pass"
	ComponentFail = "Fail"
)

// Reading is one simulation tick for one machine. It is never mutated after
// the generator returns it.
type Reading struct {
	MachineID              string    `json:"device_id"`
	Process                string    `json:"heat_treatment_process"`
	Temperature            float64   `json:"temperature"`                 // °C
	Pressure               float64   `json:"pressure"`                    // bar
	Humidity               int       `json:"humidity"`                    // %
	Vibration              float64   `json:"vibration"`                   // m/s²
	ConsumptionKWh         float64   `json:"electricity_consumption_kwh"` // kWh
	Cost                   float64   `json:"electricity_cost_zar"`        // ZAR
	EmissionsKg            float64   `json:"carbon_emissions_kg"`         // kg CO2
	Evaluation             string    `json:"consumption_evaluation"`      // Good | Moderate | High
	Status                 string    `json:"status"`                      // Operating | Idle | Maintenance Required
	ComponentStatus        string    `json:"component_status"`            // Pass | Fail
	ComponentFailureReason string    `json:"component_failure_reason,omitempty"`
	Overridden             bool      `json:"temperature_overridden,omitempty"`
	Timestamp              time.Time `json:"timestamp"`
}
