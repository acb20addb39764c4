package models

import "time"

// HourKey identifies one hourly bucket of one machine.
type HourKey struct {
	MachineID string
	Hour      time.Time
}

// HourlyTotal accumulates consumption, cost and emissions for one hour bucket.
type HourlyTotal struct {
	MachineID           string    `json:"device_id"`
	Hour                time.Time `json:"hour"`
	TotalConsumptionKWh float64   `json:"total_consumption_kwh"`
	TotalCost           float64   `json:"total_cost_zar"`
	TotalEmissionsKg    float64   `json:"total_emissions_kg"`
	Readings            int       `json:"readings"`
}
