package models

import "time"

// TemperatureOverride is a manual temperature pinned for one machine.
type TemperatureOverride struct {
	MachineID    string    `json:"device_id"`
	TemperatureC float64   `json:"temperature"`
	UpdatedAt    time.Time `json:"updated_at"`
}
