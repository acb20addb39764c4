package service

import "time"

// LogFilter supports history filtering by time range, type and machine.
type LogFilter struct {
	From      time.Time // inclusive; zero means no lower bound
	To        time.Time // inclusive; zero means no upper bound
	Type      string    // "", "MAINTENANCE_REQUIRED", "COMPONENT_FAIL", "OVERRIDE_SET", "OVERRIDE_CLEARED"
	MachineID string
}

// Event types written to the machine log.
const (
	EventMaintenanceRequired = "MAINTENANCE_REQUIRED"
	EventComponentFail       = "COMPONENT_FAIL"
	EventOverrideSet         = "OVERRIDE_SET"
	EventOverrideCleared     = "OVERRIDE_CLEARED"
)
