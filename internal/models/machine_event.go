package models

import "time"

// MachineEvent is a single log entry.
type MachineEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	MachineID   string    `json:"device_id,omitempty"`
	Type        string    `json:"type"`        // MAINTENANCE_REQUIRED | COMPONENT_FAIL | OVERRIDE_SET | OVERRIDE_CLEARED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
