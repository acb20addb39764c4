package service

import "machine_monitoring/internal/models"

// sampleSensors is the fixed payload served by GET /api/sensors.
var sampleSensors = map[string]models.SensorSnapshot{
	"Machine-1": {Temperature: 75.0, Pressure: 1.8, Humidity: 45, Vibration: 0.5},
	"Machine-2": {Temperature: 85.0, Pressure: 2.0, Humidity: 50, Vibration: 0.6},
	"Machine-3": {Temperature: 65.0, Pressure: 1.5, Humidity: 40, Vibration: 0.4},
}

type SensorService struct{}

func NewSensorService() *SensorService { return &SensorService{} }

// Snapshot returns a copy of the sample payload.
func (SensorService) Snapshot() map[string]models.SensorSnapshot {
	out := make(map[string]models.SensorSnapshot, len(sampleSensors))
	for k, v := range sampleSensors {
		out[k] = v
	}
	return out
}
