package models

// SensorSnapshot is the compact per-machine sample served by the sensors API.
type SensorSnapshot struct {
	Temperature float64 `json:"temperature"`
	Pressure    float64 `json:"pressure"`
	Humidity    int     `json:"humidity"`
	Vibration   float64 `json:"vibration"`
}
