package models

import "time"

// Chart kinds.
const (
	ChartLine = "line"
	ChartPie  = "pie"
)

// Chart is a render-ready description of one dashboard graph.
type Chart struct {
	Type      string   `json:"type"`
	Title     string   `json:"title"`
	Kind      string   `json:"kind"` // line | pie
	MachineID string   `json:"device_id"`
	XLabel    string   `json:"x_label,omitempty"`
	YLabel    string   `json:"y_label,omitempty"`
	Series    []Series `json:"series,omitempty"`
	Slices    []Slice  `json:"slices,omitempty"`
}

// Series is one line of a line chart.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Point is one (time, value) sample.
type Point struct {
	X time.Time `json:"x"`
	Y float64   `json:"y"`
}

// Slice is one segment of a pie chart.
type Slice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
