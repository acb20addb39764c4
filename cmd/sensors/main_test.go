package main

import (
	"strings"
	"testing"

	"machine_monitoring/internal/models"
)

func TestRender(t *testing.T) {
	out := render(map[string]models.SensorSnapshot{
		"Machine-2": {Temperature: 85, Pressure: 2, Humidity: 50, Vibration: 0.6},
		"Machine-1": {Temperature: 75, Pressure: 1.8, Humidity: 45, Vibration: 0.5},
	})
	for _, want := range []string{"Machine-1", "Machine-2", "75.0", "1.8", "45", "0.6"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Machine-1") > strings.Index(out, "Machine-2") {
		t.Fatalf("rows should be sorted by machine id")
	}

	if empty := render(nil); !strings.Contains(empty, "No sensor data") {
		t.Fatalf("empty render=%q", empty)
	}
}
