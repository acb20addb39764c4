package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"machine_monitoring/internal/client"
	"machine_monitoring/internal/config"
	"machine_monitoring/internal/logger"
	"machine_monitoring/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get(cfg.LogLevel).Named("sensors_cli")

	c := client.NewSensorClient(cfg.Sensors.APIURL, cfg.Sensors.Timeout, log)
	data, msg := c.Load(context.Background())

	fmt.Println(titleStyle.Render("Machine Monitoring Dashboard"))
	if msg != "" {
		fmt.Println(errStyle.Render(msg))
	}
	fmt.Println(render(data))
}

func render(data map[string]models.SensorSnapshot) string {
	if len(data) == 0 {
		return dimStyle.Render("No sensor data available.")
	}

	ids := make([]string, 0, len(data))
	for id := range data {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Machine", "Temperature (°C)", "Pressure (bar)", "Humidity (%)", "Vibration (m/s²)").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, id := range ids {
		s := data[id]
		t.Row(
			id,
			strconv.FormatFloat(s.Temperature, 'f', 1, 64),
			strconv.FormatFloat(s.Pressure, 'f', 1, 64),
			strconv.Itoa(s.Humidity),
			strconv.FormatFloat(s.Vibration, 'f', 1, 64),
		)
	}
	return t.Render()
}
