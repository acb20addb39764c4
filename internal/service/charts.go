package service

import (
	"errors"
	"fmt"
	"strings"

	"machine_monitoring/internal/models"
)

var ErrUnknownChart = errors.New("unknown chart type")

type lineField struct {
	name  string
	value func(models.Reading) float64
}

type hourlyField struct {
	name  string
	value func(models.HourlyTotal) float64
}

// ChartSpec describes how one drop-down entry turns buffers into series.
type ChartSpec struct {
	Slug   string `json:"slug"`
	Label  string `json:"label"`
	Kind   string `json:"kind"`
	title  string
	xLabel string
	yLabel string

	line       []lineField
	hourly     []hourlyField
	category   func(models.Reading) string
	categories []string
}

var chartSpecs = []ChartSpec{
	{
		Slug: "temperature", Label: "Temperature vs. Time", Kind: models.ChartLine,
		title: "Temperature vs. Time", xLabel: "Time", yLabel: "Temperature (°C)",
		line: []lineField{
			{"temperature", func(r models.Reading) float64 { return r.Temperature }},
		},
	},
	{
		Slug: "environment", Label: "Pressure, Humidity & Vibration", Kind: models.ChartLine,
		title: "Pressure, Humidity & Vibration vs. Time", xLabel: "Time",
		line: []lineField{
			{"pressure", func(r models.Reading) float64 { return r.Pressure }},
			{"humidity", func(r models.Reading) float64 { return float64(r.Humidity) }},
			{"vibration", func(r models.Reading) float64 { return r.Vibration }},
		},
	},
	{
		Slug: "electricity", Label: "Electricity Consumption & Cost", Kind: models.ChartLine,
		title: "Electricity Consumption & Cost", xLabel: "Time", yLabel: "Consumption (kWh) / Cost (ZAR)",
		line: []lineField{
			{"electricity_consumption_kwh", func(r models.Reading) float64 { return r.ConsumptionKWh }},
			{"electricity_cost_zar", func(r models.Reading) float64 { return r.Cost }},
		},
	},
	{
		Slug: "evaluation", Label: "Consumption Evaluation", Kind: models.ChartPie,
		title:      "Consumption Evaluation Distribution",
		category:   func(r models.Reading) string { return r.Evaluation },
		categories: []string{models.EvaluationGood, models.EvaluationModerate, models.EvaluationHigh},
	},
	{
		Slug: "hourly", Label: "Hourly Electricity Consumption & Cost", Kind: models.ChartLine,
		title: "Hourly Electricity Consumption & Cost", xLabel: "Hour", yLabel: "Consumption (kWh) / Cost (ZAR)",
		hourly: []hourlyField{
			{"total_consumption_kwh", func(h models.HourlyTotal) float64 { return h.TotalConsumptionKWh }},
			{"total_cost_zar", func(h models.HourlyTotal) float64 { return h.TotalCost }},
			{"total_emissions_kg", func(h models.HourlyTotal) float64 { return h.TotalEmissionsKg }},
		},
	},
	{
		Slug: "status", Label: "Machine Status", Kind: models.ChartPie,
		title:      "Machine Status Distribution",
		category:   func(r models.Reading) string { return r.Status },
		categories: []string{models.StatusOperating, models.StatusIdle, models.StatusMaintenanceRequired},
	},
	{
		Slug: "emissions", Label: "Carbon Emissions", Kind: models.ChartLine,
		title: "Carbon Emissions vs. Time", xLabel: "Time", yLabel: "Emissions (kg CO2)",
		line: []lineField{
			{"carbon_emissions_kg", func(r models.Reading) float64 { return r.EmissionsKg }},
		},
	},
}

// ChartTypes lists the selectable charts in drop-down order.
func ChartTypes() []ChartSpec {
	out := make([]ChartSpec, len(chartSpecs))
	copy(out, chartSpecs)
	return out
}

// LookupChart accepts either a slug ("hourly") or the drop-down label
// ("Hourly Electricity Consumption & Cost"), case-insensitively.
func LookupChart(chartType string) (ChartSpec, error) {
	want := strings.TrimSpace(chartType)
	if want == "" {
		return chartSpecs[0], nil
	}
	for _, s := range chartSpecs {
		if strings.EqualFold(s.Slug, want) || strings.EqualFold(s.Label, want) {
			return s, nil
		}
	}
	return ChartSpec{}, fmt.Errorf("%w: %q", ErrUnknownChart, chartType)
}

func (s ChartSpec) build(machineID string, history []models.Reading, hourly []models.HourlyTotal) models.Chart {
	c := models.Chart{
		Type:      s.Slug,
		Title:     s.title,
		Kind:      s.Kind,
		MachineID: machineID,
		XLabel:    s.xLabel,
		YLabel:    s.yLabel,
	}
	switch {
	case s.category != nil:
		c.Slices = countSlices(history, s.category, s.categories)
	case len(s.hourly) > 0:
		for _, f := range s.hourly {
			points := make([]models.Point, 0, len(hourly))
			for _, h := range hourly {
				points = append(points, models.Point{X: h.Hour, Y: f.value(h)})
			}
			c.Series = append(c.Series, models.Series{Name: f.name, Points: points})
		}
	default:
		for _, f := range s.line {
			points := make([]models.Point, 0, len(history))
			for _, r := range history {
				points = append(points, models.Point{X: r.Timestamp, Y: f.value(r)})
			}
			c.Series = append(c.Series, models.Series{Name: f.name, Points: points})
		}
	}
	return c
}

// countSlices counts readings per category, keeping the given order and
// skipping empty categories.
func countSlices(history []models.Reading, category func(models.Reading) string, order []string) []models.Slice {
	counts := make(map[string]int, len(order))
	for _, r := range history {
		counts[category(r)]++
	}
	out := make([]models.Slice, 0, len(order))
	for _, label := range order {
		if n := counts[label]; n > 0 {
			out = append(out, models.Slice{Label: label, Count: n})
		}
	}
	return out
}
