package service

import "machine_monitoring/internal/models"

type MonitoringService struct {
	registry   *MachineRegistry
	aggregator *Aggregator
}

func NewMonitoringService(registry *MachineRegistry, aggregator *Aggregator) *MonitoringService {
	return &MonitoringService{registry: registry, aggregator: aggregator}
}

// Machines returns the configured machine ids.
func (s *MonitoringService) Machines() []string {
	return s.registry.IDs()
}

// Readings returns the machine's recent history, oldest first.
func (s *MonitoringService) Readings(machineID string) ([]models.Reading, error) {
	if err := s.registry.Check(machineID); err != nil {
		return nil, err
	}
	return s.aggregator.History(machineID), nil
}

// Hourly returns the machine's hourly totals ordered by hour.
func (s *MonitoringService) Hourly(machineID string) ([]models.HourlyTotal, error) {
	if err := s.registry.Check(machineID); err != nil {
		return nil, err
	}
	return s.aggregator.Hourly(machineID), nil
}

// Chart builds the series for the selected chart type.
func (s *MonitoringService) Chart(machineID, chartType string) (models.Chart, error) {
	if err := s.registry.Check(machineID); err != nil {
		return models.Chart{}, err
	}
	spec, err := LookupChart(chartType)
	if err != nil {
		return models.Chart{}, err
	}
	return spec.build(machineID, s.aggregator.History(machineID), s.aggregator.Hourly(machineID)), nil
}
