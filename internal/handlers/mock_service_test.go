package handlers

import (
	"context"
	"net/http"
	"time"

	"machine_monitoring/internal/models"
	"machine_monitoring/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockMonitoring struct {
	machines []string
	readings []models.Reading
	hourly   []models.HourlyTotal
	chart    models.Chart
	err      error

	chartCalls    int
	failAfter     int // Chart starts failing after this many calls when > 0
	lastChartType string
}

func (m *mockMonitoring) Machines() []string { return m.machines }

func (m *mockMonitoring) Readings(string) ([]models.Reading, error) {
	return m.readings, m.err
}

func (m *mockMonitoring) Hourly(string) ([]models.HourlyTotal, error) {
	return m.hourly, m.err
}

func (m *mockMonitoring) Chart(machineID, chartType string) (models.Chart, error) {
	m.chartCalls++
	m.lastChartType = chartType
	if m.err != nil {
		return models.Chart{}, m.err
	}
	if m.failAfter > 0 && m.chartCalls > m.failAfter {
		return models.Chart{}, service.ErrUnknownMachine
	}
	c := m.chart
	c.MachineID = machineID
	return c, nil
}

type mockOverrides struct {
	current  *models.TemperatureOverride
	list     []models.TemperatureOverride
	err      error
	lastSet  float64
	setCalls int
	cleared  []string
}

func (m *mockOverrides) Get(context.Context, string) (*models.TemperatureOverride, error) {
	return m.current, m.err
}

func (m *mockOverrides) Set(_ context.Context, machineID string, tempC float64) (models.TemperatureOverride, error) {
	m.setCalls++
	m.lastSet = tempC
	if m.err != nil {
		return models.TemperatureOverride{}, m.err
	}
	return models.TemperatureOverride{MachineID: machineID, TemperatureC: tempC, UpdatedAt: time.Unix(0, 0).UTC()}, nil
}

func (m *mockOverrides) Clear(_ context.Context, machineID string) error {
	m.cleared = append(m.cleared, machineID)
	return m.err
}

func (m *mockOverrides) List(context.Context) ([]models.TemperatureOverride, error) {
	return m.list, m.err
}

type mockEventLog struct {
	resp        []models.MachineEvent
	err         error
	lastFrom    time.Time
	lastTo      time.Time
	lastType    string
	lastMachine string
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.MachineEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	m.lastMachine = f.MachineID
	return m.resp, m.err
}

type mockFeed struct {
	latest map[string]models.Reading
}

func (m *mockFeed) Latest(id string) (models.Reading, bool) {
	r, ok := m.latest[id]
	return r, ok
}

func (m *mockFeed) All() map[string]models.Reading { return m.latest }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func withAuth(req *http.Request) *http.Request {
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
