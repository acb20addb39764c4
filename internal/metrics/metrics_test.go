package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"machine_monitoring/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveReading(models.Reading{MachineID: "Machine-1"})
	m.SetHourlyTotal(models.HourlyTotal{MachineID: "Machine-1"})
	m.FeedMessage(FeedAccepted)
	m.PublishFailed("mqtt")
	if m.Registry() != nil {
		t.Fatal("nil metrics should have no registry")
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", rec.Code)
	}
}

func TestObserveReading(t *testing.T) {
	m := New()
	m.ObserveReading(models.Reading{
		MachineID: "Machine-1", Process: "Annealing", Temperature: 1000,
		ConsumptionKWh: 12.5, Status: models.StatusOperating, ComponentStatus: models.ComponentFail,
	})
	m.ObserveReading(models.Reading{
		MachineID: "Machine-1", Process: "Annealing", Temperature: 850,
		Status: models.StatusOperating, ComponentStatus: models.ComponentPass,
	})
	m.SetHourlyTotal(models.HourlyTotal{MachineID: "Machine-1", TotalCost: 41.8})

	if v := testutil.ToFloat64(m.readingsTotal.WithLabelValues("Machine-1", models.StatusOperating)); v != 2 {
		t.Fatalf("readings_total=%v, want 2", v)
	}
	if v := testutil.ToFloat64(m.temperature.WithLabelValues("Machine-1")); v != 850 {
		t.Fatalf("temperature=%v, want last value 850", v)
	}
	if v := testutil.ToFloat64(m.componentFails.WithLabelValues("Machine-1", "Annealing")); v != 1 {
		t.Fatalf("component_failures_total=%v, want 1", v)
	}
	if v := testutil.ToFloat64(m.hourlyCost.WithLabelValues("Machine-1")); v != 41.8 {
		t.Fatalf("hourly_cost=%v", v)
	}
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/machines/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/machines/Machine-1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if v := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/machines/:id", "418")); v != 1 {
		t.Fatalf("route counter=%v, want 1", v)
	}
	if v := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("unmatched", "404")); v != 1 {
		t.Fatalf("unmatched counter=%v, want 1", v)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if rec.Code != http.StatusOK || !strings.Contains(string(body), "htm_http_requests_total") {
		t.Fatalf("exposition missing counters: %d %s", rec.Code, body)
	}
}
