package handlers

import (
	"net/http"

	"machine_monitoring/internal/service"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Sample sensor values
// @Description  Fixed temperature, pressure, humidity and vibration sample for Machine-1..3.
// @Tags         sensors
// @Produce      json
// @Success      200  {object}  map[string]models.SensorSnapshot
// @Router       /api/sensors [get]
func (h *Handler) getSensors(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Sensors.Snapshot())
}

// @Summary      List heat-treatment processes
// @Tags         machines
// @Produce      json
// @Success      200  {array}   models.Process
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/processes [get]
// @Security     BearerAuth
func (h *Handler) getProcesses(c *gin.Context) {
	c.JSON(http.StatusOK, service.HeatTreatmentProcesses)
}

// @Summary      List chart types
// @Description  Slugs and labels accepted by the chart endpoint and the stream.
// @Tags         charts
// @Produce      json
// @Success      200  {array}   service.ChartSpec
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/charts [get]
// @Security     BearerAuth
func (h *Handler) getChartTypes(c *gin.Context) {
	c.JSON(http.StatusOK, service.ChartTypes())
}

// @Summary      List machines
// @Tags         machines
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, machines"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/machines [get]
// @Security     BearerAuth
func (h *Handler) getMachines(c *gin.Context) {
	ids := h.services.Monitoring.Machines()
	c.JSON(http.StatusOK, gin.H{
		"count":    len(ids),
		"machines": ids,
	})
}

// @Summary      Recent readings
// @Description  Up to the configured history limit, oldest first.
// @Tags         machines
// @Produce      json
// @Param        id   path      string  true  "Machine id"  example(Machine-1)
// @Success      200  {object}  map[string]interface{}  "count, readings"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/machines/{id}/readings [get]
// @Security     BearerAuth
func (h *Handler) getReadings(c *gin.Context) {
	id := c.Param("id")
	readings, err := h.services.Monitoring.Readings(id)
	if err != nil {
		h.respondServiceError(c, err, errLoadReadings, "readings_list_failed", "machine", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(readings),
		"readings": readings,
	})
}

// @Summary      Hourly totals
// @Description  Consumption, cost and emissions per hour bucket, ordered by hour.
// @Tags         machines
// @Produce      json
// @Param        id   path      string  true  "Machine id"
// @Success      200  {object}  map[string]interface{}  "count, hourly"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/machines/{id}/hourly [get]
// @Security     BearerAuth
func (h *Handler) getHourly(c *gin.Context) {
	id := c.Param("id")
	totals, err := h.services.Monitoring.Hourly(id)
	if err != nil {
		h.respondServiceError(c, err, errLoadReadings, "hourly_list_failed", "machine", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(totals),
		"hourly": totals,
	})
}

// @Summary      Chart series
// @Description  Series or pie slices for the selected chart type. Empty type means temperature.
// @Tags         charts
// @Produce      json
// @Param        id    path      string  true   "Machine id"
// @Param        type  query     string  false  "Chart slug or label"  Enums(temperature,environment,electricity,evaluation,hourly,status,emissions)
// @Success      200   {object}  models.Chart
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/machines/{id}/chart [get]
// @Security     BearerAuth
func (h *Handler) getChart(c *gin.Context) {
	id := c.Param("id")
	chart, err := h.services.Monitoring.Chart(id, c.Query("type"))
	if err != nil {
		h.respondServiceError(c, err, errLoadReadings, "chart_build_failed", "machine", id)
		return
	}
	c.JSON(http.StatusOK, chart)
}
