package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetOverrideRequest is the body of PUT /machines/{id}/override.
type SetOverrideRequest struct {
	// Temperature in Celsius; values outside the process range are accepted
	// and reported as component failures.
	Temperature *float64 `json:"temperature" binding:"required" example:"850"`
}

// @Summary      Get temperature override
// @Tags         overrides
// @Produce      json
// @Param        id   path      string  true  "Machine id"
// @Success      200  {object}  map[string]interface{}  "machine_id, override (null when unset)"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/machines/{id}/override [get]
// @Security     BearerAuth
func (h *Handler) getOverride(c *gin.Context) {
	id := c.Param("id")
	o, err := h.services.Overrides.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, errLoadOverride, "override_get_failed", "machine", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"machine_id": id,
		"override":   o,
	})
}

// @Summary      Set temperature override
// @Tags         overrides
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Machine id"
// @Param        body  body      SetOverrideRequest  true  "Override payload"
// @Success      200   {object}  models.TemperatureOverride
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/machines/{id}/override [put]
// @Security     BearerAuth
func (h *Handler) setOverride(c *gin.Context) {
	var req SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPre + err.Error()})
		return
	}
	id := c.Param("id")
	o, err := h.services.Overrides.Set(c.Request.Context(), id, *req.Temperature)
	if err != nil {
		h.respondServiceError(c, err, errSaveOverride, "override_set_failed", "machine", id)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary      Clear temperature override
// @Tags         overrides
// @Produce      json
// @Param        id   path      string  true  "Machine id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/machines/{id}/override [delete]
// @Security     BearerAuth
func (h *Handler) clearOverride(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.Overrides.Clear(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err, errClearOverride, "override_clear_failed", "machine", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared", "machine_id": id})
}

// @Summary      List active overrides
// @Tags         overrides
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, overrides"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/overrides [get]
// @Security     BearerAuth
func (h *Handler) listOverrides(c *gin.Context) {
	list, err := h.services.Overrides.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadOverrides, "override_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     len(list),
		"overrides": list,
	})
}
