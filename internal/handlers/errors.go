package handlers

import (
	"errors"
	"net/http"

	"machine_monitoring/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errLoadReadings   = "failed to load readings"
	errLoadOverride   = "failed to load override"
	errSaveOverride   = "failed to save override"
	errClearOverride  = "failed to clear override"
	errLoadOverrides  = "failed to load overrides"
	errLoadLogs       = "failed to load logs"
	errInvalidBodyPre = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps domain errors to 4xx and everything else to 500.
func (h *Handler) respondServiceError(c *gin.Context, err error, fallbackMsg, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrUnknownMachine):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownChart), errors.Is(err, service.ErrInvalidOverride):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, fallbackMsg, logKey, err, kv...)
	}
}
