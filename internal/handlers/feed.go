package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errFeedDisabled = "broker feed is not enabled"

// @Summary      Latest broker readings
// @Description  Most recent message received per device on the MQTT feed.
// @Tags         feed
// @Produce      json
// @Success      200  {object}  map[string]models.Reading
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/feed [get]
// @Security     BearerAuth
func (h *Handler) getFeed(c *gin.Context) {
	if h.services.Feed == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errFeedDisabled})
		return
	}
	c.JSON(http.StatusOK, h.services.Feed.All())
}

// @Summary      Latest broker reading for one device
// @Tags         feed
// @Produce      json
// @Param        id   path      string  true  "Device id"
// @Success      200  {object}  models.Reading
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/feed/{id} [get]
// @Security     BearerAuth
func (h *Handler) getFeedMachine(c *gin.Context) {
	if h.services.Feed == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errFeedDisabled})
		return
	}
	id := c.Param("id")
	r, ok := h.services.Feed.Latest(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data received for " + id})
		return
	}
	c.JSON(http.StatusOK, r)
}
