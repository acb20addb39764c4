package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"machine_monitoring/internal/models"
	"machine_monitoring/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = service.DefaultPollInterval
	maxInterval      = 60 * time.Second
	maxIntervalMilli = 60_000
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict to the dashboard origin once it has a fixed host
}

// @Summary      Chart stream
// @Description  Upgrades to a WebSocket and pushes the selected chart for one machine every interval.
// @Tags         charts
// @Param        machine      query  string  true   "Machine id"  example(Machine-1)
// @Param        chart        query  string  false  "Chart slug or label (default temperature)"
// @Param        interval     query  string  false  "Push interval, Go duration up to 60s (default 5s)"
// @Param        interval_ms  query  int     false  "Push interval in milliseconds"
// @Success      101
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	machineID := strings.TrimSpace(c.Query("machine"))
	chartType := c.Query("chart")
	if machineID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'machine' is required"})
		return
	}
	// Reject unknown machines and chart types before upgrading.
	first, err := h.services.Monitoring.Chart(machineID, chartType)
	if err != nil {
		h.respondServiceError(c, err, errLoadReadings, "ws_chart_failed", "machine", machineID)
		return
	}
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	if err := h.writeChart(conn, first); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendChart(conn, machineID, chartType); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "machine", machineID, "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// sendChart rebuilds the chart; a build failure is reported to the client
// before the stream closes.
func (h *Handler) sendChart(conn *websocket.Conn, machineID, chartType string) error {
	chart, err := h.services.Monitoring.Chart(machineID, chartType)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_chart_failed", "machine", machineID, "err", err)
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: err.Error()})
		return err
	}
	return h.writeChart(conn, chart)
}

func (h *Handler) writeChart(conn *websocket.Conn, chart models.Chart) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: "chart", Data: chart})
}
