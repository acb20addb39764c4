package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"machine_monitoring/internal/logger"
	"machine_monitoring/internal/models"
)

const (
	DefaultURL     = "http://localhost:8080/api/sensors"
	defaultTimeout = 5 * time.Second
)

// SensorClient reads the sample sensor payload from a running service.
type SensorClient struct {
	url string
	h   *http.Client
	log *logger.Logger
}

// NewSensorClient targets the full endpoint URL, e.g. DefaultURL.
func NewSensorClient(url string, timeout time.Duration, log *logger.Logger) *SensorClient {
	if strings.TrimSpace(url) == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SensorClient{
		url: url,
		h:   &http.Client{Timeout: timeout},
		log: log,
	}
}

// Fetch calls the sensors endpoint and decodes the machine map.
func (c *SensorClient) Fetch(ctx context.Context) (map[string]models.SensorSnapshot, error) {
	url := c.url
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.h.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%s returned %d: %s", url, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out map[string]models.SensorSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	if out == nil {
		out = map[string]models.SensorSnapshot{}
	}
	return out, nil
}

// Load never fails: on any error it logs, returns an empty map and a
// human-readable message for display.
func (c *SensorClient) Load(ctx context.Context) (map[string]models.SensorSnapshot, string) {
	data, err := c.Fetch(ctx)
	if err != nil {
		c.log.Errorw("sensor_fetch_failed", "url", c.url, "err", err)
		return map[string]models.SensorSnapshot{}, fmt.Sprintf("Error fetching data: %v", err)
	}
	return data, ""
}
