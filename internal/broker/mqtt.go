package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"machine_monitoring/internal/config"
	"machine_monitoring/internal/logger"
	"machine_monitoring/internal/metrics"
	"machine_monitoring/internal/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
)

var ErrPublishTimeout = errors.New("mqtt publish timed out")

// ConnectHooks holds callbacks run on every successful (re)connect. Callbacks
// may be added after the client exists. A clean-session reconnect drops all
// subscriptions on the broker side.
type ConnectHooks struct {
	mu  sync.Mutex
	fns []func()
}

func (h *ConnectHooks) Add(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, fn)
}

func (h *ConnectHooks) fire() {
	if h == nil {
		return
	}
	h.mu.Lock()
	fns := make([]func(), len(h.fns))
	copy(fns, h.fns)
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// ConnectMQTT dials the broker described by cfg and blocks until the session
// is established or the connect timeout passes. hooks may be nil.
func ConnectMQTT(cfg config.MQTTConfig, log *logger.Logger, hooks *ConnectHooks) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			if log != nil {
				log.Warnw("mqtt_connection_lost", "err", err)
			}
		}).
		SetOnConnectHandler(func(_ mqtt.Client) {
			if log != nil {
				log.Infow("mqtt_connected", "broker", cfg.Broker)
			}
			hooks.fire()
		})
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username).SetPassword(cfg.Password)
	}

	c := mqtt.NewClient(opts)
	token := c.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("connect to %s: timed out", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Broker, err)
	}
	return c, nil
}

// tokenPublisher is the part of mqtt.Client the publisher needs.
type tokenPublisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTPublisher sends each reading as JSON to a per-machine topic at QoS 0.
type MQTTPublisher struct {
	client  tokenPublisher
	topic   string
	metrics *metrics.Metrics
}

// NewMQTTPublisher builds a publisher. topicPattern may contain one %s for the
// machine id; a pattern without it is used as-is.
func NewMQTTPublisher(client mqtt.Client, topicPattern string, m *metrics.Metrics) *MQTTPublisher {
	return &MQTTPublisher{client: client, topic: topicPattern, metrics: m}
}

func (p *MQTTPublisher) topicFor(machineID string) string {
	if strings.Contains(p.topic, "%s") {
		return fmt.Sprintf(p.topic, machineID)
	}
	return p.topic
}

func (p *MQTTPublisher) Publish(ctx context.Context, r models.Reading) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal reading: %w", err)
	}

	token := p.client.Publish(p.topicFor(r.MachineID), 0, false, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		p.metrics.PublishFailed("mqtt")
		return ctx.Err()
	case <-time.After(publishTimeout):
		p.metrics.PublishFailed("mqtt")
		return ErrPublishTimeout
	}
	if err := token.Error(); err != nil {
		p.metrics.PublishFailed("mqtt")
		return fmt.Errorf("publish %s: %w", r.MachineID, err)
	}
	return nil
}
