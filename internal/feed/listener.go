package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"machine_monitoring/internal/logger"
	"machine_monitoring/internal/metrics"
	"machine_monitoring/internal/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	DefaultTopic     = "devices/+/messages/events/#"
	defaultQueueSize = 128
	subscribeTimeout = 10 * time.Second
)

var errMissingDeviceID = errors.New("missing device_id")

// timestampLayouts are tried in order for the payload's timestamp string.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
}

// subscriber is the part of mqtt.Client the listener needs.
type subscriber interface {
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
	Unsubscribe(topics ...string) mqtt.Token
}

// Listener subscribes to the device topic and feeds decoded readings to the
// Store. The paho callback only decodes and enqueues; Run owns all writes.
type Listener struct {
	client  subscriber
	topic   string
	store   *Store
	queue   chan models.Reading
	resub   chan struct{}
	now     func() time.Time
	metrics *metrics.Metrics
	log     *logger.Logger
}

func NewListener(client mqtt.Client, topic string, store *Store, m *metrics.Metrics, log *logger.Logger) *Listener {
	return newListener(client, topic, store, m, log)
}

func newListener(client subscriber, topic string, store *Store, m *metrics.Metrics, log *logger.Logger) *Listener {
	if strings.TrimSpace(topic) == "" {
		topic = DefaultTopic
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Listener{
		client:  client,
		topic:   topic,
		store:   store,
		queue:   make(chan models.Reading, defaultQueueSize),
		resub:   make(chan struct{}, 1),
		now:     time.Now,
		metrics: m,
		log:     log,
	}
}

// Resubscribe asks Run to subscribe again. It is meant as an on-connect hook
// and never blocks; repeated calls before Run picks one up collapse into one.
func (l *Listener) Resubscribe() {
	select {
	case l.resub <- struct{}{}:
	default:
	}
}

// Run subscribes and applies queued readings to the store until ctx is done.
// Only the first subscribe is fatal; later ones are logged and retried on the
// next reconnect.
func (l *Listener) Run(ctx context.Context) error {
	handler := l.handleMessage(ctx)
	if err := l.subscribe(handler); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			l.client.Unsubscribe(l.topic).WaitTimeout(time.Second)
			l.log.Infow("feed_stopped")
			return nil
		case <-l.resub:
			if err := l.subscribe(handler); err != nil {
				l.log.Errorw("feed_resubscribe_failed", "topic", l.topic, "err", err)
			}
		case r := <-l.queue:
			l.store.put(r)
		}
	}
}

func (l *Listener) subscribe(handler mqtt.MessageHandler) error {
	token := l.client.Subscribe(l.topic, 0, handler)
	if !token.WaitTimeout(subscribeTimeout) {
		return fmt.Errorf("subscribe %s: timed out", l.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe %s: %w", l.topic, err)
	}
	l.log.Infow("feed_subscribed", "topic", l.topic)
	return nil
}

func (l *Listener) handleMessage(ctx context.Context) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		r, err := decodePayload(msg.Payload(), l.now())
		if err != nil {
			result := metrics.FeedDecodeError
			if errors.Is(err, errMissingDeviceID) {
				result = metrics.FeedMissingID
			}
			l.metrics.FeedMessage(result)
			l.log.Warnw("feed_message_dropped", "topic", msg.Topic(), "reason", result, "err", err)
			return
		}

		select {
		case l.queue <- r:
			l.metrics.FeedMessage(metrics.FeedAccepted)
			l.log.Debugw("feed_message_received", "machine", r.MachineID)
		case <-ctx.Done():
			l.metrics.FeedMessage(metrics.FeedDropped)
		}
	}
}

// wireReading loosens the device payload: humidity may be fractional and the
// timestamp may be a string or epoch seconds.
type wireReading struct {
	models.Reading
	Humidity  *float64        `json:"humidity"`
	Timestamp json.RawMessage `json:"timestamp"`
}

// decodePayload parses a device message. A missing or unparsable timestamp
// is replaced by the receive time.
func decodePayload(payload []byte, received time.Time) (models.Reading, error) {
	var w wireReading
	if err := json.Unmarshal(payload, &w); err != nil {
		return models.Reading{}, fmt.Errorf("decode payload: %w", err)
	}
	if strings.TrimSpace(w.MachineID) == "" {
		return models.Reading{}, errMissingDeviceID
	}

	r := w.Reading
	if w.Humidity != nil {
		r.Humidity = int(math.Round(*w.Humidity))
	}
	r.Timestamp = received.UTC()
	if ts, ok := parseTimestamp(w.Timestamp); ok {
		r.Timestamp = ts
	}
	return r, nil
}

func parseTimestamp(raw json.RawMessage) (time.Time, bool) {
	if len(raw) == 0 {
		return time.Time{}, false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.UTC(), true
			}
		}
		return time.Time{}, false
	}
	var secs float64
	if err := json.Unmarshal(raw, &secs); err == nil && secs > 0 {
		whole, frac := math.Modf(secs)
		return time.Unix(int64(whole), int64(frac*1e9)).UTC(), true
	}
	return time.Time{}, false
}
