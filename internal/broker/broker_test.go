package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"machine_monitoring/internal/config"
	"machine_monitoring/internal/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/segmentio/kafka-go"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func completedToken(err error) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

func (t *fakeToken) Wait() bool                     { <-t.done; return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type fakeMQTT struct {
	topics   []string
	qos      []byte
	payloads [][]byte
	token    mqtt.Token
}

func (f *fakeMQTT) Publish(topic string, qos byte, _ bool, payload interface{}) mqtt.Token {
	f.topics = append(f.topics, topic)
	f.qos = append(f.qos, qos)
	f.payloads = append(f.payloads, payload.([]byte))
	return f.token
}

func sampleReading() models.Reading {
	return models.Reading{
		MachineID:       "Machine-4",
		Process:         "Tempering",
		Temperature:     420,
		Humidity:        55,
		ConsumptionKWh:  12,
		Cost:            26.4,
		Status:          models.StatusOperating,
		ComponentStatus: models.ComponentPass,
		Timestamp:       time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestMQTTPublisher_Publish(t *testing.T) {
	client := &fakeMQTT{token: completedToken(nil)}
	p := &MQTTPublisher{client: client, topic: "devices/%s/messages/events/readings"}

	if err := p.Publish(context.Background(), sampleReading()); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(client.topics) != 1 || client.topics[0] != "devices/Machine-4/messages/events/readings" {
		t.Fatalf("topics=%v", client.topics)
	}
	if client.qos[0] != 0 {
		t.Fatalf("qos=%d, want 0", client.qos[0])
	}

	var decoded map[string]any
	if err := json.Unmarshal(client.payloads[0], &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["device_id"] != "Machine-4" || decoded["heat_treatment_process"] != "Tempering" {
		t.Fatalf("payload keys=%v", decoded)
	}
}

func TestMQTTPublisher_FixedTopicAndErrors(t *testing.T) {
	client := &fakeMQTT{token: completedToken(errors.New("not connected"))}
	p := &MQTTPublisher{client: client, topic: "readings"}

	if err := p.Publish(context.Background(), sampleReading()); err == nil {
		t.Fatal("expected token error")
	}
	if client.topics[0] != "readings" {
		t.Fatalf("topic=%q", client.topics[0])
	}

	pending := &fakeToken{done: make(chan struct{})}
	p.client = &fakeMQTT{token: pending}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Publish(ctx, sampleReading()); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}

type fakeKafkaWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeKafkaWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeKafkaWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_KeyedByMachine(t *testing.T) {
	w := &fakeKafkaWriter{}
	p := newKafkaPublisherWithWriter(w, nil)

	r := sampleReading()
	if err := p.Publish(context.Background(), r); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("messages=%d", len(w.msgs))
	}
	msg := w.msgs[0]
	if string(msg.Key) != "Machine-4" || !msg.Time.Equal(r.Timestamp) {
		t.Fatalf("key=%q time=%v", msg.Key, msg.Time)
	}
	var back models.Reading
	if err := json.Unmarshal(msg.Value, &back); err != nil || back.Temperature != 420 {
		t.Fatalf("value=%s err=%v", msg.Value, err)
	}

	w.err = errors.New("leader not available")
	if err := p.Publish(context.Background(), r); err == nil {
		t.Fatal("expected write error")
	}
	if err := p.Close(); err != nil || !w.closed {
		t.Fatal("Close should close the writer")
	}
}

// stalledKafkaWriter blocks like a writer retrying against an unreachable broker.
type stalledKafkaWriter struct{}

func (stalledKafkaWriter) WriteMessages(ctx context.Context, _ ...kafka.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stalledKafkaWriter) Close() error { return nil }

func TestKafkaPublisher_BoundedByTimeout(t *testing.T) {
	p := newKafkaPublisherWithWriter(stalledKafkaWriter{}, nil)
	p.timeout = 20 * time.Millisecond

	start := time.Now()
	err := p.Publish(context.Background(), sampleReading())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err=%v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Publish blocked for %s", elapsed)
	}
}

func TestNewKafkaPublisher_Validation(t *testing.T) {
	if _, err := NewKafkaPublisher(configKafka("", "localhost:9092"), nil); err == nil {
		t.Fatal("expected empty topic error")
	}
	if _, err := NewKafkaPublisher(configKafka("machine-readings"), nil); err == nil {
		t.Fatal("expected missing brokers error")
	}
	p, err := NewKafkaPublisher(configKafka("machine-readings", "localhost:9092"), nil)
	if err != nil || p == nil {
		t.Fatalf("NewKafkaPublisher: %v", err)
	}
	_ = p.Close()
}

func configKafka(topic string, brokers ...string) config.KafkaConfig {
	return config.KafkaConfig{Enabled: true, Topic: topic, Brokers: brokers}
}

func TestConnectHooks_FireRunsEveryCallback(t *testing.T) {
	var nilHooks *ConnectHooks
	nilHooks.fire()

	hooks := &ConnectHooks{}
	var calls []string
	hooks.Add(func() { calls = append(calls, "feed") })
	hooks.Add(func() { calls = append(calls, "audit") })

	hooks.fire()
	hooks.fire()

	if len(calls) != 4 || calls[0] != "feed" || calls[1] != "audit" {
		t.Fatalf("calls=%v", calls)
	}
}
