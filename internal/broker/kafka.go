package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"machine_monitoring/internal/config"
	"machine_monitoring/internal/metrics"
	"machine_monitoring/internal/models"

	"github.com/segmentio/kafka-go"
)

const kafkaMaxAttempts = 3

type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes readings to one topic keyed by machine id, so every
// machine's readings land on the same partition in order.
type KafkaPublisher struct {
	writer  kafkaMessageWriter
	timeout time.Duration
	metrics *metrics.Metrics
}

func NewKafkaPublisher(cfg config.KafkaConfig, m *metrics.Metrics) (*KafkaPublisher, error) {
	if strings.TrimSpace(cfg.Topic) == "" {
		return nil, errors.New("kafka topic must not be empty")
	}
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		WriteTimeout:           publishTimeout,
		MaxAttempts:            kafkaMaxAttempts,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisherWithWriter(w, m), nil
}

func newKafkaPublisherWithWriter(w kafkaMessageWriter, m *metrics.Metrics) *KafkaPublisher {
	return &KafkaPublisher{writer: w, timeout: publishTimeout, metrics: m}
}

func (p *KafkaPublisher) Publish(ctx context.Context, r models.Reading) error {
	value, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal reading: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(r.MachineID),
		Value: value,
		Time:  r.Timestamp,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}
	// bounded: the poll loop publishes inline
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.metrics.PublishFailed("kafka")
		return fmt.Errorf("write reading %s: %w", r.MachineID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
