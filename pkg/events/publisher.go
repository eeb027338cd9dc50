package events

import (
	"context"
	"errors"
	"sync"

	"github.com/segmentio/kafka-go"

	"resortly/pkg/logger"
)

var (
	ErrPublisherClosed = errors.New("events: publisher is closed")
	ErrEmptyKey        = errors.New("events: message key cannot be empty")
	ErrEmptyValue      = errors.New("events: message value cannot be empty")
)

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// KafkaPublisher writes lifecycle events with hash-by-key balancing so
// per-booking ordering is preserved.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    *logger.Logger

	mu     sync.RWMutex
	closed bool
}

type KafkaConfig struct {
	Brokers     []string
	Topic       string
	MaxAttempts int
}

func NewKafkaPublisher(cfg KafkaConfig, log *logger.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("events: at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("events: topic cannot be empty")
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  cfg.MaxAttempts,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka writer error", "detail", msg)
		}),
	}

	return &KafkaPublisher{writer: writer, log: log}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()
	if closed {
		return ErrPublisherClosed
	}

	if msg.Key == "" {
		return ErrEmptyKey
	}
	if len(msg.Value) == 0 {
		return ErrEmptyValue
	}

	kafkaMsg := kafka.Message{
		Key:   []byte(msg.Key),
		Value: msg.Value,
		Time:  msg.Timestamp,
	}
	for k, v := range msg.Headers {
		kafkaMsg.Headers = append(kafkaMsg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	return p.writer.WriteMessages(ctx, kafkaMsg)
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NopPublisher satisfies Publisher when eventing is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Message) error { return nil }
func (NopPublisher) Close() error                           { return nil }
