package queue

import (
	"context"
	"fmt"
	"strings"
)

const DefaultName = "telemetry-queue"

var ErrUnknownBackend = fmt.Errorf("unknown queue backend")

// Delivery is a received message that must be acknowledged or rejected exactly once.
//
//go:generate moq -rm -out delivery_mock.go . Delivery
type Delivery interface {
	ID() string
	Body() []byte
	Ack(ctx context.Context) error
	Reject(ctx context.Context) error
}

// Receiver fetches up to max pending messages without waiting for new ones to arrive.
type Receiver interface {
	Receive(ctx context.Context, max int) ([]Delivery, error)
}

//go:generate moq -rm -out publisher_mock.go . Publisher
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

type Queue interface {
	Receiver
	Publisher
	Close() error
}

type Config struct {
	Backend  string
	Name     string
	RabbitMQ RabbitMQConfig
	Kafka    KafkaConfig
}

// New connects to the configured backend.
func New(ctx context.Context, cfg Config) (Queue, error) {
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}

	switch strings.ToLower(cfg.Backend) {
	case "", "rabbitmq", "amqp":
		return NewRabbitMQ(ctx, name, cfg.RabbitMQ)
	case "kafka":
		return NewKafka(ctx, name, cfg.Kafka)
	case "memory":
		return NewMemory(), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
}
