package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/segmentio/kafka-go"
)

type KafkaConfig struct {
	Brokers      []string
	GroupID      string
	FetchTimeout time.Duration
}

type kafkaQueue struct {
	topic        string
	writer       *kafka.Writer
	dlq          *kafka.Writer
	reader       *kafka.Reader
	fetchTimeout time.Duration
}

// NewKafka creates a queue on top of a kafka topic. Rejected messages are copied to
// <topic>-dlq before their offset is committed.
func NewKafka(ctx context.Context, topic string, cfg KafkaConfig) (Queue, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}

	groupID := cfg.GroupID
	if groupID == "" {
		groupID = "iot-telemetry"
	}

	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 500 * time.Millisecond
	}

	newWriter := func(topic string) *kafka.Writer {
		return &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		}
	}

	log := logging.GetFromContext(ctx)
	log.Info().Strs("brokers", cfg.Brokers).Str("topic", topic).Msg("using kafka queue")

	return &kafkaQueue{
		topic:  topic,
		writer: newWriter(topic),
		dlq:    newWriter(topic + "-dlq"),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.Brokers,
			Topic:          topic,
			GroupID:        groupID,
			MinBytes:       1,
			MaxBytes:       10e6,
			CommitInterval: 0,
		}),
		fetchTimeout: fetchTimeout,
	}, nil
}

// Publish keys messages by device so that a device's telemetry stays on one partition.
func (q *kafkaQueue) Publish(ctx context.Context, key string, body []byte) error {
	err := q.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: body,
	})
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

func (q *kafkaQueue) Receive(ctx context.Context, max int) ([]Delivery, error) {
	deliveries := make([]Delivery, 0, max)

	for len(deliveries) < max {
		fetchCtx, cancel := context.WithTimeout(ctx, q.fetchTimeout)
		msg, err := q.reader.FetchMessage(fetchCtx)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				break
			}
			if len(deliveries) > 0 {
				log := logging.GetFromContext(ctx)
				log.Warn().Err(err).Msg("fetch interrupted, returning partial batch")
				break
			}
			return nil, fmt.Errorf("failed to fetch message: %w", err)
		}

		deliveries = append(deliveries, kafkaDelivery{q: q, msg: msg})
	}

	return deliveries, nil
}

func (q *kafkaQueue) Close() error {
	return errors.Join(q.reader.Close(), q.writer.Close(), q.dlq.Close())
}

type kafkaDelivery struct {
	q   *kafkaQueue
	msg kafka.Message
}

func (d kafkaDelivery) ID() string {
	return fmt.Sprintf("%s/%d/%d", d.msg.Topic, d.msg.Partition, d.msg.Offset)
}

func (d kafkaDelivery) Body() []byte {
	return d.msg.Value
}

func (d kafkaDelivery) Ack(ctx context.Context) error {
	if err := d.q.reader.CommitMessages(ctx, d.msg); err != nil {
		return fmt.Errorf("failed to commit message: %w", err)
	}
	return nil
}

func (d kafkaDelivery) Reject(ctx context.Context) error {
	err := d.q.dlq.WriteMessages(ctx, kafka.Message{
		Key:     d.msg.Key,
		Value:   d.msg.Value,
		Headers: d.msg.Headers,
	})
	if err != nil {
		return fmt.Errorf("failed to dead letter message: %w", err)
	}
	return d.Ack(ctx)
}
