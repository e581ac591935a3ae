package queue

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// messages that sit in the queue for a day are dead lettered
const messageTTL = int32(24 * 60 * 60 * 1000)

type RabbitMQConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	VHost    string
	TLS      bool
}

func (c RabbitMQConfig) URL() string {
	scheme, port := "amqp", "5672"
	if c.TLS {
		scheme, port = "amqps", "5671"
	}
	if c.Port != "" {
		port = c.Port
	}

	u := url.URL{
		Scheme: scheme,
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, port),
		Path:   "/" + c.VHost,
	}

	return u.String()
}

type rabbitQueue struct {
	mu   sync.Mutex
	cfg  RabbitMQConfig
	name string
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbitMQ connects to the broker and declares the queue together with its
// dead letter queue, named <name>-dlq.
func NewRabbitMQ(ctx context.Context, name string, cfg RabbitMQConfig) (Queue, error) {
	q := &rabbitQueue{
		cfg:  cfg,
		name: name,
	}

	if err := q.connect(ctx); err != nil {
		return nil, err
	}

	return q, nil
}

func (q *rabbitQueue) connect(ctx context.Context) error {
	amqpConfig := amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	}
	if q.cfg.TLS {
		amqpConfig.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12, ServerName: q.cfg.Host}
	}

	log := logging.GetFromContext(ctx)
	log.Info().Str("host", q.cfg.Host).Str("queue", q.name).Msg("connecting to rabbitmq")

	conn, err := amqp.DialConfig(q.cfg.URL(), amqpConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err = declare(ch, q.name); err != nil {
		conn.Close()
		return err
	}

	q.conn = conn
	q.ch = ch

	return nil
}

func declare(ch *amqp.Channel, name string) error {
	dlq := name + "-dlq"

	_, err := ch.QueueDeclare(dlq, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare dead letter queue %s: %w", dlq, err)
	}

	_, err = ch.QueueDeclare(name, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlq,
		"x-message-ttl":             messageTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", name, err)
	}

	return nil
}

// channel returns an open channel, reconnecting if the previous one was closed.
func (q *rabbitQueue) channel(ctx context.Context) (*amqp.Channel, error) {
	if q.ch != nil && !q.ch.IsClosed() {
		return q.ch, nil
	}

	if q.conn != nil && !q.conn.IsClosed() {
		ch, err := q.conn.Channel()
		if err == nil {
			q.ch = ch
			return ch, nil
		}
		q.conn.Close()
	}

	if err := q.connect(ctx); err != nil {
		return nil, err
	}

	return q.ch, nil
}

func (q *rabbitQueue) Publish(ctx context.Context, key string, body []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	ch, err := q.channel(ctx)
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", q.name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Headers:      amqp.Table{"device_id": key},
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Receive polls with basic.get so that it never blocks waiting for messages.
func (q *rabbitQueue) Receive(ctx context.Context, max int) ([]Delivery, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ch, err := q.channel(ctx)
	if err != nil {
		return nil, err
	}

	deliveries := make([]Delivery, 0, max)

	for len(deliveries) < max {
		if ctx.Err() != nil {
			break
		}

		msg, ok, err := ch.Get(q.name, false)
		if err != nil {
			if len(deliveries) > 0 {
				break
			}
			return nil, fmt.Errorf("failed to receive from %s: %w", q.name, err)
		}
		if !ok {
			break
		}

		deliveries = append(deliveries, rabbitDelivery{msg: msg})
	}

	return deliveries, nil
}

func (q *rabbitQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.conn == nil {
		return nil
	}
	return q.conn.Close()
}

type rabbitDelivery struct {
	msg amqp.Delivery
}

func (d rabbitDelivery) ID() string {
	if d.msg.MessageId != "" {
		return d.msg.MessageId
	}
	return strconv.FormatUint(d.msg.DeliveryTag, 10)
}

func (d rabbitDelivery) Body() []byte {
	return d.msg.Body
}

func (d rabbitDelivery) Ack(ctx context.Context) error {
	return d.msg.Ack(false)
}

// Reject without requeue, which routes the message to the dead letter queue.
func (d rabbitDelivery) Reject(ctx context.Context) error {
	return d.msg.Reject(false)
}
