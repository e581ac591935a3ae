package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestMemoryQueueReceivesInBatches(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	q := NewMemory()
	for _, b := range []string{"a", "b", "c"} {
		is.NoErr(q.Publish(ctx, "dev-1", []byte(b)))
	}

	first, err := q.Receive(ctx, 2)
	is.NoErr(err)
	is.Equal(len(first), 2)
	is.Equal(string(first[0].Body()), "a")

	second, err := q.Receive(ctx, 2)
	is.NoErr(err)
	is.Equal(len(second), 1)

	empty, err := q.Receive(ctx, 2)
	is.NoErr(err)
	is.Equal(len(empty), 0)
}

func TestMemoryQueueDeadLettersRejectedMessages(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	q := NewMemory()
	is.NoErr(q.Publish(ctx, "dev-1", []byte("ok")))
	is.NoErr(q.Publish(ctx, "dev-1", []byte("bad")))

	deliveries, err := q.Receive(ctx, 10)
	is.NoErr(err)

	is.NoErr(deliveries[0].Ack(ctx))
	is.NoErr(deliveries[1].Reject(ctx))
	is.NoErr(deliveries[1].Reject(ctx))

	is.Equal(q.DeadLettered(), [][]byte{[]byte("bad")})
	is.Equal(q.Len(), 0)
}

func TestRabbitMQURL(t *testing.T) {
	is := is.New(t)

	is.Equal(RabbitMQConfig{Host: "mq", User: "u", Password: "p"}.URL(), "amqp://u:p@mq:5672/")
	is.Equal(RabbitMQConfig{Host: "mq", User: "u", Password: "p", TLS: true}.URL(), "amqps://u:p@mq:5671/")
	is.Equal(RabbitMQConfig{Host: "mq", Port: "1234", User: "u", Password: "p", VHost: "iot"}.URL(), "amqp://u:p@mq:1234/iot")
}

func TestUnknownBackend(t *testing.T) {
	is := is.New(t)

	_, err := New(context.Background(), Config{Backend: "carrier-pigeon"})
	is.True(errors.Is(err, ErrUnknownBackend))
}

func TestKafkaRequiresBrokers(t *testing.T) {
	is := is.New(t)

	_, err := New(context.Background(), Config{Backend: "kafka"})
	is.True(err != nil)
}
