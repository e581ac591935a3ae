package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/consumer"
	"github.com/matryer/is"
)

func TestSchedulerRunsOnEveryTick(t *testing.T) {
	is := is.New(t)

	var runs atomic.Int32
	c := &consumer.ConsumerMock{
		RunOnceFunc: func(ctx context.Context) (consumer.Result, error) {
			runs.Add(1)
			return consumer.Result{}, nil
		},
	}

	s := New(c, Config{Interval: 10 * time.Millisecond, BatchSize: 10})
	s.Start(context.Background())
	time.Sleep(75 * time.Millisecond)
	s.Stop()

	n := runs.Load()
	is.True(n >= 2)

	time.Sleep(30 * time.Millisecond)
	is.Equal(runs.Load(), n)
}

func TestSchedulerDrainsFullBatches(t *testing.T) {
	is := is.New(t)

	var runs atomic.Int32
	c := &consumer.ConsumerMock{
		RunOnceFunc: func(ctx context.Context) (consumer.Result, error) {
			if runs.Add(1) <= 3 {
				return consumer.Result{Received: 5, Processed: 5}, nil
			}
			return consumer.Result{Received: 2, Processed: 2}, nil
		},
	}

	s := &scheduler{cfg: Config{BatchSize: 5, MaxDrainRuns: 10}, consumer: c}
	s.drain(context.Background())

	is.Equal(runs.Load(), int32(4))
}

func TestDrainIsCapped(t *testing.T) {
	is := is.New(t)

	c := &consumer.ConsumerMock{
		RunOnceFunc: func(ctx context.Context) (consumer.Result, error) {
			return consumer.Result{Received: 5, Processed: 5}, nil
		},
	}

	s := &scheduler{cfg: Config{BatchSize: 5, MaxDrainRuns: 3}, consumer: c}
	s.drain(context.Background())

	is.Equal(len(c.RunOnceCalls()), 3)
}

func TestDrainStopsOnError(t *testing.T) {
	is := is.New(t)

	c := &consumer.ConsumerMock{
		RunOnceFunc: func(ctx context.Context) (consumer.Result, error) {
			return consumer.Result{}, errors.New("queue unavailable")
		},
	}

	s := &scheduler{cfg: Config{BatchSize: 5, MaxDrainRuns: 3}, consumer: c}
	s.drain(context.Background())

	is.Equal(len(c.RunOnceCalls()), 1)
}

func TestStopWithoutStart(t *testing.T) {
	s := New(&consumer.ConsumerMock{}, Config{})
	s.Stop()
}
