package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/consumer"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const DefaultInterval = time.Minute

type Scheduler interface {
	Start(ctx context.Context)
	Stop()
}

type Config struct {
	Interval  time.Duration
	BatchSize int
	// MaxDrainRuns caps how many back to back runs a single tick may trigger
	// while the queue keeps returning full batches.
	MaxDrainRuns int
}

type scheduler struct {
	cfg      Config
	consumer consumer.Consumer

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(c consumer.Consumer, cfg Config) Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = consumer.DefaultBatchSize
	}
	if cfg.MaxDrainRuns <= 0 {
		cfg.MaxDrainRuns = 100
	}

	return &scheduler{
		cfg:      cfg,
		consumer: c,
	}
}

func (s *scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.backgroundWorker(ctx, s.done)
}

// Stop cancels the worker and waits for an ongoing run to finish.
func (s *scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

func (s *scheduler) backgroundWorker(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	log := logging.GetFromContext(ctx)
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("scheduler stopped")
			return
		case <-ticker.C:
			s.drain(ctx)
		}
	}
}

func (s *scheduler) drain(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	for run := 0; run < s.cfg.MaxDrainRuns; run++ {
		if ctx.Err() != nil {
			return
		}

		result, err := s.consumer.RunOnce(ctx)
		if err != nil {
			log.Error().Err(err).Msg("consumer run failed")
			return
		}

		if result.Received > 0 {
			log.Info().
				Int("processed", result.Processed).
				Int("alerts_triggered", result.AlertsTriggered).
				Int("errors", len(result.Errors)).
				Msg("consumer run completed")
		}

		if result.Received < s.cfg.BatchSize {
			return
		}
	}
}
