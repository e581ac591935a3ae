package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/alerts"
	"github.com/diwise/iot-telemetry/internal/pkg/application/telemetry"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/queue"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const DefaultBatchSize = 10

var ErrInvalidEnvelope = errors.New("invalid envelope")

var tracer = otel.Tracer("iot-telemetry/consumer")

//go:generate moq -rm -out telemetryrepository_mock.go . TelemetryRepository
type TelemetryRepository interface {
	InsertTelemetry(ctx context.Context, record types.TelemetryRecord) (types.TelemetryRecord, error)
}

//go:generate moq -rm -out consumer_mock.go . Consumer
type Consumer interface {
	RunOnce(ctx context.Context) (Result, error)
}

type Config struct {
	BatchSize int
	Workers   int
	// AckOnReceive acknowledges messages as soon as they are received, so a message
	// that fails processing is lost instead of dead lettered.
	AckOnReceive bool
}

// Result summarizes one run. Received counts every message taken from the queue,
// including those of unknown type that are neither processed nor errors.
type Result struct {
	Received        int      `json:"-"`
	Processed       int      `json:"processed"`
	AlertsTriggered int      `json:"alerts_triggered"`
	Errors          []string `json:"errors"`
}

type outcome struct {
	skipped bool
	alerts  int
	err     error
}

func (r Result) fold(o outcome) Result {
	r.Received++

	switch {
	case o.err != nil:
		r.Errors = append(r.Errors, o.err.Error())
	case o.skipped:
	default:
		r.Processed++
		r.AlertsTriggered += o.alerts
	}

	return r
}

type consumer struct {
	receiver  queue.Receiver
	storage   TelemetryRepository
	evaluator alerts.Evaluator
	cfg       Config
	now       func() time.Time
}

func New(receiver queue.Receiver, storage TelemetryRepository, evaluator alerts.Evaluator, cfg Config) Consumer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return &consumer{
		receiver:  receiver,
		storage:   storage,
		evaluator: evaluator,
		cfg:       cfg,
		now:       time.Now,
	}
}

// RunOnce drains at most one batch from the queue. Failing messages are reported in
// the result and never abort the batch. Only a failure to receive is returned as an error.
func (c *consumer) RunOnce(ctx context.Context) (result Result, err error) {
	ctx, span := tracer.Start(ctx, "consume-batch")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	result = Result{Errors: []string{}}

	deliveries, err := c.receiver.Receive(ctx, c.cfg.BatchSize)
	if err != nil {
		return result, fmt.Errorf("failed to receive messages: %w", err)
	}

	if len(deliveries) == 0 {
		return result, nil
	}

	if c.cfg.AckOnReceive {
		for _, d := range deliveries {
			if err := d.Ack(ctx); err != nil {
				log.Error().Err(err).Str("message_id", d.ID()).Msg("failed to acknowledge message")
			}
		}
	}

	outcomes := make([]outcome, len(deliveries))

	g := errgroup.Group{}
	g.SetLimit(c.cfg.Workers)

	for i, d := range deliveries {
		i, d := i, d
		g.Go(func() error {
			outcomes[i] = c.handle(ctx, d)
			return nil
		})
	}
	_ = g.Wait()

	for _, o := range outcomes {
		result = result.fold(o)
	}

	span.SetAttributes(
		attribute.Int("received", result.Received),
		attribute.Int("processed", result.Processed),
		attribute.Int("alerts_triggered", result.AlertsTriggered),
	)

	log.Info().
		Int("received", result.Received).
		Int("processed", result.Processed).
		Int("alerts_triggered", result.AlertsTriggered).
		Int("errors", len(result.Errors)).
		Msg("batch processed")

	return result, nil
}

func (c *consumer) handle(ctx context.Context, d queue.Delivery) outcome {
	log := logging.GetFromContext(ctx).With().Str("message_id", d.ID()).Logger()
	ctx = logging.NewContextWithLogger(ctx, log)

	o := c.process(ctx, d.Body())

	if o.err != nil {
		log.Error().Err(o.err).Msg("failed to process message")
	}

	if c.cfg.AckOnReceive {
		return o
	}

	settle, action := d.Ack, "acknowledge"
	if o.err != nil {
		settle, action = d.Reject, "reject"
	}

	if err := settle(ctx); err != nil {
		log.Error().Err(err).Msgf("failed to %s message", action)
	}

	return o
}

func (c *consumer) process(ctx context.Context, body []byte) outcome {
	var env types.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return outcome{err: fmt.Errorf("%w: %s", ErrInvalidEnvelope, err.Error())}
	}

	if env.Type != types.MessageTypeTelemetry {
		log := logging.GetFromContext(ctx)
		log.Warn().Str("type", env.Type).Msg("ignoring message of unknown type")
		return outcome{skipped: true}
	}

	var data types.TelemetryData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return outcome{err: fmt.Errorf("%w: bad telemetry data: %s", ErrInvalidEnvelope, err.Error())}
	}

	if data.DeviceID == "" || env.UserID == "" {
		return outcome{err: fmt.Errorf("%w: device_id and userId are required", ErrInvalidEnvelope)}
	}

	record := telemetry.Normalize(data, env.UserID, c.now())

	stored, err := c.storage.InsertTelemetry(ctx, record)
	if err != nil {
		return outcome{err: fmt.Errorf("failed to store telemetry %s: %w", record.ID, err)}
	}

	triggered, err := c.evaluator.Evaluate(ctx, stored)
	if err != nil {
		return outcome{err: fmt.Errorf("failed to evaluate telemetry %s: %w", stored.ID, err)}
	}

	return outcome{alerts: len(triggered)}
}
