package ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/telemetry"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/queue"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

const QueuedMessage = "Telemetry queued for processing"

var (
	ErrValidation     = errors.New("validation failed")
	ErrDeviceNotFound = errors.New("device not found")
	ErrRateLimited    = errors.New("rate limit exceeded")
)

var tracer = otel.Tracer("iot-telemetry/ingestion")

//go:generate moq -rm -out devicerepository_mock.go . DeviceRepository
type DeviceRepository interface {
	FindOwningUser(ctx context.Context, deviceID string) (string, error)
}

//go:generate moq -rm -out ingestionservice_mock.go . IngestionService
type IngestionService interface {
	Submit(ctx context.Context, deviceID string, s types.Submission) (types.Receipt, error)
}

type ingestionSvc struct {
	devices   DeviceRepository
	publisher queue.Publisher
	limiter   *DeviceLimiter
}

// New creates the ingestion service. limiter may be nil to disable rate limiting.
func New(devices DeviceRepository, publisher queue.Publisher, limiter *DeviceLimiter) IngestionService {
	return &ingestionSvc{
		devices:   devices,
		publisher: publisher,
		limiter:   limiter,
	}
}

// Submit validates the device and enqueues the submission for asynchronous
// processing. The device id is the only credential a device presents.
func (svc *ingestionSvc) Submit(ctx context.Context, deviceID string, s types.Submission) (receipt types.Receipt, err error) {
	ctx, span := tracer.Start(ctx, "submit-telemetry")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return types.Receipt{}, fmt.Errorf("%w: deviceId required", ErrValidation)
	}

	log := logging.GetFromContext(ctx).With().Str("device_id", deviceID).Logger()

	userID, err := svc.devices.FindOwningUser(ctx, deviceID)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return types.Receipt{}, ErrDeviceNotFound
		}
		return types.Receipt{}, fmt.Errorf("failed to look up device: %w", err)
	}

	if svc.limiter != nil && !svc.limiter.Allow(deviceID) {
		return types.Receipt{}, ErrRateLimited
	}

	id := uuid.NewString()
	now := time.Now().UTC()

	data, err := json.Marshal(telemetry.FromSubmission(deviceID, s, id, now))
	if err != nil {
		return types.Receipt{}, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	body, err := json.Marshal(types.Envelope{
		Type:   types.MessageTypeTelemetry,
		Data:   data,
		UserID: userID,
	})
	if err != nil {
		return types.Receipt{}, err
	}

	if err = svc.publisher.Publish(ctx, deviceID, body); err != nil {
		return types.Receipt{}, fmt.Errorf("failed to enqueue telemetry: %w", err)
	}

	log.Debug().Str("telemetry_id", id).Msg("telemetry queued")

	return types.Receipt{
		Message:     QueuedMessage,
		TelemetryID: id,
		Timestamp:   now,
	}, nil
}
