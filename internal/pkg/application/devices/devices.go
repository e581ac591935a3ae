package devices

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/pkg/types"
)

var tracer = otel.Tracer("iot-telemetry/devices")

var (
	ErrValidation     = errors.New("validation failed")
	ErrDeviceNotFound = errors.New("device not found")
	ErrNotOwner       = errors.New("device not owned by user")
	ErrAlreadyExists  = errors.New("device already exists")
)

//go:generate moq -rm -out devicerepository_mock.go . DeviceRepository
type DeviceRepository interface {
	AddDevice(ctx context.Context, d types.Device) error
	GetDevice(ctx context.Context, deviceID string) (types.Device, error)
	QueryDevices(ctx context.Context, conditions ...database.QueryFunc) (types.Collection[types.Device], error)
	FindOwningUser(ctx context.Context, deviceID string) (string, error)
	UpdateDevice(ctx context.Context, deviceID string, u types.DeviceUpdate) (types.Device, error)
	TransferDevice(ctx context.Context, deviceID, newUserID string) error
	DeleteDevice(ctx context.Context, deviceID string) error
}

//go:generate moq -rm -out deviceservice_mock.go . DeviceService
type DeviceService interface {
	Register(ctx context.Context, userID string, d types.Device) (types.Device, error)
	Query(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.Device], error)
	Update(ctx context.Context, userID, deviceID string, u types.DeviceUpdate) (types.Device, error)
	Delete(ctx context.Context, userID, deviceID string) error
	Transfer(ctx context.Context, deviceID, newUserID string) error
}

type deviceSvc struct {
	storage DeviceRepository
}

func New(r DeviceRepository) DeviceService {
	return &deviceSvc{
		storage: r,
	}
}

// Register stores a device owned by userID. A device id is generated when none is given.
func (svc deviceSvc) Register(ctx context.Context, userID string, d types.Device) (types.Device, error) {
	var err error
	ctx, span := tracer.Start(ctx, "register-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	d.Name = strings.TrimSpace(d.Name)
	d.SensorType = strings.TrimSpace(d.SensorType)

	if d.Name == "" || d.SensorType == "" {
		err = fmt.Errorf("%w: deviceName and sensorType are required", ErrValidation)
		return types.Device{}, err
	}

	if d.DeviceID == "" {
		d.DeviceID = uuid.NewString()
	}
	d.UserID = userID
	d.RegisteredAt = time.Now().UTC()

	if len(d.Status) == 0 {
		d.Status = []string{"active"}
	}

	if err = svc.storage.AddDevice(ctx, d); err != nil {
		if errors.Is(err, database.ErrAlreadyExist) {
			return types.Device{}, ErrAlreadyExists
		}
		return types.Device{}, err
	}

	log := logging.GetFromContext(ctx)
	log.Info().Str("device_id", d.DeviceID).Str("user_id", userID).Msg("device registered")

	return d, nil
}

// Query lists the devices of userID. Only device id and paging parameters apply.
func (svc deviceSvc) Query(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.Device], error) {
	supported := map[string][]string{}
	for k, v := range params {
		switch strings.ToLower(k) {
		case "deviceid", "device_id", "limit", "offset", "sortorder":
			supported[k] = v
		}
	}

	conditions := append(database.ParseQuery(ctx, supported), database.WithUserID(userID))
	return svc.storage.QueryDevices(ctx, conditions...)
}

func (svc deviceSvc) Update(ctx context.Context, userID, deviceID string, u types.DeviceUpdate) (types.Device, error) {
	if err := svc.checkOwnership(ctx, userID, deviceID); err != nil {
		return types.Device{}, err
	}

	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return types.Device{}, fmt.Errorf("%w: deviceName cannot be empty", ErrValidation)
	}
	if u.SensorType != nil && strings.TrimSpace(*u.SensorType) == "" {
		return types.Device{}, fmt.Errorf("%w: sensorType cannot be empty", ErrValidation)
	}

	d, err := svc.storage.UpdateDevice(ctx, deviceID, u)
	if errors.Is(err, database.ErrNoRows) {
		return types.Device{}, ErrDeviceNotFound
	}
	return d, err
}

// Delete removes a device along with its telemetry and alert logs.
func (svc deviceSvc) Delete(ctx context.Context, userID, deviceID string) error {
	if err := svc.checkOwnership(ctx, userID, deviceID); err != nil {
		return err
	}

	err := svc.storage.DeleteDevice(ctx, deviceID)
	if errors.Is(err, database.ErrNoRows) {
		return ErrDeviceNotFound
	}
	return err
}

func (svc deviceSvc) Transfer(ctx context.Context, deviceID, newUserID string) error {
	var err error
	ctx, span := tracer.Start(ctx, "transfer-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if deviceID == "" || newUserID == "" {
		err = fmt.Errorf("%w: deviceId and newUserId are required", ErrValidation)
		return err
	}

	err = svc.storage.TransferDevice(ctx, deviceID, newUserID)
	if errors.Is(err, database.ErrNoRows) {
		err = ErrDeviceNotFound
		return err
	}
	if err != nil {
		return err
	}

	log := logging.GetFromContext(ctx)
	log.Info().Str("device_id", deviceID).Str("user_id", newUserID).Msg("device transferred")

	return nil
}

func (svc deviceSvc) checkOwnership(ctx context.Context, userID, deviceID string) error {
	owner, err := svc.storage.FindOwningUser(ctx, deviceID)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return ErrDeviceNotFound
		}
		return err
	}
	if owner != userID {
		return ErrNotOwner
	}
	return nil
}
