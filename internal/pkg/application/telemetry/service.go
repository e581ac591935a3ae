package telemetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/pkg/types"
)

var ErrDeviceNotFound = fmt.Errorf("device not found")

//go:generate moq -rm -out telemetryrepository_mock.go . TelemetryRepository
type TelemetryRepository interface {
	FindOwningUser(ctx context.Context, deviceID string) (string, error)
	QueryTelemetry(ctx context.Context, conditions ...database.QueryFunc) (types.Collection[types.TelemetryRecord], error)
}

//go:generate moq -rm -out telemetryservice_mock.go . TelemetryService
type TelemetryService interface {
	Query(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.TelemetryRecord], error)
}

type telemetrySvc struct {
	storage TelemetryRepository
}

func NewTelemetryService(r TelemetryRepository) TelemetryService {
	return &telemetrySvc{storage: r}
}

// Query returns the user's telemetry history. A device filter must name a device owned by the user.
func (svc telemetrySvc) Query(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.TelemetryRecord], error) {
	if deviceIDs, ok := params["deviceId"]; ok && len(deviceIDs) > 0 && deviceIDs[0] != "" {
		owner, err := svc.storage.FindOwningUser(ctx, deviceIDs[0])
		if err != nil {
			if errors.Is(err, database.ErrNoRows) {
				return types.Collection[types.TelemetryRecord]{}, ErrDeviceNotFound
			}
			return types.Collection[types.TelemetryRecord]{}, err
		}
		if owner != userID {
			return types.Collection[types.TelemetryRecord]{}, ErrDeviceNotFound
		}
	}

	conditions := append(database.ParseQuery(ctx, params), database.WithUserID(userID))

	return svc.storage.QueryTelemetry(ctx, conditions...)
}
