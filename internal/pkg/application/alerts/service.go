package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var ErrAlertLogNotFound = fmt.Errorf("alert log not found")

//go:generate moq -rm -out alertlogservice_mock.go . AlertLogService
type AlertLogService interface {
	Query(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.AlertLog], error)
	Resolve(ctx context.Context, alertLogID, userID string) (types.AlertLog, error)
	Delete(ctx context.Context, alertLogID, userID string) error
}

type alertLogSvc struct {
	storage   AlertLogRepository
	messenger Publisher
}

func NewAlertLogService(r AlertLogRepository, m Publisher) AlertLogService {
	return &alertLogSvc{
		storage:   r,
		messenger: m,
	}
}

func (svc alertLogSvc) Query(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.AlertLog], error) {
	conditions := append(database.ParseQuery(ctx, params), database.WithUserID(userID))

	alerts, err := svc.storage.QueryAlertLogs(ctx, conditions...)
	if err != nil {
		return types.Collection[types.AlertLog]{}, err
	}

	return alerts, nil
}

func (svc alertLogSvc) get(ctx context.Context, alertLogID, userID string) (types.AlertLog, error) {
	alert, err := svc.storage.GetAlertLog(ctx, database.WithID(alertLogID), database.WithUserID(userID))
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return types.AlertLog{}, ErrAlertLogNotFound
		}
		return types.AlertLog{}, err
	}
	return alert, nil
}

// Resolve marks an alert log as resolved. Resolving an already resolved alert is a no-op.
func (svc alertLogSvc) Resolve(ctx context.Context, alertLogID, userID string) (types.AlertLog, error) {
	alert, err := svc.get(ctx, alertLogID, userID)
	if err != nil {
		return types.AlertLog{}, err
	}

	if alert.Resolved {
		return alert, nil
	}

	now := time.Now().UTC()

	err = svc.storage.ResolveAlertLog(ctx, alert.ID, now)
	if err != nil {
		return types.AlertLog{}, err
	}

	alert.Resolved = true
	alert.ResolvedAt = &now

	if svc.messenger != nil {
		err = svc.messenger.PublishOnTopic(ctx, &types.AlertLogResolved{
			AlertLogID: alert.ID,
			DeviceID:   alert.DeviceID,
			UserID:     alert.UserID,
			Timestamp:  now,
		})
		if err != nil {
			log := logging.GetFromContext(ctx)
			log.Error().Err(err).Str("alert_id", alert.ID).Msg("failed to publish alert log resolved")
		}
	}

	return alert, nil
}

func (svc alertLogSvc) Delete(ctx context.Context, alertLogID, userID string) error {
	alert, err := svc.get(ctx, alertLogID, userID)
	if err != nil {
		return err
	}

	return svc.storage.DeleteAlertLog(ctx, alert.ID)
}
