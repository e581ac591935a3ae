package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

//go:generate moq -rm -out evaluator_mock.go . Evaluator
type Evaluator interface {
	Evaluate(ctx context.Context, record types.TelemetryRecord) ([]types.AlertLog, error)
}

type evaluator struct {
	conditions ConditionRepository
	alertLogs  AlertLogRepository
	messenger  Publisher
	notifier   Notifier
}

// NewEvaluator creates an evaluator. messenger and notifier are optional.
func NewEvaluator(conditions ConditionRepository, alertLogs AlertLogRepository, messenger Publisher, notifier Notifier) Evaluator {
	return &evaluator{
		conditions: conditions,
		alertLogs:  alertLogs,
		messenger:  messenger,
		notifier:   notifier,
	}
}

// Evaluate checks every value in the record against the active conditions for its
// value type and stores an alert log for each triggered condition. Re-evaluating a
// record produces new alert logs.
func (e *evaluator) Evaluate(ctx context.Context, record types.TelemetryRecord) (alerts []types.AlertLog, err error) {
	ctx, span := tracer.Start(ctx, "evaluate-telemetry")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx).With().Str("device_id", record.DeviceID).Str("event_id", record.ID).Logger()
	ctx = logging.NewContextWithLogger(ctx, log)

	alerts = []types.AlertLog{}

	for _, v := range record.Values {
		conditions, err := e.conditions.GetConditionsByValueType(ctx, v.ValueType)
		if err != nil {
			return alerts, fmt.Errorf("failed to fetch conditions for %s: %w", v.ValueType, err)
		}

		for _, c := range conditions {
			if !applies(c, record) {
				continue
			}

			triggered, message := Match(ctx, c, v.Value, v.ValueType)
			if !triggered {
				continue
			}

			alert, err := e.alertLogs.CreateAlertLog(ctx, types.AlertLog{
				DeviceID:  record.DeviceID,
				UserID:    record.UserID,
				Condition: c,
				Observation: types.Observation{
					ValueType: v.ValueType,
					Value:     v.Value,
					Timestamp: record.Timestamp,
				},
				Message:   message,
				CreatedAt: time.Now().UTC(),
			})
			if err != nil {
				return alerts, fmt.Errorf("failed to store alert log for condition %s: %w", c.ID, err)
			}

			log.Info().Str("condition_id", c.ID).Str("alert_id", alert.ID).Msg(message)

			alerts = append(alerts, alert)
			e.announce(ctx, alert)
		}
	}

	return alerts, nil
}

// applies decides whether a condition is in scope for the record. A missing scope
// is treated as device scope.
func applies(c types.Condition, record types.TelemetryRecord) bool {
	switch c.Scope {
	case types.ScopeDevice, "":
		return c.DeviceID == "" || c.DeviceID == record.DeviceID
	case types.ScopeUser:
		return c.UserID == record.UserID
	}
	return true
}

func (e *evaluator) announce(ctx context.Context, alert types.AlertLog) {
	log := logging.GetFromContext(ctx)

	if e.messenger != nil {
		err := e.messenger.PublishOnTopic(ctx, &types.AlertLogCreated{
			AlertLog:  alert,
			UserID:    alert.UserID,
			Timestamp: alert.CreatedAt,
		})
		if err != nil {
			log.Error().Err(err).Str("alert_id", alert.ID).Msg("failed to publish alert log created")
		}
	}

	if e.notifier != nil {
		if err := e.notifier.Notify(ctx, alert); err != nil {
			log.Error().Err(err).Str("alert_id", alert.ID).Msg("failed to notify about alert")
		}
	}
}
