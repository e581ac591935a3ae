package alerts

import (
	"context"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-telemetry/alerts")

//go:generate moq -rm -out conditionrepository_mock.go . ConditionRepository
type ConditionRepository interface {
	GetConditionsByValueType(ctx context.Context, valueType string) ([]types.Condition, error)
}

//go:generate moq -rm -out alertlogrepository_mock.go . AlertLogRepository
type AlertLogRepository interface {
	CreateAlertLog(ctx context.Context, alert types.AlertLog) (types.AlertLog, error)
	GetAlertLog(ctx context.Context, conditions ...database.QueryFunc) (types.AlertLog, error)
	QueryAlertLogs(ctx context.Context, conditions ...database.QueryFunc) (types.Collection[types.AlertLog], error)
	ResolveAlertLog(ctx context.Context, alertLogID string, resolvedAt time.Time) error
	DeleteAlertLog(ctx context.Context, alertLogID string) error
}

// Publisher is the part of messaging.MsgContext used to announce alert log changes.
//
//go:generate moq -rm -out publisher_mock.go . Publisher
type Publisher interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

//go:generate moq -rm -out notifier_mock.go . Notifier
type Notifier interface {
	Notify(ctx context.Context, alert types.AlertLog) error
}
