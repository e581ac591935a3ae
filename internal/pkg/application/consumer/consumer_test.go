package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/alerts"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/queue"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/matryer/is"
)

func envelope(t *testing.T, deviceID, userID string, fields map[string]any) []byte {
	t.Helper()

	data := map[string]any{
		"id":        fmt.Sprintf("evt-%d", time.Now().UnixNano()),
		"device_id": deviceID,
		"timestamp": "2024-06-01T08:00:00Z",
	}
	for k, v := range fields {
		data[k] = v
	}

	d, _ := json.Marshal(data)
	b, err := json.Marshal(types.Envelope{Type: types.MessageTypeTelemetry, Data: d, UserID: userID})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func maxTemp(limit float64) *alerts.ConditionRepositoryMock {
	return &alerts.ConditionRepositoryMock{
		GetConditionsByValueTypeFunc: func(ctx context.Context, valueType string) ([]types.Condition, error) {
			if valueType != types.ValueTypeTemperature {
				return nil, nil
			}
			return []types.Condition{{ID: "c1", Name: "Hot", ValueType: valueType, MaxValue: &limit, Scope: types.ScopeGeneral, Active: true}}, nil
		},
	}
}

func alertLogs() *alerts.AlertLogRepositoryMock {
	return &alerts.AlertLogRepositoryMock{
		CreateAlertLogFunc: func(ctx context.Context, alert types.AlertLog) (types.AlertLog, error) {
			return alert, nil
		},
	}
}

func acceptAll() *TelemetryRepositoryMock {
	return &TelemetryRepositoryMock{
		InsertTelemetryFunc: func(ctx context.Context, record types.TelemetryRecord) (types.TelemetryRecord, error) {
			return record, nil
		},
	}
}

func TestBatchWithMalformedValueIsFullyProcessed(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	q := queue.NewMemory()
	for i := 0; i < 4; i++ {
		is.NoErr(q.Publish(ctx, "dev-1", envelope(t, "dev-1", "u1", map[string]any{"temperature": 35.0})))
	}
	is.NoErr(q.Publish(ctx, "dev-1", envelope(t, "dev-1", "u1", map[string]any{"temperature": "hot"})))

	c := New(q, acceptAll(), alerts.NewEvaluator(maxTemp(30), alertLogs(), nil, nil), Config{})

	result, err := c.RunOnce(ctx)

	is.NoErr(err)
	is.Equal(result.Processed, 5)
	is.Equal(result.AlertsTriggered, 4)
	is.Equal(result.Errors, []string{})
	is.Equal(len(q.DeadLettered()), 0)
}

func TestEmptyQueueYieldsZeroResult(t *testing.T) {
	is := is.New(t)

	c := New(queue.NewMemory(), acceptAll(), &alerts.EvaluatorMock{}, Config{})

	result, err := c.RunOnce(context.Background())

	is.NoErr(err)
	is.Equal(result.Processed, 0)
	is.Equal(result.AlertsTriggered, 0)
	is.Equal(len(result.Errors), 0)
}

func TestBatchSizeIsRespected(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	q := queue.NewMemory()
	for i := 0; i < 12; i++ {
		is.NoErr(q.Publish(ctx, "dev-1", envelope(t, "dev-1", "u1", map[string]any{"humidity": 40.0})))
	}

	c := New(q, acceptAll(), alerts.NewEvaluator(maxTemp(30), alertLogs(), nil, nil), Config{})

	result, err := c.RunOnce(ctx)
	is.NoErr(err)
	is.Equal(result.Processed, DefaultBatchSize)
	is.Equal(q.Len(), 2)
}

func TestUnknownMessageTypeIsNotCounted(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	q := queue.NewMemory()
	is.NoErr(q.Publish(ctx, "", []byte(`{"type":"firmware","data":{},"userId":"u1"}`)))
	is.NoErr(q.Publish(ctx, "dev-1", envelope(t, "dev-1", "u1", map[string]any{"temperature": 20.0})))

	c := New(q, acceptAll(), alerts.NewEvaluator(maxTemp(30), alertLogs(), nil, nil), Config{})

	result, err := c.RunOnce(ctx)

	is.NoErr(err)
	is.Equal(result.Received, 2)
	is.Equal(result.Processed, 1)
	is.Equal(len(result.Errors), 0)
	is.Equal(len(q.DeadLettered()), 0)
}

func TestInvalidMessagesAreReportedAndDeadLettered(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	q := queue.NewMemory()
	is.NoErr(q.Publish(ctx, "", []byte(`not json`)))
	is.NoErr(q.Publish(ctx, "", []byte(`{"type":"telemetry","data":{"device_id":"dev-1"}}`)))
	is.NoErr(q.Publish(ctx, "dev-1", envelope(t, "dev-1", "u1", map[string]any{"temperature": 20.0})))

	c := New(q, acceptAll(), alerts.NewEvaluator(maxTemp(30), alertLogs(), nil, nil), Config{})

	result, err := c.RunOnce(ctx)

	is.NoErr(err)
	is.Equal(result.Processed, 1)
	is.Equal(len(result.Errors), 2)
	is.True(strings.Contains(result.Errors[0], ErrInvalidEnvelope.Error()))
	is.Equal(len(q.DeadLettered()), 2)
}

func TestStoreFailureOnlyFailsThatMessage(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	q := queue.NewMemory()
	is.NoErr(q.Publish(ctx, "ghost", envelope(t, "ghost", "u1", map[string]any{"temperature": 35.0})))
	is.NoErr(q.Publish(ctx, "dev-1", envelope(t, "dev-1", "u1", map[string]any{"temperature": 35.0})))

	store := &TelemetryRepositoryMock{
		InsertTelemetryFunc: func(ctx context.Context, record types.TelemetryRecord) (types.TelemetryRecord, error) {
			if record.DeviceID == "ghost" {
				return types.TelemetryRecord{}, database.ErrUnknownRef
			}
			return record, nil
		},
	}
	alertStore := alertLogs()

	c := New(q, store, alerts.NewEvaluator(maxTemp(30), alertStore, nil, nil), Config{})

	result, err := c.RunOnce(ctx)

	is.NoErr(err)
	is.Equal(result.Processed, 1)
	is.Equal(result.AlertsTriggered, 1)
	is.Equal(len(result.Errors), 1)
	is.Equal(len(alertStore.CreateAlertLogCalls()), 1)
}

func TestAckOnReceiveDoesNotDeadLetter(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	q := queue.NewMemory()
	is.NoErr(q.Publish(ctx, "", []byte(`not json`)))

	c := New(q, acceptAll(), &alerts.EvaluatorMock{}, Config{AckOnReceive: true})

	result, err := c.RunOnce(ctx)

	is.NoErr(err)
	is.Equal(len(result.Errors), 1)
	is.Equal(len(q.DeadLettered()), 0)
}

type failingReceiver struct{}

func (failingReceiver) Receive(ctx context.Context, max int) ([]queue.Delivery, error) {
	return nil, errors.New("connection reset")
}

func TestReceiveFailureIsReturned(t *testing.T) {
	is := is.New(t)

	c := New(failingReceiver{}, acceptAll(), &alerts.EvaluatorMock{}, Config{})

	_, err := c.RunOnce(context.Background())
	is.True(err != nil)
}

func TestSettleFailureDoesNotChangeOutcome(t *testing.T) {
	is := is.New(t)

	body := envelope(t, "dev-1", "u1", map[string]any{"temperature": 35.0})
	d := &queue.DeliveryMock{
		IDFunc:   func() string { return "m1" },
		BodyFunc: func() []byte { return body },
		AckFunc: func(ctx context.Context) error {
			return errors.New("channel closed")
		},
	}

	receiver := receiverFunc(func(ctx context.Context, max int) ([]queue.Delivery, error) {
		return []queue.Delivery{d}, nil
	})

	c := New(receiver, acceptAll(), alerts.NewEvaluator(maxTemp(30), alertLogs(), nil, nil), Config{})

	result, err := c.RunOnce(context.Background())

	is.NoErr(err)
	is.Equal(result.Processed, 1)
	is.Equal(len(d.AckCalls()), 1)
}

type receiverFunc func(ctx context.Context, max int) ([]queue.Delivery, error)

func (f receiverFunc) Receive(ctx context.Context, max int) ([]queue.Delivery, error) {
	return f(ctx, max)
}

func TestWorkersProduceSameTotals(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	q := queue.NewMemory()
	for i := 0; i < 10; i++ {
		is.NoErr(q.Publish(ctx, "dev-1", envelope(t, "dev-1", "u1", map[string]any{"temperature": 31.0 + float64(i%2)})))
	}

	c := New(q, acceptAll(), alerts.NewEvaluator(maxTemp(30), alertLogs(), nil, nil), Config{Workers: 4})

	result, err := c.RunOnce(ctx)

	is.NoErr(err)
	is.Equal(result.Processed, 10)
	is.Equal(result.AlertsTriggered, 10)
}

func TestPipelineAgainstDatabase(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	db, err := database.New(ctx, database.NewSQLiteConnector(ctx))
	is.NoErr(err)
	defer db.Close()

	is.NoErr(db.AddDevice(ctx, types.Device{DeviceID: "dev-1", UserID: "u1", Name: "greenhouse", SensorType: "environment", RegisteredAt: time.Now()}))

	limit := 30.0
	_, err = db.AddCondition(ctx, types.Condition{Name: "Hot", UserID: "u1", DeviceID: "dev-1", ValueType: "temperature", MaxValue: &limit, Scope: types.ScopeDevice, Active: true})
	is.NoErr(err)

	q := queue.NewMemory()
	is.NoErr(q.Publish(ctx, "dev-1", envelope(t, "dev-1", "u1", map[string]any{"temperature": 35.0, "humidity": 50.0})))
	is.NoErr(q.Publish(ctx, "dev-2", envelope(t, "dev-2", "u1", map[string]any{"temperature": 35.0})))

	c := New(q, db, alerts.NewEvaluator(db, db, nil, nil), Config{})

	result, err := c.RunOnce(ctx)

	is.NoErr(err)
	is.Equal(result.Processed, 1)
	is.Equal(result.AlertsTriggered, 1)
	is.Equal(len(result.Errors), 1)

	logs, err := db.QueryAlertLogs(ctx, database.WithDeviceID("dev-1"))
	is.NoErr(err)
	is.Equal(logs.TotalCount, uint64(1))
	is.Equal(logs.Data[0].Message, "Hot: temperature (35) above maximum (30)")

	history, err := db.QueryTelemetry(ctx, database.WithDeviceID("dev-1"))
	is.NoErr(err)
	is.Equal(history.TotalCount, uint64(1))
	is.Equal(len(history.Data[0].Values), 2)
}
