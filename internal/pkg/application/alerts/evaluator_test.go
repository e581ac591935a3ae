package alerts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func testSetup(conditions ...types.Condition) (*ConditionRepositoryMock, *AlertLogRepositoryMock, *PublisherMock, *NotifierMock) {
	cr := &ConditionRepositoryMock{
		GetConditionsByValueTypeFunc: func(ctx context.Context, valueType string) ([]types.Condition, error) {
			result := []types.Condition{}
			for _, c := range conditions {
				if c.ValueType == valueType && c.Active {
					result = append(result, c)
				}
			}
			return result, nil
		},
	}

	ar := &AlertLogRepositoryMock{
		CreateAlertLogFunc: func(ctx context.Context, alert types.AlertLog) (types.AlertLog, error) {
			alert.ID = "alert-id"
			return alert, nil
		},
	}

	pub := &PublisherMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	n := &NotifierMock{
		NotifyFunc: func(ctx context.Context, alert types.AlertLog) error {
			return nil
		},
	}

	return cr, ar, pub, n
}

func record(deviceID, userID string, values ...types.Value) types.TelemetryRecord {
	return types.TelemetryRecord{
		ID:        "evt-1",
		DeviceID:  deviceID,
		UserID:    userID,
		Timestamp: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		Values:    values,
	}
}

func TestDeviceScopedConditionTriggersForItsDevice(t *testing.T) {
	is := is.New(t)

	hot := types.Condition{ID: "c1", Name: "Hot", UserID: "u1", DeviceID: "dev-1", ValueType: "temperature", MaxValue: ptr(30), Scope: types.ScopeDevice, Active: true}
	cr, ar, pub, n := testSetup(hot)

	e := NewEvaluator(cr, ar, pub, n)
	alerts, err := e.Evaluate(context.Background(), record("dev-1", "u1", types.Value{ValueType: "temperature", Value: 35.0}))

	is.NoErr(err)
	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Message, "Hot: temperature (35) above maximum (30)")
	is.Equal(alerts[0].Condition, hot)
	is.Equal(alerts[0].Observation.Value, 35.0)
	is.Equal(alerts[0].Observation.Timestamp, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	is.Equal(len(pub.PublishOnTopicCalls()), 1)
	is.Equal(pub.PublishOnTopicCalls()[0].Message.TopicName(), "alerts.alertLogCreated")
	is.Equal(len(n.NotifyCalls()), 1)
}

func TestDeviceScopedConditionIgnoresOtherDevices(t *testing.T) {
	is := is.New(t)

	hot := types.Condition{ID: "c1", Name: "Hot", DeviceID: "dev-2", ValueType: "temperature", MaxValue: ptr(30), Scope: types.ScopeDevice, Active: true}
	cr, ar, pub, n := testSetup(hot)

	alerts, err := NewEvaluator(cr, ar, pub, n).Evaluate(context.Background(), record("dev-1", "u1", types.Value{ValueType: "temperature", Value: 35.0}))

	is.NoErr(err)
	is.Equal(len(alerts), 0)
	is.Equal(len(ar.CreateAlertLogCalls()), 0)
}

func TestConditionWithoutScopeIsTreatedAsDeviceScope(t *testing.T) {
	is := is.New(t)

	other := types.Condition{ID: "c1", Name: "Hot", DeviceID: "dev-2", ValueType: "temperature", MaxValue: ptr(30), Active: true}
	anyDevice := types.Condition{ID: "c2", Name: "Any", ValueType: "temperature", MaxValue: ptr(30), Active: true}
	cr, ar, pub, n := testSetup(other, anyDevice)

	alerts, err := NewEvaluator(cr, ar, pub, n).Evaluate(context.Background(), record("dev-1", "u1", types.Value{ValueType: "temperature", Value: 35.0}))

	is.NoErr(err)
	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Condition.ID, "c2")
}

func TestGeneralConditionAppliesToAnyDevice(t *testing.T) {
	is := is.New(t)

	wet := types.Condition{ID: "c1", Name: "Wet", UserID: "someone-else", ValueType: "humidity", MaxValue: ptr(80), Scope: types.ScopeGeneral, Active: true}
	cr, ar, pub, n := testSetup(wet)

	alerts, err := NewEvaluator(cr, ar, pub, n).Evaluate(context.Background(), record("dev-9", "u1", types.Value{ValueType: "humidity", Value: 85.0}))

	is.NoErr(err)
	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Message, "Wet: humidity (85) above maximum (80)")
	is.Equal(alerts[0].UserID, "u1")
}

func TestUserScopedConditionOnlyAppliesToOwner(t *testing.T) {
	is := is.New(t)

	mine := types.Condition{ID: "c1", Name: "Mine", UserID: "u1", ValueType: "sound", MaxValue: ptr(50), Scope: types.ScopeUser, Active: true}
	theirs := types.Condition{ID: "c2", Name: "Theirs", UserID: "u2", ValueType: "sound", MaxValue: ptr(50), Scope: types.ScopeUser, Active: true}
	cr, ar, pub, n := testSetup(mine, theirs)

	alerts, err := NewEvaluator(cr, ar, pub, n).Evaluate(context.Background(), record("dev-1", "u1", types.Value{ValueType: "sound", Value: 70.0}))

	is.NoErr(err)
	is.Equal(len(alerts), 1)
	is.Equal(alerts[0].Condition.ID, "c1")
}

func TestReEvaluationProducesDuplicateAlerts(t *testing.T) {
	is := is.New(t)

	hot := types.Condition{ID: "c1", Name: "Hot", ValueType: "temperature", MaxValue: ptr(30), Scope: types.ScopeGeneral, Active: true}
	cr, ar, pub, n := testSetup(hot)
	e := NewEvaluator(cr, ar, pub, n)

	r := record("dev-1", "u1", types.Value{ValueType: "temperature", Value: 35.0})

	first, err := e.Evaluate(context.Background(), r)
	is.NoErr(err)
	second, err := e.Evaluate(context.Background(), r)
	is.NoErr(err)

	is.Equal(len(first), 1)
	is.Equal(len(second), 1)
	is.Equal(len(ar.CreateAlertLogCalls()), 2)
}

func TestEveryValueIsEvaluated(t *testing.T) {
	is := is.New(t)

	hot := types.Condition{ID: "c1", Name: "Hot", ValueType: "temperature", MaxValue: ptr(30), Scope: types.ScopeGeneral, Active: true}
	dark := types.Condition{ID: "c2", Name: "Dark", ValueType: "light", MinValue: ptr(100), Scope: types.ScopeGeneral, Active: true}
	motion := types.Condition{ID: "c3", Name: "Intruder", ValueType: "motion", ExactValue: ptr(1), Scope: types.ScopeGeneral, Active: true}
	cr, ar, pub, n := testSetup(hot, dark, motion)

	alerts, err := NewEvaluator(cr, ar, pub, n).Evaluate(context.Background(), record("dev-1", "u1",
		types.Value{ValueType: "temperature", Value: 35.0},
		types.Value{ValueType: "light", Value: 20.0},
		types.Value{ValueType: "motion", Value: true},
		types.Value{ValueType: "battery", Value: 5.0},
	))

	is.NoErr(err)
	is.Equal(len(alerts), 3)
	is.Equal(len(cr.GetConditionsByValueTypeCalls()), 4)
}

func TestMalformedValueDoesNotFailEvaluation(t *testing.T) {
	is := is.New(t)

	hot := types.Condition{ID: "c1", Name: "Hot", ValueType: "temperature", MaxValue: ptr(30), Scope: types.ScopeGeneral, Active: true}
	cr, ar, pub, n := testSetup(hot)

	alerts, err := NewEvaluator(cr, ar, pub, n).Evaluate(context.Background(), record("dev-1", "u1", types.Value{ValueType: "temperature", Value: "warm"}))

	is.NoErr(err)
	is.Equal(len(alerts), 0)
}

func TestConditionLookupFailureIsReturned(t *testing.T) {
	is := is.New(t)

	cr, ar, pub, n := testSetup()
	cr.GetConditionsByValueTypeFunc = func(ctx context.Context, valueType string) ([]types.Condition, error) {
		return nil, errors.New("connection refused")
	}

	_, err := NewEvaluator(cr, ar, pub, n).Evaluate(context.Background(), record("dev-1", "u1", types.Value{ValueType: "temperature", Value: 35.0}))

	is.True(err != nil)
}

func TestPublishAndNotifyFailuresAreNotFatal(t *testing.T) {
	is := is.New(t)

	hot := types.Condition{ID: "c1", Name: "Hot", ValueType: "temperature", MaxValue: ptr(30), Scope: types.ScopeGeneral, Active: true}
	cr, ar, pub, n := testSetup(hot)
	pub.PublishOnTopicFunc = func(ctx context.Context, message messaging.TopicMessage) error {
		return errors.New("broker down")
	}
	n.NotifyFunc = func(ctx context.Context, alert types.AlertLog) error {
		return errors.New("webhook down")
	}

	alerts, err := NewEvaluator(cr, ar, pub, n).Evaluate(context.Background(), record("dev-1", "u1", types.Value{ValueType: "temperature", Value: 35.0}))

	is.NoErr(err)
	is.Equal(len(alerts), 1)
}

func TestEvaluatorWorksWithoutMessengerAndNotifier(t *testing.T) {
	is := is.New(t)

	hot := types.Condition{ID: "c1", Name: "Hot", ValueType: "temperature", MaxValue: ptr(30), Scope: types.ScopeGeneral, Active: true}
	cr, ar, _, _ := testSetup(hot)

	alerts, err := NewEvaluator(cr, ar, nil, nil).Evaluate(context.Background(), record("dev-1", "u1", types.Value{ValueType: "temperature", Value: 35.0}))

	is.NoErr(err)
	is.Equal(len(alerts), 1)
}
