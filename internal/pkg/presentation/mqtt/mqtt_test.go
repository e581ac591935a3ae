package mqtt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/iot-telemetry/internal/pkg/application/ingestion"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/matryer/is"
)

type message struct {
	topic   string
	payload []byte
}

func (m message) Duplicate() bool   { return false }
func (m message) Qos() byte         { return 0 }
func (m message) Retained() bool    { return false }
func (m message) Topic() string     { return m.topic }
func (m message) MessageID() uint16 { return 1 }
func (m message) Payload() []byte   { return m.payload }
func (m message) Ack()              {}

func TestDeviceIDFromTopic(t *testing.T) {
	is := is.New(t)

	id, err := DeviceIDFromTopic("devices/sensor-1/telemetry")
	is.NoErr(err)
	is.Equal(id, "sensor-1")

	for _, topic := range []string{"devices//telemetry", "devices/sensor-1", "other/sensor-1/telemetry", "devices/a/b/telemetry"} {
		_, err := DeviceIDFromTopic(topic)
		is.True(errors.Is(err, ErrInvalidTopic))
	}
}

func TestMessageHandlerSubmitsTelemetry(t *testing.T) {
	is := is.New(t)

	svc := &ingestion.IngestionServiceMock{
		SubmitFunc: func(ctx context.Context, deviceID string, s types.Submission) (types.Receipt, error) {
			return types.Receipt{Message: ingestion.QueuedMessage, TelemetryID: "t1", Timestamp: time.Now()}, nil
		},
	}

	handler := NewMessageHandler(context.Background(), svc)
	handler(nil, message{topic: "devices/sensor-1/telemetry", payload: []byte(`{"temperature":21.5,"motionDetected":true}`)})

	is.Equal(len(svc.SubmitCalls()), 1)
	call := svc.SubmitCalls()[0]
	is.Equal(call.DeviceID, "sensor-1")
	is.Equal(call.S.Temperature, 21.5)
	is.Equal(call.S.MotionDetected, true)
}

func TestMessageHandlerIgnoresInvalidMessages(t *testing.T) {
	is := is.New(t)

	svc := &ingestion.IngestionServiceMock{}

	handler := NewMessageHandler(context.Background(), svc)
	handler(nil, message{topic: "devices/sensor-1/status", payload: []byte(`{}`)})
	handler(nil, message{topic: "devices/sensor-1/telemetry", payload: []byte(`not json`)})

	is.Equal(len(svc.SubmitCalls()), 0)
}

func TestMessageHandlerSurvivesSubmitErrors(t *testing.T) {
	is := is.New(t)

	svc := &ingestion.IngestionServiceMock{
		SubmitFunc: func(ctx context.Context, deviceID string, s types.Submission) (types.Receipt, error) {
			return types.Receipt{}, ingestion.ErrDeviceNotFound
		},
	}

	handler := NewMessageHandler(context.Background(), svc)
	handler(nil, message{topic: "devices/unknown/telemetry", payload: []byte(`{"temperature":1}`)})

	is.Equal(len(svc.SubmitCalls()), 1)
}
