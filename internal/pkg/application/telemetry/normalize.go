package telemetry

import (
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/google/uuid"
)

type sensorField struct {
	valueType string
	get       func(types.TelemetryData) any
}

// sensorFields maps payload fields to value types. The order is the order values
// appear in a normalized record.
var sensorFields = []sensorField{
	{types.ValueTypeTemperature, func(d types.TelemetryData) any { return d.Temperature }},
	{types.ValueTypeHumidity, func(d types.TelemetryData) any { return d.Humidity }},
	{types.ValueTypePressure, func(d types.TelemetryData) any { return d.Pressure }},
	{types.ValueTypeLight, func(d types.TelemetryData) any { return d.LightLevel }},
	{types.ValueTypeMotion, func(d types.TelemetryData) any { return d.MotionDetected }},
	{types.ValueTypeSound, func(d types.TelemetryData) any { return d.SoundLevel }},
	{types.ValueTypeAirQuality, func(d types.TelemetryData) any { return d.AirQuality }},
	{types.ValueTypeBattery, func(d types.TelemetryData) any { return d.BatteryLevel }},
}

// Normalize converts a queued payload into a telemetry record with one value per
// present sensor field.
func Normalize(data types.TelemetryData, userID string, now time.Time) types.TelemetryRecord {
	values := make([]types.Value, 0, len(sensorFields))
	for _, f := range sensorFields {
		v := f.get(data)
		if v == nil {
			continue
		}
		values = append(values, types.Value{ValueType: f.valueType, Value: v})
	}

	ts := now.UTC()
	if data.Timestamp != nil && !data.Timestamp.IsZero() {
		ts = data.Timestamp.UTC()
	}

	id := data.ID
	if id == "" {
		id = uuid.NewString()
	}

	record := types.TelemetryRecord{
		ID:        id,
		DeviceID:  data.DeviceID,
		UserID:    userID,
		Timestamp: ts,
		Values:    values,
	}

	if data.ImageURL != nil {
		record.ImageURL = *data.ImageURL
	}

	return record
}

// FromSubmission builds the queue payload for a device submission.
func FromSubmission(deviceID string, s types.Submission, id string, ts time.Time) types.TelemetryData {
	ts = ts.UTC()

	return types.TelemetryData{
		ID:             id,
		DeviceID:       deviceID,
		Timestamp:      &ts,
		Temperature:    s.Temperature,
		Humidity:       s.Humidity,
		Pressure:       s.Pressure,
		LightLevel:     s.LightLevel,
		MotionDetected: s.MotionDetected,
		SoundLevel:     s.SoundLevel,
		AirQuality:     s.AirQuality,
		BatteryLevel:   s.BatteryLevel,
		ImageURL:       s.ImageURL,
	}
}
