package types

import (
	"encoding/json"
	"time"
)

const MessageTypeTelemetry = "telemetry"

// Envelope is the queue message wrapping a telemetry payload.
type Envelope struct {
	Type   string          `json:"type"`
	Data   json.RawMessage `json:"data"`
	UserID string          `json:"userId"`
}

// TelemetryData is the snake_case payload carried in an Envelope. Sensor readings are
// kept untyped so that malformed values reach the matcher instead of failing the decode.
type TelemetryData struct {
	ID             string     `json:"id"`
	DeviceID       string     `json:"device_id"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
	Temperature    any        `json:"temperature,omitempty"`
	Humidity       any        `json:"humidity,omitempty"`
	Pressure       any        `json:"pressure,omitempty"`
	LightLevel     any        `json:"light_level,omitempty"`
	MotionDetected any        `json:"motion_detected,omitempty"`
	SoundLevel     any        `json:"sound_level,omitempty"`
	AirQuality     any        `json:"air_quality,omitempty"`
	BatteryLevel   any        `json:"battery_level,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
}

// Submission is the body a device posts to the ingestion endpoint.
type Submission struct {
	DeviceID       string  `json:"deviceId,omitempty"`
	Temperature    any     `json:"temperature,omitempty"`
	Humidity       any     `json:"humidity,omitempty"`
	Pressure       any     `json:"pressure,omitempty"`
	LightLevel     any     `json:"lightLevel,omitempty"`
	MotionDetected any     `json:"motionDetected,omitempty"`
	SoundLevel     any     `json:"soundLevel,omitempty"`
	AirQuality     any     `json:"airQuality,omitempty"`
	BatteryLevel   any     `json:"batteryLevel,omitempty"`
	ImageURL       *string `json:"imageUrl,omitempty"`
}

type Receipt struct {
	Message     string    `json:"message"`
	TelemetryID string    `json:"telemetryId"`
	Timestamp   time.Time `json:"timestamp"`
}
