package types

import (
	"time"
)

const (
	ValueTypeTemperature = "temperature"
	ValueTypeHumidity    = "humidity"
	ValueTypePressure    = "pressure"
	ValueTypeLight       = "light"
	ValueTypeMotion      = "motion"
	ValueTypeSound       = "sound"
	ValueTypeAirQuality  = "airQuality"
	ValueTypeBattery     = "battery"
)

type Scope string

const (
	ScopeGeneral Scope = "general"
	ScopeUser    Scope = "user"
	ScopeDevice  Scope = "device"
)

func (s Scope) Valid() bool {
	switch s {
	case ScopeGeneral, ScopeUser, ScopeDevice:
		return true
	}
	return false
}

const NotificationMethodLog = "Log"

type Device struct {
	DeviceID     string    `json:"deviceId"`
	UserID       string    `json:"userId"`
	Name         string    `json:"deviceName"`
	SensorType   string    `json:"sensorType"`
	Location     Location  `json:"location"`
	Status       []string  `json:"status,omitempty"`
	RegisteredAt time.Time `json:"registrationDate"`
}

type Location struct {
	Name      string   `json:"name,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type DeviceUpdate struct {
	Name       *string   `json:"deviceName,omitempty"`
	SensorType *string   `json:"sensorType,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Status     []string  `json:"status,omitempty"`
}

// Value is a single observation inside a telemetry record. Value holds whatever the
// device sent, a number, a bool or occasionally a string.
type Value struct {
	ValueType string `json:"valueType"`
	Value     any    `json:"value"`
}

type TelemetryRecord struct {
	ID        string    `json:"eventId"`
	DeviceID  string    `json:"deviceId"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
	Values    []Value   `json:"values"`
	ImageURL  string    `json:"imageUrl,omitempty"`
}

type Condition struct {
	ID                  string   `json:"id"`
	Name                string   `json:"conditionName,omitempty"`
	UserID              string   `json:"userId,omitempty"`
	DeviceID            string   `json:"deviceId,omitempty"`
	ValueType           string   `json:"valueType"`
	MinValue            *float64 `json:"minValue,omitempty"`
	MaxValue            *float64 `json:"maxValue,omitempty"`
	ExactValue          *float64 `json:"exactValue,omitempty"`
	Unit                string   `json:"unit,omitempty"`
	Scope               Scope    `json:"scope"`
	NotificationMethods []string `json:"notificationMethods"`
	Active              bool     `json:"active"`
}

// HasBounds reports whether at least one of min, max or exact is set. A condition
// without bounds never triggers.
func (c Condition) HasBounds() bool {
	return c.MinValue != nil || c.MaxValue != nil || c.ExactValue != nil
}

type ConditionUpdate struct {
	Name                *string  `json:"conditionName,omitempty"`
	MinValue            *float64 `json:"minValue,omitempty"`
	MaxValue            *float64 `json:"maxValue,omitempty"`
	ExactValue          *float64 `json:"exactValue,omitempty"`
	Unit                *string  `json:"unit,omitempty"`
	NotificationMethods []string `json:"notificationMethods,omitempty"`
	Active              *bool    `json:"active,omitempty"`
	// Clear names bounds to unset, using their JSON names.
	Clear []string `json:"clear,omitempty"`
}

const (
	BoundMin   = "minValue"
	BoundMax   = "maxValue"
	BoundExact = "exactValue"
)

// Clears reports whether the named bound is listed in Clear.
func (u ConditionUpdate) Clears(bound string) bool {
	for _, b := range u.Clear {
		if b == bound {
			return true
		}
	}
	return false
}

type Observation struct {
	ValueType string    `json:"valueType"`
	Value     any       `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

type AlertLog struct {
	ID          string      `json:"id"`
	DeviceID    string      `json:"deviceId"`
	UserID      string      `json:"userId"`
	Condition   Condition   `json:"condition"`
	Observation Observation `json:"telemetryData"`
	Message     string      `json:"message"`
	Resolved    bool        `json:"resolved"`
	ResolvedAt  *time.Time  `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time   `json:"timestamp"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
