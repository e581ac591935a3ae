package database

import (
	"strings"
	"time"

	"github.com/diwise/iot-telemetry/pkg/types"
	"gorm.io/datatypes"
)

type device struct {
	DeviceID          string `gorm:"primaryKey;size:255"`
	UserID            string `gorm:"size:255;not null;index"`
	Name              string `gorm:"size:255;not null"`
	SensorType        string `gorm:"size:100;not null;index"`
	LocationName      string `gorm:"size:255"`
	LocationLatitude  *float64
	LocationLongitude *float64
	Status            datatypes.JSONType[[]string]
	RegisteredAt      time.Time `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Telemetry []telemetryRecord `gorm:"foreignKey:DeviceID;references:DeviceID;constraint:OnDelete:CASCADE"`
	AlertLogs []alertLog        `gorm:"foreignKey:DeviceID;references:DeviceID;constraint:OnDelete:CASCADE"`
}

func (device) TableName() string { return "devices" }

type telemetryRecord struct {
	EventID    string    `gorm:"primaryKey;size:64"`
	DeviceID   string    `gorm:"size:255;not null;index:idx_telemetry_device_date,priority:1"`
	UserID     string    `gorm:"size:255;not null;index"`
	EventDate  time.Time `gorm:"not null;index:idx_telemetry_device_date,priority:2"`
	Values     datatypes.JSONType[[]types.Value]
	ValueTypes string `gorm:"size:512"`
	ImageURL   *string
	CreatedAt  time.Time
}

func (telemetryRecord) TableName() string { return "telemetry" }

type condition struct {
	ID                  string  `gorm:"primaryKey;size:64"`
	Name                string  `gorm:"size:255"`
	UserID              string  `gorm:"size:255;index"`
	DeviceID            *string `gorm:"size:255;index"`
	ValueType           string  `gorm:"size:50;not null;index:idx_conditions_value_type_active,priority:1"`
	MinValue            *float64
	MaxValue            *float64
	ExactValue          *float64
	Unit                string `gorm:"size:50"`
	Scope               string `gorm:"size:20;not null"`
	NotificationMethods datatypes.JSONType[[]string]
	Active              bool `gorm:"not null;index:idx_conditions_value_type_active,priority:2"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (condition) TableName() string { return "conditions" }

type alertLog struct {
	ID          string `gorm:"primaryKey;size:64"`
	DeviceID    string `gorm:"size:255;not null;index"`
	UserID      string `gorm:"size:255;not null;index"`
	Condition   datatypes.JSONType[types.Condition]
	Observation datatypes.JSONType[types.Observation]
	Message     string `gorm:"not null"`
	Resolved    bool   `gorm:"not null;index"`
	ResolvedAt  *time.Time
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (alertLog) TableName() string { return "alert_logs" }

func fromDevice(d types.Device) device {
	return device{
		DeviceID:          d.DeviceID,
		UserID:            d.UserID,
		Name:              d.Name,
		SensorType:        d.SensorType,
		LocationName:      d.Location.Name,
		LocationLatitude:  d.Location.Latitude,
		LocationLongitude: d.Location.Longitude,
		Status:            datatypes.NewJSONType(d.Status),
		RegisteredAt:      d.RegisteredAt.UTC(),
	}
}

func (d device) toDevice() types.Device {
	return types.Device{
		DeviceID:   d.DeviceID,
		UserID:     d.UserID,
		Name:       d.Name,
		SensorType: d.SensorType,
		Location: types.Location{
			Name:      d.LocationName,
			Latitude:  d.LocationLatitude,
			Longitude: d.LocationLongitude,
		},
		Status:       d.Status.Data(),
		RegisteredAt: d.RegisteredAt.UTC(),
	}
}

func fromTelemetry(r types.TelemetryRecord) telemetryRecord {
	vt := make([]string, 0, len(r.Values))
	for _, v := range r.Values {
		vt = append(vt, v.ValueType)
	}

	t := telemetryRecord{
		EventID:    r.ID,
		DeviceID:   r.DeviceID,
		UserID:     r.UserID,
		EventDate:  r.Timestamp.UTC(),
		Values:     datatypes.NewJSONType(r.Values),
		ValueTypes: joinValueTypes(vt),
	}

	if r.ImageURL != "" {
		t.ImageURL = &r.ImageURL
	}

	return t
}

func (t telemetryRecord) toTelemetry() types.TelemetryRecord {
	r := types.TelemetryRecord{
		ID:        t.EventID,
		DeviceID:  t.DeviceID,
		UserID:    t.UserID,
		Timestamp: t.EventDate.UTC(),
		Values:    t.Values.Data(),
	}

	if t.ImageURL != nil {
		r.ImageURL = *t.ImageURL
	}

	return r
}

// joinValueTypes renders value types as ",a,b," so a single type can be matched with LIKE.
func joinValueTypes(vt []string) string {
	if len(vt) == 0 {
		return ""
	}
	return "," + strings.Join(vt, ",") + ","
}

func fromCondition(c types.Condition) condition {
	m := condition{
		ID:                  c.ID,
		Name:                c.Name,
		UserID:              c.UserID,
		ValueType:           c.ValueType,
		MinValue:            c.MinValue,
		MaxValue:            c.MaxValue,
		ExactValue:          c.ExactValue,
		Unit:                c.Unit,
		Scope:               string(c.Scope),
		NotificationMethods: datatypes.NewJSONType(c.NotificationMethods),
		Active:              c.Active,
	}

	if c.DeviceID != "" {
		m.DeviceID = &c.DeviceID
	}

	return m
}

func (m condition) toCondition() types.Condition {
	c := types.Condition{
		ID:                  m.ID,
		Name:                m.Name,
		UserID:              m.UserID,
		ValueType:           m.ValueType,
		MinValue:            m.MinValue,
		MaxValue:            m.MaxValue,
		ExactValue:          m.ExactValue,
		Unit:                m.Unit,
		Scope:               types.Scope(m.Scope),
		NotificationMethods: m.NotificationMethods.Data(),
		Active:              m.Active,
	}

	if m.DeviceID != nil {
		c.DeviceID = *m.DeviceID
	}

	return c
}

func fromAlertLog(a types.AlertLog) alertLog {
	return alertLog{
		ID:          a.ID,
		DeviceID:    a.DeviceID,
		UserID:      a.UserID,
		Condition:   datatypes.NewJSONType(a.Condition),
		Observation: datatypes.NewJSONType(a.Observation),
		Message:     a.Message,
		Resolved:    a.Resolved,
		ResolvedAt:  a.ResolvedAt,
		CreatedAt:   a.CreatedAt.UTC(),
	}
}

func (m alertLog) toAlertLog() types.AlertLog {
	a := types.AlertLog{
		ID:          m.ID,
		DeviceID:    m.DeviceID,
		UserID:      m.UserID,
		Condition:   m.Condition.Data(),
		Observation: m.Observation.Data(),
		Message:     m.Message,
		Resolved:    m.Resolved,
		CreatedAt:   m.CreatedAt.UTC(),
	}

	if m.ResolvedAt != nil {
		resolvedAt := m.ResolvedAt.UTC()
		a.ResolvedAt = &resolvedAt
	}

	return a
}

// deviceColumns maps a partial device update onto column assignments.
func deviceColumns(u types.DeviceUpdate) map[string]any {
	cols := map[string]any{}

	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.SensorType != nil {
		cols["sensor_type"] = *u.SensorType
	}
	if u.Location != nil {
		cols["location_name"] = u.Location.Name
		cols["location_latitude"] = u.Location.Latitude
		cols["location_longitude"] = u.Location.Longitude
	}
	if u.Status != nil {
		cols["status"] = datatypes.NewJSONType(u.Status)
	}

	return cols
}

// conditionColumns maps a partial condition update onto column assignments.
func conditionColumns(u types.ConditionUpdate) map[string]any {
	cols := map[string]any{}

	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.MinValue != nil {
		cols["min_value"] = *u.MinValue
	}
	if u.MaxValue != nil {
		cols["max_value"] = *u.MaxValue
	}
	if u.ExactValue != nil {
		cols["exact_value"] = *u.ExactValue
	}
	if u.Clears(types.BoundMin) {
		cols["min_value"] = nil
	}
	if u.Clears(types.BoundMax) {
		cols["max_value"] = nil
	}
	if u.Clears(types.BoundExact) {
		cols["exact_value"] = nil
	}
	if u.Unit != nil {
		cols["unit"] = *u.Unit
	}
	if u.NotificationMethods != nil {
		cols["notification_methods"] = datatypes.NewJSONType(u.NotificationMethods)
	}
	if u.Active != nil {
		cols["active"] = *u.Active
	}

	return cols
}
