package types

import (
	"encoding/json"
	"time"
)

type AlertLogCreated struct {
	AlertLog  AlertLog  `json:"alertLog"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlertLogCreated) ContentType() string {
	return "application/json"
}
func (a *AlertLogCreated) TopicName() string {
	return "alerts.alertLogCreated"
}
func (a *AlertLogCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlertLogResolved struct {
	AlertLogID string    `json:"alertLogId"`
	DeviceID   string    `json:"deviceId"`
	UserID     string    `json:"userId"`
	Timestamp  time.Time `json:"timestamp"`
}

func (a *AlertLogResolved) ContentType() string {
	return "application/json"
}
func (a *AlertLogResolved) TopicName() string {
	return "alerts.alertLogResolved"
}
func (a *AlertLogResolved) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}
