package notifications

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"
)

const (
	EventSource           = "github.com/diwise/iot-telemetry"
	EventTypeAlertCreated = "iot.alertlog.created"
)

type Notifier interface {
	Notify(ctx context.Context, alert types.AlertLog) error
}

type subscriber struct {
	endpoint string
	patterns []*regexp.Regexp
}

func (s subscriber) accepts(deviceID string) bool {
	if len(s.patterns) == 0 {
		return true
	}
	return lo.SomeBy(s.patterns, func(re *regexp.Regexp) bool {
		return re.MatchString(deviceID)
	})
}

type notifier struct {
	subscribers map[string][]subscriber
	client      cloudevents.Client
}

// New builds a notifier from cfg. Each configured notification type is a
// notification method name that conditions may refer to. The Log method is
// always available.
func New(cfg *Config) (Notifier, error) {
	n := &notifier{
		subscribers: make(map[string][]subscriber),
	}

	if cfg == nil || len(cfg.Notifications) == 0 {
		return n, nil
	}

	for _, nc := range cfg.Notifications {
		method := strings.ToLower(nc.Type)
		for _, s := range nc.Subscribers {
			sub := subscriber{endpoint: s.Endpoint}
			for _, info := range s.Information {
				for _, e := range info.Entities {
					re, err := regexp.Compile(e.IDPattern)
					if err != nil {
						return nil, fmt.Errorf("invalid idPattern %q for %s: %w", e.IDPattern, nc.ID, err)
					}
					sub.patterns = append(sub.patterns, re)
				}
			}
			n.subscribers[method] = append(n.subscribers[method], sub)
		}
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return nil, err
	}
	n.client = c

	return n, nil
}

func (n *notifier) Notify(ctx context.Context, alert types.AlertLog) error {
	logger := logging.GetFromContext(ctx)

	methods := lo.Uniq(lo.Map(alert.Condition.NotificationMethods, func(m string, _ int) string {
		return strings.ToLower(strings.TrimSpace(m))
	}))

	var errs []error

	for _, method := range methods {
		if method == strings.ToLower(types.NotificationMethodLog) {
			logger.Info().
				Str("alert_id", alert.ID).
				Str("device_id", alert.DeviceID).
				Str("user_id", alert.UserID).
				Str("value_type", alert.Observation.ValueType).
				Msg(alert.Message)
			continue
		}

		subscribers, ok := n.subscribers[method]
		if !ok || len(subscribers) == 0 {
			logger.Debug().Str("method", method).Msg("no subscribers configured for notification method")
			continue
		}

		if err := n.send(ctx, alert, subscribers); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (n *notifier) send(ctx context.Context, alert types.AlertLog, subscribers []subscriber) error {
	logger := logging.GetFromContext(ctx)

	event := cloudevents.NewEvent()
	event.SetID(alert.ID)
	event.SetTime(alert.CreatedAt)
	event.SetSource(EventSource)
	event.SetType(EventTypeAlertCreated)

	if err := event.SetData(cloudevents.ApplicationJSON, alert); err != nil {
		return err
	}

	var errs []error

	for _, s := range subscribers {
		if !s.accepts(alert.DeviceID) {
			continue
		}

		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.endpoint)

		result := n.client.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send event to %s", s.endpoint)
			errs = append(errs, fmt.Errorf("%s: %w", s.endpoint, result))
		}
	}

	return errors.Join(errs...)
}

type EntityInfo struct {
	IDPattern string `yaml:"idPattern"`
}

type RegistrationInfo struct {
	Entities []EntityInfo `yaml:"entities"`
}

type SubscriberConfig struct {
	Endpoint    string             `yaml:"endpoint"`
	Information []RegistrationInfo `yaml:"information"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
