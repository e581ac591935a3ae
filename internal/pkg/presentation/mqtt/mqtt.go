package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/diwise/iot-telemetry/internal/pkg/application/ingestion"
	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const DefaultTopic = "devices/+/telemetry"

var ErrInvalidTopic = errors.New("invalid topic")

type Config struct {
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string
	QoS      byte
}

type Subscriber struct {
	client mqtt.Client
	cfg    Config
}

// NewSubscriber connects to the broker and subscribes to telemetry topics. Each
// message is handed to the ingestion service as if it had been posted over http.
func NewSubscriber(ctx context.Context, cfg Config, svc ingestion.IngestionService) (*Subscriber, error) {
	log := logging.GetFromContext(ctx)

	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Msg("mqtt connection lost")
	})

	handler := NewMessageHandler(ctx, svc)
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		if token := c.Subscribe(cfg.Topic, cfg.QoS, handler); token.Wait() && token.Error() != nil {
			log.Error().Err(token.Error()).Str("topic", cfg.Topic).Msg("failed to subscribe")
			return
		}
		log.Info().Str("topic", cfg.Topic).Msg("subscribed to telemetry topic")
	})

	client := mqtt.NewClient(opts)

	if token := client.Connect(); token.WaitTimeout(30*time.Second) && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &Subscriber{
		client: client,
		cfg:    cfg,
	}, nil
}

func (s *Subscriber) Close() {
	s.client.Unsubscribe(s.cfg.Topic).WaitTimeout(time.Second)
	s.client.Disconnect(250)
}

// DeviceIDFromTopic extracts the device id from a topic on the form
// devices/<deviceId>/telemetry.
func DeviceIDFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "devices" || parts[2] != "telemetry" || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidTopic, topic)
	}
	return parts[1], nil
}

func NewMessageHandler(ctx context.Context, svc ingestion.IngestionService) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		log := logging.GetFromContext(ctx).With().Str("topic", msg.Topic()).Logger()

		deviceID, err := DeviceIDFromTopic(msg.Topic())
		if err != nil {
			log.Warn().Err(err).Msg("ignoring message")
			return
		}

		var s types.Submission
		if err := json.Unmarshal(msg.Payload(), &s); err != nil {
			log.Warn().Err(err).Msg("ignoring malformed telemetry payload")
			return
		}

		receipt, err := svc.Submit(ctx, deviceID, s)
		if err != nil {
			log.Error().Err(err).Str("device_id", deviceID).Msg("failed to submit telemetry")
			return
		}

		log.Debug().Str("device_id", deviceID).Str("telemetry_id", receipt.TelemetryID).Msg("telemetry received over mqtt")
	}
}
