package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/joho/godotenv"

	"github.com/diwise/iot-telemetry/internal/pkg/application/consumer"
	"github.com/diwise/iot-telemetry/internal/pkg/application/scheduler"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/queue"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/mqtt"
)

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	notificationsFile
	devicesFile
	jwtSecret

	dbHost
	dbPort
	dbName
	dbUser
	dbPassword
	dbSSLMode

	queueBackend
	queueName
	rabbitHost
	rabbitPort
	rabbitUser
	rabbitPassword
	rabbitVHost
	rabbitTLS
	kafkaBrokers
	kafkaGroupID

	redisAddr
	redisPassword
	cacheTTL

	consumerBatchSize
	consumerWorkers
	ackOnReceive
	scheduleInterval

	rateLimit
	rateBurst

	mqttBroker
	mqttClientID
	mqttUser
	mqttPassword
	mqttTopic

	enableMessaging
	devmode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile:      "",
		notificationsFile: "/opt/diwise/config/notifications.yaml",
		devicesFile:       "/opt/diwise/config/devices.csv",
		jwtSecret:         "",

		dbHost:     "",
		dbPort:     "5432",
		dbName:     "diwise",
		dbUser:     "",
		dbPassword: "",
		dbSSLMode:  "disable",

		queueBackend:   "rabbitmq",
		queueName:      queue.DefaultName,
		rabbitHost:     "",
		rabbitPort:     "",
		rabbitUser:     "guest",
		rabbitPassword: "guest",
		rabbitVHost:    "",
		rabbitTLS:      "false",
		kafkaBrokers:   "",
		kafkaGroupID:   "iot-telemetry",

		redisAddr:     "",
		redisPassword: "",
		cacheTTL:      "5m",

		consumerBatchSize: strconv.Itoa(consumer.DefaultBatchSize),
		consumerWorkers:   "1",
		ackOnReceive:      "false",
		scheduleInterval:  scheduler.DefaultInterval.String(),

		rateLimit: "5",
		rateBurst: "10",

		mqttBroker:   "",
		mqttClientID: "iot-telemetry",
		mqttUser:     "",
		mqttPassword: "",
		mqttTopic:    mqtt.DefaultTopic,

		enableMessaging: "false",
		devmode:         "false",
	}
}

type appConfig struct {
	ListenAddress     string
	ServicePort       string
	PoliciesFile      string
	NotificationsFile string
	DevicesFile       string
	JWTSecret         string

	DevMode  bool
	Database database.ConnectorConfig

	Queue    queue.Config
	Consumer consumer.Config
	Schedule scheduler.Config

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	RatePerSecond float64
	RateBurst     int

	MQTT            mqtt.Config
	EnableMessaging bool
}

var envVars = map[flagType]string{
	listenAddress: "LISTEN_ADDRESS",
	servicePort:   "SERVICE_PORT",

	policiesFile:      "POLICIES_FILE",
	notificationsFile: "NOTIFICATIONS_FILE",
	devicesFile:       "DEVICES_FILE",
	jwtSecret:         "JWT_SECRET",

	dbHost:     "POSTGRES_HOST",
	dbPort:     "POSTGRES_PORT",
	dbName:     "POSTGRES_DBNAME",
	dbUser:     "POSTGRES_USER",
	dbPassword: "POSTGRES_PASSWORD",
	dbSSLMode:  "POSTGRES_SSLMODE",

	queueBackend:   "QUEUE_BACKEND",
	queueName:      "QUEUE_NAME",
	rabbitHost:     "RABBITMQ_HOST",
	rabbitPort:     "RABBITMQ_PORT",
	rabbitUser:     "RABBITMQ_USER",
	rabbitPassword: "RABBITMQ_PASS",
	rabbitVHost:    "RABBITMQ_VHOST",
	rabbitTLS:      "RABBITMQ_TLS",
	kafkaBrokers:   "KAFKA_BROKERS",
	kafkaGroupID:   "KAFKA_GROUP_ID",

	redisAddr:     "REDIS_ADDR",
	redisPassword: "REDIS_PASSWORD",
	cacheTTL:      "CONDITION_CACHE_TTL",

	consumerBatchSize: "CONSUMER_BATCH_SIZE",
	consumerWorkers:   "CONSUMER_WORKERS",
	ackOnReceive:      "CONSUMER_ACK_ON_RECEIVE",
	scheduleInterval:  "CONSUMER_SCHEDULE_INTERVAL",

	rateLimit: "INGESTION_RATE_LIMIT",
	rateBurst: "INGESTION_RATE_BURST",

	mqttBroker:   "MQTT_BROKER",
	mqttClientID: "MQTT_CLIENT_ID",
	mqttUser:     "MQTT_USER",
	mqttPassword: "MQTT_PASSWORD",
	mqttTopic:    "MQTT_TOPIC",

	enableMessaging: "ENABLE_MESSAGING",
	devmode:         "DEVMODE",
}

// parseExternalConfig applies, in order of increasing precedence, a .env file,
// environment variables and command line flags on top of the defaults.
func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// a missing .env file is fine
	_ = godotenv.Load()

	log := logging.GetFromContext(ctx)
	for f, name := range envVars {
		flags[f] = env.GetVariableOrDefault(log, name, flags[f])
	}

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("notifications", "notification subscribers configuration file", apply(notificationsFile))
	flag.Func("devices", "list of known devices and their owners", apply(devicesFile))
	flag.Func("queue", "queue backend (rabbitmq, kafka or memory)", apply(queueBackend))
	flag.Func("devmode", "enable dev mode with an in-memory database", apply(devmode))
	flag.Parse()

	return ctx, flags
}

func newAppConfig(flags flagMap) (*appConfig, error) {
	var err error

	boolFlag := func(f flagType) bool {
		b, _ := strconv.ParseBool(flags[f])
		return b
	}

	intFlag := func(f flagType) int {
		if err != nil {
			return 0
		}
		var i int
		i, err = strconv.Atoi(flags[f])
		if err != nil {
			err = fmt.Errorf("invalid value %q for %s: %w", flags[f], envVars[f], err)
		}
		return i
	}

	durationFlag := func(f flagType) time.Duration {
		if err != nil {
			return 0
		}
		var d time.Duration
		d, err = time.ParseDuration(flags[f])
		if err != nil {
			err = fmt.Errorf("invalid value %q for %s: %w", flags[f], envVars[f], err)
		}
		return d
	}

	cfg := &appConfig{
		ListenAddress:     flags[listenAddress],
		ServicePort:       flags[servicePort],
		PoliciesFile:      flags[policiesFile],
		NotificationsFile: flags[notificationsFile],
		DevicesFile:       flags[devicesFile],
		JWTSecret:         flags[jwtSecret],

		DevMode: boolFlag(devmode),
		Database: database.ConnectorConfig{
			Host:     flags[dbHost],
			Port:     flags[dbPort],
			DbName:   flags[dbName],
			Username: flags[dbUser],
			Password: flags[dbPassword],
			SslMode:  flags[dbSSLMode],
		},

		Queue: queue.Config{
			Backend: flags[queueBackend],
			Name:    flags[queueName],
			RabbitMQ: queue.RabbitMQConfig{
				Host:     flags[rabbitHost],
				Port:     flags[rabbitPort],
				User:     flags[rabbitUser],
				Password: flags[rabbitPassword],
				VHost:    flags[rabbitVHost],
				TLS:      boolFlag(rabbitTLS),
			},
			Kafka: queue.KafkaConfig{
				Brokers: splitList(flags[kafkaBrokers]),
				GroupID: flags[kafkaGroupID],
			},
		},

		Consumer: consumer.Config{
			BatchSize:    intFlag(consumerBatchSize),
			Workers:      intFlag(consumerWorkers),
			AckOnReceive: boolFlag(ackOnReceive),
		},

		RedisAddr:     flags[redisAddr],
		RedisPassword: flags[redisPassword],
		CacheTTL:      durationFlag(cacheTTL),

		RateBurst: intFlag(rateBurst),

		MQTT: mqtt.Config{
			Broker:   flags[mqttBroker],
			ClientID: flags[mqttClientID],
			Username: flags[mqttUser],
			Password: flags[mqttPassword],
			Topic:    flags[mqttTopic],
		},

		EnableMessaging: boolFlag(enableMessaging),
	}

	cfg.Schedule = scheduler.Config{
		Interval:  durationFlag(scheduleInterval),
		BatchSize: cfg.Consumer.BatchSize,
	}

	if err != nil {
		return nil, err
	}

	cfg.RatePerSecond, err = strconv.ParseFloat(flags[rateLimit], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q for %s: %w", flags[rateLimit], envVars[rateLimit], err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%s must be set", envVars[jwtSecret])
	}

	if cfg.Database.Host == "" && !cfg.DevMode {
		return nil, fmt.Errorf("%s must be set unless running in dev mode", envVars[dbHost])
	}

	return cfg, nil
}

func splitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
