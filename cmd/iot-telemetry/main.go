package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/diwise/iot-telemetry/internal/pkg/application/alerts"
	"github.com/diwise/iot-telemetry/internal/pkg/application/conditions"
	"github.com/diwise/iot-telemetry/internal/pkg/application/consumer"
	"github.com/diwise/iot-telemetry/internal/pkg/application/devices"
	"github.com/diwise/iot-telemetry/internal/pkg/application/ingestion"
	"github.com/diwise/iot-telemetry/internal/pkg/application/notifications"
	"github.com/diwise/iot-telemetry/internal/pkg/application/scheduler"
	"github.com/diwise/iot-telemetry/internal/pkg/application/telemetry"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/cache"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/queue"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/router"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/api"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/api/auth"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/mqtt"
)

const serviceName string = "iot-telemetry"

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion)
	defer cleanup()

	cfg, err := newAppConfig(flags)
	exitIf(err, logger, "invalid configuration")

	policies, err := openPolicies(cfg.PoliciesFile)
	exitIf(err, logger, "unable to open opa policy file")

	notificationCfg, err := loadNotifications(cfg.NotificationsFile)
	exitIf(err, logger, "could not load notifications configuration")

	connect := database.NewSQLiteConnector(ctx)
	if !cfg.DevMode {
		connect = database.NewPostgreSQLConnector(ctx, cfg.Database)
	}

	q, err := queue.New(ctx, cfg.Queue)
	exitIf(err, logger, "could not connect to queue")

	var rdb redis.UniversalClient
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	}

	var messenger alerts.Publisher
	if cfg.EnableMessaging {
		msgCtx, err := messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
		exitIf(err, logger, "failed to init messenger")
		defer msgCtx.Close()
		messenger = msgCtx
	}

	a, err := initialize(ctx, cfg, policies, notificationCfg, dependencies{
		connect:   connect,
		queue:     q,
		redis:     rdb,
		messenger: messenger,
	})
	exitIf(err, logger, "failed to initialize service")
	defer a.Close()

	err = seedDevices(ctx, a.storage, cfg.DevicesFile)
	exitIf(err, logger, "could not seed devices")

	if cfg.MQTT.Broker != "" {
		subscriber, err := mqtt.NewSubscriber(ctx, cfg.MQTT, a.ingestion)
		exitIf(err, logger, "failed to connect to mqtt broker")
		defer subscriber.Close()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.scheduler.Start(ctx)
	defer a.scheduler.Stop()

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.ListenAddress, cfg.ServicePort),
		Handler: a.router,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting to listen for connections")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("failed to start request router")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down http server")
	}
}

type dependencies struct {
	connect   database.ConnectorFunc
	queue     queue.Queue
	redis     redis.UniversalClient
	messenger alerts.Publisher
}

type application struct {
	router    *chi.Mux
	storage   *database.Storage
	queue     queue.Queue
	redis     redis.UniversalClient
	ingestion ingestion.IngestionService
	consumer  consumer.Consumer
	scheduler scheduler.Scheduler
}

func (a *application) Close() {
	a.queue.Close()
	if a.redis != nil {
		a.redis.Close()
	}
	a.storage.Close()
}

func initialize(ctx context.Context, cfg *appConfig, policies io.Reader, notificationCfg *notifications.Config, deps dependencies) (*application, error) {
	storage, err := database.New(ctx, deps.connect)
	if err != nil {
		return nil, err
	}

	var conditionStore cache.ConditionStore = storage
	if deps.redis != nil {
		conditionStore = cache.NewConditionCache(storage, deps.redis, cfg.CacheTTL)
	}

	notifier, err := notifications.New(notificationCfg)
	if err != nil {
		return nil, err
	}

	evaluator := alerts.NewEvaluator(conditionStore, storage, deps.messenger, notifier)
	c := consumer.New(deps.queue, storage, evaluator, cfg.Consumer)

	var limiter *ingestion.DeviceLimiter
	if cfg.RatePerSecond > 0 {
		limiter = ingestion.NewDeviceLimiter(cfg.RatePerSecond, cfg.RateBurst)
	}
	ingestionSvc := ingestion.New(storage, deps.queue, limiter)

	authenticator, err := auth.NewAuthenticator(ctx, policies, cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	r := api.RegisterHandlers(ctx, router.New(serviceName), authenticator, api.Services{
		Ingestion:  ingestionSvc,
		Telemetry:  telemetry.NewTelemetryService(storage),
		Devices:    devices.New(storage),
		Conditions: conditions.New(conditionStore, storage),
		AlertLogs:  alerts.NewAlertLogService(storage, deps.messenger),
		Consumer:   c,
	})

	return &application{
		router:    r,
		storage:   storage,
		queue:     deps.queue,
		redis:     deps.redis,
		ingestion: ingestionSvc,
		consumer:  c,
		scheduler: scheduler.New(c, cfg.Schedule),
	}, nil
}

func openPolicies(path string) (io.Reader, error) {
	if path == "" {
		return strings.NewReader(auth.DefaultPolicy), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return strings.NewReader(string(b)), nil
}

func loadNotifications(path string) (*notifications.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	return notifications.LoadConfiguration(f)
}

func seedDevices(ctx context.Context, storage *database.Storage, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	return storage.SeedDevices(ctx, f)
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Error().Err(err).Msg(msg)
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
