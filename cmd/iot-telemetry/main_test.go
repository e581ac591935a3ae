package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/matryer/is"
	"github.com/redis/go-redis/v9"

	"github.com/diwise/iot-telemetry/internal/pkg/application/consumer"
	"github.com/diwise/iot-telemetry/internal/pkg/application/scheduler"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/database"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/queue"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/api/auth"
)

const testSecret = "main-test-secret"

func TestSetup(t *testing.T) {
	is, _, server := setupTest(t)

	resp, _ := testRequest(is, server, http.MethodGet, "/health", "", "")
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestTelemetryTriggersAlert(t *testing.T) {
	is, _, server := setupTest(t)
	user := token(t, "user-1", false)

	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/conditions", user,
		`{"conditionName":"Too warm","valueType":"temperature","maxValue":30,"scope":"general"}`)
	is.Equal(resp.StatusCode, http.StatusCreated)

	resp, body := testRequest(is, server, http.MethodPost, "/api/v0/telemetry?deviceId=dev-1", "", `{"temperature":35.5,"humidity":40}`)
	is.Equal(resp.StatusCode, http.StatusAccepted)
	is.Equal(body["message"], "Telemetry queued for processing")

	resp, body = testRequest(is, server, http.MethodPost, "/api/v0/consumer/run", token(t, "ops", true), "")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body["processed"], float64(1))
	is.Equal(body["alerts_triggered"], float64(1))

	resp, body = testRequest(is, server, http.MethodGet, "/api/v0/alertlogs", user, "")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body["count"], float64(1))

	alert := body["alertLogs"].([]any)[0].(map[string]any)
	is.Equal(alert["deviceId"], "dev-1")
	is.Equal(alert["message"], "Too warm: temperature (35.5) above maximum (30)")

	resp, body = testRequest(is, server, http.MethodGet, "/api/v0/telemetry?deviceId=dev-1", user, "")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body["count"], float64(1))

	resp, body = testRequest(is, server, http.MethodGet, "/api/v0/alertlogs", token(t, "user-2", false), "")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body["count"], float64(0))
}

func TestDeviceLifecycle(t *testing.T) {
	is, q, server := setupTest(t)
	user := token(t, "user-1", false)
	other := token(t, "user-2", false)

	resp, body := testRequest(is, server, http.MethodPost, "/api/v0/devices", user, `{"deviceName":"Cellar","deviceType":"climate"}`)
	is.Equal(resp.StatusCode, http.StatusCreated)

	deviceID := body["device"].(map[string]any)["deviceId"].(string)

	resp, _ = testRequest(is, server, http.MethodPost, "/api/v0/telemetry?deviceId="+deviceID, "", `{"temperature":12}`)
	is.Equal(resp.StatusCode, http.StatusAccepted)
	is.Equal(q.Len(), 1)

	resp, _ = testRequest(is, server, http.MethodDelete, "/api/v0/devices/"+deviceID, other, "")
	is.Equal(resp.StatusCode, http.StatusForbidden)

	resp, _ = testRequest(is, server, http.MethodPost, "/api/v0/admin/transfer-device", token(t, "ops", true),
		`{"deviceId":"`+deviceID+`","newUserId":"user-2"}`)
	is.Equal(resp.StatusCode, http.StatusOK)

	resp, body = testRequest(is, server, http.MethodGet, "/api/v0/devices", other, "")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body["count"], float64(1))

	resp, _ = testRequest(is, server, http.MethodDelete, "/api/v0/devices/"+deviceID, other, "")
	is.Equal(resp.StatusCode, http.StatusOK)

	resp, _ = testRequest(is, server, http.MethodPost, "/api/v0/telemetry?deviceId="+deviceID, "", `{"temperature":12}`)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestUnknownDeviceIsRejected(t *testing.T) {
	is, q, server := setupTest(t)

	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/telemetry?deviceId=nosuchdevice", "", `{"temperature":1}`)
	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(q.Len(), 0)
}

func TestAppConfig(t *testing.T) {
	is := is.New(t)

	flags := defaultFlags()
	_, err := newAppConfig(flags)
	is.True(err != nil)

	flags[jwtSecret] = "secret"
	flags[devmode] = "true"
	flags[consumerBatchSize] = "25"
	flags[kafkaBrokers] = "kafka-1:9092, kafka-2:9092"

	cfg, err := newAppConfig(flags)
	is.NoErr(err)
	is.Equal(cfg.Consumer.BatchSize, 25)
	is.Equal(cfg.Schedule.BatchSize, 25)
	is.Equal(cfg.Schedule.Interval, scheduler.DefaultInterval)
	is.Equal(cfg.Queue.Kafka.Brokers, []string{"kafka-1:9092", "kafka-2:9092"})

	flags[cacheTTL] = "soon"
	_, err = newAppConfig(flags)
	is.True(err != nil)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	is := is.New(t)

	t.Setenv("CONSUMER_BATCH_SIZE", "42")
	t.Setenv("QUEUE_BACKEND", "memory")

	_, flags := parseExternalConfig(context.Background(), defaultFlags())

	is.Equal(flags[consumerBatchSize], "42")
	is.Equal(flags[queueBackend], "memory")
	is.Equal(flags[consumerWorkers], "1")
}

func setupTest(t *testing.T) (*is.I, *queue.Memory, *httptest.Server) {
	is := is.New(t)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	q := queue.NewMemory()

	cfg := &appConfig{
		JWTSecret: testSecret,
		CacheTTL:  time.Minute,
		Consumer:  consumer.Config{BatchSize: 10, Workers: 1},
		Schedule:  scheduler.Config{Interval: time.Hour},
	}

	a, err := initialize(ctx, cfg, strings.NewReader(auth.DefaultPolicy), nil, dependencies{
		connect: database.NewSQLiteConnector(ctx),
		queue:   q,
		redis:   rdb,
	})
	is.NoErr(err)
	t.Cleanup(a.Close)

	is.NoErr(a.storage.SeedDevices(ctx, strings.NewReader("deviceId;userId;name\ndev-1;user-1;Greenhouse\n")))

	server := httptest.NewServer(a.router)
	t.Cleanup(server.Close)

	return is, q, server
}

func token(t *testing.T, sub string, admin bool) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub, "exp": time.Now().Add(time.Hour).Unix()}
	if admin {
		claims["admin"] = true
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func testRequest(is *is.I, ts *httptest.Server, method, path, bearer, body string) (*http.Response, map[string]any) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	is.NoErr(err)

	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	result := map[string]any{}
	json.Unmarshal(b, &result)

	return resp, result
}
