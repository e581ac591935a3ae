package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/matryer/is"

	"github.com/diwise/iot-telemetry/internal/pkg/application/alerts"
	"github.com/diwise/iot-telemetry/internal/pkg/application/conditions"
	"github.com/diwise/iot-telemetry/internal/pkg/application/consumer"
	"github.com/diwise/iot-telemetry/internal/pkg/application/devices"
	"github.com/diwise/iot-telemetry/internal/pkg/application/ingestion"
	"github.com/diwise/iot-telemetry/internal/pkg/application/telemetry"
	"github.com/diwise/iot-telemetry/internal/pkg/infrastructure/router"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/api/auth"
	"github.com/diwise/iot-telemetry/pkg/types"
)

const testSecret = "api-test-secret"

type testServices struct {
	ingestion  *ingestion.IngestionServiceMock
	telemetry  *telemetry.TelemetryServiceMock
	devices    *devices.DeviceServiceMock
	conditions *conditions.ConditionServiceMock
	alertLogs  *alerts.AlertLogServiceMock
	consumer   *consumer.ConsumerMock
}

func testSetup(t *testing.T) (*is.I, *httptest.Server, testServices) {
	is := is.New(t)
	ctx := context.Background()

	svcs := testServices{
		ingestion: &ingestion.IngestionServiceMock{
			SubmitFunc: func(ctx context.Context, deviceID string, s types.Submission) (types.Receipt, error) {
				switch deviceID {
				case "":
					return types.Receipt{}, ingestion.ErrValidation
				case "unknown":
					return types.Receipt{}, ingestion.ErrDeviceNotFound
				case "chatty":
					return types.Receipt{}, ingestion.ErrRateLimited
				}
				return types.Receipt{Message: ingestion.QueuedMessage, TelemetryID: "t-1", Timestamp: time.Now().UTC()}, nil
			},
		},
		telemetry: &telemetry.TelemetryServiceMock{
			QueryFunc: func(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.TelemetryRecord], error) {
				if params["deviceId"] != nil && params["deviceId"][0] == "other" {
					return types.Collection[types.TelemetryRecord]{}, telemetry.ErrDeviceNotFound
				}
				return types.Collection[types.TelemetryRecord]{
					Data:  []types.TelemetryRecord{{ID: "t-1", DeviceID: "dev-1", UserID: userID}},
					Count: 1, Limit: 100, TotalCount: 1,
				}, nil
			},
		},
		devices: &devices.DeviceServiceMock{
			RegisterFunc: func(ctx context.Context, userID string, d types.Device) (types.Device, error) {
				if d.Name == "" || d.SensorType == "" {
					return types.Device{}, devices.ErrValidation
				}
				if d.DeviceID == "dev-1" {
					return types.Device{}, devices.ErrAlreadyExists
				}
				d.DeviceID = "dev-new"
				d.UserID = userID
				return d, nil
			},
			QueryFunc: func(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.Device], error) {
				return types.Collection[types.Device]{
					Data:  []types.Device{{DeviceID: "dev-1", UserID: userID}},
					Count: 1, Limit: 100, TotalCount: 1,
				}, nil
			},
			UpdateFunc: func(ctx context.Context, userID string, deviceID string, u types.DeviceUpdate) (types.Device, error) {
				if deviceID != "dev-1" {
					return types.Device{}, devices.ErrNotOwner
				}
				return types.Device{DeviceID: deviceID, UserID: userID, Name: *u.Name}, nil
			},
			DeleteFunc: func(ctx context.Context, userID string, deviceID string) error {
				if deviceID != "dev-1" {
					return devices.ErrDeviceNotFound
				}
				return nil
			},
			TransferFunc: func(ctx context.Context, deviceID string, newUserID string) error {
				if newUserID == "" {
					return devices.ErrValidation
				}
				return nil
			},
		},
		conditions: &conditions.ConditionServiceMock{
			CreateFunc: func(ctx context.Context, userID string, c types.Condition) (types.Condition, error) {
				c.ID = "c-1"
				c.UserID = userID
				return c, nil
			},
			QueryFunc: func(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.Condition], error) {
				return types.Collection[types.Condition]{}, nil
			},
			UpdateFunc: func(ctx context.Context, userID string, conditionID string, u types.ConditionUpdate) (types.Condition, error) {
				if conditionID != "c-1" {
					return types.Condition{}, conditions.ErrConditionNotFound
				}
				return types.Condition{ID: conditionID, UserID: userID}, nil
			},
			DeleteFunc: func(ctx context.Context, userID string, conditionID string) error {
				return nil
			},
		},
		alertLogs: &alerts.AlertLogServiceMock{
			QueryFunc: func(ctx context.Context, userID string, params map[string][]string) (types.Collection[types.AlertLog], error) {
				return types.Collection[types.AlertLog]{
					Data:  []types.AlertLog{{ID: "a-1", UserID: userID, Message: "Temperature above maximum"}},
					Count: 1, Limit: 100, TotalCount: 1,
				}, nil
			},
			ResolveFunc: func(ctx context.Context, alertLogID string, userID string) (types.AlertLog, error) {
				if alertLogID != "a-1" {
					return types.AlertLog{}, alerts.ErrAlertLogNotFound
				}
				return types.AlertLog{ID: alertLogID, Resolved: true}, nil
			},
			DeleteFunc: func(ctx context.Context, alertLogID string, userID string) error {
				return alerts.ErrAlertLogNotFound
			},
		},
		consumer: &consumer.ConsumerMock{
			RunOnceFunc: func(ctx context.Context) (consumer.Result, error) {
				return consumer.Result{Processed: 2, AlertsTriggered: 1}, nil
			},
		},
	}

	authenticator, err := auth.NewAuthenticator(ctx, strings.NewReader(auth.DefaultPolicy), testSecret)
	is.NoErr(err)

	r := RegisterHandlers(ctx, router.New("test"), authenticator, Services{
		Ingestion:  svcs.ingestion,
		Telemetry:  svcs.telemetry,
		Devices:    svcs.devices,
		Conditions: svcs.conditions,
		AlertLogs:  svcs.alertLogs,
		Consumer:   svcs.consumer,
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return is, srv, svcs
}

func bearer(t *testing.T, sub string, admin bool) string {
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

func testRequest(is *is.I, method, url, token string, body io.Reader) (*http.Response, map[string]any) {
	req, err := http.NewRequest(method, url, body)
	is.NoErr(err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
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

func TestHealth(t *testing.T) {
	is, srv, _ := testSetup(t)

	resp, _ := testRequest(is, http.MethodGet, srv.URL+"/health", "", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestSubmitTelemetry(t *testing.T) {
	is, srv, svcs := testSetup(t)

	resp, body := testRequest(is, http.MethodPost, srv.URL+"/api/v0/telemetry?deviceId=dev-1", "", strings.NewReader(`{"temperature":21.5}`))
	is.Equal(resp.StatusCode, http.StatusAccepted)
	is.Equal(body["message"], ingestion.QueuedMessage)
	is.Equal(body["telemetryId"], "t-1")
	is.Equal(svcs.ingestion.SubmitCalls()[0].DeviceID, "dev-1")

	resp, _ = testRequest(is, http.MethodPost, srv.URL+"/api/v0/telemetry", "", strings.NewReader(`{"deviceId":"dev-2","humidity":40}`))
	is.Equal(resp.StatusCode, http.StatusAccepted)
	is.Equal(svcs.ingestion.SubmitCalls()[1].DeviceID, "dev-2")
}

func TestSubmitTelemetryErrors(t *testing.T) {
	is, srv, _ := testSetup(t)

	testCases := map[string]struct {
		url    string
		body   string
		status int
	}{
		"missing device": {"/api/v0/telemetry", `{"temperature":1}`, http.StatusBadRequest},
		"bad json":       {"/api/v0/telemetry?deviceId=dev-1", `{`, http.StatusBadRequest},
		"unknown device": {"/api/v0/telemetry?deviceId=unknown", `{}`, http.StatusNotFound},
		"rate limited":   {"/api/v0/telemetry?deviceId=chatty", `{}`, http.StatusTooManyRequests},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			resp, body := testRequest(is, http.MethodPost, srv.URL+tc.url, "", strings.NewReader(tc.body))
			is.Equal(resp.StatusCode, tc.status)
			is.True(body["error"] != nil)
		})
	}
}

func TestSubmitTelemetryRejectsOversizedBody(t *testing.T) {
	is, srv, svcs := testSetup(t)

	body := `{"note":"` + strings.Repeat("x", int(maxTelemetryBodySize)) + `"}`

	resp, _ := testRequest(is, http.MethodPost, srv.URL+"/api/v0/telemetry?deviceId=dev-1", "", strings.NewReader(body))
	is.Equal(resp.StatusCode, http.StatusRequestEntityTooLarge)
	is.Equal(len(svcs.ingestion.SubmitCalls()), 0)
}

func TestAuthenticatedRoutesRequireToken(t *testing.T) {
	is, srv, _ := testSetup(t)

	for _, path := range []string{"/api/v0/telemetry", "/api/v0/devices", "/api/v0/conditions", "/api/v0/alertlogs"} {
		resp, _ := testRequest(is, http.MethodGet, srv.URL+path, "", nil)
		is.Equal(resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestRegisterAndListDevices(t *testing.T) {
	is, srv, svcs := testSetup(t)
	token := bearer(t, "user-1", false)

	resp, body := testRequest(is, http.MethodPost, srv.URL+"/api/v0/devices", token, strings.NewReader(`{"deviceName":"greenhouse","deviceType":"climate"}`))
	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(body["message"], "Device registered successfully")
	is.Equal(svcs.devices.RegisterCalls()[0].UserID, "user-1")
	is.Equal(svcs.devices.RegisterCalls()[0].D.SensorType, "climate")

	resp, _ = testRequest(is, http.MethodPost, srv.URL+"/api/v0/devices", token, strings.NewReader(`{"deviceName":"greenhouse"}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	resp, _ = testRequest(is, http.MethodPost, srv.URL+"/api/v0/devices", token, strings.NewReader(`{"deviceId":"dev-1","deviceName":"greenhouse","sensorType":"climate"}`))
	is.Equal(resp.StatusCode, http.StatusConflict)

	resp, body = testRequest(is, http.MethodGet, srv.URL+"/api/v0/devices", token, nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body["count"], float64(1))
	is.Equal(len(body["devices"].([]any)), 1)
}

func TestPatchAndDeleteDevice(t *testing.T) {
	is, srv, _ := testSetup(t)
	token := bearer(t, "user-1", false)

	resp, body := testRequest(is, http.MethodPatch, srv.URL+"/api/v0/devices/dev-1", token, strings.NewReader(`{"deviceName":"renamed"}`))
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body["message"], "Device updated successfully")

	resp, _ = testRequest(is, http.MethodPatch, srv.URL+"/api/v0/devices/dev-2", token, strings.NewReader(`{"deviceName":"renamed"}`))
	is.Equal(resp.StatusCode, http.StatusForbidden)

	resp, _ = testRequest(is, http.MethodDelete, srv.URL+"/api/v0/devices/dev-1", token, nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	resp, _ = testRequest(is, http.MethodDelete, srv.URL+"/api/v0/devices/dev-9", token, nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestTransferDeviceRequiresAdmin(t *testing.T) {
	is, srv, svcs := testSetup(t)
	url := srv.URL + "/api/v0/admin/transfer-device"

	resp, _ := testRequest(is, http.MethodPost, url, bearer(t, "user-1", false), strings.NewReader(`{"deviceId":"dev-1","newUserId":"user-2"}`))
	is.Equal(resp.StatusCode, http.StatusForbidden)
	is.Equal(len(svcs.devices.TransferCalls()), 0)

	resp, _ = testRequest(is, http.MethodPost, url, bearer(t, "ops", true), strings.NewReader(`{"deviceId":"dev-1"}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	resp, body := testRequest(is, http.MethodPost, url, bearer(t, "ops", true), strings.NewReader(`{"deviceId":"dev-1","newUserId":"user-2"}`))
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body["newUserId"], "user-2")
	is.Equal(svcs.devices.TransferCalls()[1].DeviceID, "dev-1")
}

func TestQueryAlertLogs(t *testing.T) {
	is, srv, svcs := testSetup(t)

	resp, body := testRequest(is, http.MethodGet, srv.URL+"/api/v0/alertlogs?limit=10", bearer(t, "user-1", false), nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body["count"], float64(1))
	is.Equal(len(body["alertLogs"].([]any)), 1)

	call := svcs.alertLogs.QueryCalls()[0]
	is.Equal(call.UserID, "user-1")
	is.Equal(call.Params["limit"][0], "10")
}

func TestResolveAndDeleteAlertLog(t *testing.T) {
	is, srv, svcs := testSetup(t)
	token := bearer(t, "user-1", false)

	resp, body := testRequest(is, http.MethodPatch, srv.URL+"/api/v0/alertlogs/a-1", token, nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body["alertLog"].(map[string]any)["resolved"], true)
	is.Equal(svcs.alertLogs.ResolveCalls()[0].UserID, "user-1")

	resp, _ = testRequest(is, http.MethodPatch, srv.URL+"/api/v0/alertlogs/a-2", token, nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)

	resp, _ = testRequest(is, http.MethodDelete, srv.URL+"/api/v0/alertlogs/a-2", token, nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestQueryTelemetry(t *testing.T) {
	is, srv, _ := testSetup(t)
	token := bearer(t, "user-1", false)

	resp, body := testRequest(is, http.MethodGet, srv.URL+"/api/v0/telemetry?deviceId=dev-1", token, nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(body["telemetry"].([]any)), 1)

	resp, _ = testRequest(is, http.MethodGet, srv.URL+"/api/v0/telemetry?deviceId=other", token, nil)
	is.Equal(resp.StatusCode, http.StatusForbidden)
}

func TestCreateConditionWithOperator(t *testing.T) {
	is, srv, svcs := testSetup(t)

	resp, body := testRequest(is, http.MethodPost, srv.URL+"/api/v0/conditions", bearer(t, "user-1", false),
		strings.NewReader(`{"conditionName":"Too warm","parameter":"temperature","operator":">","threshold":30}`))
	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(body["condition"].(map[string]any)["id"], "c-1")

	c := svcs.conditions.CreateCalls()[0].C
	is.Equal(c.ValueType, "temperature")
	is.Equal(*c.MaxValue, 30.0)
	is.True(c.Active)
}

func TestCreateConditionErrors(t *testing.T) {
	is, srv, svcs := testSetup(t)
	token := bearer(t, "user-1", false)

	resp, _ := testRequest(is, http.MethodPost, srv.URL+"/api/v0/conditions", token,
		strings.NewReader(`{"parameter":"temperature","operator":"!=","threshold":30}`))
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	svcs.conditions.CreateFunc = func(ctx context.Context, userID string, c types.Condition) (types.Condition, error) {
		return types.Condition{}, conditions.ErrDeviceNotFound
	}
	resp, _ = testRequest(is, http.MethodPost, srv.URL+"/api/v0/conditions", token,
		strings.NewReader(`{"valueType":"temperature","deviceId":"not-mine","maxValue":30}`))
	is.Equal(resp.StatusCode, http.StatusForbidden)
}

func TestPatchAndDeleteCondition(t *testing.T) {
	is, srv, _ := testSetup(t)
	token := bearer(t, "user-1", false)

	resp, _ := testRequest(is, http.MethodPatch, srv.URL+"/api/v0/conditions/c-1", token, strings.NewReader(`{"active":false}`))
	is.Equal(resp.StatusCode, http.StatusOK)

	resp, _ = testRequest(is, http.MethodPatch, srv.URL+"/api/v0/conditions/c-9", token, strings.NewReader(`{"active":false}`))
	is.Equal(resp.StatusCode, http.StatusNotFound)

	resp, _ = testRequest(is, http.MethodDelete, srv.URL+"/api/v0/conditions/c-1", token, nil)
	is.Equal(resp.StatusCode, http.StatusOK)
}

func TestRunConsumerRequiresAdmin(t *testing.T) {
	is, srv, svcs := testSetup(t)

	resp, _ := testRequest(is, http.MethodPost, srv.URL+"/api/v0/consumer/run", bearer(t, "user-1", false), nil)
	is.Equal(resp.StatusCode, http.StatusForbidden)
	is.Equal(len(svcs.consumer.RunOnceCalls()), 0)

	resp, body := testRequest(is, http.MethodPost, srv.URL+"/api/v0/consumer/run", bearer(t, "ops", true), nil)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body["processed"], float64(2))
	is.Equal(body["alerts_triggered"], float64(1))
}
