package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"

	"github.com/diwise/iot-telemetry/internal/pkg/application/alerts"
	"github.com/diwise/iot-telemetry/internal/pkg/application/conditions"
	"github.com/diwise/iot-telemetry/internal/pkg/application/consumer"
	"github.com/diwise/iot-telemetry/internal/pkg/application/devices"
	"github.com/diwise/iot-telemetry/internal/pkg/application/ingestion"
	"github.com/diwise/iot-telemetry/internal/pkg/application/telemetry"
	"github.com/diwise/iot-telemetry/internal/pkg/presentation/api/auth"
	"github.com/diwise/iot-telemetry/pkg/types"
)

var tracer = otel.Tracer("iot-telemetry/api")

const maxTelemetryBodySize int64 = 1 << 20

type Services struct {
	Ingestion  ingestion.IngestionService
	Telemetry  telemetry.TelemetryService
	Devices    devices.DeviceService
	Conditions conditions.ConditionService
	AlertLogs  alerts.AlertLogService
	Consumer   consumer.Consumer
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, authenticator auth.Enticator, svc Services) *chi.Mux {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v0", func(r chi.Router) {
		// devices present their id instead of a user token
		r.Post("/telemetry", submitTelemetryHandler(svc.Ingestion))

		r.Group(func(r chi.Router) {
			r.Use(authenticator.RequireAccess())

			r.Get("/telemetry", queryTelemetryHandler(svc.Telemetry))

			r.Route("/devices", func(r chi.Router) {
				r.Get("/", queryDevicesHandler(svc.Devices))
				r.Post("/", registerDeviceHandler(svc.Devices))
				r.Patch("/{deviceID}", patchDeviceHandler(svc.Devices))
				r.Delete("/{deviceID}", deleteDeviceHandler(svc.Devices))
			})

			r.Route("/conditions", func(r chi.Router) {
				r.Get("/", queryConditionsHandler(svc.Conditions))
				r.Post("/", createConditionHandler(svc.Conditions))
				r.Patch("/{conditionID}", patchConditionHandler(svc.Conditions))
				r.Delete("/{conditionID}", deleteConditionHandler(svc.Conditions))
			})

			r.Route("/alertlogs", func(r chi.Router) {
				r.Get("/", queryAlertLogsHandler(svc.AlertLogs))
				r.Patch("/{alertLogID}", resolveAlertLogHandler(svc.AlertLogs))
				r.Delete("/{alertLogID}", deleteAlertLogHandler(svc.AlertLogs))
			})

			r.With(auth.RequireAdmin).Post("/consumer/run", runConsumerHandler(svc.Consumer))
			r.With(auth.RequireAdmin).Post("/admin/transfer-device", transferDeviceHandler(svc.Devices))
		})
	})

	return router
}

func submitTelemetryHandler(svc ingestion.IngestionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "submit-telemetry")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxTelemetryBodySize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			requestLogger.Error().Err(err).Msg("unable to read body")
			writeError(w, http.StatusBadRequest, "unable to read body")
			return
		}

		var s types.Submission
		if len(body) > 0 {
			if err = json.Unmarshal(body, &s); err != nil {
				requestLogger.Debug().Err(err).Msg("unable to unmarshal body")
				writeError(w, http.StatusBadRequest, "invalid json body")
				return
			}
		}

		deviceID := r.URL.Query().Get("deviceId")
		if deviceID == "" {
			deviceID = s.DeviceID
		}

		receipt, err := svc.Submit(ctx, deviceID, s)
		if err != nil {
			switch {
			case errors.Is(err, ingestion.ErrValidation):
				writeError(w, http.StatusBadRequest, "deviceId required")
			case errors.Is(err, ingestion.ErrDeviceNotFound):
				writeError(w, http.StatusNotFound, "device not found")
			case errors.Is(err, ingestion.ErrRateLimited):
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			default:
				requestLogger.Error().Err(err).Str("device_id", deviceID).Msg("failed to submit telemetry")
				writeError(w, http.StatusInternalServerError, "failed to process telemetry")
			}
			return
		}

		writeJSON(w, http.StatusAccepted, receipt)
	}
}

func queryTelemetryHandler(svc telemetry.TelemetryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-telemetry")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)

		result, err := svc.Query(ctx, user.ID, r.URL.Query())
		if err != nil {
			if errors.Is(err, telemetry.ErrDeviceNotFound) {
				writeError(w, http.StatusForbidden, "device not found or not owned by user")
				return
			}
			requestLogger.Error().Err(err).Msg("failed to query telemetry")
			writeError(w, http.StatusInternalServerError, "failed to get telemetry")
			return
		}

		writeJSON(w, http.StatusOK, collectionResponse("telemetry", result))
	}
}

type registerDeviceRequest struct {
	DeviceID   string         `json:"deviceId"`
	Name       string         `json:"deviceName"`
	SensorType string         `json:"sensorType"`
	DeviceType string         `json:"deviceType"`
	Location   types.Location `json:"location"`
	Status     string         `json:"status"`
}

func (req registerDeviceRequest) device() types.Device {
	d := types.Device{
		DeviceID:   req.DeviceID,
		Name:       req.Name,
		SensorType: req.SensorType,
		Location:   req.Location,
	}

	if d.SensorType == "" {
		d.SensorType = req.DeviceType
	}
	if req.Status != "" {
		d.Status = []string{req.Status}
	}

	return d
}

func registerDeviceHandler(svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "register-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)

		var req registerDeviceRequest
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		d, err := svc.Register(ctx, user.ID, req.device())
		if err != nil {
			writeDeviceError(w, requestLogger, err, "failed to register device")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "Device registered successfully",
			"device":  d,
		})
	}
}

func queryDevicesHandler(svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-devices")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)

		result, err := svc.Query(ctx, user.ID, r.URL.Query())
		if err != nil {
			requestLogger.Error().Err(err).Msg("failed to query devices")
			writeError(w, http.StatusInternalServerError, "failed to get devices")
			return
		}

		writeJSON(w, http.StatusOK, collectionResponse("devices", result))
	}
}

func patchDeviceHandler(svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)

		var u types.DeviceUpdate
		if err = json.NewDecoder(r.Body).Decode(&u); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		d, err := svc.Update(ctx, user.ID, chi.URLParam(r, "deviceID"), u)
		if err != nil {
			writeDeviceError(w, requestLogger, err, "failed to update device")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Device updated successfully",
			"device":  d,
		})
	}
}

func deleteDeviceHandler(svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)

		err = svc.Delete(ctx, user.ID, chi.URLParam(r, "deviceID"))
		if err != nil {
			writeDeviceError(w, requestLogger, err, "failed to delete device")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"message": "Device deleted successfully"})
	}
}

type transferDeviceRequest struct {
	DeviceID  string `json:"deviceId"`
	NewUserID string `json:"newUserId"`
}

func transferDeviceHandler(svc devices.DeviceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "transfer-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		var req transferDeviceRequest
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		err = svc.Transfer(ctx, req.DeviceID, req.NewUserID)
		if err != nil {
			writeDeviceError(w, requestLogger, err, "failed to transfer device")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":   "Device transferred successfully",
			"deviceId":  req.DeviceID,
			"newUserId": req.NewUserID,
		})
	}
}

func writeDeviceError(w http.ResponseWriter, log zerolog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, devices.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, devices.ErrNotOwner):
		writeError(w, http.StatusForbidden, "device not found or not owned by user")
	case errors.Is(err, devices.ErrDeviceNotFound):
		writeError(w, http.StatusNotFound, "device not found")
	case errors.Is(err, devices.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "device already exists")
	default:
		log.Error().Err(err).Msg(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

type createConditionRequest struct {
	Name                string      `json:"conditionName"`
	DeviceID            string      `json:"deviceId"`
	ValueType           string      `json:"valueType"`
	MinValue            *float64    `json:"minValue"`
	MaxValue            *float64    `json:"maxValue"`
	ExactValue          *float64    `json:"exactValue"`
	Unit                string      `json:"unit"`
	Scope               types.Scope `json:"scope"`
	NotificationMethods []string    `json:"notificationMethods"`
	Active              *bool       `json:"active"`

	Parameter string   `json:"parameter"`
	Operator  string   `json:"operator"`
	Threshold *float64 `json:"threshold"`
}

func (req createConditionRequest) condition() (types.Condition, error) {
	c := types.Condition{
		Name:                req.Name,
		DeviceID:            req.DeviceID,
		ValueType:           req.ValueType,
		MinValue:            req.MinValue,
		MaxValue:            req.MaxValue,
		ExactValue:          req.ExactValue,
		Unit:                req.Unit,
		Scope:               req.Scope,
		NotificationMethods: req.NotificationMethods,
		Active:              req.Active == nil || *req.Active,
	}

	if c.ValueType == "" {
		c.ValueType = req.Parameter
	}

	if req.Operator != "" {
		if req.Threshold == nil {
			return c, fmt.Errorf("%w: threshold required with operator", conditions.ErrValidation)
		}
		if err := conditions.ApplyOperator(&c, req.Operator, *req.Threshold); err != nil {
			return c, err
		}
	}

	return c, nil
}

func createConditionHandler(svc conditions.ConditionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-condition")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)

		var req createConditionRequest
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		c, err := req.condition()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := svc.Create(ctx, user.ID, c)
		if err != nil {
			writeConditionError(w, requestLogger, err, "failed to create condition")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"message":   "Condition created successfully",
			"condition": created,
		})
	}
}

func queryConditionsHandler(svc conditions.ConditionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-conditions")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)

		result, err := svc.Query(ctx, user.ID, r.URL.Query())
		if err != nil {
			requestLogger.Error().Err(err).Msg("failed to query conditions")
			writeError(w, http.StatusInternalServerError, "failed to get conditions")
			return
		}

		writeJSON(w, http.StatusOK, collectionResponse("conditions", result))
	}
}

func patchConditionHandler(svc conditions.ConditionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-condition")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)
		conditionID := chi.URLParam(r, "conditionID")

		var u types.ConditionUpdate
		if err = json.NewDecoder(r.Body).Decode(&u); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		updated, err := svc.Update(ctx, user.ID, conditionID, u)
		if err != nil {
			writeConditionError(w, requestLogger, err, "failed to update condition")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":   "Condition updated successfully",
			"condition": updated,
		})
	}
}

func deleteConditionHandler(svc conditions.ConditionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-condition")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)

		err = svc.Delete(ctx, user.ID, chi.URLParam(r, "conditionID"))
		if err != nil {
			writeConditionError(w, requestLogger, err, "failed to delete condition")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"message": "Condition deleted successfully"})
	}
}

func writeConditionError(w http.ResponseWriter, log zerolog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, conditions.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, conditions.ErrDeviceNotFound):
		writeError(w, http.StatusForbidden, "device not found or not owned by user")
	case errors.Is(err, conditions.ErrConditionNotFound):
		writeError(w, http.StatusNotFound, "condition not found")
	default:
		log.Error().Err(err).Msg(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func queryAlertLogsHandler(svc alerts.AlertLogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-alertlogs")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)

		result, err := svc.Query(ctx, user.ID, r.URL.Query())
		if err != nil {
			requestLogger.Error().Err(err).Msg("failed to query alert logs")
			writeError(w, http.StatusInternalServerError, "failed to get alert logs")
			return
		}

		writeJSON(w, http.StatusOK, collectionResponse("alertLogs", result))
	}
}

func resolveAlertLogHandler(svc alerts.AlertLogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "resolve-alertlog")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)

		resolved, err := svc.Resolve(ctx, chi.URLParam(r, "alertLogID"), user.ID)
		if err != nil {
			if errors.Is(err, alerts.ErrAlertLogNotFound) {
				writeError(w, http.StatusNotFound, "alert log not found")
				return
			}
			requestLogger.Error().Err(err).Msg("failed to resolve alert log")
			writeError(w, http.StatusInternalServerError, "failed to resolve alert log")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":  "Alert log resolved",
			"alertLog": resolved,
		})
	}
}

func deleteAlertLogHandler(svc alerts.AlertLogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-alertlog")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		user, _ := auth.GetUserFromContext(ctx)

		err = svc.Delete(ctx, chi.URLParam(r, "alertLogID"), user.ID)
		if err != nil {
			if errors.Is(err, alerts.ErrAlertLogNotFound) {
				writeError(w, http.StatusNotFound, "alert log not found")
				return
			}
			requestLogger.Error().Err(err).Msg("failed to delete alert log")
			writeError(w, http.StatusInternalServerError, "failed to delete alert log")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"message": "Alert log deleted successfully"})
	}
}

func runConsumerHandler(c consumer.Consumer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "run-consumer")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		result, err := c.RunOnce(ctx)
		if err != nil {
			requestLogger.Error().Err(err).Msg("consumer run failed")
			writeError(w, http.StatusInternalServerError, "consumer run failed")
			return
		}

		if result.Errors == nil {
			result.Errors = []string{}
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func collectionResponse[T any](name string, c types.Collection[T]) map[string]any {
	data := c.Data
	if data == nil {
		data = []T{}
	}

	return map[string]any{
		name:         data,
		"count":      c.Count,
		"offset":     c.Offset,
		"limit":      c.Limit,
		"totalCount": c.TotalCount,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
