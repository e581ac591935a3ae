package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/diwise/iot-telemetry/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrRateLimited    = errors.New("rate limited")
	ErrUnauthorized   = errors.New("unauthorized")
)

var tracer = otel.Tracer("iot-telemetry-client")

type TelemetryClient interface {
	SubmitTelemetry(ctx context.Context, deviceID string, s types.Submission) (types.Receipt, error)
	GetAlertLogs(ctx context.Context, params url.Values) (AlertLogResult, error)
	RunConsumer(ctx context.Context) (RunResult, error)
}

type AlertLogResult struct {
	AlertLogs  []types.AlertLog `json:"alertLogs"`
	Count      uint64           `json:"count"`
	Offset     uint64           `json:"offset"`
	Limit      uint64           `json:"limit"`
	TotalCount uint64           `json:"totalCount"`
}

type RunResult struct {
	Processed       int      `json:"processed"`
	AlertsTriggered int      `json:"alerts_triggered"`
	Errors          []string `json:"errors"`
}

type telemetryClient struct {
	url        string
	httpClient *http.Client
	authClient *http.Client
}

// New creates a client for the service at baseURL. Authenticated calls fetch
// tokens from oauthTokenURL using the client credentials grant. Telemetry
// submission needs no token.
func New(ctx context.Context, baseURL, oauthTokenURL, clientID, clientSecret string) (TelemetryClient, error) {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	c := &telemetryClient{
		url:        strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		authClient: httpClient,
	}

	if oauthTokenURL != "" {
		oauthConfig := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     oauthTokenURL,
		}

		token, err := oauthConfig.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get client credentials from %s: %w", oauthTokenURL, err)
		}

		if !token.Valid() {
			return nil, fmt.Errorf("an invalid token was returned from %s", oauthTokenURL)
		}

		c.authClient = oauthConfig.Client(context.WithValue(ctx, oauth2.HTTPClient, httpClient))
	}

	return c, nil
}

func (c *telemetryClient) SubmitTelemetry(ctx context.Context, deviceID string, s types.Submission) (receipt types.Receipt, err error) {
	ctx, span := tracer.Start(ctx, "submit-telemetry")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(s)
	if err != nil {
		return types.Receipt{}, err
	}

	u := c.url + "/api/v0/telemetry?deviceId=" + url.QueryEscape(deviceID)

	err = c.do(ctx, c.httpClient, http.MethodPost, u, body, http.StatusAccepted, &receipt)
	return receipt, err
}

func (c *telemetryClient) GetAlertLogs(ctx context.Context, params url.Values) (result AlertLogResult, err error) {
	ctx, span := tracer.Start(ctx, "get-alertlogs")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	u := c.url + "/api/v0/alertlogs"
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	err = c.do(ctx, c.authClient, http.MethodGet, u, nil, http.StatusOK, &result)
	return result, err
}

func (c *telemetryClient) RunConsumer(ctx context.Context) (result RunResult, err error) {
	ctx, span := tracer.Start(ctx, "run-consumer")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	err = c.do(ctx, c.authClient, http.MethodPost, c.url+"/api/v0/consumer/run", nil, http.StatusOK, &result)
	return result, err
}

func (c *telemetryClient) do(ctx context.Context, httpClient *http.Client, method, u string, body []byte, expected int, result any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expected {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrDeviceNotFound
		case http.StatusTooManyRequests:
			return ErrRateLimited
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrUnauthorized
		}
		return fmt.Errorf("request failed with status code %d: %s", resp.StatusCode, string(respBody))
	}

	if err = json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
