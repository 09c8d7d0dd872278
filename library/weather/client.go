// Package weather queries the OpenWeather current conditions endpoint.
package weather

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	errors "github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v7"
	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"

	"github.com/Laisky/weather-widget/library/log"
)

const (
	// DefaultEndpoint is the current-weather-by-city-name lookup.
	DefaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"
	// DefaultUnits asks the provider for Celsius temperatures.
	DefaultUnits = "metric"
	// DefaultTimeout bounds one lookup unless overridden by WithTimeout.
	DefaultTimeout = 10 * time.Second
	// logBodyLimit caps the number of response bytes logged for debugging.
	logBodyLimit = 4096
	// maxBodyBytes caps how much of a response is read.
	maxBodyBytes = 1 << 20
)

// Option configures the Client instance.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used to reach the provider.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithEndpoint overrides the provider endpoint, primarily for testing.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
			c.endpoint = trimmed
		}
	}
}

// WithLogger overrides the default logger used when no contextual logger is present.
func WithLogger(logger logSDK.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUnits overrides the unit system sent to the provider.
func WithUnits(units string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(units); trimmed != "" {
			c.units = trimmed
		}
	}
}

// WithTimeout sets the per-lookup timeout. Zero leaves the transport default in place.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout >= 0 {
			c.timeout = timeout
		}
	}
}

// Client fetches current conditions for a city name.
type Client struct {
	apiKey   string
	client   *http.Client
	endpoint string
	units    string
	timeout  time.Duration
	logger   logSDK.Logger
}

// NewClient constructs a provider client using the given API key.
//
// An empty key is accepted: the provider answers with an authentication failure,
// which surfaces as KindAuth.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   strings.TrimSpace(apiKey),
		client:   &http.Client{},
		endpoint: DefaultEndpoint,
		units:    DefaultUnits,
		timeout:  DefaultTimeout,
		logger:   log.Logger.Named("weather_client"),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.apiKey == "" {
		c.logger.Warn("weather api key is not configured, lookups will be rejected by the provider")
	}

	return c
}

// Current performs one lookup for city and returns the parsed observation.
// Every failure is a *LookupError.
func (c *Client) Current(ctx context.Context, city string) (*Observation, error) {
	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, NewLookupError(KindUnknown, 0,
			errors.Wrapf(err, "invalid weather endpoint %q", c.endpoint))
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, NewLookupError(KindUnknown, 0, errors.Wrap(err, "create weather request"))
	}

	params := req.URL.Query()
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")

	logger := c.logger
	if _, ok := gmw.GetGinCtxFromStdCtx(ctx); ok {
		logger = gmw.GetLogger(ctx).Named("weather_client")
	}

	logger.Debug("outgoing http request",
		zap.String("method", req.Method),
		zap.String("url", redactedURL(req.URL)),
		zap.String("city", city),
	)

	startAt := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewLookupError(KindNetwork, 0, errors.Wrap(err, "send weather request"))
	}
	defer gutils.CloseWithLog(resp.Body, logger)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, NewLookupError(KindNetwork, resp.StatusCode,
			errors.Wrap(err, "read weather response body"))
	}

	truncatedBody, truncated := truncateForLog(body, logBodyLimit)
	logger.Debug("incoming http response",
		zap.Int("status", resp.StatusCode),
		zap.String("body", truncatedBody),
		zap.Bool("body_truncated", truncated),
		zap.Duration("cost", time.Since(startAt)),
		zap.String("city", city),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewLookupError(kindForStatus(resp.StatusCode), resp.StatusCode,
			errors.Errorf("weather provider returned status %d: %s",
				resp.StatusCode, providerMessage(body)))
	}

	var payload currentResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, NewLookupError(KindMalformed, resp.StatusCode,
			errors.Wrap(err, "unmarshal weather response"))
	}

	if code := payload.code(); code != 0 && code != http.StatusOK {
		return nil, NewLookupError(kindForStatus(code), code,
			errors.Errorf("weather provider reported code %d: %s", code, payload.Message))
	}

	obs, err := payload.observation()
	if err != nil {
		return nil, NewLookupError(KindMalformed, resp.StatusCode, err)
	}

	return obs, nil
}

// providerMessage extracts the provider's `message` field, or the raw body when absent.
func providerMessage(body []byte) string {
	var payload currentResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	msg, _ := truncateForLog(body, 256)
	return msg
}

// redactedURL renders u with the api key masked.
func redactedURL(u *url.URL) string {
	cp := *u
	q := cp.Query()
	if q.Get("appid") != "" {
		q.Set("appid", "***")
	}
	cp.RawQuery = q.Encode()
	return cp.String()
}

// truncateForLog limits the payload logged for debugging and reports whether truncation occurred.
func truncateForLog(body []byte, limit int) (string, bool) {
	if len(body) <= limit {
		return string(body), false
	}
	return string(body[:limit]), true
}
