package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	APIVersion     = "2.5"
	ProviderName   = "OpenWeatherMap"

	DefaultTimeout = 10 * time.Second
	MinTimeout     = 5 * time.Second
	MaxTimeout     = 30 * time.Second

	userAgent    = "WeatherMCP/1.0"
	maxBodyBytes = 1 << 20
)

// ClampTimeout bounds d to [MinTimeout, MaxTimeout]; zero or negative means DefaultTimeout.
func ClampTimeout(d time.Duration) time.Duration {
	switch {
	case d <= 0:
		return DefaultTimeout
	case d < MinTimeout:
		return MinTimeout
	case d > MaxTimeout:
		return MaxTimeout
	}
	return d
}

// OpenWeatherMap is the upstream fetcher for the current weather endpoint.
// It never retries; every failure comes back as a *Error.
type OpenWeatherMap struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

var _ Provider = (*OpenWeatherMap)(nil)

// Option customises an OpenWeatherMap fetcher.
type Option func(*OpenWeatherMap)

// WithBaseURL points the fetcher at a different API root (tests, proxies).
func WithBaseURL(baseURL string) Option {
	return func(p *OpenWeatherMap) { p.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *OpenWeatherMap) { p.httpClient = c }
}

// NewOpenWeatherMap creates a fetcher. A non-positive timeout means DefaultTimeout.
func NewOpenWeatherMap(apiKey string, timeout time.Duration, opts ...Option) *OpenWeatherMap {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	p := &OpenWeatherMap{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenWeatherMap) Name() string { return ProviderName }

// Current fetches current conditions in standard units (Kelvin).
func (p *OpenWeatherMap) Current(ctx context.Context, q Query) (*Observation, error) {
	if p.apiKey == "" {
		return nil, notConfiguredError()
	}

	params := url.Values{}
	if q.Coordinates != nil {
		params.Set("lat", strconv.FormatFloat(q.Coordinates.Latitude, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(q.Coordinates.Longitude, 'f', -1, 64))
	} else {
		params.Set("q", q.String())
	}
	params.Set("appid", p.apiKey)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, upstreamError(0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, invalidKeyError()
	case http.StatusNotFound:
		return nil, notFoundError(q.String())
	case http.StatusTooManyRequests:
		return nil, rateLimitError(resp.StatusCode, nil)
	default:
		return nil, upstreamError(resp.StatusCode, providerMessage(body))
	}

	var obs Observation
	if err := json.Unmarshal(body, &obs); err != nil {
		return nil, upstreamError(resp.StatusCode, fmt.Errorf("failed to parse response: %w", err))
	}
	return &obs, nil
}

// transportError classifies a failed round trip. The *url.Error wrapper is
// dropped because its URL carries the API key.
func transportError(err error) *Error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutError(err)
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return timeoutError(err)
	}
	return upstreamError(0, err)
}

func providerMessage(body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		return errors.New(payload.Message)
	}
	return nil
}
