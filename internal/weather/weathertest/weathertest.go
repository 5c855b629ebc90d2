// Package weathertest provides a fake current-weather endpoint for tests
// of packages built on top of the weather pipeline.
package weathertest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dileep-u-k/weather-mcp/internal/weather"
)

// APIKey is the only key the fake endpoint accepts.
const APIKey = "test-key"

// UnknownCity makes the fake endpoint answer 404.
const UnknownCity = "Atlantis"

// LondonPayload is a trimmed real response in standard units (Kelvin).
const LondonPayload = `{
  "coord": {"lon": -0.1257, "lat": 51.5085},
  "weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
  "main": {"temp": 288.71, "feels_like": 288.32, "pressure": 1012, "humidity": 78},
  "wind": {"speed": 4.63, "deg": 240},
  "dt": 1717430400,
  "sys": {"country": "GB", "sunrise": 1717386300, "sunset": 1717445700},
  "timezone": 3600,
  "name": "London"
}`

// Server is a fake OpenWeatherMap current weather endpoint.
type Server struct {
	*httptest.Server

	requests atomic.Int32
	mu       sync.Mutex
	last     url.Values
}

// NewServer starts a fake endpoint that is closed with the test.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)
	query := r.URL.Query()
	s.mu.Lock()
	s.last = query
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path != "/weather":
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"Internal error"}`))
	case query.Get("appid") != APIKey:
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401,"message":"Invalid API key."}`))
	case strings.HasPrefix(query.Get("q"), UnknownCity):
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	default:
		w.Write([]byte(LondonPayload))
	}
}

// Requests returns how many requests reached the endpoint.
func (s *Server) Requests() int {
	return int(s.requests.Load())
}

// LastQuery returns the query string of the latest request.
func (s *Server) LastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// NewService wires a weather.Service to the fake endpoint. An empty apiKey
// builds a service without a configured key.
func (s *Server) NewService(apiKey string) *weather.Service {
	provider := weather.NewOpenWeatherMap(apiKey, 5*time.Second, weather.WithBaseURL(s.URL))
	fixed := time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC)
	return weather.NewService(provider, weather.ServiceConfig{
		DefaultUnits:  weather.Celsius,
		Timeout:       5 * time.Second,
		KeyConfigured: apiKey != "",
		Now:           func() time.Time { return fixed },
	})
}
