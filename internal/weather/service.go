package weather

import (
	"context"
	"time"
)

// ServiceConfig holds the settings the pipeline needs besides the provider.
type ServiceConfig struct {
	DefaultUnits  Units
	Timeout       time.Duration
	KeyConfigured bool

	// Now overrides the clock used for observed_at.
	Now func() time.Time
}

// Service runs the Normalizer → Fetcher → Shaper pipeline. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	provider      Provider
	defaultUnits  Units
	timeout       time.Duration
	keyConfigured bool
	now           func() time.Time
}

func NewService(provider Provider, cfg ServiceConfig) *Service {
	s := &Service{
		provider:      provider,
		defaultUnits:  ParseUnits(string(cfg.DefaultUnits), DefaultUnits),
		timeout:       cfg.Timeout,
		keyConfigured: cfg.KeyConfigured,
		now:           cfg.Now,
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// fetch runs one provider call under the configured timeout. The deadline
// covers the whole call, including any wait in a rate limiter.
func (s *Service) fetch(ctx context.Context, q Query) (*Observation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.provider.Current(ctx, q)
}

// Lookup validates raw, fetches the conditions and shapes the report.
// Validation failures never reach the network.
func (s *Service) Lookup(ctx context.Context, raw RawQuery) (Report, error) {
	q, err := Normalize(raw, s.defaultUnits)
	if err != nil {
		return Report{}, err
	}
	if !s.keyConfigured {
		return Report{}, notConfiguredError()
	}
	obs, err := s.fetch(ctx, q)
	if err != nil {
		return Report{}, AsError(err)
	}
	return Shape(obs, q, s.now()), nil
}

// CurrentWeather looks up a city, optionally qualified by country code.
func (s *Service) CurrentWeather(ctx context.Context, city, countryCode, units string) (Report, error) {
	if city == "" {
		return Report{}, validationError("city is required")
	}
	return s.Lookup(ctx, RawQuery{City: city, CountryCode: countryCode, Units: units})
}

// WeatherByCoordinates looks up a latitude/longitude pair.
func (s *Service) WeatherByCoordinates(ctx context.Context, lat, lon float64, units string) (Report, error) {
	return s.Lookup(ctx, RawQuery{Latitude: &lat, Longitude: &lon, Units: units})
}

// Summary fetches a city's current weather once and derives the compact view.
func (s *Service) Summary(ctx context.Context, city string) (Summary, error) {
	r, err := s.CurrentWeather(ctx, city, "", "")
	if err != nil {
		return Summary{}, err
	}
	return Summarize(r), nil
}
