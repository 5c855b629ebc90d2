package weather

import (
	"context"
	"errors"
)

// The probe always targets this location; it is known to the provider.
const (
	ReferenceCity    = "London"
	ReferenceCountry = "GB"
)

// API status values reported by the probe.
const (
	StatusOperational   = "operational"
	StatusNotConfigured = "not_configured"
	StatusInvalidKey    = "invalid_key"
	StatusRateLimited   = "rate_limited"
	StatusTimeout       = "timeout"
	StatusError         = "error"
)

// APIStatus is the result of the status probe. It never carries the key itself.
type APIStatus struct {
	Reachable       bool                `json:"reachable"`
	KeyConfigured   bool                `json:"key_configured"`
	Hint            string              `json:"hint"`
	APIStatus       string              `json:"api_status"`
	Message         string              `json:"message"`
	Configuration   StatusConfiguration `json:"configuration"`
	Troubleshooting []string            `json:"troubleshooting,omitempty"`
	Status          string              `json:"status"`
}

// StatusConfiguration echoes the non-secret settings in effect.
type StatusConfiguration struct {
	DefaultUnits   Units  `json:"default_units"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	Provider       string `json:"provider"`
	APIVersion     string `json:"api_version"`
}

// CheckStatus probes the provider with the reference location. With no key
// configured it returns immediately without touching the network.
func (s *Service) CheckStatus(ctx context.Context) APIStatus {
	st := APIStatus{
		KeyConfigured: s.keyConfigured,
		Configuration: StatusConfiguration{
			DefaultUnits:   s.defaultUnits,
			TimeoutSeconds: int(s.timeout.Seconds()),
			Provider:       ProviderName,
			APIVersion:     APIVersion,
		},
		Status: "error",
	}

	if !s.keyConfigured {
		st.APIStatus = StatusNotConfigured
		st.Message = "API key not set"
		st.Hint = "Set the API_KEY environment variable; free keys are available at https://openweathermap.org/api"
		st.Troubleshooting = []string{
			"Set API_KEY (or OPENWEATHER_API_KEY) in the environment or .env file",
			"Get a free API key from https://openweathermap.org/api",
			"New keys can take up to 10 minutes to activate",
		}
		return st
	}

	q := Query{City: ReferenceCity, CountryCode: ReferenceCountry, Units: Celsius}
	_, err := s.fetch(ctx, q)
	if err == nil {
		st.Reachable = true
		st.APIStatus = StatusOperational
		st.Message = "API is working correctly"
		st.Hint = "No action needed."
		st.Status = statusSuccess
		return st
	}

	werr := AsError(err)
	st.Hint = werr.Hint
	st.Message = werr.Message
	// Any HTTP answer, even an error status, proves the provider is reachable.
	st.Reachable = werr.StatusCode != 0

	switch werr.Kind {
	case KindAuth:
		st.APIStatus = StatusInvalidKey
		st.Troubleshooting = []string{
			"Verify the API key is correct",
			"Check that the key is activated (may take up to 10 minutes)",
			"Make sure the key comes from your OpenWeatherMap account",
		}
	case KindRateLimit:
		st.APIStatus = StatusRateLimited
		st.Status = "warning"
		st.Troubleshooting = []string{
			"Wait before making more requests",
			"Consider a paid plan for higher limits",
			"The free tier allows 60 calls/minute",
		}
	case KindTimeout:
		st.APIStatus = StatusTimeout
		st.Troubleshooting = []string{
			"Check internet connectivity",
			"Increase REQUEST_TIMEOUT_SECONDS",
			"Try again later",
		}
	default:
		st.APIStatus = StatusError
		st.Troubleshooting = []string{
			"Check the OpenWeatherMap service status",
			"Verify internet connectivity",
			"Try again in a few minutes",
		}
	}
	if errors.Is(err, context.Canceled) {
		st.Message = "status probe canceled"
	}
	return st
}
