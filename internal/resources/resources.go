// Package resources builds the two read-only documents the server publishes
// next to its tools: the API configuration guide and the supported-cities
// reference. Neither document ever contains the API key.
package resources

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dileep-u-k/weather-mcp/internal/weather"
)

const (
	ConfigURI = "config://weather-api"
	CitiesURI = "data://supported-cities"

	MIMEType = "application/json"
)

// DefaultPopularCities is used when the configuration does not list any.
var DefaultPopularCities = []string{
	"London,GB",
	"New York,US",
	"Tokyo,JP",
	"Paris,FR",
	"Sydney,AU",
	"Berlin,DE",
	"Toronto,CA",
	"Mumbai,IN",
	"São Paulo,BR",
	"Moscow,RU",
	"Beijing,CN",
	"Cairo,EG",
	"Lagos,NG",
	"Mexico City,MX",
	"Buenos Aires,AR",
}

// Catalog holds the non-secret settings the documents describe.
type Catalog struct {
	Provider       string
	APIVersion     string
	BaseURL        string
	DefaultUnits   weather.Units
	TimeoutSeconds int
	PopularCities  []string
}

// NewCatalog fills in provider defaults for empty fields.
func NewCatalog(c Catalog) *Catalog {
	if c.Provider == "" {
		c.Provider = weather.ProviderName
	}
	if c.APIVersion == "" {
		c.APIVersion = weather.APIVersion
	}
	if c.BaseURL == "" {
		c.BaseURL = weather.DefaultBaseURL
	}
	if !c.DefaultUnits.Valid() {
		c.DefaultUnits = weather.DefaultUnits
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = int(weather.DefaultTimeout.Seconds())
	}
	if len(c.PopularCities) == 0 {
		c.PopularCities = DefaultPopularCities
	}
	return &c
}

// ConfigDocument describes the upstream API and how to configure the server.
type ConfigDocument struct {
	APIProvider       string            `json:"api_provider"`
	APIVersion        string            `json:"api_version"`
	BaseURL           string            `json:"base_url"`
	Documentation     string            `json:"documentation"`
	Features          map[string]string `json:"features"`
	Configuration     ConfigVariables   `json:"configuration"`
	SetupInstructions []string          `json:"setup_instructions"`
	RateLimits        map[string]string `json:"rate_limits"`
	SupportedCities   string            `json:"supported_cities"`
}

// ConfigVariables lists the environment variables the server reads and the
// values currently in effect.
type ConfigVariables struct {
	RequiredEnvVars []string          `json:"required_env_vars"`
	OptionalEnvVars map[string]string `json:"optional_env_vars"`
	DefaultUnits    weather.Units     `json:"default_units"`
	TimeoutSeconds  int               `json:"timeout_seconds"`
}

// Config returns the config://weather-api document.
func (c *Catalog) Config() ConfigDocument {
	return ConfigDocument{
		APIProvider:   c.Provider,
		APIVersion:    c.APIVersion,
		BaseURL:       strings.TrimRight(c.BaseURL, "/") + "/weather",
		Documentation: "https://openweathermap.org/api",
		Features: map[string]string{
			"current_weather":   "Get current weather by city name or coordinates",
			"temperature_units": "Support for Celsius, Fahrenheit, and Kelvin",
			"weather_summary":   "Concise summaries with motivational messages",
			"api_status":        "Check API connectivity and troubleshoot issues",
		},
		Configuration: ConfigVariables{
			RequiredEnvVars: []string{"API_KEY"},
			OptionalEnvVars: map[string]string{
				"OPENWEATHER_API_KEY":     "fallback for API_KEY",
				"DEFAULT_UNITS":           "celsius|fahrenheit|kelvin (default: celsius)",
				"REQUEST_TIMEOUT_SECONDS": fmt.Sprintf("timeout in seconds, %d-%d (default: %d)", int(weather.MinTimeout.Seconds()), int(weather.MaxTimeout.Seconds()), int(weather.DefaultTimeout.Seconds())),
				"CONFIG_FILE":             "path to the YAML configuration file (default: config.yaml)",
			},
			DefaultUnits:   c.DefaultUnits,
			TimeoutSeconds: c.TimeoutSeconds,
		},
		SetupInstructions: []string{
			"1. Sign up at https://openweathermap.org/api",
			"2. Get your free API key from the dashboard",
			"3. Set the API_KEY environment variable",
			"4. API key activation may take up to 10 minutes",
			"5. Test with the check_api_status tool",
		},
		RateLimits: map[string]string{
			"free_tier":  "60 calls/minute, 1,000,000 calls/month",
			"paid_tiers": "Higher limits available",
		},
		SupportedCities: "All major cities worldwide with ISO country codes",
	}
}

// CitiesDocument is a reference of example locations and lookup tips.
type CitiesDocument struct {
	PopularCities []string                `json:"popular_cities"`
	UsageExamples map[string]UsageExample `json:"usage_examples"`
	CountryCodes  CountryCodes            `json:"country_codes"`
	Tips          []string                `json:"tips"`
}

type UsageExample struct {
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

type CountryCodes struct {
	Note     string            `json:"note"`
	Examples map[string]string `json:"examples"`
}

// Cities returns the data://supported-cities document.
func (c *Catalog) Cities() CitiesDocument {
	return CitiesDocument{
		PopularCities: c.PopularCities,
		UsageExamples: map[string]UsageExample{
			"by_city": {
				Description: "Get weather by city name",
				Examples: []string{
					`get_current_weather {"city": "London"}`,
					`get_current_weather {"city": "New York", "country_code": "US"}`,
					`get_current_weather {"city": "Tokyo", "country_code": "JP", "units": "fahrenheit"}`,
				},
			},
			"by_coordinates": {
				Description: "Get weather by latitude and longitude",
				Examples: []string{
					`get_weather_by_coordinates {"latitude": 51.5074, "longitude": -0.1278}`,
					`get_weather_by_coordinates {"latitude": 40.7128, "longitude": -74.006, "units": "fahrenheit"}`,
					`get_weather_by_coordinates {"latitude": 35.6762, "longitude": 139.6503, "units": "kelvin"}`,
				},
			},
			"summary": {
				Description: "Get motivational weather summary",
				Examples: []string{
					`get_weather_summary {"city": "Paris"}`,
					`get_weather_summary {"city": "Sydney"}`,
				},
			},
		},
		CountryCodes: CountryCodes{
			Note: "Use ISO 3166-1 alpha-2 country codes",
			Examples: map[string]string{
				"GB": "United Kingdom",
				"US": "United States",
				"JP": "Japan",
				"FR": "France",
				"DE": "Germany",
				"CA": "Canada",
				"AU": "Australia",
			},
		},
		Tips: []string{
			"Include country code for better accuracy",
			"Use English city names",
			"Check spelling if city not found",
			"Some cities may have multiple matches - use country code to specify",
		},
	}
}

// Read renders the document behind uri as indented JSON.
func (c *Catalog) Read(uri string) (string, error) {
	var doc any
	switch uri {
	case ConfigURI:
		doc = c.Config()
	case CitiesURI:
		doc = c.Cities()
	default:
		return "", fmt.Errorf("unknown resource %q", uri)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode resource %s: %w", uri, err)
	}
	return string(b), nil
}
