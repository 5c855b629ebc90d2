package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dileep-u-k/weather-mcp/internal/weather"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// AppConfig holds all configuration for the server, loaded from the environment and config files.
type AppConfig struct {
	APIKey        string
	DefaultUnits  weather.Units
	Timeout       time.Duration
	BaseURL       string
	Transport     string
	Addr          string
	RedisAddr     string
	RateLimit     RateLimitConfig
	PopularCities []string
}

// RateLimitConfig configures the client-side throttle. RequestsPerSecond 0 disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// fileConfig mirrors config.yaml.
type fileConfig struct {
	Server    serverSection    `yaml:"server"`
	Weather   weatherSection   `yaml:"weather"`
	RateLimit *RateLimitConfig `yaml:"rate_limit"`
	Redis     redisSection     `yaml:"redis"`
	Resources resourcesSection `yaml:"resources"`
}

type serverSection struct {
	Transport string `yaml:"transport"`
	Addr      string `yaml:"addr"`
}

type weatherSection struct {
	DefaultUnits   string `yaml:"default_units"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	BaseURL        string `yaml:"base_url"`
}

type redisSection struct {
	Addr string `yaml:"addr"`
}

type resourcesSection struct {
	PopularCities []string `yaml:"popular_cities"`
}

// LoadConfig loads all configuration from a .env file, the YAML file at path
// and environment variables. Environment variables win over the file. A
// missing file is not an error.
func LoadConfig(path string) (*AppConfig, error) {
	// In containers (GIN_MODE=release) the environment is provided directly.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{
		DefaultUnits: weather.DefaultUnits,
		Timeout:      weather.DefaultTimeout,
		BaseURL:      weather.DefaultBaseURL,
		Transport:    TransportStdio,
		Addr:         ":8080",
		RateLimit:    RateLimitConfig{RequestsPerSecond: 1, Burst: 5},
	}

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if clamped := weather.ClampTimeout(cfg.Timeout); clamped != cfg.Timeout {
		log.Printf("WARNING: request timeout %v is outside %v-%v, using %v", cfg.Timeout, weather.MinTimeout, weather.MaxTimeout, clamped)
		cfg.Timeout = clamped
	}
	if cfg.RateLimit.RequestsPerSecond < 0 {
		return nil, fmt.Errorf("rate_limit.requests_per_second must not be negative, got %v", cfg.RateLimit.RequestsPerSecond)
	}
	return cfg, nil
}

func (cfg *AppConfig) loadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("WARNING: config file %s not found, using defaults.", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if fc.Server.Transport != "" {
		cfg.Transport = fc.Server.Transport
	}
	if fc.Server.Addr != "" {
		cfg.Addr = fc.Server.Addr
	}
	if fc.Weather.DefaultUnits != "" {
		cfg.DefaultUnits = parseUnits(fc.Weather.DefaultUnits)
	}
	if fc.Weather.TimeoutSeconds != 0 {
		cfg.Timeout = time.Duration(fc.Weather.TimeoutSeconds) * time.Second
	}
	if fc.Weather.BaseURL != "" {
		cfg.BaseURL = fc.Weather.BaseURL
	}
	if fc.RateLimit != nil {
		cfg.RateLimit = *fc.RateLimit
	}
	cfg.RedisAddr = fc.Redis.Addr
	cfg.PopularCities = fc.Resources.PopularCities
	return nil
}

func (cfg *AppConfig) loadEnv() error {
	if key := firstEnv("API_KEY", "OPENWEATHER_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if units := os.Getenv("DEFAULT_UNITS"); units != "" {
		cfg.DefaultUnits = parseUnits(units)
	}
	if raw := firstEnv("REQUEST_TIMEOUT_SECONDS", "WEATHER_API_TIMEOUT"); raw != "" {
		seconds, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be a whole number of seconds, got %q", raw)
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = fmt.Sprintf(":%s", port)
	}
	if transport := os.Getenv("TRANSPORT"); transport != "" {
		cfg.Transport = transport
	}
	return nil
}

func parseUnits(raw string) weather.Units {
	units := weather.ParseUnits(raw, weather.DefaultUnits)
	if !strings.EqualFold(strings.TrimSpace(raw), string(units)) {
		log.Printf("WARNING: unknown units %q, falling back to %s", raw, units)
	}
	return units
}

// firstEnv returns the value of the first variable that is set and non-empty.
func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
