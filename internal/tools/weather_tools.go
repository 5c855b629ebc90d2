package tools

import (
	"context"

	"github.com/dileep-u-k/weather-mcp/internal/weather"
)

// Tool names as exposed to agents.
const (
	NameCurrentWeather       = "get_current_weather"
	NameWeatherByCoordinates = "get_weather_by_coordinates"
	NameWeatherSummary       = "get_weather_summary"
	NameCheckAPIStatus       = "check_api_status"
)

// WeatherService is the subset of *weather.Service the tools depend on.
type WeatherService interface {
	CurrentWeather(ctx context.Context, city, countryCode, units string) (weather.Report, error)
	WeatherByCoordinates(ctx context.Context, lat, lon float64, units string) (weather.Report, error)
	Summary(ctx context.Context, city string) (weather.Summary, error)
	CheckStatus(ctx context.Context) weather.APIStatus
}

var _ WeatherService = (*weather.Service)(nil)

var unitsSchema = &JSONSchema{
	Type:        "string",
	Description: "Temperature units. Defaults to celsius when omitted.",
	Enum:        []string{string(weather.Celsius), string(weather.Fahrenheit), string(weather.Kelvin)},
}

// RegisterWeatherTools registers all four weather tools on tm.
func RegisterWeatherTools(tm *ToolManager, svc WeatherService) {
	tm.Register(NewCurrentWeatherTool(svc))
	tm.Register(NewCoordinatesWeatherTool(svc))
	tm.Register(NewSummaryTool(svc))
	tm.Register(NewStatusTool(svc))
}
