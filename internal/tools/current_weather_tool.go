package tools

import (
	"context"
)

// CurrentWeatherArgs are the arguments of get_current_weather.
type CurrentWeatherArgs struct {
	City        string `json:"city"`
	CountryCode string `json:"country_code,omitempty"`
	Units       string `json:"units,omitempty"`
}

// CurrentWeatherTool looks up the current weather for a city.
type CurrentWeatherTool struct {
	svc WeatherService
}

var _ ToolExecutor = (*CurrentWeatherTool)(nil)

func NewCurrentWeatherTool(svc WeatherService) *CurrentWeatherTool {
	return &CurrentWeatherTool{svc: svc}
}

func (t *CurrentWeatherTool) Definition() Tool {
	return NewFunctionTool(
		NameCurrentWeather,
		"Get the current weather for a city, optionally qualified by country code.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"city": {
					Type:        "string",
					Description: "City name, e.g. London or New York.",
				},
				"country_code": {
					Type:        "string",
					Description: "ISO 3166-1 alpha-2 country code, e.g. GB or US. Improves accuracy for ambiguous names.",
				},
				"units": unitsSchema,
			},
			Required: []string{"city"},
		},
	)
}

func (t *CurrentWeatherTool) Execute(ctx context.Context, arguments string) Result {
	var args CurrentWeatherArgs
	if err := decodeArguments(arguments, &args); err != nil {
		return Result{Err: err}
	}
	return t.Run(ctx, args)
}

// Run executes the lookup with already-decoded arguments.
func (t *CurrentWeatherTool) Run(ctx context.Context, args CurrentWeatherArgs) Result {
	report, err := t.svc.CurrentWeather(ctx, args.City, args.CountryCode, args.Units)
	if err != nil {
		return Failure(err)
	}
	return Success(report)
}
