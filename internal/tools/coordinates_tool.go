package tools

import (
	"context"

	"github.com/dileep-u-k/weather-mcp/internal/weather"
)

// CoordinatesArgs are the arguments of get_weather_by_coordinates. Pointers
// let a missing coordinate be told apart from 0.
type CoordinatesArgs struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Units     string   `json:"units,omitempty"`
}

// CoordinatesWeatherTool looks up the current weather at a coordinate pair.
type CoordinatesWeatherTool struct {
	svc WeatherService
}

var _ ToolExecutor = (*CoordinatesWeatherTool)(nil)

func NewCoordinatesWeatherTool(svc WeatherService) *CoordinatesWeatherTool {
	return &CoordinatesWeatherTool{svc: svc}
}

func (t *CoordinatesWeatherTool) Definition() Tool {
	return NewFunctionTool(
		NameWeatherByCoordinates,
		"Get the current weather at a latitude/longitude pair.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"latitude": {
					Type:        "number",
					Description: "Latitude in degrees.",
					Minimum:     bound(-90),
					Maximum:     bound(90),
				},
				"longitude": {
					Type:        "number",
					Description: "Longitude in degrees.",
					Minimum:     bound(-180),
					Maximum:     bound(180),
				},
				"units": unitsSchema,
			},
			Required: []string{"latitude", "longitude"},
		},
	)
}

func (t *CoordinatesWeatherTool) Execute(ctx context.Context, arguments string) Result {
	var args CoordinatesArgs
	if err := decodeArguments(arguments, &args); err != nil {
		return Result{Err: err}
	}
	return t.Run(ctx, args)
}

// Run executes the lookup with already-decoded arguments.
func (t *CoordinatesWeatherTool) Run(ctx context.Context, args CoordinatesArgs) Result {
	if args.Latitude == nil || args.Longitude == nil {
		return Result{Err: &weather.Error{
			Kind:    weather.KindValidation,
			Message: "latitude and longitude are both required",
			Hint:    "Send numeric latitude (-90..90) and longitude (-180..180).",
		}}
	}
	report, err := t.svc.WeatherByCoordinates(ctx, *args.Latitude, *args.Longitude, args.Units)
	if err != nil {
		return Failure(err)
	}
	return Success(report)
}
