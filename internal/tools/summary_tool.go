package tools

import "context"

// SummaryArgs are the arguments of get_weather_summary.
type SummaryArgs struct {
	City string `json:"city"`
}

// SummaryTool returns a compact weather summary with an encouragement line.
type SummaryTool struct {
	svc WeatherService
}

var _ ToolExecutor = (*SummaryTool)(nil)

func NewSummaryTool(svc WeatherService) *SummaryTool {
	return &SummaryTool{svc: svc}
}

func (t *SummaryTool) Definition() Tool {
	return NewFunctionTool(
		NameWeatherSummary,
		"Get a concise weather summary for a city with a motivational message.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"city": {
					Type:        "string",
					Description: "City name, e.g. Paris.",
				},
			},
			Required: []string{"city"},
		},
	)
}

func (t *SummaryTool) Execute(ctx context.Context, arguments string) Result {
	var args SummaryArgs
	if err := decodeArguments(arguments, &args); err != nil {
		return Result{Err: err}
	}
	return t.Run(ctx, args)
}

func (t *SummaryTool) Run(ctx context.Context, args SummaryArgs) Result {
	summary, err := t.svc.Summary(ctx, args.City)
	if err != nil {
		return Failure(err)
	}
	return Success(summary)
}
