package tools

import "context"

// StatusArgs is empty; check_api_status takes no input.
type StatusArgs struct{}

// StatusTool reports provider reachability and key configuration.
type StatusTool struct {
	svc WeatherService
}

var _ ToolExecutor = (*StatusTool)(nil)

func NewStatusTool(svc WeatherService) *StatusTool {
	return &StatusTool{svc: svc}
}

func (t *StatusTool) Definition() Tool {
	return NewFunctionTool(
		NameCheckAPIStatus,
		"Check weather API connectivity and configuration. Never reveals the API key.",
		JSONSchema{Type: "object"},
	)
}

// Execute ignores its arguments.
func (t *StatusTool) Execute(ctx context.Context, _ string) Result {
	return t.Run(ctx, StatusArgs{})
}

// Run always succeeds at the tool level; problems are described in the status document.
func (t *StatusTool) Run(ctx context.Context, _ StatusArgs) Result {
	return Success(t.svc.CheckStatus(ctx))
}
