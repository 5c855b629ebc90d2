package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dileep-u-k/weather-mcp/internal/weather"
)

// ToolExecutor defines the standard interface for any tool served by the gateway.
type ToolExecutor interface {
	// Definition returns the tool's schema, which is shown to the agent
	// so it understands the tool's capabilities, name, and arguments.
	Definition() Tool

	// Execute runs the tool with arguments encoded as a JSON object.
	// Domain failures come back inside the Result, never as a Go error.
	Execute(ctx context.Context, arguments string) Result
}

// Result is the outcome of one tool invocation: either a payload or a
// structured error.
type Result struct {
	Payload any
	Err     *weather.Error
}

// Success wraps a payload.
func Success(payload any) Result { return Result{Payload: payload} }

// Failure wraps any error as a structured weather error.
func Failure(err error) Result { return Result{Err: weather.AsError(err)} }

// IsError reports whether the invocation failed.
func (r Result) IsError() bool { return r.Err != nil }

// Outcome is "success" or the error kind, used for stats.
func (r Result) Outcome() string {
	if r.Err != nil {
		return string(r.Err.Kind)
	}
	return "success"
}

// ErrorDocument is the wire form of a failed invocation.
type ErrorDocument struct {
	*weather.Error
	Status string `json:"status"`
}

// Document returns the value to serialise for this result.
func (r Result) Document() any {
	if r.Err != nil {
		return ErrorDocument{Error: r.Err, Status: "error"}
	}
	return r.Payload
}

// JSON renders the result document as indented JSON.
func (r Result) JSON() (string, error) {
	b, err := json.MarshalIndent(r.Document(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode tool result: %w", err)
	}
	return string(b), nil
}

// decodeArguments unmarshals a tool's JSON arguments. An empty string is
// treated as an empty object.
func decodeArguments(arguments string, v any) *weather.Error {
	if arguments == "" {
		arguments = "{}"
	}
	if err := json.Unmarshal([]byte(arguments), v); err != nil {
		return &weather.Error{
			Kind:    weather.KindValidation,
			Message: fmt.Sprintf("invalid arguments: %v", err),
			Hint:    "Send the arguments as a JSON object matching the tool's parameters.",
		}
	}
	return nil
}
