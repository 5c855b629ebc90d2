package tools

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"
)

// Recorder receives one event per tool invocation.
type Recorder interface {
	Record(ctx context.Context, tool string, latency time.Duration, outcome string)
}

// ToolManager holds a registry of all available tools. Register everything
// before serving; lookups are not synchronised with registration.
type ToolManager struct {
	tools    map[string]ToolExecutor
	recorder Recorder
}

func NewToolManager() *ToolManager {
	return &ToolManager{
		tools: make(map[string]ToolExecutor),
	}
}

// SetRecorder attaches an invocation recorder (e.g. the Redis profiler).
func (tm *ToolManager) SetRecorder(r Recorder) {
	tm.recorder = r
}

// Register adds a new tool to the manager's registry.
func (tm *ToolManager) Register(tool ToolExecutor) {
	name := tool.Definition().Function.Name
	tm.tools[name] = tool
}

// Names returns the registered tool names in sorted order.
func (tm *ToolManager) Names() []string {
	names := make([]string, 0, len(tm.tools))
	for name := range tm.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetDefinitions returns all registered tool definitions, sorted by name.
func (tm *ToolManager) GetDefinitions() []Tool {
	defs := make([]Tool, 0, len(tm.tools))
	for _, name := range tm.Names() {
		defs = append(defs, tm.tools[name].Definition())
	}
	return defs
}

// Lookup returns the executor registered under name.
func (tm *ToolManager) Lookup(name string) (ToolExecutor, bool) {
	tool, ok := tm.tools[name]
	return tool, ok
}

// Execute runs a tool by name with the given arguments. The only error is an
// unknown tool name; tool failures are reported inside the Result.
func (tm *ToolManager) Execute(ctx context.Context, name, arguments string) (Result, error) {
	tool, ok := tm.tools[name]
	if !ok {
		return Result{}, fmt.Errorf("tool '%s' not found", name)
	}

	start := time.Now()
	result := tool.Execute(ctx, arguments)
	latency := time.Since(start)

	if result.IsError() {
		log.Printf("🛠️ Tool %s failed in %v: %s", name, latency, result.Err)
	} else {
		log.Printf("🛠️ Tool %s succeeded in %v", name, latency)
	}
	if tm.recorder != nil {
		tm.recorder.Record(ctx, name, latency, result.Outcome())
	}
	return result, nil
}

// ExecuteCall runs an OpenAI-style tool call and packs the answer as a tool message.
func (tm *ToolManager) ExecuteCall(ctx context.Context, call ToolCall) ToolResult {
	out := ToolResult{ToolCallID: call.ID, Role: "tool", Name: call.Function.Name}

	result, err := tm.Execute(ctx, call.Function.Name, call.Function.Arguments)
	if err != nil {
		out.Content = fmt.Sprintf("Error executing tool %s: %v", call.Function.Name, err)
		out.IsError = true
		return out
	}
	content, err := result.JSON()
	if err != nil {
		out.Content = fmt.Sprintf("Error executing tool %s: %v", call.Function.Name, err)
		out.IsError = true
		return out
	}
	out.Content = content
	out.IsError = result.IsError()
	return out
}

// ToolCount returns the number of registered tools.
func (tm *ToolManager) ToolCount() int {
	return len(tm.tools)
}
