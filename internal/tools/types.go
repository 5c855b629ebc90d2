// Package tools defines the weather tools and the provider-agnostic
// structures used to describe them to a calling agent. The same definitions
// back the HTTP gateway's tool listing and OpenAI-style tool calls; the MCP
// binding registers the same executors.
package tools

// ToolTypeFunction is the standard type for function-based tools.
const ToolTypeFunction = "function"

// Tool defines the schema for a function that can be described to an agent.
type Tool struct {
	// Type specifies the type of tool, which is always "function" here.
	Type string `json:"type"`
	// Function holds the detailed definition of the function.
	Function Function `json:"function"`
}

// Function defines the name, description, and parameters of a callable tool.
type Function struct {
	// Name is the name of the function to be called (e.g., "get_current_weather").
	Name string `json:"name"`
	// Description is what the agent reads to decide when to call the tool.
	Description string `json:"description"`
	// Parameters defines the arguments the function accepts, as a JSON Schema.
	Parameters JSONSchema `json:"parameters"`
}

// JSONSchema is a typed subset of JSON Schema, enough to describe tool arguments.
type JSONSchema struct {
	// Type is the data type of the node ("object", "string", "number").
	Type string `json:"type"`
	// Description explains what a specific parameter is for.
	Description string `json:"description,omitempty"`
	// Properties describes the members of an object node.
	Properties map[string]*JSONSchema `json:"properties,omitempty"`
	// Required lists the mandatory properties of an object node.
	Required []string `json:"required,omitempty"`
	// Enum restricts a string node to a fixed set of values.
	Enum []string `json:"enum,omitempty"`
	// Minimum and Maximum bound a number node, inclusive.
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`
}

// ToolCall represents a request from an agent to execute a tool.
type ToolCall struct {
	// ID matches the result back to the request in a multi-turn conversation.
	ID string `json:"id"`
	// Type indicates the type of tool being called, which is always "function".
	Type string `json:"type"`
	// Function contains the name and arguments for the function to execute.
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction holds the name and arguments of a requested function call.
type ToolCallFunction struct {
	Name string `json:"name"`
	// Arguments is a JSON object encoded as a string.
	Arguments string `json:"arguments"`
}

// ToolResult is the answer to a ToolCall, shaped like a "tool" role message.
type ToolResult struct {
	ToolCallID string `json:"tool_call_id"`
	Role       string `json:"role"`
	Name       string `json:"name"`

	// Content is the JSON document produced by the tool.
	Content string `json:"content"`
	IsError bool   `json:"is_error,omitempty"`
}

// NewFunctionTool is a helper function that simplifies the creation of a new Tool.
//
// Parameters:
//   - name: The name of the function.
//   - description: A clear description of what the function does.
//   - parameters: A JSONSchema struct defining the function's arguments.
func NewFunctionTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: Function{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

func bound(v float64) *float64 { return &v }
