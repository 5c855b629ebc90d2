// Package mcpserver exposes the weather tools and resources over the Model
// Context Protocol.
package mcpserver

import (
	"context"
	"log"
	"net/http"

	"github.com/dileep-u-k/weather-mcp/internal/resources"
	"github.com/dileep-u-k/weather-mcp/internal/tools"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const ServerName = "weather-mcp"

// New builds an MCP server backed by the tool registry. Every tool call goes
// through tm so logging and stats are the same as on the HTTP gateway.
func New(tm *tools.ToolManager, catalog *resources.Catalog, serverVersion string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: serverVersion}, nil)

	addTool(server, tm, tools.NameCurrentWeather)
	addTool(server, tm, tools.NameWeatherByCoordinates)
	addTool(server, tm, tools.NameWeatherSummary)
	addTool(server, tm, tools.NameCheckAPIStatus)

	addResource(server, catalog, &mcp.Resource{
		URI:         resources.ConfigURI,
		Name:        "weather-api-config",
		Description: "Weather API configuration and setup information.",
		MIMEType:    resources.MIMEType,
	})
	addResource(server, catalog, &mcp.Resource{
		URI:         resources.CitiesURI,
		Name:        "supported-cities",
		Description: "Popular cities and usage examples for testing the weather tools.",
		MIMEType:    resources.MIMEType,
	})
	return server
}

// HTTPHandler serves server over the streamable HTTP transport.
func HTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

// addTool registers a managed tool. The input schema is the tool's own
// definition and the raw arguments go straight to the manager, so malformed
// input comes back as a validation_error result, not a protocol error.
func addTool(server *mcp.Server, tm *tools.ToolManager, name string) {
	executor, ok := tm.Lookup(name)
	if !ok {
		log.Printf("⚠️ Tool %s is not registered, skipping MCP binding", name)
		return
	}
	def := executor.Definition().Function

	server.AddTool(&mcp.Tool{
		Name:        def.Name,
		Description: def.Description,
		InputSchema: def.Parameters,
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := tm.Execute(ctx, name, string(req.Params.Arguments))
		if err != nil {
			return nil, err
		}
		return callToolResult(result)
	})
}

func callToolResult(result tools.Result) (*mcp.CallToolResult, error) {
	text, err := result.JSON()
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: text}},
		StructuredContent: result.Document(),
		IsError:           result.IsError(),
	}, nil
}

func addResource(server *mcp.Server, catalog *resources.Catalog, res *mcp.Resource) {
	server.AddResource(res, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		text, err := catalog.Read(req.Params.URI)
		if err != nil {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: req.Params.URI, MIMEType: res.MIMEType, Text: text},
			},
		}, nil
	})
}
