package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dileep-u-k/weather-mcp/internal/resources"
	"github.com/dileep-u-k/weather-mcp/internal/tools"
	"github.com/dileep-u-k/weather-mcp/internal/weather/weathertest"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func connect(t *testing.T, apiKey string) (*mcp.ClientSession, *weathertest.Server) {
	t.Helper()
	ctx := context.Background()

	upstream := weathertest.NewServer(t)
	tm := tools.NewToolManager()
	tools.RegisterWeatherTools(tm, upstream.NewService(apiKey))
	server := New(tm, resources.NewCatalog(resources.Catalog{}), "test")

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { cs.Close() })
	return cs, upstream
}

func callJSON(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) (map[string]any, bool) {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("CallTool(%s): %d content blocks", name, len(res.Content))
	}
	text := res.Content[0].(*mcp.TextContent).Text
	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		t.Fatalf("CallTool(%s): invalid JSON %q: %v", name, text, err)
	}
	return doc, res.IsError
}

func TestListTools(t *testing.T) {
	cs, _ := connect(t, weathertest.APIKey)

	res, err := cs.ListTools(context.Background(), &mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	got := map[string]bool{}
	for _, tool := range res.Tools {
		got[tool.Name] = true
		if tool.InputSchema == nil {
			t.Errorf("%s has no input schema", tool.Name)
		}
	}
	for _, name := range []string{tools.NameCurrentWeather, tools.NameWeatherByCoordinates, tools.NameWeatherSummary, tools.NameCheckAPIStatus} {
		if !got[name] {
			t.Errorf("tool %s not listed", name)
		}
	}
}

func TestInputSchemaMatchesDefinition(t *testing.T) {
	cs, _ := connect(t, weathertest.APIKey)

	res, err := cs.ListTools(context.Background(), &mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	for _, tool := range res.Tools {
		if tool.Name != tools.NameWeatherByCoordinates {
			continue
		}
		b, err := json.Marshal(tool.InputSchema)
		if err != nil {
			t.Fatalf("marshal schema: %v", err)
		}
		var schema tools.JSONSchema
		if err := json.Unmarshal(b, &schema); err != nil {
			t.Fatalf("unmarshal schema: %v", err)
		}
		lat := schema.Properties["latitude"]
		if lat == nil || lat.Minimum == nil || *lat.Minimum != -90 || lat.Maximum == nil || *lat.Maximum != 90 {
			t.Fatalf("latitude bounds missing: %s", b)
		}
		if len(schema.Properties["units"].Enum) != 3 {
			t.Fatalf("units enum missing: %s", b)
		}
		return
	}
	t.Fatalf("tool %s not listed", tools.NameWeatherByCoordinates)
}

func TestMalformedArgumentsAreToolErrors(t *testing.T) {
	cs, upstream := connect(t, weathertest.APIKey)

	cases := []struct {
		name string
		tool string
		args map[string]any
	}{
		{"missing latitude", tools.NameWeatherByCoordinates, map[string]any{"longitude": 0.0}},
		{"string latitude", tools.NameWeatherByCoordinates, map[string]any{"latitude": "north", "longitude": 0.0}},
		{"numeric units", tools.NameCurrentWeather, map[string]any{"city": "London", "units": 5}},
		{"missing city", tools.NameWeatherSummary, map[string]any{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, isErr := callJSON(t, cs, tc.tool, tc.args)
			if !isErr || doc["kind"] != "validation_error" || doc["status"] != "error" {
				t.Fatalf("want validation_error result, got %v", doc)
			}
			if doc["message"] == "" || doc["hint"] == "" {
				t.Fatalf("error document incomplete: %v", doc)
			}
		})
	}
	if upstream.Requests() != 0 {
		t.Fatalf("malformed calls made %d upstream requests", upstream.Requests())
	}
}

func TestCurrentWeather(t *testing.T) {
	cs, upstream := connect(t, weathertest.APIKey)

	doc, isErr := callJSON(t, cs, tools.NameCurrentWeather, map[string]any{
		"city": "London", "country_code": "gb", "units": "fahrenheit",
	})
	if isErr {
		t.Fatalf("unexpected tool error %v", doc)
	}
	if doc["location_name"] != "London" || doc["units"] != "fahrenheit" || doc["status"] != "success" {
		t.Fatalf("unexpected report %v", doc)
	}
	if doc["temperature"] != 60.0 {
		t.Fatalf("temperature = %v, want 60.0", doc["temperature"])
	}
	if q := upstream.LastQuery().Get("q"); q != "London,GB" {
		t.Fatalf("upstream q = %q", q)
	}
}

func TestCoordinates(t *testing.T) {
	cs, upstream := connect(t, weathertest.APIKey)

	doc, isErr := callJSON(t, cs, tools.NameWeatherByCoordinates, map[string]any{
		"latitude": 51.5074, "longitude": -0.1278,
	})
	if isErr {
		t.Fatalf("unexpected tool error %v", doc)
	}
	if _, ok := doc["coordinates"]; !ok {
		t.Fatalf("coordinate lookups should echo coordinates: %v", doc)
	}

	before := upstream.Requests()
	doc, isErr = callJSON(t, cs, tools.NameWeatherByCoordinates, map[string]any{
		"latitude": 91.0, "longitude": 0.0,
	})
	if !isErr || doc["kind"] != "validation_error" || doc["status"] != "error" {
		t.Fatalf("want validation error, got %v", doc)
	}
	if upstream.Requests() != before {
		t.Fatalf("out-of-range latitude reached the provider")
	}
}

func TestNotFound(t *testing.T) {
	cs, _ := connect(t, weathertest.APIKey)

	doc, isErr := callJSON(t, cs, tools.NameWeatherSummary, map[string]any{"city": weathertest.UnknownCity})
	if !isErr || doc["kind"] != "not_found" {
		t.Fatalf("want not_found, got %v", doc)
	}
	if doc["suggestion"] == nil || doc["hint"] == "" {
		t.Fatalf("not_found should carry a hint and suggestion: %v", doc)
	}
}

func TestStatusWithoutKey(t *testing.T) {
	cs, upstream := connect(t, "")

	doc, isErr := callJSON(t, cs, tools.NameCheckAPIStatus, map[string]any{})
	if isErr {
		t.Fatalf("status tool should not be a tool error: %v", doc)
	}
	if doc["key_configured"] != false || doc["api_status"] != "not_configured" {
		t.Fatalf("unexpected status %v", doc)
	}
	if upstream.Requests() != 0 {
		t.Fatalf("status probe without a key made %d requests", upstream.Requests())
	}
}

func TestReadResources(t *testing.T) {
	cs, _ := connect(t, weathertest.APIKey)
	ctx := context.Background()

	for _, uri := range []string{resources.ConfigURI, resources.CitiesURI} {
		res, err := cs.ReadResource(ctx, &mcp.ReadResourceParams{URI: uri})
		if err != nil {
			t.Fatalf("ReadResource(%s): %v", uri, err)
		}
		if len(res.Contents) != 1 || !json.Valid([]byte(res.Contents[0].Text)) {
			t.Fatalf("ReadResource(%s): unexpected contents", uri)
		}
		if strings.Contains(res.Contents[0].Text, weathertest.APIKey) {
			t.Fatalf("%s leaks the API key", uri)
		}
	}
}
