package tools

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dileep-u-k/weather-mcp/internal/weather"
)

type stubService struct {
	mu       sync.Mutex
	calls    []string
	report   weather.Report
	summary  weather.Summary
	status   weather.APIStatus
	err      error
	lastLat  float64
	lastLon  float64
	lastCity string
}

func (s *stubService) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *stubService) CurrentWeather(ctx context.Context, city, countryCode, units string) (weather.Report, error) {
	s.record("current")
	s.lastCity = city
	if s.err != nil {
		return weather.Report{}, s.err
	}
	r := s.report
	r.Units = weather.ParseUnits(units, weather.Celsius)
	return r, nil
}

func (s *stubService) WeatherByCoordinates(ctx context.Context, lat, lon float64, units string) (weather.Report, error) {
	s.record("coordinates")
	s.lastLat, s.lastLon = lat, lon
	if s.err != nil {
		return weather.Report{}, s.err
	}
	return s.report, nil
}

func (s *stubService) Summary(ctx context.Context, city string) (weather.Summary, error) {
	s.record("summary")
	if s.err != nil {
		return weather.Summary{}, s.err
	}
	return s.summary, nil
}

func (s *stubService) CheckStatus(ctx context.Context) weather.APIStatus {
	s.record("status")
	return s.status
}

type recordedEvent struct {
	tool, outcome string
}

type memoryRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (m *memoryRecorder) Record(ctx context.Context, tool string, latency time.Duration, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, recordedEvent{tool, outcome})
}

func newTestManager(svc *stubService) (*ToolManager, *memoryRecorder) {
	tm := NewToolManager()
	RegisterWeatherTools(tm, svc)
	rec := &memoryRecorder{}
	tm.SetRecorder(rec)
	return tm, rec
}

func TestRegistry(t *testing.T) {
	tm, _ := newTestManager(&stubService{})

	if tm.ToolCount() != 4 {
		t.Fatalf("ToolCount() = %d, want 4", tm.ToolCount())
	}
	want := []string{NameCheckAPIStatus, NameCurrentWeather, NameWeatherByCoordinates, NameWeatherSummary}
	got := tm.Names()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
	for _, def := range tm.GetDefinitions() {
		if def.Type != ToolTypeFunction || def.Function.Description == "" || def.Function.Parameters.Type != "object" {
			t.Errorf("incomplete definition %+v", def)
		}
	}
	if _, err := tm.Execute(context.Background(), "get_forecast", "{}"); err == nil {
		t.Fatalf("unknown tool should be an error")
	}
}

func TestCurrentWeatherTool(t *testing.T) {
	svc := &stubService{report: weather.Report{LocationName: "London", Temperature: 15.6, Status: "success"}}
	tm, rec := newTestManager(svc)

	res, err := tm.Execute(context.Background(), NameCurrentWeather, `{"city":"London","units":"kelvin"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError() {
		t.Fatalf("unexpected tool error %v", res.Err)
	}
	report, ok := res.Payload.(weather.Report)
	if !ok || report.Units != weather.Kelvin || svc.lastCity != "London" {
		t.Fatalf("unexpected payload %#v", res.Payload)
	}
	if len(rec.events) != 1 || rec.events[0] != (recordedEvent{NameCurrentWeather, "success"}) {
		t.Fatalf("recorded %+v", rec.events)
	}
}

func TestMalformedArguments(t *testing.T) {
	svc := &stubService{}
	tm, rec := newTestManager(svc)

	res, err := tm.Execute(context.Background(), NameCurrentWeather, `{"city": 42}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError() || res.Err.Kind != weather.KindValidation {
		t.Fatalf("want validation error, got %+v", res)
	}
	if len(svc.calls) != 0 {
		t.Fatalf("service should not be called, got %v", svc.calls)
	}
	if rec.events[0].outcome != string(weather.KindValidation) {
		t.Fatalf("recorded %+v", rec.events)
	}
}

func TestCoordinatesTool(t *testing.T) {
	svc := &stubService{report: weather.Report{LocationName: "New York"}}
	tm, _ := newTestManager(svc)

	res, _ := tm.Execute(context.Background(), NameWeatherByCoordinates, `{"latitude": 0}`)
	if !res.IsError() || res.Err.Kind != weather.KindValidation {
		t.Fatalf("missing longitude: got %+v", res)
	}
	if len(svc.calls) != 0 {
		t.Fatalf("service called with missing longitude")
	}

	res, _ = tm.Execute(context.Background(), NameWeatherByCoordinates, `{"latitude": 0, "longitude": -74.006}`)
	if res.IsError() {
		t.Fatalf("unexpected error %v", res.Err)
	}
	if svc.lastLat != 0 || svc.lastLon != -74.006 {
		t.Fatalf("got lat=%v lon=%v", svc.lastLat, svc.lastLon)
	}
}

func TestToolErrorDocument(t *testing.T) {
	svc := &stubService{err: &weather.Error{
		Kind:       weather.KindNotFound,
		Message:    "location not recognized",
		Hint:       "Check the spelling.",
		Suggestion: "Try London,GB",
		StatusCode: 404,
	}}
	tm, _ := newTestManager(svc)

	res, _ := tm.Execute(context.Background(), NameWeatherSummary, `{"city":"Atlantis"}`)
	if !res.IsError() || res.Outcome() != string(weather.KindNotFound) {
		t.Fatalf("got %+v", res)
	}
	doc, err := res.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(doc), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["status"] != "error" || got["kind"] != "not_found" || got["hint"] == "" || got["suggestion"] != "Try London,GB" {
		t.Fatalf("unexpected error document %v", got)
	}
	if got["status_code"] != float64(404) {
		t.Fatalf("status_code = %v", got["status_code"])
	}
}

func TestStatusTool(t *testing.T) {
	svc := &stubService{status: weather.APIStatus{KeyConfigured: false, APIStatus: weather.StatusNotConfigured}}
	tm, _ := newTestManager(svc)

	res, _ := tm.Execute(context.Background(), NameCheckAPIStatus, "")
	if res.IsError() {
		t.Fatalf("status tool should not fail: %v", res.Err)
	}
	st := res.Payload.(weather.APIStatus)
	if st.KeyConfigured || st.APIStatus != weather.StatusNotConfigured {
		t.Fatalf("got %+v", st)
	}
}

func TestExecuteCall(t *testing.T) {
	svc := &stubService{summary: weather.Summary{Location: "Paris, FR", Status: "success"}}
	tm, _ := newTestManager(svc)

	out := tm.ExecuteCall(context.Background(), ToolCall{
		ID:       "call_1",
		Type:     ToolTypeFunction,
		Function: ToolCallFunction{Name: NameWeatherSummary, Arguments: `{"city":"Paris"}`},
	})
	if out.ToolCallID != "call_1" || out.Role != "tool" || out.IsError {
		t.Fatalf("got %+v", out)
	}
	if !strings.Contains(out.Content, `"Paris, FR"`) {
		t.Fatalf("content = %s", out.Content)
	}

	out = tm.ExecuteCall(context.Background(), ToolCall{ID: "call_2", Function: ToolCallFunction{Name: "nope"}})
	if !out.IsError || !strings.Contains(out.Content, "not found") {
		t.Fatalf("got %+v", out)
	}
}
