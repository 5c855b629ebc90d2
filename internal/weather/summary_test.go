package weather

import (
	"strings"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	at := time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC)
	s := Summarize(Report{
		LocationName: "Tokyo",
		Country:      "JP",
		Temperature:  28.4,
		Units:        Celsius,
		Description:  "Clear Sky",
		ObservedAt:   at,
	})
	if s.Location != "Tokyo, JP" {
		t.Fatalf("location = %q", s.Location)
	}
	if s.Temperature != "28.4°C" {
		t.Fatalf("temperature = %q", s.Temperature)
	}
	if s.Summary != "It's 28.4°C with clear sky in Tokyo" {
		t.Fatalf("summary = %q", s.Summary)
	}
	if !strings.Contains(s.Motivation, "shine") || !strings.Contains(s.Motivation, "hydrated") {
		t.Fatalf("motivation = %q", s.Motivation)
	}
	if s.Status != "success" || !s.ObservedAt.Equal(at) {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestMotivation(t *testing.T) {
	tests := []struct {
		desc    string
		celsius float64
		want    []string
		notWant []string
	}{
		{"Sunny", 20, []string{"shine"}, []string{"hydrated", "warm"}},
		{"Light Rain", 12, []string{"rain"}, []string{"hydrated", "warm"}},
		{"Overcast Clouds", 2, []string{"cloudy", "Bundle up"}, nil},
		{"Heavy Snow", -5, []string{"snowflakes", "Bundle up"}, nil},
		{"Mist", 26, []string{"opportunities", "hydrated"}, nil},
		{"Mist", 25, []string{"opportunities"}, []string{"hydrated"}},
		{"Mist", 5, []string{"opportunities"}, []string{"warm"}},
	}
	for _, tt := range tests {
		got := Motivation(tt.desc, tt.celsius)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("Motivation(%q, %v) = %q, want it to contain %q", tt.desc, tt.celsius, got, w)
			}
		}
		for _, w := range tt.notWant {
			if strings.Contains(got, w) {
				t.Errorf("Motivation(%q, %v) = %q, should not contain %q", tt.desc, tt.celsius, got, w)
			}
		}
	}
}

func TestSummarizeUsesCelsiusThresholds(t *testing.T) {
	// 80°F is about 26.7°C, above the hot threshold.
	s := Summarize(Report{LocationName: "Austin", Temperature: 80, Units: Fahrenheit, Description: "Haze"})
	if !strings.Contains(s.Motivation, "hydrated") {
		t.Fatalf("motivation = %q", s.Motivation)
	}
	if s.Temperature != "80.0°F" || s.Location != "Austin" {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestSummarizeWithoutCondition(t *testing.T) {
	s := Summarize(Report{LocationName: "London", Temperature: 15.6, Units: Celsius})

	if s.Condition != "Unknown Conditions" {
		t.Fatalf("condition = %q", s.Condition)
	}
	if s.Summary != "It's 15.6°C with unknown conditions in London" {
		t.Fatalf("summary = %q", s.Summary)
	}
	if !strings.Contains(s.Motivation, "Every kind of weather") {
		t.Fatalf("motivation = %q", s.Motivation)
	}
}
