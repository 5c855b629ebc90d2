package weather

import (
	"fmt"
	"strings"
	"time"
)

// Summary is a compact view derived from a Report.
type Summary struct {
	Location    string    `json:"location"`
	Temperature string    `json:"temperature"`
	Condition   string    `json:"condition"`
	Summary     string    `json:"summary"`
	Motivation  string    `json:"motivation"`
	ObservedAt  time.Time `json:"observed_at"`
	Status      string    `json:"status"`
}

const (
	hotThresholdC  = 25.0
	coldThresholdC = 5.0

	// Used when the provider sent no condition.
	unknownCondition = "Unknown Conditions"
)

// Summarize derives a Summary from r without any further lookup.
func Summarize(r Report) Summary {
	location := r.LocationName
	if r.Country != "" {
		location = fmt.Sprintf("%s, %s", r.LocationName, r.Country)
	}
	condition := strings.TrimSpace(r.Description)
	if condition == "" {
		condition = unknownCondition
	}
	return Summary{
		Location:    location,
		Temperature: fmt.Sprintf("%.1f°%s", r.Temperature, r.Units.Symbol()),
		Condition:   condition,
		Summary: fmt.Sprintf("It's %.1f°%s with %s in %s",
			r.Temperature, r.Units.Symbol(), strings.ToLower(condition), r.LocationName),
		Motivation: Motivation(condition, r.Units.ToCelsius(r.Temperature)),
		ObservedAt: r.ObservedAt,
		Status:     statusSuccess,
	}
}

// Motivation picks an encouragement line for a condition and a Celsius temperature.
func Motivation(description string, celsius float64) string {
	desc := strings.ToLower(description)

	var msg string
	switch {
	case strings.Contains(desc, "sun"), strings.Contains(desc, "clear"):
		msg = "☀️ Perfect day to shine bright and chase your goals!"
	case strings.Contains(desc, "rain"), strings.Contains(desc, "drizzle"):
		msg = "🌧️ Let the rain wash away yesterday's worries, a fresh start is ahead!"
	case strings.Contains(desc, "cloud"):
		msg = "☁️ Even cloudy skies can't dim your inner light!"
	case strings.Contains(desc, "snow"):
		msg = "❄️ Like snowflakes, you're one of a kind!"
	default:
		msg = "🌟 Every kind of weather brings new opportunities!"
	}

	switch {
	case celsius > hotThresholdC:
		msg += " Stay hydrated and keep cool! 💧"
	case celsius < coldThresholdC:
		msg += " Bundle up and stay warm! 🧥"
	}
	return msg
}
