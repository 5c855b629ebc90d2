package weather

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const statusSuccess = "success"

// Report is the uniform, unit-converted result of a weather lookup.
// It is built once per request and never cached.
type Report struct {
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	LocationName  string       `json:"location_name"`
	Country       string       `json:"country"`
	Temperature   float64      `json:"temperature"`
	FeelsLike     float64      `json:"feels_like"`
	Units         Units        `json:"units"`
	Description   string       `json:"description"`
	HumidityPct   int          `json:"humidity_pct"`
	WindSpeed     float64      `json:"wind_speed"`
	WindDirection int          `json:"wind_direction"`
	Pressure      int          `json:"pressure"`
	Sunrise       *time.Time   `json:"sunrise_ts,omitempty"`
	Sunset        *time.Time   `json:"sunset_ts,omitempty"`
	ObservedAt    time.Time    `json:"observed_at"`
	Status        string       `json:"status"`
}

// Shape converts a raw observation into a Report in q's units.
// observedAt marks when the shaping happened, not the provider's timestamp.
func Shape(obs *Observation, q Query, observedAt time.Time) Report {
	r := Report{
		LocationName:  obs.Name,
		Country:       obs.Sys.Country,
		Temperature:   q.Units.FromKelvin(obs.Main.Temp),
		FeelsLike:     q.Units.FromKelvin(obs.Main.FeelsLike),
		Units:         q.Units,
		HumidityPct:   obs.Main.Humidity,
		WindSpeed:     obs.Wind.Speed,
		WindDirection: obs.Wind.Deg,
		Pressure:      obs.Main.Pressure,
		ObservedAt:    observedAt,
		Status:        statusSuccess,
	}
	if q.Coordinates != nil {
		c := *q.Coordinates
		r.Coordinates = &c
	}
	if len(obs.Weather) > 0 {
		// Casers keep state, so each call gets its own.
		r.Description = cases.Title(language.English).String(obs.Weather[0].Description)
	}

	zone := time.FixedZone("", obs.Timezone)
	r.Sunrise = unixIn(obs.Sys.Sunrise, zone)
	r.Sunset = unixIn(obs.Sys.Sunset, zone)
	return r
}

func unixIn(sec int64, zone *time.Location) *time.Time {
	if sec == 0 {
		return nil
	}
	t := time.Unix(sec, 0).In(zone)
	return &t
}
