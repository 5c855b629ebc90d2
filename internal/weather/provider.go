package weather

import "context"

// Provider fetches the raw current conditions for a normalized query.
// Temperatures in the returned Observation are in Kelvin.
type Provider interface {
	Name() string
	Current(ctx context.Context, q Query) (*Observation, error)
}

// Observation mirrors the provider's current-weather payload.
type Observation struct {
	Name     string           `json:"name"`
	Coord    ObservationCoord `json:"coord"`
	Main     ObservationMain  `json:"main"`
	Wind     ObservationWind  `json:"wind"`
	Weather  []Condition      `json:"weather"`
	Sys      ObservationSys   `json:"sys"`
	Timezone int              `json:"timezone"`
	Dt       int64            `json:"dt"`
}

type ObservationCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type ObservationMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type ObservationWind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ObservationSys struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}
