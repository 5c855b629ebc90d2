package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawQuery holds caller-supplied lookup fields before validation.
// Coordinates are pointers so "absent" and "zero" stay distinguishable.
type RawQuery struct {
	City        string
	CountryCode string
	Latitude    *float64
	Longitude   *float64
	Units       string
}

// Coordinates is a validated latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Query is a normalized lookup: exactly one of City or Coordinates is set,
// and Units is always valid.
type Query struct {
	City        string
	CountryCode string
	Coordinates *Coordinates
	Units       Units
}

// ByCoordinates reports whether the query targets a coordinate pair.
func (q Query) ByCoordinates() bool { return q.Coordinates != nil }

// String renders the location the way the provider's q parameter expects it.
func (q Query) String() string {
	if q.Coordinates != nil {
		return strconv.FormatFloat(q.Coordinates.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(q.Coordinates.Longitude, 'f', -1, 64)
	}
	if q.CountryCode != "" {
		return q.City + "," + q.CountryCode
	}
	return q.City
}

// Normalize validates raw and resolves its units against defaultUnits.
// All failures are *Error values of kind KindValidation.
func Normalize(raw RawQuery, defaultUnits Units) (Query, error) {
	city := strings.TrimSpace(raw.City)
	country := strings.ToUpper(strings.TrimSpace(raw.CountryCode))
	hasCoords := raw.Latitude != nil || raw.Longitude != nil

	q := Query{Units: ParseUnits(raw.Units, defaultUnits)}

	switch {
	case city != "" && hasCoords:
		return Query{}, validationError("supply either a city or coordinates, not both")
	case city == "" && !hasCoords:
		if raw.City != "" || country != "" {
			return Query{}, validationError("city name cannot be empty")
		}
		return Query{}, validationError("a city or a latitude/longitude pair is required")
	case hasCoords:
		if country != "" {
			return Query{}, validationError("country_code is only valid with a city")
		}
		coords, err := validateCoordinates(raw.Latitude, raw.Longitude)
		if err != nil {
			return Query{}, err
		}
		q.Coordinates = coords
	default:
		if country != "" && !isCountryCode(country) {
			return Query{}, validationError("country_code %q must be a two-letter ISO 3166 code", raw.CountryCode)
		}
		q.City = city
		q.CountryCode = country
	}
	return q, nil
}

func validateCoordinates(lat, lon *float64) (*Coordinates, error) {
	if lat == nil || lon == nil {
		return nil, validationError("latitude and longitude must be supplied together")
	}
	if math.IsNaN(*lat) || *lat < -90 || *lat > 90 {
		return nil, validationError("latitude must be between -90 and 90 degrees, got %s", formatCoord(*lat))
	}
	if math.IsNaN(*lon) || *lon < -180 || *lon > 180 {
		return nil, validationError("longitude must be between -180 and 180 degrees, got %s", formatCoord(*lon))
	}
	return &Coordinates{Latitude: *lat, Longitude: *lon}, nil
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%g", v)
}

func isCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
