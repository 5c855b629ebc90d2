package resources

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dileep-u-k/weather-mcp/internal/weather"
)

func TestNewCatalogDefaults(t *testing.T) {
	c := NewCatalog(Catalog{DefaultUnits: "rankine"})

	if c.Provider != weather.ProviderName || c.BaseURL != weather.DefaultBaseURL {
		t.Fatalf("provider defaults not applied: %+v", c)
	}
	if c.DefaultUnits != weather.Celsius || c.TimeoutSeconds != 10 {
		t.Fatalf("got units=%s timeout=%d", c.DefaultUnits, c.TimeoutSeconds)
	}
	if len(c.PopularCities) != len(DefaultPopularCities) {
		t.Fatalf("popular cities not defaulted")
	}
}

func TestConfigDocument(t *testing.T) {
	c := NewCatalog(Catalog{DefaultUnits: weather.Fahrenheit, TimeoutSeconds: 15})

	doc := c.Config()
	if doc.BaseURL != "https://api.openweathermap.org/data/2.5/weather" {
		t.Fatalf("BaseURL = %q", doc.BaseURL)
	}
	if doc.Configuration.DefaultUnits != weather.Fahrenheit || doc.Configuration.TimeoutSeconds != 15 {
		t.Fatalf("configuration = %+v", doc.Configuration)
	}
	if len(doc.Features) != 4 {
		t.Fatalf("features = %v", doc.Features)
	}
}

func TestCitiesDocument(t *testing.T) {
	c := NewCatalog(Catalog{PopularCities: []string{"Oslo,NO"}})

	doc := c.Cities()
	if len(doc.PopularCities) != 1 || doc.PopularCities[0] != "Oslo,NO" {
		t.Fatalf("PopularCities = %v", doc.PopularCities)
	}
	for _, key := range []string{"by_city", "by_coordinates", "summary"} {
		if len(doc.UsageExamples[key].Examples) == 0 {
			t.Errorf("missing usage examples for %s", key)
		}
	}
	if doc.CountryCodes.Examples["GB"] != "United Kingdom" {
		t.Fatalf("country codes = %v", doc.CountryCodes.Examples)
	}
}

func TestReadNeverLeaksKey(t *testing.T) {
	t.Setenv("API_KEY", "super-secret-key")
	c := NewCatalog(Catalog{})

	for _, uri := range []string{ConfigURI, CitiesURI} {
		text, err := c.Read(uri)
		if err != nil {
			t.Fatalf("Read(%s): %v", uri, err)
		}
		if strings.Contains(text, "super-secret-key") {
			t.Fatalf("%s leaks the API key", uri)
		}
		if !json.Valid([]byte(text)) {
			t.Fatalf("%s is not valid JSON", uri)
		}
	}

	if _, err := c.Read("data://unknown"); err == nil {
		t.Fatalf("unknown resource should fail")
	}
}
