package weather

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// ParseCoordinates parses and range-checks a latitude/longitude pair.
func ParseCoordinates(lat, lon string) (Coordinates, error) {
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parsing latitude %q: %w", lat, err)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parsing longitude %q: %w", lon, err)
	}
	if la < -90 || la > 90 {
		return Coordinates{}, fmt.Errorf("latitude %v out of range", la)
	}
	if lo < -180 || lo > 180 {
		return Coordinates{}, fmt.Errorf("longitude %v out of range", lo)
	}
	return Coordinates{Latitude: la, Longitude: lo}, nil
}

// LocationQuery identifies a location either by name or by coordinates.
// Build one with ByName or ByCoords; the zero value is invalid.
type LocationQuery struct {
	name   string
	coords *Coordinates
}

// ByName returns a query for the named city.
func ByName(city string) LocationQuery {
	return LocationQuery{name: strings.TrimSpace(city)}
}

// ByCoords returns a query for the given coordinates.
func ByCoords(c Coordinates) LocationQuery {
	return LocationQuery{coords: &c}
}

// Valid reports whether exactly one of name or coordinates is set.
func (q LocationQuery) Valid() bool {
	return (q.name != "") != (q.coords != nil)
}

// Name returns the city name and whether the query is by name.
func (q LocationQuery) Name() (string, bool) {
	return q.name, q.coords == nil && q.name != ""
}

// Coords returns the coordinates and whether the query is by coordinates.
func (q LocationQuery) Coords() (Coordinates, bool) {
	if q.coords == nil {
		return Coordinates{}, false
	}
	return *q.coords, true
}

// Params returns the location query parameters shared by both endpoints.
func (q LocationQuery) Params() url.Values {
	v := url.Values{}
	if q.coords != nil {
		v.Set("lat", strconv.FormatFloat(q.coords.Latitude, 'f', -1, 64))
		v.Set("lon", strconv.FormatFloat(q.coords.Longitude, 'f', -1, 64))
		return v
	}
	v.Set("q", q.name)
	return v
}

func (q LocationQuery) String() string {
	if q.coords != nil {
		return fmt.Sprintf("coords(%g,%g)", q.coords.Latitude, q.coords.Longitude)
	}
	return q.name
}

// CurrentConditions holds the current weather snapshot for one place.
type CurrentConditions struct {
	Place       string  `json:"place"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	WindSpeed   int     `json:"wind_speed_kmh"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Condition   string  `json:"condition"`
}

// ForecastPoint is one time-stamped prediction of the forecast series.
type ForecastPoint struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"`
	Icon        string    `json:"icon"`
	Condition   string    `json:"condition"`
	Label       string    `json:"label"`
}

// DailyForecast holds at most one point per day, oldest first.
type DailyForecast []ForecastPoint

// Report is the result of a successful fetch.
type Report struct {
	Current CurrentConditions `json:"current"`
	Daily   DailyForecast     `json:"daily"`
}
