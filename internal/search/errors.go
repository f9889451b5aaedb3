package search

import (
	"errors"
	"fmt"

	"github.com/neexbeast/weatherdash/internal/weather"
)

var (
	// ErrEmptyQuery is returned when a name search is given only whitespace.
	ErrEmptyQuery = errors.New("empty query")
	// ErrLocationUnavailable is returned when the device position cannot be acquired.
	ErrLocationUnavailable = errors.New("location unavailable")
	// ErrSuperseded is returned by a search whose result was dropped because a
	// newer search for the same session started before it finished.
	ErrSuperseded = errors.New("superseded by a newer search")
)

var errGeolocationUnsupported = fmt.Errorf("%w: geolocation not supported", ErrLocationUnavailable)

// UserMessage returns the single message shown to the user for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyQuery):
		return "Please enter a city name"
	case errors.Is(err, errGeolocationUnsupported):
		return "Geolocation is not supported. Please search by city name."
	case errors.Is(err, ErrLocationUnavailable):
		return "Unable to retrieve your location. Please enable location services or search by city name."
	case errors.Is(err, ErrSuperseded):
		return "A newer search replaced this one"
	case errors.Is(err, weather.ErrCityNotFound):
		return "City not found"
	case errors.Is(err, weather.ErrMalformedResponse):
		return "Unexpected response from weather service"
	default:
		return "Weather data unavailable"
	}
}
