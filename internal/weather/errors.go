package weather

import "errors"

var (
	// ErrCityNotFound is returned when the provider answers 404.
	ErrCityNotFound = errors.New("city not found")
	// ErrWeatherDataUnavailable covers every other non-success outcome of a call.
	ErrWeatherDataUnavailable = errors.New("weather data unavailable")
	// ErrMalformedResponse is returned when a successful body lacks expected fields.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrInvalidQuery is returned for a LocationQuery with neither or both forms set.
	ErrInvalidQuery = errors.New("invalid location query")
)
