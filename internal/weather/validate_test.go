package weather_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/weatherdash/internal/weather"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestCheckResponse_Success(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	err := weather.CheckResponse(response(http.StatusOK, `{"name":"Paris"}`), &dst)
	require.NoError(t, err)
	assert.Equal(t, "Paris", dst.Name)
}

func TestCheckResponse_Classification(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, weather.ErrCityNotFound},
		{"unauthorized", http.StatusUnauthorized, weather.ErrWeatherDataUnavailable},
		{"rate limited", http.StatusTooManyRequests, weather.ErrWeatherDataUnavailable},
		{"server error", http.StatusInternalServerError, weather.ErrWeatherDataUnavailable},
		{"bad gateway", http.StatusBadGateway, weather.ErrWeatherDataUnavailable},
		{"redirect", http.StatusMovedPermanently, weather.ErrWeatherDataUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var dst map[string]any
			err := weather.CheckResponse(response(tc.status, `{}`), &dst)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, dst, "body must not be decoded on failure")
		})
	}
}

func TestCheckResponse_BadJSON(t *testing.T) {
	var dst map[string]any
	err := weather.CheckResponse(response(http.StatusOK, `{"name":`), &dst)
	assert.ErrorIs(t, err, weather.ErrMalformedResponse)
}
