package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// CheckResponse classifies resp by status code and, on success, decodes the
// JSON body into dst. It does not close the body.
func CheckResponse(resp *http.Response, dst any) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("status %d: %w", resp.StatusCode, ErrCityNotFound)
	default:
		return fmt.Errorf("status %d: %w", resp.StatusCode, ErrWeatherDataUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding body: %v: %w", err, ErrMalformedResponse)
	}
	return nil
}
