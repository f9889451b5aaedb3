package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultBaseURL is the OpenWeatherMap 2.5 API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

const (
	httpTimeout = 10 * time.Second
	units       = "metric"
)

var tracer = otel.Tracer("github.com/neexbeast/weatherdash/internal/weather")

// newHTTPClient returns an http.Client with a 10-second timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// Client fetches current conditions and the forecast from OpenWeatherMap.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClientWithURL constructs a Client against baseURL, normally DefaultBaseURL.
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(),
	}
}

// Fetch retrieves current conditions, then the forecast, for q. The forecast
// is requested only after the current conditions call succeeded, and any
// failure fails the whole fetch.
func (c *Client) Fetch(ctx context.Context, q LocationQuery) (*Report, error) {
	if !q.Valid() {
		return nil, ErrInvalidQuery
	}

	var current owmCurrent
	if err := c.get(ctx, "weather", q, &current); err != nil {
		return nil, fmt.Errorf("current conditions for %s: %w", q, err)
	}

	var forecast owmForecast
	if err := c.get(ctx, "forecast", q, &forecast); err != nil {
		return nil, fmt.Errorf("forecast for %s: %w", q, err)
	}

	conditions, err := current.normalize()
	if err != nil {
		return nil, fmt.Errorf("current conditions for %s: %w", q, err)
	}
	points, err := forecast.normalize()
	if err != nil {
		return nil, fmt.Errorf("forecast for %s: %w", q, err)
	}

	return &Report{Current: conditions, Daily: SampleDaily(points)}, nil
}

// get performs one GET against the named endpoint and validates the response.
func (c *Client) get(ctx context.Context, endpoint string, q LocationQuery, dst any) error {
	ctx, span := tracer.Start(ctx, "weather."+endpoint)
	defer span.End()
	span.SetAttributes(attribute.String("weather.query", q.String()))

	params := q.Params()
	params.Set("units", units)
	params.Set("appid", c.apiKey)
	path := c.baseURL + "/" + endpoint

	err := doGet(ctx, c.client, path+"?"+params.Encode(), dst)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return nil
}

// doGet performs a GET request and hands the response to CheckResponse.
// Transport failures are reported without the request URL, which carries the
// API key.
func doGet(ctx context.Context, client *http.Client, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("%w: %w", ErrWeatherDataUnavailable, err)
	}
	defer resp.Body.Close()

	return CheckResponse(resp, dst)
}
