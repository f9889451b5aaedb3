package commands_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/weatherdash/cmd/weather/commands"
	"github.com/neexbeast/weatherdash/internal/search"
)

type fakeProvider struct {
	mu      sync.Mutex
	queries []string
	status  int
}

func (p *fakeProvider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	p.queries = append(p.queries, r.URL.Path+"?"+r.URL.RawQuery)
	p.mu.Unlock()

	if p.status != 0 {
		http.Error(w, http.StatusText(p.status), p.status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/weather":
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name":    "Paris",
			"sys":     map[string]any{"country": "FR"},
			"main":    map[string]any{"temp": 18.4, "feels_like": 17.9, "humidity": 60},
			"wind":    map[string]any{"speed": 5.0},
			"weather": []map[string]any{{"description": "clear sky", "icon": "01d", "main": "Clear"}},
		})
	case "/forecast":
		ts := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
		_ = json.NewEncoder(w).Encode(map[string]any{"list": []map[string]any{{
			"dt":      ts.Unix(),
			"dt_txt":  ts.Format("2006-01-02 15:04:05"),
			"main":    map[string]any{"temp": 21.0},
			"weather": []map[string]any{{"icon": "02d", "main": "Clouds"}},
		}}})
	}
}

func (p *fakeProvider) seen() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.queries...)
}

func run(t *testing.T, p *fakeProvider, args ...string) (string, string, error) {
	t.Helper()
	srv := httptest.NewServer(p)
	t.Cleanup(srv.Close)

	var stdout, stderr bytes.Buffer
	root := commands.NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--api-key", "k", "--base-url", srv.URL}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCity(t *testing.T) {
	p := &fakeProvider{}
	out, errOut, err := run(t, p, "city", "Paris")
	require.NoError(t, err)

	assert.Contains(t, out, "Paris, FR")
	assert.Contains(t, out, "18°  clear sky")
	assert.Contains(t, out, "Wind 18 km/h")
	assert.Contains(t, out, "21°")
	assert.Contains(t, errOut, "Loading...")

	seen := p.seen()
	require.Len(t, seen, 2)
	assert.Contains(t, seen[0], "/weather?")
	assert.Contains(t, seen[1], "/forecast?")
}

func TestCity_MultiWordName(t *testing.T) {
	p := &fakeProvider{}
	_, _, err := run(t, p, "city", "New", "York")
	require.NoError(t, err)
	assert.Contains(t, p.seen()[0], "q=New+York")
}

func TestCity_NotFound(t *testing.T) {
	p := &fakeProvider{status: http.StatusNotFound}
	out, errOut, err := run(t, p, "city", "Atlantis")
	require.Error(t, err)

	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error: City not found")
	assert.Len(t, p.seen(), 1)
}

func TestCoords(t *testing.T) {
	p := &fakeProvider{}
	out, _, err := run(t, p, "coords", "--lat", "48.85", "--lon", "2.35")
	require.NoError(t, err)

	assert.Contains(t, out, "Paris, FR")
	assert.Contains(t, p.seen()[0], "lat=48.85&lon=2.35")
}

func TestCoords_Invalid(t *testing.T) {
	p := &fakeProvider{}
	_, errOut, err := run(t, p, "coords", "--lat", "north", "--lon", "2")
	assert.ErrorIs(t, err, search.ErrLocationUnavailable)
	assert.Contains(t, errOut, "Unable to retrieve your location")
	assert.Empty(t, p.seen())
}

func TestCoords_NoPosition(t *testing.T) {
	p := &fakeProvider{}
	_, errOut, err := run(t, p, "coords")
	assert.ErrorIs(t, err, search.ErrLocationUnavailable)
	assert.Contains(t, errOut, "Geolocation is not supported")
	assert.Empty(t, p.seen())
}
