package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/neexbeast/weatherdash/internal/search"
	"github.com/neexbeast/weatherdash/internal/view"
	"github.com/neexbeast/weatherdash/internal/weather"
)

// SessionHeader groups searches issued by one front-end, so that a newer
// search supersedes an older one still in flight.
const SessionHeader = "X-Session-ID"

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	searcher    Searcher
	defaultCity string
	log         *slog.Logger
}

// NewHandlers constructs Handlers. defaultCity is searched when a request
// names no location at all.
func NewHandlers(searcher Searcher, defaultCity string, log *slog.Logger) *Handlers {
	return &Handlers{
		searcher:    searcher,
		defaultCity: defaultCity,
		log:         log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// responseDisplay captures what a search shows so the handler can answer
// with it once the flow has finished.
type responseDisplay struct {
	log  *slog.Logger
	view *view.View
	msg  string
}

func (d *responseDisplay) SetBusy(busy bool) {
	d.log.Debug("search busy", "busy", busy)
}

func (d *responseDisplay) Render(v view.View) { d.view = &v }

func (d *responseDisplay) ShowError(msg string) { d.msg = msg }

// GetWeather handles GET /api/v1/weather.
// ?lat=&lon= searches by position, ?city= by name, neither uses the default city.
func (h *Handlers) GetWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	session := r.Header.Get(SessionHeader)
	d := &responseDisplay{log: h.log}

	var (
		state search.State
		err   error
	)
	switch {
	case q.Has("lat") || q.Has("lon"):
		lat, lon := q.Get("lat"), q.Get("lon")
		loc := search.LocatorFunc(func(context.Context) (weather.Coordinates, error) {
			return weather.ParseCoordinates(lat, lon)
		})
		state, err = h.searcher.SearchByLocation(r.Context(), d, session, loc)
	case q.Has("city"):
		state, err = h.searcher.SearchByName(r.Context(), d, session, q.Get("city"))
	default:
		state, err = h.searcher.SearchByName(r.Context(), d, session, h.defaultCity)
	}

	if err != nil {
		msg := d.msg
		if msg == "" {
			msg = search.UserMessage(err)
		}
		h.log.Info("weather request failed", "state", state.String(), "session", session, "err", err)
		writeJSON(w, statusFor(err), map[string]string{"error": msg})
		return
	}
	if d.view == nil {
		h.log.Error("search finished without a view", "state", state.String(), "session", session)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, d.view)
}

// statusFor maps a search failure to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, search.ErrEmptyQuery), errors.Is(err, weather.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, search.ErrLocationUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, weather.ErrCityNotFound):
		return http.StatusNotFound
	case errors.Is(err, search.ErrSuperseded):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// HealthHandlerFunc returns an http.HandlerFunc reporting redis connectivity.
// A nil redis means the server runs without it and is reported as disabled.
func HealthHandlerFunc(redis redisPinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		redisStatus := "disabled"

		if redis != nil {
			redisStatus = "ok"
			if err := redis.Ping(ctx); err != nil {
				log.Error("health check: redis ping failed", "err", err)
				redisStatus = "error"
				status = http.StatusServiceUnavailable
			}
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}
		writeJSON(w, status, map[string]string{
			"status": overall,
			"redis":  redisStatus,
		})
	}
}
