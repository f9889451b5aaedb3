package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/neexbeast/weatherdash/internal/view"
	"github.com/neexbeast/weatherdash/internal/weather"
)

// PositionTimeout bounds how long a location search waits for the device position.
const PositionTimeout = 10 * time.Second

// State is a step of a search flow.
type State int

const (
	Idle State = iota
	AcquiringPosition
	Busy
	Rendered
	ErrorShown
	Superseded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AcquiringPosition:
		return "acquiring_position"
	case Busy:
		return "busy"
	case Rendered:
		return "rendered"
	case ErrorShown:
		return "error_shown"
	case Superseded:
		return "superseded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Orchestrator drives a search from user input to a rendered view or an
// error message. The display's busy indicator is set once when a flow starts
// and cleared once when it ends, whatever the outcome.
type Orchestrator struct {
	fetcher         Fetcher
	seq             Sequencer
	log             *slog.Logger
	now             func() time.Time
	loc             *time.Location
	positionTimeout time.Duration
}

// NewOrchestrator constructs an Orchestrator. A nil seq keeps generations in memory.
func NewOrchestrator(fetcher Fetcher, seq Sequencer, log *slog.Logger) *Orchestrator {
	return NewOrchestratorWithClock(fetcher, seq, log, time.Now, PositionTimeout)
}

// NewOrchestratorWithClock constructs an Orchestrator with an injectable clock
// and position timeout (for tests).
func NewOrchestratorWithClock(fetcher Fetcher, seq Sequencer, log *slog.Logger, now func() time.Time, positionTimeout time.Duration) *Orchestrator {
	if seq == nil {
		seq = NewMemorySequencer(DefaultSessionTTL)
	}
	return &Orchestrator{
		fetcher:         fetcher,
		seq:             seq,
		log:             log,
		now:             now,
		loc:             time.Local,
		positionTimeout: positionTimeout,
	}
}

// SearchByName looks up the weather for the named city. session groups
// searches from one front-end; an empty session is never superseded.
func (o *Orchestrator) SearchByName(ctx context.Context, d Display, session, name string) (State, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		d.ShowError(UserMessage(ErrEmptyQuery))
		return ErrorShown, ErrEmptyQuery
	}

	d.SetBusy(true)
	defer o.idle(d, session)

	gen := o.begin(ctx, session)
	o.transition(session, Busy)
	return o.fetch(ctx, d, session, gen, weather.ByName(name))
}

// SearchByLocation acquires the device position through loc, then looks up
// the weather there. No network call is made if the position is unavailable.
func (o *Orchestrator) SearchByLocation(ctx context.Context, d Display, session string, loc Locator) (State, error) {
	if loc == nil {
		d.ShowError(UserMessage(errGeolocationUnsupported))
		return ErrorShown, errGeolocationUnsupported
	}

	d.SetBusy(true)
	defer o.idle(d, session)

	gen := o.begin(ctx, session)
	o.transition(session, AcquiringPosition)

	coords, err := o.locate(ctx, loc)
	if err != nil {
		return o.fail(ctx, d, session, gen, err)
	}

	o.transition(session, Busy)
	return o.fetch(ctx, d, session, gen, weather.ByCoords(coords))
}

func (o *Orchestrator) fetch(ctx context.Context, d Display, session string, gen int64, q weather.LocationQuery) (State, error) {
	report, err := o.fetcher.Fetch(ctx, q)
	if err != nil {
		return o.fail(ctx, d, session, gen, err)
	}

	if !o.current(ctx, session, gen) {
		return o.supersede(session)
	}
	d.Render(view.Build(report, o.now(), o.loc))
	o.transition(session, Rendered)
	return Rendered, nil
}

func (o *Orchestrator) fail(ctx context.Context, d Display, session string, gen int64, err error) (State, error) {
	if !o.current(ctx, session, gen) {
		return o.supersede(session)
	}
	o.log.Info("search failed", "session", session, "err", err)
	d.ShowError(UserMessage(err))
	o.transition(session, ErrorShown)
	return ErrorShown, err
}

func (o *Orchestrator) supersede(session string) (State, error) {
	o.transition(session, Superseded)
	return Superseded, ErrSuperseded
}

// locate waits for loc at most positionTimeout, even if loc ignores ctx.
func (o *Orchestrator) locate(ctx context.Context, loc Locator) (weather.Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, o.positionTimeout)
	defer cancel()

	type result struct {
		coords weather.Coordinates
		err    error
	}
	ch := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: fmt.Errorf("locator panicked: %v", r)}
			}
		}()
		c, err := loc.Locate(ctx)
		ch <- result{coords: c, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return weather.Coordinates{}, fmt.Errorf("%w: %w", ErrLocationUnavailable, r.err)
		}
		return r.coords, nil
	case <-ctx.Done():
		return weather.Coordinates{}, fmt.Errorf("%w: %w", ErrLocationUnavailable, ctx.Err())
	}
}

// begin starts a new generation for session. Sequencer failures are logged
// and the search proceeds unsequenced.
func (o *Orchestrator) begin(ctx context.Context, session string) int64 {
	if session == "" {
		return 0
	}
	gen, err := o.seq.Begin(ctx, session)
	if err != nil {
		o.log.Warn("search sequencer begin failed", "session", session, "err", err)
		return 0
	}
	return gen
}

func (o *Orchestrator) current(ctx context.Context, session string, gen int64) bool {
	if session == "" || gen == 0 {
		return true
	}
	ok, err := o.seq.Current(ctx, session, gen)
	if err != nil {
		o.log.Warn("search sequencer check failed", "session", session, "err", err)
		return true
	}
	return ok
}

func (o *Orchestrator) idle(d Display, session string) {
	d.SetBusy(false)
	o.transition(session, Idle)
}

func (o *Orchestrator) transition(session string, s State) {
	o.log.Debug("search state", "session", session, "state", s.String())
}
