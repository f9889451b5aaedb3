package search

import (
	"context"

	"github.com/neexbeast/weatherdash/internal/view"
	"github.com/neexbeast/weatherdash/internal/weather"
)

// Fetcher is satisfied by weather.Client.
type Fetcher interface {
	Fetch(ctx context.Context, q weather.LocationQuery) (*weather.Report, error)
}

// Display is the front-end a search reports to.
type Display interface {
	SetBusy(busy bool)
	Render(v view.View)
	ShowError(msg string)
}

// Locator acquires the device position.
type Locator interface {
	Locate(ctx context.Context) (weather.Coordinates, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (weather.Coordinates, error)

// Locate calls f(ctx).
func (f LocatorFunc) Locate(ctx context.Context) (weather.Coordinates, error) {
	return f(ctx)
}

// Sequencer hands out increasing generation numbers per session so that a
// finished search can tell whether a newer one was started after it.
type Sequencer interface {
	Begin(ctx context.Context, session string) (int64, error)
	Current(ctx context.Context, session string, gen int64) (bool, error)
}
