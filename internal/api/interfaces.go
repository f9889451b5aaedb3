package api

import (
	"context"

	"github.com/neexbeast/weatherdash/internal/search"
)

// Searcher defines the search flows needed by handlers.
// *search.Orchestrator satisfies it.
type Searcher interface {
	SearchByName(ctx context.Context, d search.Display, session, name string) (search.State, error)
	SearchByLocation(ctx context.Context, d search.Display, session string, loc search.Locator) (search.State, error)
}

// redisPinger is satisfied by the adapter around *redis.Client in cmd/server.
type redisPinger interface {
	Ping(ctx context.Context) error
}
