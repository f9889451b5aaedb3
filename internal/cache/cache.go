// Package cache keeps per-session search generations in Redis so that every
// server replica agrees on which search a front-end started last.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

// Generations is a Redis-backed search.Sequencer.
type Generations struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGenerations constructs Generations that forget a session after ttl of
// inactivity. A non-positive ttl uses 10 minutes.
func NewGenerations(client *redis.Client, ttl time.Duration) *Generations {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Generations{client: client, ttl: ttl}
}

// key returns the Redis key for the given session.
func key(session string) string {
	return "search:gen:" + strings.TrimSpace(session)
}

// Begin increments and returns the session's generation, refreshing its TTL.
func (g *Generations) Begin(ctx context.Context, session string) (int64, error) {
	pipe := g.client.TxPipeline()
	incr := pipe.Incr(ctx, key(session))
	pipe.Expire(ctx, key(session), g.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("beginning generation for session %s: %w", session, err)
	}
	return incr.Val(), nil
}

// Current reports whether gen is still the session's latest generation.
// A session Redis no longer knows about counts as current.
func (g *Generations) Current(ctx context.Context, session string, gen int64) (bool, error) {
	latest, err := g.client.Get(ctx, key(session)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}
		return false, fmt.Errorf("reading generation for session %s: %w", session, err)
	}
	return latest == gen, nil
}
