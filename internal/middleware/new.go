package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"classsync/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l log.Logger

	// Per-client limiters for the extraction endpoint, LRU-bounded.
	limiters      *lru.Cache[string, *rate.Limiter]
	extractPerMin int
}

// New creates the middleware bundle. extractPerMin caps extraction requests
// per client per minute; zero disables the limit.
func New(l log.Logger, extractPerMin int) Middleware {
	limiters, _ := lru.New[string, *rate.Limiter](1024)
	return Middleware{
		l:             l,
		limiters:      limiters,
		extractPerMin: extractPerMin,
	}
}
