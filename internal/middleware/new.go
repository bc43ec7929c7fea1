package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"medication-reminder/pkg/log"
	"medication-reminder/pkg/scope"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager

	// voiceLimitPerMin caps voice commands per user per minute; 0 disables.
	voiceLimitPerMin int
	limiters         *lru.Cache[string, *rate.Limiter]
}

// New creates the middleware bundle.
func New(l log.Logger, jwtManager scope.Manager, voiceLimitPerMin int) Middleware {
	// Bounded per-user limiter cache; eviction just resets a user's budget.
	limiters, _ := lru.New[string, *rate.Limiter](1024)

	return Middleware{
		l:                l,
		jwtManager:       jwtManager,
		voiceLimitPerMin: voiceLimitPerMin,
		limiters:         limiters,
	}
}
