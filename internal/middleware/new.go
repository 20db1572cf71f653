package middleware

import (
	pkgLog "ai-task-manager/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l           pkgLog.Logger
	rateLimiter *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate
// limiting entirely.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	var rl *rateLimiter
	if requestsPerMin > 0 {
		rl = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:           l,
		rateLimiter: rl,
	}
}
