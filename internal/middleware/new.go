package middleware

import (
	"linkylink/pkg/log"
)

// Config configures the shared middlewares.
type Config struct {
	RateLimitPerMin int
	AllowedOrigins  []string
}

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	allowedOrigins []string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:              l,
		limiter:        newRateLimiter(cfg.RateLimitPerMin),
		allowedOrigins: cfg.AllowedOrigins,
	}
}
