package middleware

import "git-activity-feed/pkg/log"

// Middleware bundles the gin middlewares used by the HTTP server.
type Middleware struct {
	l              log.Logger
	allowedOrigins []string
}

// New creates a Middleware. An empty allowedOrigins list allows any origin.
func New(l log.Logger, allowedOrigins []string) Middleware {
	return Middleware{
		l:              l,
		allowedOrigins: allowedOrigins,
	}
}
