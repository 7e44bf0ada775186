package http

import (
	"github.com/gin-gonic/gin"

	"git-activity-feed/internal/event"
	"git-activity-feed/internal/webhook"
	"git-activity-feed/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Receive(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          event.UseCase
	parser      *webhook.GitHubParser
	limiter     *webhook.RateLimiter
	latestLimit int
}

// New creates a new HTTP handler for webhook ingestion and the event feed.
// A nil limiter disables rate limiting; latestLimit <= 0 uses event.DefaultLatestLimit.
func New(l log.Logger, uc event.UseCase, limiter *webhook.RateLimiter, latestLimit int) *handler {
	if latestLimit <= 0 {
		latestLimit = event.DefaultLatestLimit
	}
	return &handler{
		l:           l,
		uc:          uc,
		parser:      webhook.NewGitHubParser(),
		limiter:     limiter,
		latestLimit: latestLimit,
	}
}

var _ Handler = (*handler)(nil)
