package test

import (
	"git-activity-feed/internal/event"
	"git-activity-feed/internal/webhook"
	pkgLog "git-activity-feed/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleNormalize(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, uc event.UseCase) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: webhook.NewGitHubParser(),
	}
}

// RegisterRoutes mounts the test endpoints under /test.
func RegisterRoutes(r gin.IRouter, h Handler) {
	g := r.Group("/test")
	g.POST("/normalize", h.HandleNormalize)
	g.GET("/health", h.HandleHealthCheck)
}
