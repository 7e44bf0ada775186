package test

import (
	"errors"
	"io"

	"git-activity-feed/internal/event"
	"git-activity-feed/internal/webhook"
	pkgLog "git-activity-feed/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l      pkgLog.Logger
	uc     event.UseCase
	parser *webhook.GitHubParser
}

// HandleNormalize normalizes a delivery without storing it
// @Summary Dry-run normalization
// @Description Parse and normalize a webhook delivery and return the canonical event without persisting it
// @Tags test
// @Accept json
// @Produce json
// @Param X-GitHub-Event header string true "Event kind (push, pull_request)"
// @Param body body object true "Webhook payload"
// @Success 200 {object} NormalizeResponse
// @Router /test/normalize [post]
func (h *handler) HandleNormalize(c *gin.Context) {
	ctx := c.Request.Context()
	kind := c.GetHeader(webhook.EventHeader)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, NormalizeResponse{Success: false, Kind: kind, Error: "Invalid request", Details: err.Error()})
		return
	}

	payload, err := h.parser.Parse(kind, body)
	if err != nil {
		status := 500
		if errors.Is(err, webhook.ErrNoData) || errors.Is(err, webhook.ErrInvalidJSON) {
			status = 400
		}
		c.JSON(status, NormalizeResponse{Success: false, Kind: kind, Error: "Parse failed", Details: err.Error()})
		return
	}

	out, err := h.uc.Normalize(payload)
	if err != nil {
		h.l.Warnf(ctx, "internal.test.HandleNormalize: kind=%s err=%v", kind, err)
		c.JSON(500, NormalizeResponse{Success: false, Kind: kind, Error: "Normalization failed", Details: err.Error()})
		return
	}

	resp := NormalizeResponse{
		Success: true,
		Kind:    kind,
		Ignored: out.Ignored,
		Reason:  out.Reason,
	}
	if !out.Ignored {
		resp.Event = &EventPrev{
			RequestID:  out.Event.RequestID,
			Author:     out.Event.Author,
			Action:     string(out.Event.Action),
			FromBranch: out.Event.FromBranch,
			ToBranch:   out.Event.ToBranch,
			Timestamp:  out.Event.Timestamp,
		}
	}

	h.l.Infof(ctx, "internal.test.HandleNormalize: kind=%s ignored=%t", kind, out.Ignored)
	c.JSON(200, resp)
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(200, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
