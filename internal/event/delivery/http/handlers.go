package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"git-activity-feed/internal/event"
	"git-activity-feed/pkg/response"
)

// Receive godoc
// @Summary     Receive a webhook delivery
// @Description Normalizes a push or pull_request delivery and stores it. Other kinds are acknowledged and ignored.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-GitHub-Event header string true "Event kind (push, pull_request)"
// @Param       body body object true "Webhook payload"
// @Success     200 {object} response.Resp "Event received or ignored"
// @Failure     400 {object} response.Resp "No data received"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     500 {object} response.Resp "Processing error"
// @Router      /webhook [POST]
func (h *handler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.limiter.Allow(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		response.TooManyRequests(c)
		return
	}

	req, err := h.processReceiveReq(c)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		response.Error(c, err)
		return
	}
	h.l.Debugf(ctx, "Received %q delivery %s (%d bytes)", req.Kind, req.DeliveryID, len(req.Body))

	payload, err := h.parser.Parse(req.Kind, req.Body)
	if err != nil {
		h.l.Warnf(ctx, "Failed to parse %q delivery: %v", req.Kind, err)
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Ingest(ctx, event.IngestInput{Payload: payload})
	if err != nil {
		h.l.Errorf(ctx, "uc.Ingest: %v", err)
		h.respondError(c, err)
		return
	}

	response.OKWithMessage(c, output.Message, h.newReceiveResp(output))
}

// List godoc
// @Summary     Latest events
// @Description Returns the most recent canonical events, newest first, as a bare JSON array.
// @Tags        Events
// @Produce     json
// @Success     200 {array}  eventResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListLatest(ctx, event.ListLatestInput{Limit: h.latestLimit})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLatest: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newListResp(output))
}
