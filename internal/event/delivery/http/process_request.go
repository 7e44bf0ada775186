package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"git-activity-feed/internal/webhook"
)

// maxBodyBytes matches GitHub's 25 MB payload cap.
const maxBodyBytes = 25 << 20

type receiveReq struct {
	Kind       string
	DeliveryID string
	Body       []byte
}

// processReceiveReq reads the event kind header and the raw body.
func (h *handler) processReceiveReq(c *gin.Context) (receiveReq, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return receiveReq{}, fmt.Errorf("read body: %w", err)
	}

	return receiveReq{
		Kind:       c.GetHeader(webhook.EventHeader),
		DeliveryID: c.GetHeader(webhook.DeliveryHeader),
		Body:       body,
	}, nil
}
