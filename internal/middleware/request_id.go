package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"git-activity-feed/internal/webhook"
	"git-activity-feed/pkg/log"
)

// RequestIDHeader is echoed on every response.
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with an id taken from X-Request-ID, then
// X-GitHub-Delivery, or a fresh uuid, and stores it in the request context.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = c.GetHeader(webhook.DeliveryHeader)
		}
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
