package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"git-activity-feed/internal/webhook"
	pkgErrors "git-activity-feed/pkg/errors"
	"git-activity-feed/pkg/response"
)

// Client-facing messages for rejected deliveries.
const (
	msgNoData      = "No data received"
	msgInvalidJSON = "Invalid JSON body"
)

// mapError translates domain errors into HTTP errors. It returns nil for
// errors that are processing failures rather than bad requests.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, webhook.ErrNoData):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgNoData)
	case errors.Is(err, webhook.ErrInvalidJSON):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgInvalidJSON)
	default:
		return nil
	}
}

// respondError writes a mapped client error, or a 500 carrying err's message.
func (h *handler) respondError(c *gin.Context, err error) {
	if httpErr := h.mapError(err); httpErr != nil {
		response.Error(c, httpErr)
		return
	}
	response.InternalError(c, err)
}
