package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the ingestion and feed endpoints.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.POST("/webhook", h.Receive)

	api := r.Group("/api")
	{
		api.GET("/events", h.List)
	}
}
