package http

import (
	"github.com/gin-gonic/gin"

	"linkylink/internal/middleware"
)

// RegisterPageRoutes maps the browser page. Only the routes that call the
// generate-link API are rate limited.
func RegisterPageRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/", h.Index)
	rg.POST("/generate", mw.RateLimit(), h.Generate)
	rg.POST("/reset", h.Reset)
	rg.GET(calendarPath, h.Calendar)
}

// RegisterAPIRoutes maps the JSON API under rg.
func RegisterAPIRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("/generate", mw.RateLimit(), h.GenerateAPI)
		events.GET("/permalink", h.PermalinkAPI)
	}
}
