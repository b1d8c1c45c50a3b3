package http

import (
	"github.com/gin-gonic/gin"

	"classsync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the extraction endpoint is rate limited; it spends AI quota.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.POST("/extract", mw.ExtractionRateLimit(), h.Extract)
		tasks.POST("/:id/toggle", h.ToggleComplete)
		tasks.DELETE("/:id", h.Delete)
	}
}
