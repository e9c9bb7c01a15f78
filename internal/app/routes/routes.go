package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ahatanar/StudentSpace/internal/app/controllers"
	"github.com/ahatanar/StudentSpace/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	heatmapController *controllers.HeatmapController,
	rateLimiter *middleware.RateLimiter,
) {
	// Health check endpoint (public, unversioned, not rate limited so load
	// balancers can probe freely)
	router.GET("/health", heatmapController.Health)

	// API version group
	v1 := router.Group("/api/v1")

	heatmapRoutes := v1.Group("/heatmap")
	if rateLimiter != nil {
		heatmapRoutes.Use(rateLimiter.Limit())
	}
	{
		heatmapRoutes.GET("", heatmapController.GetHeatmap)
		heatmapRoutes.GET("/terms", heatmapController.ListTerms)
	}
}
