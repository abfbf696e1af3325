package http

import (
	"taskcheck/internal/adapter/http/handlers"
	"taskcheck/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, updateHandler *handlers.UpdateHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/updates", updateHandler.HandleUpdate)
	}
}
