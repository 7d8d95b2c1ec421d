package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/daily-checklist-backend/internal/handlers"
	"github.com/yungbote/daily-checklist-backend/internal/middleware"
)

type RouterConfig struct {
	RequestLogMiddleware *middleware.RequestLogMiddleware
	DailyTaskHandler     *handlers.DailyTaskHandler
	ChecklistHandler     *handlers.ChecklistHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware("daily-checklist-backend"))
	if cfg.RequestLogMiddleware != nil {
		router.Use(cfg.RequestLogMiddleware.RequestLog())
	}

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Daily task templates
		api.GET("/daily-tasks", cfg.DailyTaskHandler.List)
		api.POST("/daily-tasks", cfg.DailyTaskHandler.Create)
		api.POST("/daily-tasks/:id", cfg.DailyTaskHandler.Update)
		api.DELETE("/daily-tasks/:id", cfg.DailyTaskHandler.Delete)

		// Per-date checklist
		api.GET("/tasks/:date", cfg.ChecklistHandler.GetForDate)
		api.POST("/tasks/:id", cfg.ChecklistHandler.SetCompletion)
	}

	return router
}
