package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/daily-checklist-backend/internal/db"
	"github.com/yungbote/daily-checklist-backend/internal/handlers"
	"github.com/yungbote/daily-checklist-backend/internal/logger"
	"github.com/yungbote/daily-checklist-backend/internal/middleware"
	"github.com/yungbote/daily-checklist-backend/internal/observability"
	"github.com/yungbote/daily-checklist-backend/internal/repos"
	"github.com/yungbote/daily-checklist-backend/internal/server"
	"github.com/yungbote/daily-checklist-backend/internal/services"
	"github.com/yungbote/daily-checklist-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownOtel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "daily-checklist-backend",
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "", log),
	})
	if shutdownOtel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOtel(ctx)
		}()
	}

	// Store
	dbService, err := db.NewService(log)
	if err != nil {
		log.Error("Store init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Store migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	dailyTaskRepo := repos.NewDailyTaskRepo(theDB, log)
	taskInstanceRepo := repos.NewTaskInstanceRepo(theDB, log)

	// Services
	log.Info("Setting up services from main...")
	dailyTaskService := services.NewDailyTaskService(theDB, log, dailyTaskRepo)
	checklistService := services.NewChecklistService(theDB, log, dailyTaskRepo, taskInstanceRepo)
	completionService := services.NewCompletionService(theDB, log, taskInstanceRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	dailyTaskHandler := handlers.NewDailyTaskHandler(dailyTaskService)
	checklistHandler := handlers.NewChecklistHandler(checklistService, completionService)

	// Middleware
	requestLogMiddleware := middleware.NewRequestLogMiddleware(log)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		RequestLogMiddleware: requestLogMiddleware,
		DailyTaskHandler:     dailyTaskHandler,
		ChecklistHandler:     checklistHandler,
	})

	port := utils.GetEnv("PORT", "5000", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
