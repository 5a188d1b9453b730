package main

import (
	"log"

	api "taskengine-backend/cmd/api"
	authRepo "taskengine-backend/internal/auth/repository"
	"taskengine-backend/internal/auth/token"
	authUsecase "taskengine-backend/internal/auth/usecase"
	taskRepo "taskengine-backend/internal/task/repository"
	taskUsecase "taskengine-backend/internal/task/usecase"
	"taskengine-backend/pkg/config"
	"taskengine-backend/pkg/database"
	"taskengine-backend/pkg/logging"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize token service
	tokenService := token.NewService([]byte(cfg.JWTSecret), cfg.JWTAccessExpiry)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokenService, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, cfg, logger)

	// Start server
	logger.Info("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
