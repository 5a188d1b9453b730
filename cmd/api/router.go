package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "taskengine-backend/internal/auth/delivery"
	authUsecase "taskengine-backend/internal/auth/usecase"
	taskDelivery "taskengine-backend/internal/task/delivery"
	taskUsecasePkg "taskengine-backend/internal/task/usecase"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Task routes (protected)
		tasks := v1.Group("/tasks")
		tasks.Use(authDelivery.AuthMiddleware(authUc))
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/complete", taskHandler.CompleteTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}
}
