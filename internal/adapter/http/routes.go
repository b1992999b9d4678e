package http

import (
	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	catalogHandler *handlers.CatalogHandler,
	weatherHandler *handlers.WeatherHandler,
) {
	api := r.Group("/")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/login", userHandler.Login)
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users", userHandler.ListUsers)

		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PUT("/tasks/:id/status", taskHandler.UpdateTaskStatus)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
		api.GET("/tasks/:id/categories", taskHandler.ListTaskCategories)
		api.POST("/task-categories", taskHandler.CreateTaskCategory)

		api.GET("/categories", catalogHandler.ListCategories)
		api.GET("/priorities", catalogHandler.ListPriorities)
		api.GET("/statuses", catalogHandler.ListStatuses)

		api.GET("/weather", weatherHandler.CurrentConditions)
	}
}
