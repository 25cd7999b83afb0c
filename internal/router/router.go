package router

import (
	"time"

	"github.com/costlens-dev/costlens/internal/ai"
	"github.com/costlens-dev/costlens/internal/handlers"
	"github.com/costlens-dev/costlens/internal/middleware"
	"github.com/costlens-dev/costlens/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires the HTTP surface. generator is nil when no Google AI API
// key is configured; the AI route then reports a configuration error.
func NewRouter(database *gorm.DB, generator ai.Generator) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	var aiService *ai.Service
	if generator != nil {
		aiService = ai.NewService(generator, nil)
	}

	authHandler := handlers.NewAuthHandler(database)
	projectHandler := handlers.NewProjectHandler(database)
	aiHandler := handlers.NewAIHandler(database, aiService)
	adminHandler := handlers.NewAdminHandler(database, generator)
	healthHandler := handlers.NewHealthHandler(generator != nil)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware())
		{
			projects.POST("", projectHandler.Create)
			projects.GET("", projectHandler.List)
			projects.GET("/:project_id", projectHandler.Get)
		}

		aiRoutes := api.Group("/ai", middleware.AuthMiddleware())
		{
			aiRoutes.POST("/suggestions/:project_id", aiHandler.Suggest)
		}

		admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.RequireAdmin(database))
		{
			admin.GET("/health", adminHandler.Health)
			admin.GET("/stats", adminHandler.Stats)
		}
	}

	return r
}
