package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/patelajay005/Saathi/internal/api/handlers"
	"github.com/patelajay005/Saathi/internal/api/middleware"
)

type ExercisesRoutes struct {
	handler   *handlers.ExercisesHandler
	jwtSecret string
}

func NewExercisesRoutes(handler *handlers.ExercisesHandler, jwtSecret string) *ExercisesRoutes {
	return &ExercisesRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the exercise catalog and log routes
func (r *ExercisesRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	exercises := router.Group("/api/exercises")
	exercises.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	exercises.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.ListExercises)
	exercises.GET("/logs", r.handler.GetLogs)
	exercises.GET("/:id", cache.CacheResponse(), r.handler.GetExercise)
	exercises.POST("/:id/complete", cache.CacheInvalidate("exercises:*", "scores:*"), r.handler.CompleteExercise)
}
