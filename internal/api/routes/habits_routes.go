package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/patelajay005/Saathi/internal/api/handlers"
	"github.com/patelajay005/Saathi/internal/api/middleware"
)

type HabitsRoutes struct {
	handler   *handlers.HabitsHandler
	jwtSecret string
}

func NewHabitsRoutes(handler *handlers.HabitsHandler, jwtSecret string) *HabitsRoutes {
	return &HabitsRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all habit-related routes
func (r *HabitsRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	habits := router.Group("/api/habits")
	habits.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	habits.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.ListHabits)
	habits.POST("", cache.CacheInvalidate("habits:*"), r.handler.CreateHabit)

	habits.GET("/:id", cache.CacheResponse(), r.handler.GetHabit)
	habits.PUT("/:id", cache.CacheInvalidate("habits:*"), r.handler.UpdateHabit)
	habits.DELETE("/:id", cache.CacheInvalidate("habits:*", "scores:*"), r.handler.DeleteHabit)

	// Completion invalidates scores too; today's score depends on it
	habits.POST("/:id/complete", cache.CacheInvalidate("habits:*", "scores:*"), r.handler.CompleteHabit)
	habits.GET("/:id/stats", cache.CacheResponse(), r.handler.GetHabitStats)
}
