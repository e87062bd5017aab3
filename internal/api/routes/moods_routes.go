package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/patelajay005/Saathi/internal/api/handlers"
	"github.com/patelajay005/Saathi/internal/api/middleware"
)

type MoodsRoutes struct {
	handler   *handlers.MoodsHandler
	jwtSecret string
}

func NewMoodsRoutes(handler *handlers.MoodsHandler, jwtSecret string) *MoodsRoutes {
	return &MoodsRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all mood-tracking routes
func (r *MoodsRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	moods := router.Group("/api/moods")
	moods.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	moods.POST("", cache.CacheInvalidate("moods:*", "scores:*"), r.handler.LogMood)
	moods.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.GetHistory)
	moods.GET("/today", r.handler.GetToday)
	moods.GET("/stats", cache.CacheResponse(), r.handler.GetStats)
	moods.PUT("/:id", cache.CacheInvalidate("moods:*", "scores:*"), r.handler.UpdateMood)
	moods.DELETE("/:id", cache.CacheInvalidate("moods:*", "scores:*"), r.handler.DeleteMood)
}
