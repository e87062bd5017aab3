package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/patelajay005/Saathi/internal/api/handlers"
	"github.com/patelajay005/Saathi/internal/api/middleware"
)

type ScoresRoutes struct {
	handler   *handlers.ScoresHandler
	jwtSecret string
}

func NewScoresRoutes(handler *handlers.ScoresHandler, jwtSecret string) *ScoresRoutes {
	return &ScoresRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all daily score routes
func (r *ScoresRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	scores := router.Group("/api/scores")
	scores.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	scores.POST("/calculate", cache.CacheInvalidate("scores:*"), r.handler.Calculate)
	scores.GET("/today", r.handler.GetToday)
	scores.GET("/history", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.GetHistory)
	scores.GET("/stats", cache.CacheResponse(), r.handler.GetStats)
	scores.GET("/date/:date", r.handler.GetByDate)
}
