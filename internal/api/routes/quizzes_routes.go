package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/patelajay005/Saathi/internal/api/handlers"
	"github.com/patelajay005/Saathi/internal/api/middleware"
)

type QuizzesRoutes struct {
	handler   *handlers.QuizzesHandler
	jwtSecret string
}

func NewQuizzesRoutes(handler *handlers.QuizzesHandler, jwtSecret string) *QuizzesRoutes {
	return &QuizzesRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the quiz catalog and result routes
func (r *QuizzesRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	quizzes := router.Group("/api/quizzes")
	quizzes.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	quizzes.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.ListQuizzes)
	quizzes.GET("/:id", cache.CacheResponse(), r.handler.GetQuiz)
	quizzes.POST("/:id/submit", cache.CacheInvalidate("quiz-results:*"), r.handler.SubmitQuiz)

	results := router.Group("/api/quiz-results")
	results.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	results.GET("", cache.CacheResponse(), r.handler.GetHistory)
	results.GET("/:id", r.handler.GetResult)
}
