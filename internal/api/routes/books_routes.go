package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/patelajay005/Saathi/internal/api/handlers"
	"github.com/patelajay005/Saathi/internal/api/middleware"
)

type BooksRoutes struct {
	handler   *handlers.BooksHandler
	jwtSecret string
}

func NewBooksRoutes(handler *handlers.BooksHandler, jwtSecret string) *BooksRoutes {
	return &BooksRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the reading catalog and library routes
func (r *BooksRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	books := router.Group("/api/books")
	books.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	books.GET("", gzip.Gzip(gzip.DefaultCompression), cache.CacheResponse(), r.handler.ListBooks)
	books.GET("/:id", r.handler.GetBook)
	books.POST("/:id/add", cache.CacheInvalidate("books:*", "library:*"), r.handler.AddToLibrary)

	library := router.Group("/api/library")
	library.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	library.GET("", cache.CacheResponse(), r.handler.GetLibrary)
	library.GET("/recommendations", r.handler.GetRecommendations)
	library.PUT("/:id", cache.CacheInvalidate("books:*", "library:*"), r.handler.UpdateLibraryEntry)
	library.DELETE("/:id", cache.CacheInvalidate("books:*", "library:*"), r.handler.RemoveFromLibrary)
}
