package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/patelajay005/Saathi/internal/api/handlers"
	"github.com/patelajay005/Saathi/internal/api/middleware"
)

type ChatRoutes struct {
	handler   *handlers.ChatHandler
	jwtSecret string
}

func NewChatRoutes(handler *handlers.ChatHandler, jwtSecret string) *ChatRoutes {
	return &ChatRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the AI coaching chat routes.
// Chat responses are never cached.
func (r *ChatRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	chat := router.Group("/api/chat")
	chat.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	chat.POST("/sessions", r.handler.CreateSession)
	chat.GET("/sessions", r.handler.ListSessions)
	chat.GET("/sessions/:id", r.handler.GetConversation)
	chat.POST("/sessions/:id/messages", r.handler.SendMessage)
	chat.DELETE("/sessions/:id", r.handler.DeleteSession)
}
