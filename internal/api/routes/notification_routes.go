package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/patelajay005/Saathi/internal/api/handlers"
	"github.com/patelajay005/Saathi/internal/api/middleware"
)

type NotificationRoutes struct {
	handler   *handlers.NotificationsHandler
	jwtSecret string
}

func NewNotificationRoutes(handler *handlers.NotificationsHandler, jwtSecret string) *NotificationRoutes {
	return &NotificationRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the notification routes
func (r *NotificationRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	notifications := router.Group("/api/notifications")
	notifications.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	notifications.GET("", r.handler.List)
	notifications.GET("/unread-count", r.handler.UnreadCount)
	notifications.PUT("/:id/read", r.handler.MarkRead)
}
