package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/patelajay005/Saathi/internal/api/handlers"
	"github.com/patelajay005/Saathi/internal/api/middleware"
	"github.com/patelajay005/Saathi/pkg/security/auth"
)

type AuthRoutes struct {
	handler   *handlers.AuthHandler
	jwtSecret string
	limiter   auth.RateLimiter
}

func NewAuthRoutes(handler *handlers.AuthHandler, jwtSecret string, limiter auth.RateLimiter) *AuthRoutes {
	return &AuthRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
		limiter:   limiter,
	}
}

// RegisterRoutes registers authentication and profile routes.
// Register and login are public and rate limited.
func (r *AuthRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	public := router.Group("/api/auth")
	if r.limiter != nil {
		public.Use(middleware.RateLimitMiddleware(r.limiter))
	}
	public.POST("/register", r.handler.Register)
	public.POST("/login", r.handler.Login)

	protected := router.Group("/api/users")
	protected.Use(middleware.NewAuthMiddleware(r.jwtSecret))
	protected.GET("/me", r.handler.GetProfile)
	protected.PUT("/me", r.handler.UpdateProfile)
	protected.POST("/check-in", r.handler.CheckIn)
}
