package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patelajay005/Saathi/internal/ai"
	"github.com/patelajay005/Saathi/internal/api/handlers"
	"github.com/patelajay005/Saathi/internal/api/middleware"
	"github.com/patelajay005/Saathi/internal/api/routes"
	"github.com/patelajay005/Saathi/internal/domain/books"
	"github.com/patelajay005/Saathi/internal/domain/chat"
	"github.com/patelajay005/Saathi/internal/domain/exercises"
	"github.com/patelajay005/Saathi/internal/domain/habits"
	"github.com/patelajay005/Saathi/internal/domain/moods"
	"github.com/patelajay005/Saathi/internal/domain/notification"
	"github.com/patelajay005/Saathi/internal/domain/quizzes"
	"github.com/patelajay005/Saathi/internal/domain/scores"
	"github.com/patelajay005/Saathi/internal/domain/users"
	"github.com/patelajay005/Saathi/internal/infrastructure/cache"
	"github.com/patelajay005/Saathi/internal/infrastructure/persistence/postgres/connection"
	"github.com/patelajay005/Saathi/internal/infrastructure/persistence/postgres/migrations"
	"github.com/patelajay005/Saathi/internal/infrastructure/scheduler"
	"github.com/patelajay005/Saathi/pkg/config"
	"github.com/patelajay005/Saathi/pkg/logger"
	"github.com/patelajay005/Saathi/pkg/security/auth"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		log.Info("Request processed",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// xpRewarder adapts the user service to the per-domain Rewarder interfaces.
type xpRewarder struct {
	users users.Service
}

func (r *xpRewarder) Award(ctx context.Context, userID uuid.UUID, points int) error {
	_, err := r.users.AwardXP(ctx, userID, points)
	return err
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLoggerWithLevel(cfg.Logging.Level)
	defer log.Sync()

	// Set gin mode
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Prometheus metrics
	metricsMiddleware := middleware.NewMetricsMiddleware()
	router.Use(metricsMiddleware.CollectMetrics())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Database
	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migrations.AutoMigrate(db, log.Logger); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Redis
	redisClient, err := cache.NewRedisClient(cache.NewConfigFromEnv(cfg))
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	rateLimiter := auth.NewRedisRateLimiter(redisClient.GetClient(), 1*time.Minute, 100)
	cacheMiddleware := middleware.NewCacheMiddleware(redisClient, "saathi", 5*time.Minute)

	// The AI client logs through logrus, everything else through zap.
	aiLogger := logrus.New()
	aiLogger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Server.Mode == "production" {
		aiLogger.SetLevel(logrus.InfoLevel)
	} else {
		aiLogger.SetLevel(logrus.DebugLevel)
	}
	aiClient := ai.NewClient(&cfg.AI, aiLogger)

	loc := cfg.Server.Location()

	// Repositories
	userRepo := users.NewRepository(db)
	habitsRepo := habits.NewRepository(db)
	moodsRepo := moods.NewRepository(db)
	exercisesRepo := exercises.NewRepository(db)
	scoresRepo := scores.NewRepository(db.DB)
	chatRepo := chat.NewRepository(db.DB)
	notificationRepo := notification.NewRepository(db)
	quizzesRepo := quizzes.NewRepository(db)
	booksRepo := books.NewRepository(db)

	// Services
	notificationService := notification.NewService(notificationRepo, notification.NewLogDispatcher(log), log)
	habitNotify := habits.NewNotificationService(notificationService)

	userService := users.NewService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTExpiryHours, loc, log)
	rewarder := &xpRewarder{users: userService}

	habitsService := habits.NewService(habitsRepo, habitNotify, rewarder, loc, log)
	moodsService := moods.NewService(moodsRepo, rewarder, loc, log)
	exercisesService := exercises.NewService(exercisesRepo, rewarder, loc, log)
	scoresService := scores.NewService(scoresRepo, habitsRepo, moodsRepo, exercisesRepo, loc, log)
	chatService := chat.NewService(chatRepo, aiClient, userRepo, moodsRepo, habitsRepo, scoresRepo, rewarder, log)
	quizzesService := quizzes.NewService(quizzesRepo, rewarder, loc, log)
	booksService := books.NewService(booksRepo, loc, log)

	// Background jobs: nightly score recompute and habit reminders
	jobs := scheduler.NewScheduler(userService, habitsService, scoresService, habitNotify, loc, log)
	jobs.Start()
	defer jobs.Stop()

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	habitsHandler := handlers.NewHabitsHandler(habitsService)
	moodsHandler := handlers.NewMoodsHandler(moodsService, loc)
	exercisesHandler := handlers.NewExercisesHandler(exercisesService)
	scoresHandler := handlers.NewScoresHandler(scoresService, loc)
	chatHandler := handlers.NewChatHandler(chatService)
	notificationsHandler := handlers.NewNotificationsHandler(notificationService)
	quizzesHandler := handlers.NewQuizzesHandler(quizzesService)
	booksHandler := handlers.NewBooksHandler(booksService)

	// Routes
	routes.SetupHealthRoutes(router, db, redisClient)
	routes.NewAuthRoutes(authHandler, cfg.Auth.JWTSecret, rateLimiter).RegisterRoutes(router, cacheMiddleware)
	routes.NewHabitsRoutes(habitsHandler, cfg.Auth.JWTSecret).RegisterRoutes(router, cacheMiddleware)
	routes.NewMoodsRoutes(moodsHandler, cfg.Auth.JWTSecret).RegisterRoutes(router, cacheMiddleware)
	routes.NewExercisesRoutes(exercisesHandler, cfg.Auth.JWTSecret).RegisterRoutes(router, cacheMiddleware)
	routes.NewScoresRoutes(scoresHandler, cfg.Auth.JWTSecret).RegisterRoutes(router, cacheMiddleware)
	routes.NewChatRoutes(chatHandler, cfg.Auth.JWTSecret).RegisterRoutes(router, cacheMiddleware)
	routes.NewNotificationRoutes(notificationsHandler, cfg.Auth.JWTSecret).RegisterRoutes(router, cacheMiddleware)
	routes.NewQuizzesRoutes(quizzesHandler, cfg.Auth.JWTSecret).RegisterRoutes(router, cacheMiddleware)
	routes.NewBooksRoutes(booksHandler, cfg.Auth.JWTSecret).RegisterRoutes(router, cacheMiddleware)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
