package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-manager/internal/admin"
	"inventory-manager/internal/auth"
	"inventory-manager/internal/cache"
	"inventory-manager/internal/config"
	"inventory-manager/internal/events"
	"inventory-manager/internal/handlers"
	"inventory-manager/internal/remote"
	"inventory-manager/internal/store"
	"inventory-manager/pkg/logger"
	"inventory-manager/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "inventory-manager/docs" // Import docs for Swagger
)

// @title           Inventory Manager API
// @version         1.0
// @description     Browser-facing API over the remote inventory store: items and batches with derived stock and expiry status, sorting, category suggestions, sessions and user administration.

// @host      localhost:8082
// @BasePath  /api/v1

// @schemes   http https
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("🚀 Starting Inventory Manager",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
		zap.String("api_base_url", cfg.APIBaseURL),
	)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Response cache (idempotency) and session persistence
	appLogger.Info("🔧 Initializing session store...", zap.String("backend", cfg.SessionStore))
	var (
		responseCache cache.Cache = cache.NewInMemoryCache()
		sessionStore  auth.SessionStore
		sqliteStore   *auth.SQLiteSessionStore
	)
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		responseCache = cache.NewCache(cfg, appLogger)
		sessionStore = auth.NewCacheSessionStore(responseCache, cache.TTL(cfg.SessionTTL))
	case config.SessionStoreSQLite:
		s, err := auth.NewSQLiteSessionStore(cfg.SQLitePath)
		if err != nil {
			appLogger.Fatal("Failed to open session database",
				zap.String("path", cfg.SQLitePath),
				zap.Error(err),
			)
		}
		sqliteStore = s
		sessionStore = s
	default:
		sessionStore = auth.NewCacheSessionStore(cache.NewInMemoryCache(), cache.TTL(cfg.SessionTTL))
	}
	appLogger.Info("✅ Session store initialized successfully")

	// Remote API client
	httpClient := &http.Client{Timeout: time.Duration(cfg.APITimeoutSeconds) * time.Second}

	appLogger.Info("🔧 Initializing auth service...")
	authService := auth.NewService(cfg.APIBaseURL, httpClient, auth.NewSession(), sessionStore, appLogger)
	restored, err := authService.Restore(context.Background())
	if err != nil {
		appLogger.Warn("Could not restore previous session", zap.Error(err))
	}
	appLogger.Info("✅ Auth service initialized successfully", zap.Bool("session_restored", restored))

	apiClient := remote.NewClient(cfg.APIBaseURL, httpClient, authService, appLogger)

	// Change notifications
	appLogger.Info("🔧 Initializing event publishers...")
	localPublisher := events.NewEventPublisher(appLogger)
	publishers := events.MultiPublisher{localPublisher}
	var kafkaPublisher *events.KafkaEventPublisher
	if cfg.UseKafka {
		appLogger.Info("📡 Kafka Configuration",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic_items", cfg.KafkaTopicItems),
			zap.String("client_id", cfg.KafkaClientID),
			zap.String("acks", cfg.KafkaAcks),
			zap.Int("retries", cfg.KafkaRetries),
		)
		kafkaPublisher, err = events.NewKafkaEventPublisher(cfg, appLogger)
		if err != nil {
			appLogger.Warn("⚠️ Kafka unavailable, publishing in-memory only", zap.Error(err))
		} else {
			publishers = append(publishers, kafkaPublisher)
		}
	}
	appLogger.Info("✅ Event publishers initialized successfully", zap.Int("count", len(publishers)))

	// Inventory store
	appLogger.Info("🔧 Initializing inventory store...")
	inventory := store.NewInventoryStore(remote.NewItemsClient(apiClient), publishers, appLogger)
	if restored {
		if _, err := inventory.FetchItems(context.Background()); err != nil {
			appLogger.Warn("Initial inventory fetch failed", zap.Error(err))
		}
	}
	appLogger.Info("✅ Inventory store initialized successfully")

	// Initialize handlers
	appLogger.Info("🔧 Initializing handlers...")
	inventoryHandler := handlers.NewInventoryHandler(inventory, cfg.ExpiringSoonDays, appLogger)
	sessionHandler := handlers.NewSessionHandler(authService, appLogger)
	adminHandler := handlers.NewAdminHandler(
		admin.NewUsersService(apiClient, authService, appLogger),
		admin.NewProfileService(apiClient, authService, appLogger),
		appLogger,
	)
	eventsHandler := handlers.NewEventsHandler(localPublisher, appLogger)
	appLogger.Info("✅ Handlers initialized successfully")

	// Initialize router
	router := gin.New()

	// CORS middleware (must be first to handle preflight requests)
	router.Use(middleware.CORSMiddleware())

	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))

	// Request ID middleware (must be early in the chain)
	router.Use(middleware.RequestIDMiddleware(appLogger))

	// Idempotency middleware (for write operations)
	router.Use(middleware.IdempotencyMiddleware(responseCache, appLogger, 5*time.Minute))

	// Error handler middleware
	router.Use(middleware.ErrorHandler(appLogger))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint (public)
		v1.GET("/health", healthCheck)

		// Session endpoints (public)
		session := v1.Group("/session")
		{
			session.GET("", sessionHandler.Current)
			session.POST("/login", sessionHandler.Login)
			session.POST("/register", sessionHandler.Register)
			session.POST("/logout", sessionHandler.Logout)
		}

		// Protected endpoints (require a signed-in session)
		protected := v1.Group("")
		protected.Use(middleware.SessionRequired(authService, appLogger))
		{
			inventoryGroup := protected.Group("/inventory")
			{
				inventoryGroup.GET("/items", inventoryHandler.ListItems)
				inventoryGroup.POST("/items/refresh", inventoryHandler.RefreshItems)
				inventoryGroup.POST("/items", inventoryHandler.CreateItem)
				inventoryGroup.PUT("/items/:id", inventoryHandler.UpdateItem)
				inventoryGroup.DELETE("/items/:id", inventoryHandler.DeleteItem)
				inventoryGroup.POST("/items/:id/batches", inventoryHandler.AddBatch)
				inventoryGroup.PUT("/items/batches/:batchId", inventoryHandler.UpdateBatch)
				inventoryGroup.DELETE("/items/batches/:batchId", inventoryHandler.DeleteBatch)
				inventoryGroup.POST("/sort/:field", inventoryHandler.ToggleSort)
				inventoryGroup.GET("/categories", inventoryHandler.Categories)
				inventoryGroup.POST("/rows/:kind/:id/edit", inventoryHandler.BeginEdit)
				inventoryGroup.POST("/rows/:kind/:id/cancel", inventoryHandler.CancelEdit)
				inventoryGroup.GET("/events", eventsHandler.History)
				inventoryGroup.GET("/events/stream", eventsHandler.Stream)
			}

			protected.PUT("/profile", adminHandler.UpdateProfile)
			protected.PUT("/profile/password", adminHandler.ChangePassword)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminRequired(appLogger))
			{
				adminGroup.GET("/users", adminHandler.ListUsers)
				adminGroup.POST("/users", adminHandler.CreateUser)
				adminGroup.PUT("/users/:id/role", adminHandler.SetRole)
				adminGroup.PUT("/users/:id/status", adminHandler.SetStatus)
				adminGroup.DELETE("/users/:id", adminHandler.DeleteUser)
			}
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info("Starting inventory manager",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("swagger_url", "http://localhost:"+cfg.Port+"/swagger/index.html"),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	inventory.Close()
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			appLogger.Warn("Failed to close Kafka producer", zap.Error(err))
		}
	}
	if sqliteStore != nil {
		if err := sqliteStore.Close(); err != nil {
			appLogger.Warn("Failed to close session database", zap.Error(err))
		}
	}
	if redisCache, ok := responseCache.(*cache.RedisCache); ok {
		if err := redisCache.Close(); err != nil {
			appLogger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}

	appLogger.Info("Server exited")
}

// healthCheck godoc
// @Summary      Health check
// @Description  Reports that the service is up.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string  "Service is up"
// @Router       /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "inventory-manager",
	})
}
