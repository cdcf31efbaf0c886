package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ecotrack/audit-portal/audit-portal-backend/internal/analysis"
	"ecotrack/audit-portal/audit-portal-backend/internal/audit"
	"ecotrack/audit-portal/audit-portal-backend/internal/branding"
	"ecotrack/audit-portal/audit-portal-backend/internal/config"
	"ecotrack/audit-portal/audit-portal-backend/internal/dashboard"
	"ecotrack/audit-portal/audit-portal-backend/internal/discovery"
	"ecotrack/audit-portal/audit-portal-backend/internal/history"
	"ecotrack/audit-portal/audit-portal-backend/internal/identity"
	"ecotrack/audit-portal/audit-portal-backend/internal/storage"
)

func main() {
	// Environment overrides live in .env during local development
	_ = godotenv.Load()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	store, err := storage.NewFileStore(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to open data directory", zap.Error(err))
	}

	gemini, err := analysis.NewGeminiClient(
		context.Background(),
		cfg.Analysis.APIKey,
		cfg.Analysis.AuditModel,
		cfg.Analysis.DiscoveryModel,
		cfg.Analysis.Timeout,
		logger,
	)
	if err != nil {
		logger.Fatal("Failed to create analysis client", zap.Error(err))
	}

	// Wire modules
	historyRepo := history.NewRepository(store, logger)

	identityService := identity.NewService(store, logger)
	identityHandler := identity.NewHandler(identityService)

	brandingService := branding.NewService(store, logger)
	brandingHandler := branding.NewHandler(brandingService)

	auditService := audit.NewService(gemini, logger)
	auditHandler := audit.NewHandler(auditService, historyRepo, brandingService)

	discoveryService := discovery.NewService(gemini, logger)
	discoveryHandler := discovery.NewHandler(discoveryService)

	dashboardService := dashboard.NewService(historyRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// Setup Router
	router := gin.Default()

	// CORS Middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	ownerID := func(c *gin.Context) string {
		if u := identity.UserFrom(c); u != nil {
			return u.ID
		}
		return ""
	}

	api := router.Group("/api/v1")
	{
		identityHandler.RegisterRoutes(api)
		brandingHandler.RegisterRoutes(api)
		discoveryHandler.RegisterRoutes(api)

		authed := api.Group("")
		authed.Use(identityHandler.RequireUser)
		{
			auditHandler.RegisterRoutes(authed, ownerID)
			dashboardHandler.RegisterRoutes(authed, ownerID)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	srv := &http.Server{
		Addr:    cfg.Server.GetServerAddr(),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("addr", cfg.Server.GetServerAddr()))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
