package main

import (
	"context"
	"errors"
	"gin-grocery/ai"
	"gin-grocery/controllers"
	"gin-grocery/infra"
	"gin-grocery/middlewares"
	"gin-grocery/repositories"
	"gin-grocery/services"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg *infra.Config, completer ai.Completer) *gin.Engine {
	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(db)
	authService := services.NewAuthService(authRepository, tokenRepository, cfg.SecretKey, cfg.TokenTTL)
	authController := controllers.NewAuthController(authService)

	groupRepository := repositories.NewGroupRepository(db)
	groupService := services.NewGroupService(groupRepository, authRepository)
	groupController := controllers.NewGroupController(groupService)

	cartRepository := repositories.NewCartRepository(db)
	cartService := services.NewCartService(cartRepository, authRepository)
	cartController := controllers.NewCartController(cartService)

	suggestionService := services.NewSuggestionService(completer)
	suggestionController := controllers.NewSuggestionController(suggestionService)

	registry := prometheus.NewRegistry()
	metrics := middlewares.NewMetrics(registry)

	r := gin.New()
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.Recovery())
	r.Use(metrics.Handler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Grocery backend is running!"})
	}
	r.GET("/", health)
	r.GET("/health", health)
	r.GET("/ping", health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	apiRouter := r.Group(cfg.APIPrefix)
	apiRouterWithAuth := r.Group(cfg.APIPrefix, middlewares.AuthMiddleware(authService))

	apiRouter.POST("/signup", authController.Signup)
	apiRouter.POST("/login", authController.Login)
	apiRouterWithAuth.POST("/logout", authController.Logout)

	apiRouterWithAuth.POST("/create-group", groupController.Create)
	apiRouterWithAuth.POST("/join-group", groupController.Join)
	apiRouterWithAuth.GET("/group-info", groupController.Info)

	apiRouterWithAuth.GET("/cart", cartController.FindAll)
	apiRouterWithAuth.POST("/cart", cartController.Add)
	apiRouterWithAuth.DELETE("/cart", cartController.Clear)
	apiRouterWithAuth.DELETE("/cart/:itemName", cartController.Delete)

	apiRouter.POST("/ai-suggest", suggestionController.Suggest)
	apiRouter.POST("/huddle", suggestionController.Suggest)

	return r
}

func newCompleter(ctx context.Context, cfg infra.AIConfig) ai.Completer {
	client, err := ai.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			slog.Warn("GEMINI_API_KEY is not set; AI suggestions are disabled")
		} else {
			slog.Error("Failed to create AI client; AI suggestions are disabled", "error", err)
		}
		return ai.Unconfigured{}
	}
	slog.Info("AI client ready", "client", client.Name())
	return client
}

func initDB(cfg *infra.Config) (*gorm.DB, error) {
	db, err := infra.SetupDB(cfg.DB, cfg.Env)
	if err != nil {
		return nil, err
	}
	if err := infra.Migrate(db); err != nil {
		return nil, err
	}

	removed, err := repositories.NewTokenRepository(db).CleanExpiredTokens(context.Background(), cfg.BlacklistRetention)
	if err != nil {
		slog.Warn("Failed to clean expired tokens", "error", err)
	} else if removed > 0 {
		slog.Info("Cleaned expired tokens", "count", removed)
	}
	return db, nil
}

func main() {
	infra.Initialize()
	cfg, err := infra.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	infra.SetupLogger(cfg.LogLevel)

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := initDB(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	r := setupRouter(db, cfg, newCompleter(context.Background(), cfg.AI))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port, "env", cfg.Env, "prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	slog.Info("Server exited")
}
