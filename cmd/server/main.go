package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinemood-service/internal/config"
	"cinemood-service/internal/handler"
	"cinemood-service/internal/middleware"
	"cinemood-service/internal/mood"
	"cinemood-service/internal/repository"
	"cinemood-service/internal/service"
	"cinemood-service/pkg/httpclient"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	// Load configuration
	cfg := config.Load()
	log.Info().
		Str("port", cfg.Port).
		Str("mode", cfg.GinMode).
		Msg("🚀 Starting cinemood-service")

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize Redis cache
	cache, err := repository.NewCache(cfg.RedisURL, 1*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer cache.Close()

	// Initialize metrics
	metrics, err := repository.NewMetrics(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}
	defer metrics.Close()
	metrics.RecordServerStart(context.Background())
	log.Info().Msg("📊 Metrics enabled")

	// Initialize the catalog client and the mood interpreter
	tmdbService := service.NewTMDBService(httpclient.NewClient(), cfg.TMDBAPIKeys, cfg.TMDBBaseURL, cfg.TMDBImageBase)
	if tmdbService.IsConfigured() {
		log.Info().Int("keys", tmdbService.KeyCount()).Msg("🎬 TMDB catalog enabled")
	} else {
		log.Warn().Msg("⚠️  TMDB_API_KEY not set, catalog calls will degrade to empty lists")
	}
	interpreter := mood.NewInterpreter(tmdbService)

	// Initialize handlers with configured cache TTLs
	suggestHandler := handler.NewSuggestHandler(interpreter, cache, metrics, cfg.CacheTTLSuggest)
	searchHandler := handler.NewSearchHandler(interpreter, cache, cfg.CacheTTLSearch)
	trendingHandler := handler.NewTrendingHandler(interpreter, cache, cfg.CacheTTLTrending)
	moodsHandler := handler.NewMoodsHandler()
	adminHandler := handler.NewAdminHandler(tmdbService, metrics)

	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.CORS())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// Public API routes
	api := r.Group("/api/v1")
	{
		api.GET("/status", adminHandler.GetStatus)
		api.GET("/suggest", suggestHandler.GetSuggestion)
		api.GET("/search", searchHandler.Search)
		api.GET("/trending", trendingHandler.GetTrending)
		api.GET("/moods", moodsHandler.GetMoods)
	}

	// Admin routes, authenticated when ADMIN_API_KEY is configured
	admin := r.Group("/api/v1")
	admin.Use(middleware.AdminAuth(cfg.AdminAPIKey))
	{
		admin.GET("/analytics", adminHandler.GetAnalytics)
		admin.GET("/analytics/endpoint", adminHandler.GetEndpointStats)
		admin.DELETE("/analytics", adminHandler.ResetAnalytics)

		admin.DELETE("/suggest", suggestHandler.DeleteSuggestCache)
		admin.DELETE("/search", searchHandler.DeleteSearchCache)
		admin.DELETE("/trending", trendingHandler.DeleteTrendingCache)
	}

	if cfg.AdminAPIKey != "" {
		log.Info().Msg("🔐 Admin API authentication enabled")
	} else {
		log.Warn().Msg("⚠️  ADMIN_API_KEY not set, admin endpoints are open")
	}

	// Create HTTP server with graceful shutdown support
	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("🌐 Server listening")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("🛑 Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("👋 Server exited")
}
