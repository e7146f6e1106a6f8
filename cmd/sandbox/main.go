package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"ticket-engine/internal/config"
	"ticket-engine/internal/handler"
	"ticket-engine/internal/logger"
	"ticket-engine/internal/sandbox"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	zlog "github.com/rs/zerolog/log"

	_ "ticket-engine/docs"
)

// @title Ticket Engine Sandbox API
// @version 1.0
// @description In-memory betting backend for exercising the ticket engine
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(true)
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log := logger.WithLevel(logger.New(cfg.Log.Pretty), cfg.Log.Level)
	zlog.Logger = log
	gin.SetMode(gin.ReleaseMode)

	// Odds and stakes go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Sandbox state
	store := sandbox.NewStore(sandbox.OptionsFromConfig(cfg.Sandbox))
	hub := sandbox.NewHub(log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// http handler
	h := handler.NewHandler(store, hub, cfg.Sandbox.RequireAuth, log,
		handler.WithRateLimit(cfg.Sandbox.RateLimit, cfg.Sandbox.RateBurst))
	router := h.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      c.Handler(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().
		Str("port", cfg.Server.Port).
		Str("tier", cfg.Sandbox.Tier).
		Bool("require_auth", cfg.Sandbox.RequireAuth).
		Msg("Sandbox server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
