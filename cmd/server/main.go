// Package main provides the entry point for the user service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/amrsalem/go-user-service/internal/config"
	"github.com/amrsalem/go-user-service/internal/database"
	"github.com/amrsalem/go-user-service/internal/handlers"
	"github.com/amrsalem/go-user-service/internal/logging"
	"github.com/amrsalem/go-user-service/internal/middleware"
	"github.com/amrsalem/go-user-service/internal/repository"
	"github.com/amrsalem/go-user-service/internal/service"
	"github.com/amrsalem/go-user-service/internal/token"
)

const serviceName = "go-user-service"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format, serviceName)
	logger.Info().
		Str("environment", cfg.Application.Environment).
		Int("port", cfg.Server.Port).
		Msg("starting up")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error().Err(err).Msg("document store connection failed")
		log.Fatalf("FATAL: Document store connection failed: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("document store disconnect failed")
		}
	}()

	db := client.Database(cfg.Database.Name)

	usersRepo := repository.NewUsers(db)
	if err := usersRepo.EnsureIndexes(ctx); err != nil {
		logger.Error().Err(err).Msg("index creation failed")
		log.Fatalf("FATAL: Index creation failed: %v", err)
	}
	logger.Info().Msg("document store ready")

	server := setupHTTPServer(cfg, client, usersRepo, logger)

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("HTTP server failed")
			log.Fatalf("FATAL: HTTP server failed: %v", err)
		}
	}()

	gracefulShutdown(server, cfg.Application.ShutdownTimeout, logger)
}

// setupHTTPServer wires the dependency graph (repository -> service ->
// handlers) explicitly and builds the middleware chain around the router.
func setupHTTPServer(cfg *config.Config, client *mongo.Client, usersRepo *repository.Users, logger zerolog.Logger) *http.Server {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	usersService := service.NewUsers(usersRepo)
	usersHandler := handlers.NewUserHandler(usersService)
	healthHandler := handlers.NewHealthHandler(serviceName, database.NewHealthChecker(client))
	tokens := token.NewService(cfg.JWT)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.LocaleDetector())
	engine.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	engine.Use(middleware.ErrorHandler(cfg.IsDevelopment(), logger))

	handlers.RegisterRoutes(engine, usersHandler, healthHandler, middleware.Identity(tokens))

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}
}

// gracefulShutdown waits for a termination signal and drains the server.
func gracefulShutdown(server *http.Server, shutdownTimeout int, logger zerolog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
		return
	}
	logger.Info().Msg("shutdown complete")
}
