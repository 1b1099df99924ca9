package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Rendyseptch/Login-app/config"
	"github.com/Rendyseptch/Login-app/db"
	"github.com/Rendyseptch/Login-app/internal/auth/handler"
	repo "github.com/Rendyseptch/Login-app/internal/auth/repository/postgres"
	"github.com/Rendyseptch/Login-app/internal/auth/service"
	"github.com/Rendyseptch/Login-app/internal/middleware"
	"github.com/Rendyseptch/Login-app/internal/ratelimit"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("service starting")

	ctx := context.Background()

	// A credential store we cannot reach or migrate is fatal; better to
	// crash at boot than serve with a broken dependency.
	if err := db.Migrate(ctx, cfg.DatabaseURL()); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryHours)
	userService := service.NewUserService(userRepo, tokenService)
	authHandler := handler.NewAuthHandler(userService, tokenService, cfg)
	limiterStore := ratelimit.NewMemoryStore()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendOrigin,
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logging())

	handler.RegisterRoutes(app, authHandler, limiterStore, cfg)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stopCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-stopCtx.Done()
	log.Info().Msg("shutdown signal received")

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	dbPool.Close()
	log.Info().Msg("graceful shutdown complete")
}
