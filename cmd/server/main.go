package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/pix-brcode-service/internal/brcode"
	"github.com/anyulbade/pix-brcode-service/internal/config"
	"github.com/anyulbade/pix-brcode-service/internal/database"
	"github.com/anyulbade/pix-brcode-service/internal/handler"
	"github.com/anyulbade/pix-brcode-service/internal/middleware"
	"github.com/anyulbade/pix-brcode-service/internal/qrcode"
	"github.com/anyulbade/pix-brcode-service/internal/repository"
	"github.com/anyulbade/pix-brcode-service/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	database.MigrationsDir = cfg.MigrationsDir

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool)
	router.GET("/health", healthHandler.Health)

	handler.SetupSwagger(router)
	setupAPIRoutes(router, pool, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, pool *pgxpool.Pool, cfg *config.Config) {
	chargeRepo := repository.NewChargeRepository(pool)
	favoriteRepo := repository.NewFavoriteKeyRepository(pool)
	statsRepo := repository.NewChargeStatsRepository(pool)

	gen := brcode.NewGenerator(cfg.MerchantDefaultName, cfg.MerchantDefaultCity)
	pixService := service.NewPixService(gen, chargeRepo, favoriteRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo)
	slipService := service.NewSlipService(qrcode.NewRenderer(cfg.QRDefaultSize))
	statsService := service.NewChargeStatsService(statsRepo)

	api := router.Group("/api/v1")
	handler.RegisterPixRoutes(api, handler.NewPixHandler(pixService, slipService))
	handler.RegisterFavoriteRoutes(api, handler.NewFavoriteHandler(favoriteService, pixService))
	handler.RegisterStatsRoutes(api, handler.NewChargeStatsHandler(statsService))
}
