package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediareview/database"
	"mediareview/internal/auth"
	"mediareview/internal/config"
	"mediareview/internal/http-api/handler"
	"mediareview/internal/http-api/middleware"
	"mediareview/internal/http-api/repository"
	"mediareview/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// run owns every resource it opens, so all of them are closed before it returns.
func run(cfg *config.Config, logger *slog.Logger) error {
	hasher, err := auth.NewHasher(cfg.PasswordHashMode, cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("password hasher: %w", err)
	}

	// 2. Connect to the database
	db, err := database.Connect(cfg, logger)
	if err != nil {
		return fmt.Errorf("database unavailable: %w", err)
	}
	defer database.Close(db)

	// 3. Wire repositories and services
	userRepo := repository.NewUserRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	rankingRepo := repository.NewRankingRepository(db)

	bounds := service.ScoreBounds{Min: cfg.ScoreMin, Max: cfg.ScoreMax}

	limiter, closeLimiter := newAuthLimiter(cfg, logger)
	defer closeLimiter()

	// 4. Setup Gin
	r := handler.NewRouter(handler.RouterConfig{
		Auth:           service.NewAuthService(userRepo, hasher, logger),
		Ratings:        service.NewRatingService(ratingRepo, bounds, logger),
		Favorites:      service.NewFavoriteService(favoriteRepo, logger),
		Discovery:      service.NewDiscoveryService(ratingRepo, rankingRepo),
		Logger:         logger,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		AuthLimiter:    limiter,
		Health:         database.Ping(db),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	logger.Info("HTTP server listening", "addr", srv.Addr, "env", cfg.GoEnv)
	return serve(srv, quit, logger)
}

// serve runs srv until it fails or quit fires, then shuts it down gracefully.
func serve(srv *http.Server, quit <-chan os.Signal, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("HTTP server failed: %w", err)
	case <-quit:
	}

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// newAuthLimiter uses Redis when REDIS_URL is set so every replica shares one
// budget, otherwise an in-process limiter.
func newAuthLimiter(cfg *config.Config, logger *slog.Logger) (middleware.Limiter, func()) {
	memory := middleware.NewMemoryLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	if cfg.RedisURL == "" {
		return memory, func() {}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, using in-memory rate limiter", "error", err)
		return memory, func() {}
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-memory rate limiter", "error", err)
		_ = client.Close()
		return memory, func() {}
	}

	logger.Info("rate limiter backed by redis", "addr", opts.Addr)
	return middleware.NewRedisLimiter(client, cfg.AuthRateLimit, time.Minute, "ratelimit:auth"), func() { _ = client.Close() }
}
