//go:generate swag init -g main.go -d .,../internal/http/handlers,../internal/models,../internal/repo,../internal/search -o ../docs

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	router "github.com/rogerio-castellano/product-catalog/internal/http"
	"github.com/rogerio-castellano/product-catalog/internal/http/ban"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	mw "github.com/rogerio-castellano/product-catalog/internal/http/middleware"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/logger"
	"github.com/rogerio-castellano/product-catalog/internal/redissvc"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"go.uber.org/zap"
)

// @title Product Catalog API
// @version 1.0
// @description Read-only REST API for searching and browsing the product catalog.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	flush, err := logger.Init(cfg.Logger)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(cfg.Database.URL)
	if err != nil {
		zap.S().Fatalw("could not connect to database", "error", err)
	}
	defer database.Close()

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database, cfg.Database.QueryTimeout))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database, cfg.Database.QueryTimeout))
	handlers.SetReadinessCheck(database.PingContext)

	limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartVisitorCleanupLoop(ctx, time.Minute, 5*time.Minute)

	var guard *ban.Guard
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer rdb.Close()

		redisService := redissvc.NewRedisService(rdb)
		if err := redisService.Ping(ctx); err != nil {
			zap.S().Warnw("redis unreachable, bans disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			guard = ban.NewGuard(redisService, cfg.RateLimit.Strikes, cfg.RateLimit.StrikeWindow, cfg.RateLimit.BanDuration)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.NewRouter(mw.RateLimit(limiter, guard)),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zap.S().Errorw("graceful shutdown failed", "error", err)
		}
	}()

	zap.S().Infow("server running", "addr", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.S().Fatalw("server stopped", "error", err)
	}
}
