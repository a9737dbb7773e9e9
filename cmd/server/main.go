package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/fishcast/internal/advisor"
	"github.com/neexbeast/fishcast/internal/api"
	"github.com/neexbeast/fishcast/internal/cache"
	"github.com/neexbeast/fishcast/internal/place"
	"github.com/neexbeast/fishcast/internal/storage"
	"github.com/neexbeast/fishcast/internal/weather"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// A missing .env is normal in containers; the real environment wins.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("loading .env failed", "err", err)
	}

	if err := run(log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg := loadConfig(log)

	ctx := context.Background()

	client := weather.NewClient(cfg.weatherKey, weather.Options{
		Lang:  cfg.weatherLang,
		RPS:   cfg.providerRPS,
		Burst: cfg.providerBurst,
	})

	// PostgreSQL is optional and only supplies place aliases.
	var (
		aliases    place.AliasSource
		aliasStore api.AliasStore
		dbPing     api.Pinger
	)
	if cfg.databaseURL != "" {
		pool, err := storage.Connect(ctx, cfg.databaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		if err := storage.RunMigrations(ctx, pool, cfg.migrationsDir); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied", "dir", cfg.migrationsDir)

		repo := storage.NewRepository(pool)
		aliases, aliasStore = repo, repo
		dbPing = &pgxPoolPinger{pool: pool}
	} else {
		log.Info("DATABASE_URL not set, place aliases disabled")
	}

	// Redis is optional; without it every request goes to the provider.
	var (
		reportCache api.ReportCache
		redisPing   api.Pinger
	)
	if cfg.redisURL != "" {
		redisClient, err := cache.Connect(ctx, cfg.redisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		reportCache = cache.NewCache(redisClient)
		redisPing = &redisPingerAdapter{client: redisClient}
	} else {
		log.Info("REDIS_URL not set, report caching disabled")
	}

	// Wire dependencies.
	resolver := place.NewResolver(client, aliases, log)
	adv := advisor.New(client, resolver, place.Default(cfg.defaultCity), log,
		advisor.WithForecastDays(cfg.forecastDays),
	)
	handlers := api.NewHandlers(resolver, adv, reportCache, log)
	if aliasStore != nil {
		handlers.WithAliases(aliasStore)
	}
	router := api.NewRouter(handlers, dbPing, redisPing, log)

	srv := &http.Server{
		Addr:         ":" + cfg.port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.port, "default_city", cfg.defaultCity)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// pgxPoolPinger adapts pgxpool.Pool to api.Pinger.
type pgxPoolPinger struct {
	pool *pgxpool.Pool
}

func (p *pgxPoolPinger) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// redisPingerAdapter adapts redis.Client to api.Pinger.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
