package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crisvega/userhub/internal/cache"
	"github.com/crisvega/userhub/internal/config"
	"github.com/crisvega/userhub/internal/db"
	httpx "github.com/crisvega/userhub/internal/http"
	"github.com/crisvega/userhub/internal/http/handlers"
	"github.com/crisvega/userhub/internal/observability"
	"github.com/crisvega/userhub/internal/repo/memory"
	"github.com/crisvega/userhub/internal/repo/observed"
	"github.com/crisvega/userhub/internal/repo/postgres"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	// tracing
	shutdownTracer, err := observability.InitTracer(context.Background(), "userhub", cfg.OtelEndpoint)

	if err != nil {
		log.Warn("tracing disabled", "err", err)
		shutdownTracer = func(context.Context) error { return nil }
	}

	// metrics
	registry := prometheus.NewRegistry()
	prom := observability.NewProm(registry)

	// storage: postgres when reachable, process memory otherwise so the
	// form demo runs without any infrastructure
	var store handlers.UsersStore
	ping := func() error { return nil }

	pool, err := db.NewPool(cfg.DBURL)

	if err != nil {
		log.Warn("postgres unavailable, using in-memory store", "err", err)
		store = memory.NewUsersRepo()
	} else {
		defer pool.Close()

		mctx, cancel := config.WithTimeout(30 * time.Second)
		err = db.RunMigrations(mctx, cfg.DBURL)
		cancel()

		if err != nil {
			log.Error("migrations failed", "err", err)
			os.Exit(1)
		}

		store = postgres.NewUsersRepo(pool)
		ping = func() error {
			ctx, cancel := config.WithTimeout(1 * time.Second)
			defer cancel()
			return pool.Ping(ctx)
		}
	}

	store = observed.NewUsers(store, prom)

	// list cache
	var listCache cache.Store

	if cfg.CacheBackend == "redis" {
		redisCache := cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		})

		defer redisCache.Close()

		pctx, cancel := config.WithTimeout(2 * time.Second)
		err = redisCache.Ping(pctx)
		cancel()

		if err != nil {
			log.Warn("redis unavailable, using in-memory cache", "err", err)
			listCache = cache.NewMemory(cfg.CacheTTL)
		} else {
			listCache = redisCache
		}
	} else {
		listCache = cache.NewMemory(cfg.CacheTTL)
	}

	router := httpx.NewRouter(httpx.RouterDeps{
		Log:            log,
		Store:          store,
		ListCache:      listCache,
		Registry:       registry,
		HTTPMetrics:    prom.GinHandleMiddleware(),
		Ping:           ping,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	ctx, cancel := config.WithTimeout(10 * time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}

	if err := shutdownTracer(ctx); err != nil {
		log.Error("tracer shutdown failed", "err", err)
	}

	log.Info("shutdown complete")
}
