package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloud-ru/compound-calc-go/internal/api"
	"github.com/cloud-ru/compound-calc-go/internal/cache"
	"github.com/cloud-ru/compound-calc-go/internal/config"
	applog "github.com/cloud-ru/compound-calc-go/internal/log"
	"github.com/cloud-ru/compound-calc-go/internal/service"
	"github.com/cloud-ru/compound-calc-go/internal/tracing"
	"golang.org/x/sync/errgroup"
)

// cacheSweepInterval период очистки просроченных записей in-memory кэша
const cacheSweepInterval = time.Minute

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", applog.FieldError, err)
		os.Exit(1)
	}

	logger := applog.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", applog.FieldComponent, applog.ComponentApp, applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully", applog.FieldComponent, applog.ComponentApp)
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, logger)
	if err != nil {
		return err
	}

	store, err := cache.New(ctx, cfg)
	if err != nil {
		return err
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}
	logger.Info("Cache initialized",
		applog.FieldComponent, applog.ComponentCache,
		applog.FieldBackend, cfg.CacheBackend)

	calc := service.New(tracing.Tracer, store, logger)
	srv := api.NewServer(cfg, calc, logger).HTTPServer()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting HTTP server",
			applog.FieldComponent, applog.ComponentApp,
			applog.FieldAddr, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if lru, ok := store.(*cache.LRUCache); ok {
		g.Go(func() error {
			ticker := time.NewTicker(cacheSweepInterval)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					if n := lru.CleanExpired(); n > 0 {
						logger.Debug("Expired cache entries removed",
							applog.FieldComponent, applog.ComponentCache, "count", n)
					}
				}
			}
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received", applog.FieldComponent, applog.ComponentApp)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serverErr := srv.Shutdown(shutdownCtx)
		tracingErr := shutdownTracing(shutdownCtx)
		return errors.Join(serverErr, tracingErr)
	})

	return g.Wait()
}
