package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/kofiasare/parceltrack-backend/api/routes"
	"github.com/kofiasare/parceltrack-backend/internal/adminauth"
	"github.com/kofiasare/parceltrack-backend/internal/contacts"
	"github.com/kofiasare/parceltrack-backend/internal/routecat"
	"github.com/kofiasare/parceltrack-backend/internal/submissions"
	"github.com/kofiasare/parceltrack-backend/internal/tracking"
	"github.com/kofiasare/parceltrack-backend/pkg/config"
	"github.com/kofiasare/parceltrack-backend/pkg/db"
	"github.com/kofiasare/parceltrack-backend/pkg/logger"
	"github.com/kofiasare/parceltrack-backend/pkg/metrics"
	"github.com/kofiasare/parceltrack-backend/pkg/migrate"
	"github.com/kofiasare/parceltrack-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	catalog, err := routecat.Load(context.Background(), routecat.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to load route catalog", err)
		os.Exit(1)
	}
	if catalog.Len() == 0 {
		logg.Warn(context.Background(), "route catalog is empty, tracking will fall back to stored locations")
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "redis not configured, login rate limiting disabled")
	}

	authService, err := adminauth.NewService(cfg.Admin, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	trackingService, err := tracking.NewService(tracking.NewRepository(dbClient.DB()), catalog, cfg.Tracking)
	if err != nil {
		logg.Error(context.Background(), "failed to create tracking service", err)
		os.Exit(1)
	}

	submissionService, err := submissions.NewService(submissions.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create submission service", err)
		os.Exit(1)
	}

	contactService, err := contacts.NewService(contacts.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg, dbClient, redisClient, httpMetrics,
			catalog, authService, trackingService, submissionService, contactService,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithFields(ctx, map[string]any{"signal": sig.String()}), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var closeErr error
		closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
		if redisClient != nil {
			closeErr = multierr.Append(closeErr, redisClient.Close())
		}
		closeErr = multierr.Append(closeErr, dbClient.Close())
		if closeErr != nil {
			logg.Error(ctx, "errors during shutdown", closeErr)
			os.Exit(1)
		}
	}

	logg.Info(ctx, "api server stopped")
}
