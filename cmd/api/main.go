// Package main is the entrypoint for the scheduling API server.
//
// @title           Scheduling API
// @version         1.0
// @description     Multi-tenant scheduling backend: companies, plannings, activities and users.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/planwise/scheduling-api/internal/api"
	"github.com/planwise/scheduling-api/internal/core/auth"
	"github.com/planwise/scheduling-api/internal/infrastructure/config"
	mongodb "github.com/planwise/scheduling-api/internal/infrastructure/db/mongo"
	redisdb "github.com/planwise/scheduling-api/internal/infrastructure/db/redis"
	"github.com/planwise/scheduling-api/internal/infrastructure/queue"
	"github.com/planwise/scheduling-api/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Auth.JWTSecret == "" {
		if cfg.Env != "development" {
			return errors.New("JWT_SECRET is required outside development")
		}
		log.Warn().Msg("JWT_SECRET not set, using insecure development secret")
		cfg.Auth.JWTSecret = "dev-secret-do-not-use"
	}

	// --- Stores ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Auth core ---
	codec := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)

	// --- Audit trail ---
	dispatcherCtx, stopDispatcher := context.WithCancel(ctx)
	defer stopDispatcher()
	dispatcher := queue.NewAuditDispatcher(cfg.Audit.Workers, mongodb.NewAuditRepository(db), log)
	dispatcher.Start(dispatcherCtx)

	e := api.NewRouter(api.Dependencies{
		DB:           db,
		Redis:        rdb,
		TokenCodec:   codec,
		Hasher:       hasher,
		Audit:        dispatcher,
		RoleCacheTTL: time.Duration(cfg.Auth.RoleCacheTTL) * time.Second,
		Log:          log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	stopDispatcher()
	dispatcher.Wait()

	return nil
}
