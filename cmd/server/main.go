// Package main is the entry point for the decomap server.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/randytsao24/decomap/data"
	"github.com/randytsao24/decomap/internal/annotation"
	"github.com/randytsao24/decomap/internal/api"
	"github.com/randytsao24/decomap/internal/catalog"
	"github.com/randytsao24/decomap/internal/config"
	"github.com/randytsao24/decomap/internal/favorites"
	"github.com/randytsao24/decomap/internal/logger"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))

	log := logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config_load_error", "err", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("config_invalid", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server_error", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	repo, db, err := openCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	log.Info("catalog_ready", "source", cfg.CatalogSource)

	store, err := favorites.New(cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info("favorites_ready", "backend", cfg.FavoritesBackend)

	vm, err := annotation.New(ctx, repo, store, annotation.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info("pins_loaded", "count", vm.Len())

	if n, ok := store.(favorites.Notifier); ok {
		go annotation.Watch(ctx, vm, n.Changes(ctx), log)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(cfg, vm, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_start", "port", cfg.Port, "env", cfg.Env, "url", "http://localhost:"+cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server_shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// openCatalog returns the building repository and, for postgres, the pool to close
func openCatalog(ctx context.Context, cfg *config.Config) (annotation.BuildingRepository, *sql.DB, error) {
	if cfg.CatalogSource == config.CatalogPostgres {
		db, err := catalog.OpenPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		repo := catalog.NewPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, db, nil
	}

	if cfg.CatalogPath == "" {
		return catalog.NewFileRepository(data.FS, data.BuildingsFile), nil, nil
	}
	dir, file := filepath.Split(cfg.CatalogPath)
	if dir == "" {
		dir = "."
	}
	return catalog.NewFileRepository(os.DirFS(dir), file), nil, nil
}
