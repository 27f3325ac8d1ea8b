// Command import loads a building dataset into the postgres catalog.
//
//	go run ./cmd/import -file data/buildings.json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/randytsao24/decomap/data"
	"github.com/randytsao24/decomap/internal/catalog"
	"github.com/randytsao24/decomap/internal/config"
	"github.com/randytsao24/decomap/internal/logger"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))

	file := flag.String("file", "", "dataset file (.json, .yaml); defaults to the bundled catalog")
	flag.Parse()

	log := logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config_load_error", "err", err)
		os.Exit(1)
	}

	n, err := run(context.Background(), cfg, *file)
	if err != nil {
		log.Error("import_error", "err", err)
		os.Exit(1)
	}
	log.Info("import_success", "buildings", n)
}

// run replaces the postgres catalog with the dataset at file and returns
// the number of buildings written.
func run(ctx context.Context, cfg *config.Config, file string) (int, error) {
	dsn := cfg.PostgresDSN
	if dsn == "" {
		dsn = config.BuildPostgresDSNFromEnv()
	}

	raw, ext, err := readDataset(file)
	if err != nil {
		return 0, err
	}
	buildings, err := catalog.Parse(raw, ext)
	if err != nil {
		return 0, err
	}

	db, err := catalog.OpenPostgres(dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	repo := catalog.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return 0, err
	}
	if err := repo.Replace(ctx, buildings); err != nil {
		return 0, err
	}
	return len(buildings), nil
}

func readDataset(path string) ([]byte, string, error) {
	if path == "" {
		raw, err := data.FS.ReadFile(data.BuildingsFile)
		return raw, filepath.Ext(data.BuildingsFile), err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	return raw, filepath.Ext(path), nil
}
