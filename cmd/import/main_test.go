package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randytsao24/decomap/internal/catalog"
	"github.com/randytsao24/decomap/internal/config"
)

func TestReadDatasetDefaultsToBundledCatalog(t *testing.T) {
	raw, ext, err := readDataset("")
	require.NoError(t, err)
	assert.Equal(t, ".json", ext)

	buildings, err := catalog.Parse(raw, ext)
	require.NoError(t, err)
	assert.NotEmpty(t, buildings)
}

func TestReadDatasetMissingFile(t *testing.T) {
	_, _, err := readDataset(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRunRejectsInvalidDatasetBeforeConnecting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buildings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"buildings":[{"id":"x","name":"X","address":"Y"}]}`), 0o644))

	// unreachable DSN: the parse error must surface before any connection attempt
	cfg := &config.Config{PostgresDSN: "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"}

	n, err := run(context.Background(), cfg, path)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Contains(t, err.Error(), "catalog entry 0")
}
