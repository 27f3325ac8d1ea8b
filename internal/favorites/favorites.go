// Package favorites persists which buildings the user has marked as favorite
package favorites

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/randytsao24/decomap/internal/config"
)

// Store is the favorites backend used by the application
type Store interface {
	IsFavorite(ctx context.Context, buildingID string) bool
	ToggleFavorite(ctx context.Context, buildingID string) (bool, error)
	Close() error
}

// Notifier is implemented by stores that can report changes made by
// other processes sharing the same backend.
type Notifier interface {
	Changes(ctx context.Context) <-chan struct{}
}

// New opens the backend selected by cfg.FavoritesBackend
func New(cfg *config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.FavoritesBackend {
	case config.FavoritesMemory:
		return NewMemoryStore(), nil
	case config.FavoritesFile:
		return OpenFileStore(cfg.FavoritesPath)
	case config.FavoritesRedis:
		return NewRedisStoreFromConfig(cfg, logger), nil
	}
	return nil, fmt.Errorf("unknown favorites backend %q", cfg.FavoritesBackend)
}
