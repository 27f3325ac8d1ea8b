package annotation

import (
	"context"
	"log/slog"
)

// Refresher rebuilds pins on demand
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Watch refreshes r on every signal from changes until ctx is done or
// changes is closed. Failed refreshes are logged and keep the stale pins.
func Watch(ctx context.Context, r Refresher, changes <-chan struct{}, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			if err := r.Refresh(ctx); err != nil {
				logger.Warn("refresh after favorites change failed", "error", err)
				continue
			}
			logger.Debug("pins refreshed after favorites change")
		}
	}
}
