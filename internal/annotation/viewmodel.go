// Package annotation turns the building catalog and favorites state into map pins
package annotation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/randytsao24/decomap/internal/location"
	"github.com/randytsao24/decomap/internal/metrics"
	"github.com/randytsao24/decomap/internal/models"
)

var (
	// ErrLoad wraps repository failures and malformed catalogs
	ErrLoad = errors.New("loading buildings")
	// ErrNotFound is returned for building ids that are not loaded
	ErrNotFound = errors.New("building not found")
	// ErrPersist wraps favorites store write failures
	ErrPersist = errors.New("persisting favorite")
)

// BuildingRepository is the source of truth for the catalog
type BuildingRepository interface {
	LoadBuildings(ctx context.Context) ([]models.Building, error)
}

// FavoritesStore persists favorite status per building.
// IsFavorite must not fail; unknown ids are not favorites.
type FavoritesStore interface {
	IsFavorite(ctx context.Context, buildingID string) bool
	ToggleFavorite(ctx context.Context, buildingID string) (bool, error)
}

// ViewModel owns the loaded catalog, the derived pins and the filter state.
// All methods are serialized by one mutex.
type ViewModel struct {
	mu     sync.Mutex
	repo   BuildingRepository
	store  FavoritesStore
	logger *slog.Logger

	buildings []models.Building
	pins      []models.Pin
	index     map[string]int
	filter    models.FilterState
}

// Option configures a ViewModel
type Option func(*ViewModel)

// WithLogger sets the logger used for refresh and toggle events
func WithLogger(l *slog.Logger) Option {
	return func(vm *ViewModel) { vm.logger = l }
}

// New loads the catalog and builds the initial pin set with filter ShowAll
func New(ctx context.Context, repo BuildingRepository, store FavoritesStore, opts ...Option) (*ViewModel, error) {
	vm := &ViewModel{
		repo:   repo,
		store:  store,
		logger: slog.Default(),
		index:  make(map[string]int),
		filter: models.ShowAll,
	}
	for _, opt := range opts {
		opt(vm)
	}

	if err := vm.Refresh(ctx); err != nil {
		return nil, err
	}
	return vm, nil
}

// Refresh reloads the catalog and rebuilds every pin from the favorites store.
// On failure the previous pins are kept.
func (vm *ViewModel) Refresh(ctx context.Context) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	buildings, err := vm.repo.LoadBuildings(ctx)
	if err != nil {
		metrics.RefreshTotal.WithLabelValues("error").Inc()
		vm.logger.Warn("pin refresh failed, keeping previous pins", "error", err, "pins", len(vm.pins))
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	pins := make([]models.Pin, 0, len(buildings))
	index := make(map[string]int, len(buildings))

	for i, b := range buildings {
		if _, dup := index[b.ID]; dup {
			metrics.RefreshTotal.WithLabelValues("error").Inc()
			vm.logger.Warn("duplicate building id in catalog", "building_id", b.ID)
			return fmt.Errorf("%w: duplicate building id %q", ErrLoad, b.ID)
		}
		index[b.ID] = i
		pins = append(pins, newPin(b, vm.store.IsFavorite(ctx, b.ID)))
	}

	vm.buildings = slices.Clone(buildings)
	vm.pins = pins
	vm.index = index

	metrics.RefreshTotal.WithLabelValues("ok").Inc()
	metrics.PinsLoaded.Set(float64(len(pins)))
	vm.logger.Debug("pins rebuilt", "pins", len(pins))
	return nil
}

func newPin(b models.Building, favorite bool) models.Pin {
	return models.Pin{
		BuildingID: b.ID,
		Title:      b.Name,
		Subtitle:   b.Address,
		Coordinate: b.Location,
		IsFavorite: favorite,
	}
}

// SetFilter changes which pins VisiblePins returns
func (vm *ViewModel) SetFilter(state models.FilterState) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.filter = state
}

// Filter returns the current filter state
func (vm *ViewModel) Filter() models.FilterState {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.filter
}

// VisiblePins returns the pins passing the current filter, in load order
func (vm *ViewModel) VisiblePins() []models.Pin {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.visible()
}

func (vm *ViewModel) visible() []models.Pin {
	if vm.filter == models.ShowAll {
		return slices.Clone(vm.pins)
	}

	result := make([]models.Pin, 0)
	for _, pin := range vm.pins {
		if pin.IsFavorite {
			result = append(result, pin)
		}
	}
	return result
}

// ToggleFavorite flips the favorite status of a loaded building.
// The pin is only updated once the store has persisted the change.
func (vm *ViewModel) ToggleFavorite(ctx context.Context, buildingID string) (models.Pin, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	i, ok := vm.index[buildingID]
	if !ok {
		metrics.FavoriteTogglesTotal.WithLabelValues("not_found").Inc()
		return models.Pin{}, fmt.Errorf("%w: %q", ErrNotFound, buildingID)
	}

	favorite, err := vm.store.ToggleFavorite(ctx, buildingID)
	if err != nil {
		metrics.FavoriteTogglesTotal.WithLabelValues("error").Inc()
		vm.logger.Error("favorite toggle not persisted", "building_id", buildingID, "error", err)
		return vm.pins[i], fmt.Errorf("%w: %w", ErrPersist, err)
	}

	vm.pins[i].IsFavorite = favorite
	metrics.FavoriteTogglesTotal.WithLabelValues("ok").Inc()
	vm.logger.Info("favorite toggled", "building_id", buildingID, "favorite", favorite)
	return vm.pins[i], nil
}

// FindPin returns the pin for a building id, if loaded
func (vm *ViewModel) FindPin(buildingID string) (models.Pin, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	i, ok := vm.index[buildingID]
	if !ok {
		return models.Pin{}, false
	}
	return vm.pins[i], true
}

// Building returns the loaded building for the detail view
func (vm *ViewModel) Building(buildingID string) (models.Building, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	i, ok := vm.index[buildingID]
	if !ok {
		return models.Building{}, false
	}
	return vm.buildings[i], true
}

// Nearby returns visible pins within radius meters of center, nearest first.
// A limit <= 0 means no limit.
func (vm *ViewModel) Nearby(center models.Coordinate, radiusMeters float64, limit int) []models.PinWithDistance {
	vm.mu.Lock()
	pins := vm.visible()
	vm.mu.Unlock()

	results := location.Within(pins, center, radiusMeters)
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results
}

// Len returns the number of loaded pins
func (vm *ViewModel) Len() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return len(vm.pins)
}
