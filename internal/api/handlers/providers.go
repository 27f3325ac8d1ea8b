package handlers

import (
	"context"

	"github.com/randytsao24/decomap/internal/models"
)

// PinSource answers read-only pin queries for the map.
type PinSource interface {
	VisiblePins() []models.Pin
	FindPin(buildingID string) (models.Pin, bool)
	Nearby(center models.Coordinate, radiusMeters float64, limit int) []models.PinWithDistance
	Len() int
}

// FavoriteToggler is the only path through which pins are mutated.
type FavoriteToggler interface {
	ToggleFavorite(ctx context.Context, buildingID string) (models.Pin, error)
}

// FilterController reads and changes the favorites filter.
type FilterController interface {
	Filter() models.FilterState
	SetFilter(state models.FilterState)
}

// Refresher rebuilds the pin set from the catalog.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// BuildingFinder backs search and the detail view.
type BuildingFinder interface {
	Building(buildingID string) (models.Building, bool)
	FindPin(buildingID string) (models.Pin, bool)
	Search(query string, limit int) []models.Pin
}
