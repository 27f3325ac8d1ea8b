package handlers

import (
	"net/http"
	"strings"

	"github.com/randytsao24/decomap/internal/location"
	"github.com/randytsao24/decomap/internal/models"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type BuildingsHandler struct {
	buildings    BuildingFinder
	initial      models.Coordinate
	regionRadius float64
}

func NewBuildingsHandler(buildings BuildingFinder, initial models.Coordinate, regionRadius float64) *BuildingsHandler {
	return &BuildingsHandler{
		buildings:    buildings,
		initial:      initial,
		regionRadius: regionRadius,
	}
}

// Search finds buildings whose name or address contains q
func (h *BuildingsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Missing query",
			"message": "q query parameter is required",
		})
		return
	}

	limit := parseIntParam(r, "limit", defaultSearchLimit, 1, maxSearchLimit)
	results := h.buildings.Search(q, limit)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"query":   q,
		"results": results,
		"count":   len(results),
	})
}

// Get returns the detail view of a building, centered region included
func (h *BuildingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("buildingId")

	building, ok := h.buildings.Building(id)
	pin, pinOK := h.buildings.FindPin(id)
	if !ok || !pinOK {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":   "Building not found",
			"message": "Building " + id + " is not in the catalog",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"building":    building,
		"is_favorite": pin.IsFavorite,
		"region":      location.RegionAround(building.Location, h.regionRadius),
	})
}

// Region returns the map region shown before the user's location is known
func (h *BuildingsHandler) Region(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"region":  location.RegionAround(h.initial, h.regionRadius),
	})
}
