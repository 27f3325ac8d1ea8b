package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/randytsao24/decomap/internal/models"
)

const (
	defaultNearRadius = 1000 // meters
	minNearRadius     = 50
	maxNearRadius     = 10000
	defaultNearLimit  = 10
	maxNearLimit      = 50
)

var validate = validator.New()

type filterRequest struct {
	Filter string `json:"filter" validate:"required,oneof=all favorites"`
}

type PinsHandler struct {
	pins      PinSource
	toggler   FavoriteToggler
	filter    FilterController
	refresher Refresher
}

func NewPinsHandler(pins PinSource, toggler FavoriteToggler, filter FilterController, refresher Refresher) *PinsHandler {
	return &PinsHandler{
		pins:      pins,
		toggler:   toggler,
		filter:    filter,
		refresher: refresher,
	}
}

// List returns the pins visible under the current filter
func (h *PinsHandler) List(w http.ResponseWriter, r *http.Request) {
	pins := h.pins.VisiblePins()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"filter":  h.filter.Filter(),
		"pins":    pins,
		"count":   len(pins),
	})
}

func (h *PinsHandler) GetFilter(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"filter":  h.filter.Filter(),
	})
}

// SetFilter switches between all pins and favorites only
func (h *PinsHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid filter",
			"message": "filter must be \"all\" or \"favorites\"",
		})
		return
	}

	state, _ := models.ParseFilterState(req.Filter)
	h.filter.SetFilter(state)

	pins := h.pins.VisiblePins()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"filter":  state,
		"pins":    pins,
		"count":   len(pins),
	})
}

// Refresh reloads the catalog. A failed reload keeps the previous pins.
func (h *PinsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.refresher.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   h.pins.Len(),
	})
}

// Near returns visible pins around a point, nearest first
func (h *PinsHandler) Near(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil || math.IsNaN(lat) || math.IsNaN(lng) ||
		lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid coordinates",
			"message": "lat and lng query parameters are required",
		})
		return
	}

	radius := parseIntParam(r, "radius", defaultNearRadius, minNearRadius, maxNearRadius)
	limit := parseIntParam(r, "limit", defaultNearLimit, 1, maxNearLimit)
	center := models.Coordinate{Lat: lat, Lng: lng}

	pins := h.pins.Nearby(center, float64(radius), limit)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"location":      center,
		"radius_meters": radius,
		"pins":          pins,
		"count":         len(pins),
	})
}

func (h *PinsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("buildingId")

	pin, ok := h.pins.FindPin(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":   "Building not found",
			"message": "No pin for building " + id,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"pin":     pin,
	})
}

// ToggleFavorite flips a building's favorite flag
func (h *PinsHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	pin, err := h.toggler.ToggleFavorite(r.Context(), r.PathValue("buildingId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"pin":     pin,
	})
}
