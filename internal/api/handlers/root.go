package handlers

import (
	"net/http"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "decomap",
		"description": "Art Deco buildings of Montevideo on a map",
		"version":     "1.0.0",
		"endpoints": map[string]string{
			"GET /api":                         "API information",
			"GET /health":                      "Health check",
			"GET /pins":                        "Pins visible under the current filter",
			"GET /pins/filter":                 "Current filter",
			"PUT /pins/filter":                 "Set filter: all or favorites",
			"POST /pins/refresh":               "Reload the catalog and rebuild pins",
			"GET /pins/near":                   "Visible pins near lat/lng",
			"GET /pins/{buildingId}":           "Pin for a building",
			"POST /pins/{buildingId}/favorite": "Toggle favorite",
			"GET /buildings/search":            "Search buildings by name or address",
			"GET /buildings/{buildingId}":      "Building details",
			"GET /map/region":                  "Initial map region",
			"GET /metrics":                     "Prometheus metrics",
		},
	})
}

func (h *RootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":   "Route not found",
		"message": "Check /api for available routes",
	})
}
