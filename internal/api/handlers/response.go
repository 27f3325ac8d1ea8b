// Package handlers contains HTTP request handlers
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/randytsao24/decomap/internal/annotation"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

// writeError maps view model errors to status codes
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	title := "Internal error"

	switch {
	case errors.Is(err, annotation.ErrNotFound):
		status, title = http.StatusNotFound, "Building not found"
	case errors.Is(err, annotation.ErrPersist):
		status, title = http.StatusBadGateway, "Favorite could not be saved"
	case errors.Is(err, annotation.ErrLoad):
		status, title = http.StatusServiceUnavailable, "Building catalog unavailable"
	}

	writeJSON(w, status, map[string]any{
		"error":   title,
		"message": err.Error(),
	})
}

func parseIntParam(r *http.Request, name string, defaultVal, min, max int) int {
	str := r.URL.Query().Get(name)
	if str == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}

	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
