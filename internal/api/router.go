package api

import (
	"log/slog"
	"net/http"

	"github.com/randytsao24/decomap/internal/annotation"
	"github.com/randytsao24/decomap/internal/api/handlers"
	"github.com/randytsao24/decomap/internal/config"
	"github.com/randytsao24/decomap/internal/metrics"
)

// NewRouter creates and configures the HTTP router with all routes and middleware
func NewRouter(cfg *config.Config, vm *annotation.ViewModel, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	rootHandler := handlers.NewRootHandler()
	healthHandler := handlers.NewHealthHandler(vm)
	pinsHandler := handlers.NewPinsHandler(vm, vm, vm, vm)
	buildingsHandler := handlers.NewBuildingsHandler(vm, cfg.InitialLocation, cfg.RegionRadiusMeters)

	// Core routes
	mux.HandleFunc("GET /{$}", rootHandler.Index)
	mux.HandleFunc("GET /api", rootHandler.Index)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// Pin routes
	mux.HandleFunc("GET /pins", pinsHandler.List)
	mux.HandleFunc("GET /pins/filter", pinsHandler.GetFilter)
	mux.HandleFunc("PUT /pins/filter", pinsHandler.SetFilter)
	mux.HandleFunc("POST /pins/refresh", pinsHandler.Refresh)
	mux.HandleFunc("GET /pins/near", pinsHandler.Near)
	mux.HandleFunc("GET /pins/{buildingId}", pinsHandler.Get)
	mux.HandleFunc("POST /pins/{buildingId}/favorite", pinsHandler.ToggleFavorite)

	// Building routes
	mux.HandleFunc("GET /buildings/search", buildingsHandler.Search)
	mux.HandleFunc("GET /buildings/{buildingId}", buildingsHandler.Get)
	mux.HandleFunc("GET /map/region", buildingsHandler.Region)

	mux.HandleFunc("/", rootHandler.NotFound)

	// Apply middleware stack
	handler := Chain(mux,
		Recovery(logger),
		Logging(logger),
		CORS,
		Timeout(cfg.HTTPTimeout),
		Metrics,
	)

	return handler
}
