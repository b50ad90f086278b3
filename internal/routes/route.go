package routes

import (
	"net/http"

	"mapas-bknd/internal/config"
	"mapas-bknd/internal/handlers"
	"mapas-bknd/internal/logger"
	"mapas-bknd/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/uptrace/bun"
)

func NewRouter(db *bun.DB, cfg *config.Config, logr *logger.Logger) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// CORS middleware with config; the API is read-only
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mapSvc := services.NewMapService(db, cfg)
	mapHandler := handlers.NewMapHandler(mapSvc, logr.Logger)

	r.Get("/health", mapHandler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dimensions", mapHandler.GetDimensions)
		r.Get("/zones", mapHandler.GetZones)
		r.Get("/districts", mapHandler.GetDistricts)
		r.Get("/district-polygons", mapHandler.GetDistrictPolygons)
		r.Get("/heatmap", mapHandler.GetHeatmap)
		r.Get("/filters", mapHandler.GetFilters)
	})

	return r
}
