package handlers

import (
	"context"
	"net/http"

	"mapas-bknd/internal/models"
	"mapas-bknd/internal/services"
	"mapas-bknd/internal/utils"

	"go.uber.org/zap"
)

// DimensionQuerier is the slice of the query service the map handlers use.
type DimensionQuerier interface {
	FetchDimensions(ctx context.Context, p models.FilterParams) ([]models.Dimension, error)
	FetchDistrictPolygons(ctx context.Context) ([]models.DistrictPolygon, error)
	FetchHeatmap(ctx context.Context, p models.FilterParams) ([]models.HeatPoint, error)
	FetchFilterOptions(ctx context.Context) (models.FilterSets, error)
}

// MapHandler handles HTTP requests for the map API
type MapHandler struct {
	service DimensionQuerier
	logr    *zap.Logger
}

// NewMapHandler creates a new map handler
func NewMapHandler(svc DimensionQuerier, logr *zap.Logger) *MapHandler {
	return &MapHandler{
		service: svc,
		logr:    logr,
	}
}

// parseFilterParams reads the optional filter set off the query string.
// Unset sentinels collapse to "" so services see one form of "absent".
func parseFilterParams(r *http.Request) models.FilterParams {
	q := r.URL.Query()

	get := func(key string) string {
		v := utils.FirstValue(q, key)
		if utils.IsUnsetFilter(v) {
			return ""
		}
		return v
	}

	return models.FilterParams{
		MomentID:        get("moment_id"),
		AltitudeLevelID: get("altitude_level_id"),
		SignalLevelID:   get("signal_level_id"),
		SpeedLevelID:    get("speed_level_id"),
		OperatorID:      get("operator_id"),
		NetworkID:       get("network_id"),
		DistrictID:      get("district_id"),
		DeviceID:        get("device_id"),
		DateFrom:        get("date_from"),
		DateTo:          get("date_to"),
		TimeFrom:        get("time_from"),
		TimeTo:          get("time_to"),
	}
}

// GetDimensions handles GET /dimensions
func (h *MapHandler) GetDimensions(w http.ResponseWriter, r *http.Request) {
	params := parseFilterParams(r)

	rows, err := h.service.FetchDimensions(r.Context(), params)
	if err != nil {
		h.logr.Error("failed to query dimensions", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorBody("failed to query dimensions"))
		return
	}

	writeJSON(w, http.StatusOK, envelope{Data: rows})
}

// GetZones handles GET /zones: the same fetch as /dimensions, aggregated
// per zone, so counts always match the raw endpoint under one predicate.
func (h *MapHandler) GetZones(w http.ResponseWriter, r *http.Request) {
	params := parseFilterParams(r)

	rows, err := h.service.FetchDimensions(r.Context(), params)
	if err != nil {
		h.logr.Error("failed to query zone summary", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorBody("failed to query zone summary"))
		return
	}

	writeJSON(w, http.StatusOK, envelope{Data: services.SummarizeByZone(rows)})
}

// GetDistricts handles GET /districts
func (h *MapHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	params := parseFilterParams(r)

	rows, err := h.service.FetchDimensions(r.Context(), params)
	if err != nil {
		h.logr.Error("failed to query district summary", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorBody("failed to query district summary"))
		return
	}

	writeJSON(w, http.StatusOK, envelope{Data: services.SummarizeByDistrict(rows)})
}

// GetDistrictPolygons handles GET /district-polygons
func (h *MapHandler) GetDistrictPolygons(w http.ResponseWriter, r *http.Request) {
	polygons, err := h.service.FetchDistrictPolygons(r.Context())
	if err != nil {
		h.logr.Error("failed to query district polygons", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorBody("failed to query district polygons"))
		return
	}

	writeJSON(w, http.StatusOK, envelope{Data: polygons})
}

// GetHeatmap handles GET /heatmap
func (h *MapHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	params := parseFilterParams(r)

	points, err := h.service.FetchHeatmap(r.Context(), params)
	if err != nil {
		h.logr.Error("failed to query heatmap", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorBody("failed to query heatmap"))
		return
	}

	writeJSON(w, http.StatusOK, envelope{Data: points})
}

// GetFilters handles GET /filters
func (h *MapHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	sets, err := h.service.FetchFilterOptions(r.Context())
	if err != nil {
		h.logr.Error("failed to query filter options", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorBody("failed to query filter options"))
		return
	}

	writeJSON(w, http.StatusOK, envelope{Data: sets})
}

// Health handles GET /health
func (h *MapHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
