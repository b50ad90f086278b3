package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"mapas-bknd/internal/models"
)

type heatRow struct {
	Lat      float64 `bun:"lat"`
	Lng      float64 `bun:"lng"`
	DeviceID *int64  `bun:"device_id"`
}

// heatmapSQL assembles the raw point query behind the heat layer.
func (s *MapService) heatmapSQL(p models.FilterParams) (string, []any) {
	f := s.cfg.Dimensions

	clauses, args := s.buildFilters(p)
	clauses = append(clauses, f.Lat+" IS NOT NULL", f.Lng+" IS NOT NULL")

	sqlText := "SELECT " + f.Lat + " AS lat, " + f.Lng + " AS lng, " +
		f.Device + " AS device_id FROM " + f.Table +
		" WHERE " + strings.Join(clauses, " AND ")
	if s.cfg.HeatLimit > 0 {
		sqlText += " LIMIT " + strconv.Itoa(s.cfg.HeatLimit)
	}
	return sqlText, args
}

// FetchHeatmap returns weighted heat points for the filter set. Raw
// readings are binned per device on a HeatDelta grid, so a device parked
// in one spot becomes a single weighted point instead of saturating the
// layer with one point per reading.
func (s *MapService) FetchHeatmap(ctx context.Context, p models.FilterParams) ([]models.HeatPoint, error) {
	sqlText, args := s.heatmapSQL(p)

	var rows []heatRow
	if err := s.db.NewRaw(sqlText, args...).Scan(ctx, &rows); err != nil {
		return nil, err
	}

	return binHeatPoints(rows, s.cfg.HeatDelta), nil
}

// binHeatPoints groups readings by (device, grid cell) and reports the
// reading count as the point weight. The emitted coordinate is the cell
// center. First-seen order is preserved so output is stable for a given
// row order.
func binHeatPoints(rows []heatRow, delta float64) []models.HeatPoint {
	type cell struct {
		device    int64
		hasDevice bool
		latKey    int64
		lngKey    int64
	}

	points := map[cell]*models.HeatPoint{}
	var order []cell

	for _, r := range rows {
		c := cell{
			latKey: int64(math.Round(r.Lat / delta)),
			lngKey: int64(math.Round(r.Lng / delta)),
		}
		if r.DeviceID != nil {
			c.device = *r.DeviceID
			c.hasDevice = true
		}

		if p, ok := points[c]; ok {
			p.Count++
			continue
		}
		points[c] = &models.HeatPoint{
			Latitude:  float64(c.latKey) * delta,
			Longitude: float64(c.lngKey) * delta,
			Count:     1,
			DeviceID:  r.DeviceID,
		}
		order = append(order, c)
	}

	out := make([]models.HeatPoint, 0, len(order))
	for _, c := range order {
		out = append(out, *points[c])
	}
	return out
}
