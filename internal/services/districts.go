package services

import (
	"context"
	"encoding/json"
	"strconv"

	"mapas-bknd/internal/models"
)

type districtRow struct {
	ID      int64   `bun:"id"`
	Code    *string `bun:"code"`
	Name    *string `bun:"name"`
	GeoJSON *string `bun:"geojson"`
}

// FetchDistrictPolygons returns the district geometry layer. It is static
// reference data: no classification or date filter applies.
func (s *MapService) FetchDistrictPolygons(ctx context.Context) ([]models.DistrictPolygon, error) {
	g := s.cfg.Districts

	sqlText := "SELECT " + g.ID + " AS id, " + g.Code + " AS code, " +
		g.Name + " AS name, " + g.GeoJSON + " AS geojson FROM " + g.Table
	if g.Where != "" {
		sqlText += " WHERE " + g.Where
	}

	var rows []districtRow
	if err := s.db.NewRaw(sqlText).Scan(ctx, &rows); err != nil {
		return nil, err
	}

	out := make([]models.DistrictPolygon, 0, len(rows))
	for _, r := range rows {
		var raw string
		if r.GeoJSON != nil {
			raw = *r.GeoJSON
		}

		key := strconv.FormatInt(r.ID, 10)
		switch {
		case r.Name != nil && *r.Name != "":
			key = *r.Name
		case r.Code != nil && *r.Code != "":
			key = *r.Code
		}

		out = append(out, models.DistrictPolygon{
			ID:       r.ID,
			Code:     r.Code,
			Name:     r.Name,
			Color:    ColorForKey(key),
			Polygons: parseOuterRings(raw),
		})
	}
	return out, nil
}

// parseOuterRings extracts the outer ring of each polygon in a GeoJSON
// MultiPolygon. Broken geometry yields an empty ring list, never an error:
// one bad district must not take down the whole layer.
func parseOuterRings(geojson string) [][]models.LatLng {
	if geojson == "" {
		return nil
	}

	var geom struct {
		Coordinates [][][][]float64 `json:"coordinates"`
	}
	if err := json.Unmarshal([]byte(geojson), &geom); err != nil {
		return nil
	}

	var rings [][]models.LatLng
	for _, polygon := range geom.Coordinates {
		if len(polygon) == 0 {
			continue
		}
		// GeoJSON ring order is outer first, holes after; the map layer
		// only fills the outer ring.
		outer := polygon[0]
		ring := make([]models.LatLng, 0, len(outer))
		for _, pt := range outer {
			if len(pt) < 2 {
				continue
			}
			// GeoJSON positions are [lng, lat]
			ring = append(ring, models.LatLng{Lat: pt[1], Lng: pt[0]})
		}
		if len(ring) > 0 {
			rings = append(rings, ring)
		}
	}
	return rings
}
