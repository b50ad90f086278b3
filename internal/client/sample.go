package client

import (
	"mapas-bknd/internal/models"
	"mapas-bknd/internal/services"
)

// Built-in sample dataset used when every fetch fails. A handful of Lima
// observation points, enough for the view to stay interactive offline.

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }
func i64p(i int64) *int64     { return &i }

func sampleDimensions() []models.Dimension {
	rows := []models.Dimension{
		{Name: strp("Medición 1"), Zone: strp("Centro"), District: strp("Miraflores"), Latitude: f64p(-12.1211), Longitude: f64p(-77.0297), Value: f64p(42)},
		{Name: strp("Medición 2"), Zone: strp("Centro"), District: strp("Miraflores"), Latitude: f64p(-12.1185), Longitude: f64p(-77.0336), Value: f64p(38)},
		{Name: strp("Medición 3"), Zone: strp("Centro"), District: strp("San Isidro"), Latitude: f64p(-12.0972), Longitude: f64p(-77.0364), Value: f64p(51)},
		{Name: strp("Medición 4"), Zone: strp("Sur"), District: strp("Barranco"), Latitude: f64p(-12.1405), Longitude: f64p(-77.0219), Value: f64p(27)},
		{Name: strp("Medición 5"), Zone: strp("Sur"), District: strp("Santiago de Surco"), Latitude: f64p(-12.1358), Longitude: f64p(-76.9933), Value: f64p(33)},
		{Name: strp("Medición 6"), Zone: strp("Norte"), District: strp("San Martín de Porres"), Latitude: f64p(-12.0236), Longitude: f64p(-77.0561), Value: f64p(19)},
	}
	for i := range rows {
		rows[i].Color = services.ColorForKey(*rows[i].District)
	}
	return rows
}

func samplePolygons() []models.DistrictPolygon {
	square := func(lat, lng, d float64) []models.LatLng {
		return []models.LatLng{
			{Lat: lat - d, Lng: lng - d},
			{Lat: lat - d, Lng: lng + d},
			{Lat: lat + d, Lng: lng + d},
			{Lat: lat + d, Lng: lng - d},
		}
	}
	return []models.DistrictPolygon{
		{ID: 1, Code: strp("150122"), Name: strp("Miraflores"), Color: services.ColorForKey("Miraflores"), Polygons: [][]models.LatLng{square(-12.12, -77.03, 0.012)}},
		{ID: 2, Code: strp("150131"), Name: strp("San Isidro"), Color: services.ColorForKey("San Isidro"), Polygons: [][]models.LatLng{square(-12.097, -77.036, 0.010)}},
		{ID: 3, Code: strp("150104"), Name: strp("Barranco"), Color: services.ColorForKey("Barranco"), Polygons: [][]models.LatLng{square(-12.14, -77.02, 0.008)}},
	}
}

func sampleHeatmap() []models.HeatPoint {
	return []models.HeatPoint{
		{Latitude: -12.1208, Longitude: -77.0296, Count: 4, DeviceID: i64p(101)},
		{Latitude: -12.0976, Longitude: -77.0360, Count: 2, DeviceID: i64p(102)},
		{Latitude: -12.1400, Longitude: -77.0216, Count: 1, DeviceID: i64p(103)},
	}
}

func sampleFilterSets() models.FilterSets {
	return models.FilterSets{
		Moments: []models.FilterOption{
			{ID: 1, Name: "Mañana"},
			{ID: 2, Name: "Tarde"},
			{ID: 3, Name: "Noche"},
		},
		AltitudeLevels: []models.FilterOption{
			{ID: 1, Name: "Bajo"},
			{ID: 2, Name: "Medio"},
			{ID: 3, Name: "Alto"},
		},
		SignalLevels: []models.FilterOption{
			{ID: 1, Name: "Débil"},
			{ID: 2, Name: "Regular"},
			{ID: 3, Name: "Fuerte"},
		},
		SpeedLevels: []models.FilterOption{
			{ID: 1, Name: "Quieto"},
			{ID: 2, Name: "Caminando"},
			{ID: 3, Name: "Vehículo"},
		},
		Operators: []models.FilterOption{
			{ID: 1, Name: "Claro"},
			{ID: 2, Name: "Movistar"},
			{ID: 3, Name: "Entel"},
		},
		Networks: []models.FilterOption{
			{ID: 1, Name: "4G"},
			{ID: 2, Name: "5G"},
		},
	}
}

// applySampleData fills a snapshot from the built-in dataset, honoring the
// active district filter so offline behavior mirrors the live one. Zone
// and district summaries are derived from the same rows the dimensions
// layer shows, keeping counts consistent.
func applySampleData(snap *Snapshot, p models.FilterParams) {
	rows := sampleDimensions()
	if p.DistrictID != "" {
		// The sample dataset keys districts by name; ids don't apply.
		filtered := rows[:0]
		for _, r := range rows {
			if r.District != nil && *r.District == p.DistrictID {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	snap.Dimensions = rows
	snap.Zones = services.SummarizeByZone(rows)
	snap.Districts = services.SummarizeByDistrict(rows)
	snap.Polygons = samplePolygons()
	snap.Heatmap = sampleHeatmap()
}
