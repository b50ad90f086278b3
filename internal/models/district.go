package models

// LatLng is a single polygon vertex.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistrictPolygon is a district's geometry: the outer ring of each polygon
// in its MultiPolygon, ready for the map renderer. Rings are implicitly
// closed; the renderer joins the last vertex back to the first.
type DistrictPolygon struct {
	ID       int64      `json:"id"`
	Code     *string    `json:"code"`
	Name     *string    `json:"name"`
	Color    string     `json:"color"`
	Polygons [][]LatLng `json:"polygons"`
}
