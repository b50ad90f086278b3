package client

import (
	"strconv"

	"mapas-bknd/internal/models"
	"mapas-bknd/internal/utils"
)

// polygonFillOpacity is the fixed fill opacity of district rings.
const polygonFillOpacity = 0.35

// PolygonStyle is one ready-to-draw district ring.
type PolygonStyle struct {
	DistrictID   int64
	DistrictName string
	Ring         []models.LatLng
	FillColor    string
	FillOpacity  float64
	Visible      bool
}

// PolygonPlan flattens district geometry into drawable rings. Every ring
// is filled with its district color at fixed opacity; when a district
// filter is active only the matching district stays visible and the rest
// are suppressed. The filter matches the district id, code or name.
func PolygonPlan(polygons []models.DistrictPolygon, districtFilter string) []PolygonStyle {
	active := !utils.IsUnsetFilter(districtFilter)

	var plan []PolygonStyle
	for _, d := range polygons {
		name := ""
		if d.Name != nil {
			name = *d.Name
		}

		visible := true
		if active {
			visible = strconv.FormatInt(d.ID, 10) == districtFilter ||
				(d.Code != nil && *d.Code == districtFilter) ||
				name == districtFilter
		}

		for _, ring := range d.Polygons {
			plan = append(plan, PolygonStyle{
				DistrictID:   d.ID,
				DistrictName: name,
				Ring:         ring,
				FillColor:    d.Color,
				FillOpacity:  polygonFillOpacity,
				Visible:      visible,
			})
		}
	}
	return plan
}
