package models

// Dimension is one observation row from the configured dimensions table.
// Columns are selected under logical aliases, so the struct is stable no
// matter which physical columns the deployment maps them to.
type Dimension struct {
	Name      *string  `bun:"name" json:"name"`
	Zone      *string  `bun:"zone" json:"zone"`
	District  *string  `bun:"district" json:"district"`
	Latitude  *float64 `bun:"latitude" json:"latitude"`
	Longitude *float64 `bun:"longitude" json:"longitude"`
	Value     *float64 `bun:"value" json:"value"`
	Color     string   `bun:"-" json:"color"`
}

// ZoneSummary aggregates dimension rows by zone.
type ZoneSummary struct {
	Zone          string      `json:"zone"`
	Color         string      `json:"color"`
	Count         int         `json:"count"`
	DistrictCount int         `json:"district_count"`
	Sample        []Dimension `json:"sample"`
}

// DistrictSummary aggregates dimension rows by district name.
type DistrictSummary struct {
	District string `json:"district"`
	Color    string `json:"color"`
	Count    int    `json:"count"`
}

// HeatPoint is a weighted coordinate: one grid cell of one device,
// weighted by how many readings fell into it.
type HeatPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Count     int     `json:"count"`
	DeviceID  *int64  `json:"device_id"`
}
