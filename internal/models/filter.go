package models

// FilterOption is one selectable value of a classification dimension.
type FilterOption struct {
	ID   int64  `bun:"id" json:"id"`
	Name string `bun:"name" json:"name"`
}

// FilterSets holds the option lists for every classification dimension.
type FilterSets struct {
	Moments        []FilterOption `json:"moments"`
	AltitudeLevels []FilterOption `json:"altitude_levels"`
	SignalLevels   []FilterOption `json:"signal_levels"`
	SpeedLevels    []FilterOption `json:"speed_levels"`
	Operators      []FilterOption `json:"operators"`
	Networks       []FilterOption `json:"networks"`
}

// FilterParams is the filter set a request may carry. Every field is
// optional; empty or "all" means no constraint on that dimension. Values
// are opaque identifiers or date/time strings and always travel to the
// database as bind parameters.
type FilterParams struct {
	MomentID        string
	AltitudeLevelID string
	SignalLevelID   string
	SpeedLevelID    string
	OperatorID      string
	NetworkID       string
	DistrictID      string
	DeviceID        string
	DateFrom        string
	DateTo          string
	TimeFrom        string
	TimeTo          string
}
