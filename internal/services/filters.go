package services

import (
	"context"
	"fmt"

	"mapas-bknd/internal/models"
)

// optionSets are the reference tables behind the filter controls. They are
// fixed schema, not part of the configurable column mapping.
var optionSets = []struct {
	set       string
	table     string
	idField   string
	nameField string
}{
	{"moments", "dim_momento", "momento_id", "momento_dia"},
	{"altitude_levels", "dim_nivel_altitud", "nivel_altitud_id", "nivel_altitud"},
	{"signal_levels", "dim_nivel_senal", "nivel_senal_id", "nivel_senal"},
	{"speed_levels", "dim_nivel_velocidad", "nivel_velocidad_id", "nivel_velocidad"},
	{"operators", "dim_operador", "operador_id", "nombre_operador"},
	{"networks", "dim_red", "red_id", "tipo_red"},
}

// FetchFilterOptions loads the id/name option list of every classification
// dimension. A single missing reference table yields an empty list for
// that control only; if every set fails the database is gone and the
// error is surfaced.
func (s *MapService) FetchFilterOptions(ctx context.Context) (models.FilterSets, error) {
	sets := models.FilterSets{}
	failures := 0
	var lastErr error

	for _, o := range optionSets {
		opts, err := s.optionsFn(ctx, o.table, o.idField, o.nameField)
		if err != nil {
			failures++
			lastErr = err
			opts = []models.FilterOption{}
		}

		switch o.set {
		case "moments":
			sets.Moments = opts
		case "altitude_levels":
			sets.AltitudeLevels = opts
		case "signal_levels":
			sets.SignalLevels = opts
		case "speed_levels":
			sets.SpeedLevels = opts
		case "operators":
			sets.Operators = opts
		case "networks":
			sets.Networks = opts
		}
	}

	if failures == len(optionSets) {
		return models.FilterSets{}, fmt.Errorf("filter options unavailable: %w", lastErr)
	}
	return sets, nil
}

func (s *MapService) fetchOptions(ctx context.Context, table, idField, nameField string) ([]models.FilterOption, error) {
	opts := make([]models.FilterOption, 0)
	err := s.db.NewSelect().
		ColumnExpr(idField + " AS id").
		ColumnExpr(nameField + " AS name").
		TableExpr(table).
		OrderExpr("1").
		Scan(ctx, &opts)
	if err != nil {
		return nil, err
	}
	return opts, nil
}
