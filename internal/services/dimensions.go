package services

import (
	"context"
	"strconv"
	"strings"

	"mapas-bknd/internal/config"
	"mapas-bknd/internal/models"
	"mapas-bknd/internal/utils"

	"github.com/uptrace/bun"
)

// noDistrict labels rows whose district column is NULL or empty.
const noDistrict = "Sin distrito"

// MapService answers every read query of the map API. Column and table
// names come from the validated config mapping; filter values always
// travel as bind parameters.
type MapService struct {
	db  *bun.DB
	cfg *config.Config

	// optionsFn loads one filter-option table; defaults to fetchOptions.
	optionsFn func(ctx context.Context, table, idField, nameField string) ([]models.FilterOption, error)
}

func NewMapService(db *bun.DB, cfg *config.Config) *MapService {
	s := &MapService{db: db, cfg: cfg}
	s.optionsFn = s.fetchOptions
	return s
}

// buildFilters turns the request filter set into WHERE fragments plus bind
// args. Unset values contribute nothing; unknown ids are bound as-is and
// simply match no rows.
func (s *MapService) buildFilters(p models.FilterParams) ([]string, []any) {
	f := s.cfg.Dimensions

	var clauses []string
	var args []any

	add := func(column, value string) {
		if utils.IsUnsetFilter(value) {
			return
		}
		clauses = append(clauses, column+" = ?")
		args = append(args, value)
	}

	add(f.Moment, p.MomentID)
	add(f.AltitudeLevel, p.AltitudeLevelID)
	add(f.SignalLevel, p.SignalLevelID)
	add(f.SpeedLevel, p.SpeedLevelID)
	add(f.Operator, p.OperatorID)
	add(f.Network, p.NetworkID)
	add(f.DistrictID, p.DistrictID)
	add(f.Device, p.DeviceID)

	if p.DateFrom != "" {
		clauses = append(clauses, "DATE("+f.Timestamp+") >= ?")
		args = append(args, p.DateFrom)
	}
	if p.DateTo != "" {
		clauses = append(clauses, "DATE("+f.Timestamp+") <= ?")
		args = append(args, p.DateTo)
	}
	if p.TimeFrom != "" {
		clauses = append(clauses, "CAST("+f.Timestamp+" AS time) >= ?")
		args = append(args, p.TimeFrom)
	}
	if p.TimeTo != "" {
		clauses = append(clauses, "CAST("+f.Timestamp+" AS time) <= ?")
		args = append(args, p.TimeTo)
	}

	return clauses, args
}

// dimensionsSQL assembles the dimension query for a filter set: aliased
// configured columns, the optional static fragment, the filter clauses,
// and the NOT NULL guards that keep half-populated points out.
func (s *MapService) dimensionsSQL(p models.FilterParams) (string, []any) {
	f := s.cfg.Dimensions

	selectSQL := strings.Join([]string{
		f.Name + " AS name",
		f.Zone + " AS zone",
		f.District + " AS district",
		f.Lat + " AS latitude",
		f.Lng + " AS longitude",
		f.Value + " AS value",
	}, ", ")

	var where []string
	var args []any
	if f.Where != "" {
		where = append(where, "("+f.Where+")")
	}
	clauses, filterArgs := s.buildFilters(p)
	where = append(where, clauses...)
	args = append(args, filterArgs...)
	where = append(where, f.Lat+" IS NOT NULL", f.Lng+" IS NOT NULL")

	sqlText := "SELECT " + selectSQL + " FROM " + f.Table +
		" WHERE " + strings.Join(where, " AND ")
	if f.Limit > 0 {
		sqlText += " LIMIT " + strconv.Itoa(f.Limit)
	}
	return sqlText, args
}

// FetchDimensions returns the observation rows matching the filter set,
// colored per district. Rows missing either coordinate are excluded in
// SQL, so a returned point is never half-populated.
func (s *MapService) FetchDimensions(ctx context.Context, p models.FilterParams) ([]models.Dimension, error) {
	sqlText, args := s.dimensionsSQL(p)

	rows := make([]models.Dimension, 0)
	if err := s.db.NewRaw(sqlText, args...).Scan(ctx, &rows); err != nil {
		return nil, err
	}

	colorDimensions(rows)
	return rows, nil
}

// colorDimensions assigns each row its district's palette color.
func colorDimensions(rows []models.Dimension) {
	colors := map[string]string{}
	for i := range rows {
		key := noDistrict
		if rows[i].District != nil && *rows[i].District != "" {
			key = *rows[i].District
		}
		c, ok := colors[key]
		if !ok {
			c = ColorForKey(key)
			colors[key] = c
		}
		rows[i].Color = c
	}
}
