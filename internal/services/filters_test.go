package services

import (
	"context"
	"errors"
	"testing"

	"mapas-bknd/internal/models"
)

func TestFetchFilterOptionsPartialFailure(t *testing.T) {
	s := NewMapService(nil, testConfig())
	s.optionsFn = func(_ context.Context, table, _, _ string) ([]models.FilterOption, error) {
		if table == "dim_operador" {
			return nil, errors.New(`relation "dim_operador" does not exist`)
		}
		return []models.FilterOption{{ID: 1, Name: table}}, nil
	}

	sets, err := s.FetchFilterOptions(context.Background())
	if err != nil {
		t.Fatalf("one missing table must not fail the endpoint: %v", err)
	}

	if sets.Operators == nil || len(sets.Operators) != 0 {
		t.Errorf("failing set must come back as an empty list, got %v", sets.Operators)
	}
	for name, got := range map[string][]models.FilterOption{
		"moments":         sets.Moments,
		"altitude_levels": sets.AltitudeLevels,
		"signal_levels":   sets.SignalLevels,
		"speed_levels":    sets.SpeedLevels,
		"networks":        sets.Networks,
	} {
		if len(got) != 1 {
			t.Errorf("set %s should be populated, got %v", name, got)
		}
	}
}

func TestFetchFilterOptionsAllFail(t *testing.T) {
	s := NewMapService(nil, testConfig())
	s.optionsFn = func(context.Context, string, string, string) ([]models.FilterOption, error) {
		return nil, errors.New("connection refused")
	}

	if _, err := s.FetchFilterOptions(context.Background()); err == nil {
		t.Fatal("expected an error when every option set fails")
	}
}
