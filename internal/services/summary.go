package services

import (
	"sort"

	"mapas-bknd/internal/models"
)

const noZone = "Sin zona"

// zoneSampleSize bounds the per-zone sample carried in a summary.
const zoneSampleSize = 5

// SummarizeByZone aggregates dimension rows per zone: row count, distinct
// district count and a capped sample. Summaries are computed from the same
// rows /dimensions returns, so counts always match the raw endpoint.
func SummarizeByZone(rows []models.Dimension) []models.ZoneSummary {
	type zoneAcc struct {
		count     int
		districts map[string]struct{}
		sample    []models.Dimension
	}

	acc := map[string]*zoneAcc{}
	for _, row := range rows {
		zone := noZone
		if row.Zone != nil && *row.Zone != "" {
			zone = *row.Zone
		}

		a, ok := acc[zone]
		if !ok {
			a = &zoneAcc{districts: map[string]struct{}{}}
			acc[zone] = a
		}

		a.count++
		if row.District != nil && *row.District != "" {
			a.districts[*row.District] = struct{}{}
		}
		if len(a.sample) < zoneSampleSize {
			a.sample = append(a.sample, row)
		}
	}

	out := make([]models.ZoneSummary, 0, len(acc))
	for zone, a := range acc {
		out = append(out, models.ZoneSummary{
			Zone:          zone,
			Color:         ColorForKey(zone),
			Count:         a.count,
			DistrictCount: len(a.districts),
			Sample:        a.sample,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Zone < out[j].Zone })
	return out
}

// SummarizeByDistrict aggregates dimension rows per district name.
func SummarizeByDistrict(rows []models.Dimension) []models.DistrictSummary {
	counts := map[string]int{}
	for _, row := range rows {
		district := noDistrict
		if row.District != nil && *row.District != "" {
			district = *row.District
		}
		counts[district]++
	}

	out := make([]models.DistrictSummary, 0, len(counts))
	for district, count := range counts {
		out = append(out, models.DistrictSummary{
			District: district,
			Color:    ColorForKey(district),
			Count:    count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].District < out[j].District })
	return out
}
