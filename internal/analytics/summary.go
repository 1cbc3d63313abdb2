package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Meghaaa003/ADAS/internal/domain"
)

// ColumnSummary is one row of the landing-page summary table. Numeric and
// categorical columns fill different subsets of the optional fields.
type ColumnSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`

	// Categorical columns.
	Unique int    `json:"unique,omitempty"`
	Top    string `json:"top,omitempty"`
	Freq   int    `json:"freq,omitempty"`

	// Numeric columns.
	Mean   *float64 `json:"mean,omitempty"`
	Std    *float64 `json:"std,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Q1     *float64 `json:"q1,omitempty"`
	Median *float64 `json:"median,omitempty"`
	Q3     *float64 `json:"q3,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// Describe produces per-column summary statistics over the whole dataset:
// count/unique/top/freq for text columns, count plus the usual moments and
// quartiles for numeric ones.
func Describe(records []domain.AlertRecord) []ColumnSummary {
	return []ColumnSummary{
		describeText("Vehicle", records, func(r domain.AlertRecord) string { return r.Vehicle }),
		describeText("Date", records, func(r domain.AlertRecord) string {
			if r.Date.IsZero() {
				return ""
			}
			return r.Date.Format("2006-01-02")
		}),
		describeText("DayOfWeek", records, func(r domain.AlertRecord) string { return r.DayOfWeek }),
		describeText("Time", records, func(r domain.AlertRecord) string {
			if r.Time == nil {
				return ""
			}
			return r.Time.Format("15:04:05")
		}),
		describeNumeric("Lat", records, func(r domain.AlertRecord) float64 { return r.Lat }),
		describeNumeric("Long", records, func(r domain.AlertRecord) float64 { return r.Long }),
		describeNumeric("Speed", records, func(r domain.AlertRecord) float64 { return r.Speed }),
		describeText("Alert", records, func(r domain.AlertRecord) string { return r.Alert }),
	}
}

func describeText(name string, records []domain.AlertRecord, f func(domain.AlertRecord) string) ColumnSummary {
	counts := map[string]int{}
	total := 0
	for _, r := range records {
		v := f(r)
		if v == "" {
			continue
		}
		counts[v]++
		total++
	}

	summary := ColumnSummary{Name: name, Count: total, Unique: len(counts)}
	for v, n := range counts {
		if n > summary.Freq || (n == summary.Freq && v < summary.Top) {
			summary.Top = v
			summary.Freq = n
		}
	}
	return summary
}

func describeNumeric(name string, records []domain.AlertRecord, f func(domain.AlertRecord) float64) ColumnSummary {
	if len(records) == 0 {
		return ColumnSummary{Name: name}
	}

	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = f(r)
	}
	sort.Float64s(values)

	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		std = 0
	}

	return ColumnSummary{
		Name:   name,
		Count:  len(values),
		Mean:   ptr(mean),
		Std:    ptr(std),
		Min:    ptr(values[0]),
		Q1:     ptr(stat.Quantile(0.25, stat.Empirical, values, nil)),
		Median: ptr(stat.Quantile(0.5, stat.Empirical, values, nil)),
		Q3:     ptr(stat.Quantile(0.75, stat.Empirical, values, nil)),
		Max:    ptr(values[len(values)-1]),
	}
}

func ptr(v float64) *float64 { return &v }
