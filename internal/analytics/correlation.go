package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Meghaaa003/ADAS/internal/domain"
)

// Matrix is a square, symmetric correlation matrix with a unit diagonal.
type Matrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// CorrelationMatrix computes the Pearson correlation matrix over the numeric
// and category-coded columns: Date, Lat, Long, Speed, Alert, DayOfWeek, and
// HourOfDay. Categorical fields are encoded as sorted-unique integer codes.
// HourOfDay comes from the time-of-day field and is null where the time did
// not parse; correlations are pairwise-complete, using only rows where both
// columns are non-null. Degenerate pairs (fewer than two shared observations,
// or zero variance) report 0. An empty dataset yields an empty matrix.
func CorrelationMatrix(records []domain.AlertRecord) Matrix {
	if len(records) == 0 {
		return Matrix{}
	}

	columns := []string{"Date", "Lat", "Long", "Speed", "Alert", "DayOfWeek", "HourOfDay"}
	data := [][]float64{
		categoryCodes(records, func(r domain.AlertRecord) string {
			if r.Date.IsZero() {
				return ""
			}
			return r.Date.Format("2006-01-02")
		}),
		column(records, func(r domain.AlertRecord) float64 { return r.Lat }),
		column(records, func(r domain.AlertRecord) float64 { return r.Long }),
		column(records, func(r domain.AlertRecord) float64 { return r.Speed }),
		categoryCodes(records, func(r domain.AlertRecord) string { return r.Alert }),
		categoryCodes(records, func(r domain.AlertRecord) string { return r.DayOfWeek }),
		hourCodes(records),
	}

	n := len(columns)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pairwisePearson(data[i], data[j])
			values[i][j] = r
			values[j][i] = r
		}
	}

	return Matrix{Columns: columns, Values: values}
}

// column extracts a plain numeric column.
func column(records []domain.AlertRecord, f func(domain.AlertRecord) float64) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = f(r)
	}
	return out
}

// categoryCodes encodes a text column as integer codes assigned in sorted
// label order. The empty label marks a null and encodes as NaN.
func categoryCodes(records []domain.AlertRecord, f func(domain.AlertRecord) string) []float64 {
	labels := map[string]bool{}
	for _, r := range records {
		if v := f(r); v != "" {
			labels[v] = true
		}
	}
	ordered := make([]string, 0, len(labels))
	for l := range labels {
		ordered = append(ordered, l)
	}
	sort.Strings(ordered)

	codes := make(map[string]float64, len(ordered))
	for i, l := range ordered {
		codes[l] = float64(i)
	}

	out := make([]float64, len(records))
	for i, r := range records {
		v := f(r)
		if v == "" {
			out[i] = math.NaN()
			continue
		}
		out[i] = codes[v]
	}
	return out
}

// hourCodes extracts hour-of-day, NaN where the time field is null.
func hourCodes(records []domain.AlertRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		if r.Time == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = float64(r.Time.Hour())
	}
	return out
}

// pairwisePearson computes Pearson correlation over the rows where both
// columns are non-NaN.
func pairwisePearson(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return 0
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}
