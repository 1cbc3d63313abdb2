package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Meghaaa003/ADAS/internal/domain"
)

// Histogram bin counts used by the two speed-distribution views.
const (
	SpeedAnalysisBins = 20
	LandingPageBins   = 30
)

// Histogram is an equal-width binning of a numeric column.
// len(Edges) == len(Counts)+1; bin i covers [Edges[i], Edges[i+1]), with the
// final bin closed on the right so the maximum lands inside it.
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// SpeedHistogram bins the Speed column into the given number of equal-width
// bins over [min, max]. An empty dataset yields an empty histogram.
func SpeedHistogram(records []domain.AlertRecord, bins int) Histogram {
	if len(records) == 0 || bins < 1 {
		return Histogram{}
	}

	speeds := make([]float64, len(records))
	for i, r := range records {
		speeds[i] = r.Speed
	}
	sort.Float64s(speeds)

	lo, hi := speeds[0], speeds[len(speeds)-1]
	if lo == hi {
		// Degenerate range: everything in one bin.
		return Histogram{Edges: []float64{lo, hi}, Counts: []int{len(speeds)}}
	}

	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)

	// stat.Histogram half-opens every bin, which would push the maximum out of
	// range; count against a copy whose last divider is nudged past hi.
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[len(dividers)-1] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, speeds, nil)

	out := Histogram{Edges: edges, Counts: make([]int, len(counts))}
	for i, c := range counts {
		out.Counts[i] = int(c)
	}
	return out
}

// BinCenters returns the midpoint of each bin, for bar-style rendering.
func (h Histogram) BinCenters() []float64 {
	if len(h.Counts) == 0 {
		return nil
	}
	centers := make([]float64, len(h.Counts))
	for i := range centers {
		centers[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return centers
}
