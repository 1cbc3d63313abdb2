package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Meghaaa003/ADAS/internal/domain"
)

// TrendLine is an ordinary-least-squares fit y = Intercept + Slope*x.
type TrendLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// FitTrend fits an OLS line through the (speed, count) scatter. Returns nil
// when the fit is undefined: fewer than two points, or no spread in x.
func FitTrend(points []SpeedCount) *TrendLine {
	if len(points) < 2 {
		return nil
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	spread := false
	for i, p := range points {
		xs[i] = p.Speed
		ys[i] = float64(p.Count)
		if p.Speed != points[0].Speed {
			spread = true
		}
	}
	if !spread {
		return nil
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return &TrendLine{Slope: slope, Intercept: intercept}
}

// BoxSummary is a five-number speed summary for one alert type, with outliers
// beyond the 1.5*IQR fences listed separately. Whiskers sit at the most
// extreme observations inside the fences.
type BoxSummary struct {
	Alert    string    `json:"alert"`
	Min      float64   `json:"min"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	Max      float64   `json:"max"`
	Outliers []float64 `json:"outliers,omitempty"`
}

// SpeedBoxSummaries computes a per-alert box-plot summary of the Speed
// column, ordered by alert label.
func SpeedBoxSummaries(records []domain.AlertRecord) []BoxSummary {
	byAlert := map[string][]float64{}
	for _, r := range records {
		byAlert[r.Alert] = append(byAlert[r.Alert], r.Speed)
	}

	alerts := make([]string, 0, len(byAlert))
	for alert := range byAlert {
		alerts = append(alerts, alert)
	}
	sort.Strings(alerts)

	out := make([]BoxSummary, 0, len(alerts))
	for _, alert := range alerts {
		speeds := byAlert[alert]
		sort.Float64s(speeds)
		out = append(out, boxSummary(alert, speeds))
	}
	return out
}

// boxSummary computes the five-number summary over a sorted, non-empty slice.
func boxSummary(alert string, sorted []float64) BoxSummary {
	q1 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, sorted, nil)

	iqr := q3 - q1
	lowerFence := q1 - 1.5*iqr
	upperFence := q3 + 1.5*iqr

	box := BoxSummary{
		Alert:  alert,
		Min:    sorted[len(sorted)-1],
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    sorted[0],
	}
	for _, v := range sorted {
		if v < lowerFence || v > upperFence {
			box.Outliers = append(box.Outliers, v)
			continue
		}
		if v < box.Min {
			box.Min = v
		}
		if v > box.Max {
			box.Max = v
		}
	}
	return box
}
