package chart

import (
	"github.com/Meghaaa003/ADAS/internal/analytics"
	"github.com/Meghaaa003/ADAS/internal/domain"
)

// DensityMap builds the spatial heatmap of alert occurrences, centered at the
// dataset's mean coordinate.
func DensityMap(records []domain.AlertRecord, title string) Figure {
	lat := make([]float64, len(records))
	lon := make([]float64, len(records))
	for i, r := range records {
		lat[i] = r.Lat
		lon[i] = r.Long
	}
	centerLat, centerLon := analytics.MeanCoordinate(records)

	return Figure{
		Data: []Trace{{
			Type:   "densitymapbox",
			Lat:    lat,
			Lon:    lon,
			Radius: 10,
		}},
		Layout: Layout{
			Title: title,
			Mapbox: &Mapbox{
				Style:  "carto-positron",
				Zoom:   5,
				Center: Center{Lat: centerLat, Lon: centerLon},
			},
		},
	}
}

// DayOfWeekBar builds the stacked day-of-week frequency bar, one trace per
// alert type, with days ordered by descending total.
func DayOfWeekBar(counts []analytics.DayAlertCount, title string) Figure {
	byAlert := map[string]*Trace{}
	var order []string
	for _, c := range counts {
		tr, ok := byAlert[c.Alert]
		if !ok {
			tr = &Trace{Type: "bar", Name: c.Alert}
			byAlert[c.Alert] = tr
			order = append(order, c.Alert)
		}
		tr.X = append(tr.X, c.Day)
		tr.Y = append(tr.Y, c.Count)
	}

	data := make([]Trace, 0, len(order))
	for _, alert := range order {
		data = append(data, *byAlert[alert])
	}

	return Figure{
		Data: data,
		Layout: Layout{
			Title:   title,
			BarMode: "stack",
			XAxis:   &Axis{CategoryOrder: "total descending"},
		},
	}
}

// DayBar builds the landing-page bar of alert counts per day.
func DayBar(counts []analytics.DayCount, title string) Figure {
	tr := Trace{Type: "bar"}
	for _, c := range counts {
		tr.X = append(tr.X, c.Day)
		tr.Y = append(tr.Y, c.Count)
	}
	return Figure{
		Data: []Trace{tr},
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Day"},
			YAxis: &Axis{Title: "Number of Alerts"},
		},
	}
}

// SpeedAlertScatter builds the speed-versus-alert scatter, one trace per
// alert type.
func SpeedAlertScatter(points []analytics.SpeedAlertPoint, title string) Figure {
	byAlert := map[string]*Trace{}
	var order []string
	for _, p := range points {
		tr, ok := byAlert[p.Alert]
		if !ok {
			tr = &Trace{Type: "scatter", Mode: "markers", Name: p.Alert}
			byAlert[p.Alert] = tr
			order = append(order, p.Alert)
		}
		tr.X = append(tr.X, p.Speed)
		tr.Y = append(tr.Y, p.Alert)
	}

	data := make([]Trace, 0, len(order))
	for _, alert := range order {
		data = append(data, *byAlert[alert])
	}

	return Figure{
		Data: data,
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Speed"},
			YAxis: &Axis{Title: "Alert Frequency"},
		},
	}
}

// TimeSpeedScatter builds the speed-versus-time-of-day scatter, one trace per
// alert type.
func TimeSpeedScatter(points []analytics.TimeSpeedPoint, title string) Figure {
	byAlert := map[string]*Trace{}
	var order []string
	for _, p := range points {
		tr, ok := byAlert[p.Alert]
		if !ok {
			tr = &Trace{Type: "scatter", Mode: "markers", Name: p.Alert}
			byAlert[p.Alert] = tr
			order = append(order, p.Alert)
		}
		tr.X = append(tr.X, p.Time)
		tr.Y = append(tr.Y, p.Speed)
	}

	data := make([]Trace, 0, len(order))
	for _, alert := range order {
		data = append(data, *byAlert[alert])
	}

	return Figure{
		Data: data,
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Time"},
			YAxis: &Axis{Title: "Speed"},
		},
	}
}

// HistogramBar builds a pre-binned speed distribution as a bar over bin centers.
func HistogramBar(h analytics.Histogram, title, xLabel string) Figure {
	tr := Trace{Type: "bar"}
	for i, center := range h.BinCenters() {
		tr.X = append(tr.X, center)
		tr.Y = append(tr.Y, h.Counts[i])
	}
	return Figure{
		Data: []Trace{tr},
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: xLabel},
			YAxis: &Axis{Title: "Count"},
		},
	}
}

// SpeedCategoryBar builds the grouped bar of alert counts per speed category.
func SpeedCategoryBar(counts []analytics.CategoryAlertCount, title string) Figure {
	byAlert := map[string]*Trace{}
	var order []string
	for _, c := range counts {
		tr, ok := byAlert[c.Alert]
		if !ok {
			tr = &Trace{Type: "bar", Name: c.Alert}
			byAlert[c.Alert] = tr
			order = append(order, c.Alert)
		}
		tr.X = append(tr.X, c.Category)
		tr.Y = append(tr.Y, c.Count)
	}

	data := make([]Trace, 0, len(order))
	for _, alert := range order {
		data = append(data, *byAlert[alert])
	}

	return Figure{
		Data: data,
		Layout: Layout{
			Title:   title,
			BarMode: "group",
			XAxis:   &Axis{Title: "Speed_Category"},
			YAxis:   &Axis{Title: "Count"},
		},
	}
}

// Pie builds an alert-frequency pie.
func Pie(counts []analytics.AlertCount, title string) Figure {
	tr := Trace{Type: "pie"}
	for _, c := range counts {
		tr.Labels = append(tr.Labels, c.Alert)
		tr.Values = append(tr.Values, float64(c.Count))
	}
	return Figure{
		Data:   []Trace{tr},
		Layout: Layout{Title: title},
	}
}

// CorrelationHeatmap builds the annotated correlation heatmap.
func CorrelationHeatmap(m analytics.Matrix, title string) Figure {
	return Figure{
		Data: []Trace{{
			Type:       "heatmap",
			Z:          m.Values,
			ZX:         m.Columns,
			ZY:         m.Columns,
			Colorscale: "Viridis",
		}},
		Layout: Layout{Title: title},
	}
}

// SpeedFrequencyScatter builds the per-speed record-count scatter, with an
// optional trend line overlaid when a fit exists.
func SpeedFrequencyScatter(counts []analytics.SpeedCount, trend *analytics.TrendLine, title string) Figure {
	points := Trace{Type: "scatter", Mode: "markers"}
	for _, c := range counts {
		points.X = append(points.X, c.Speed)
		points.Y = append(points.Y, c.Count)
	}

	data := []Trace{points}
	if trend != nil && len(counts) > 1 {
		first := counts[0].Speed
		last := counts[len(counts)-1].Speed
		data = append(data, Trace{
			Type: "scatter",
			Mode: "lines",
			Name: "trend",
			X:    []any{first, last},
			Y: []any{
				trend.Intercept + trend.Slope*first,
				trend.Intercept + trend.Slope*last,
			},
		})
	}

	return Figure{
		Data: data,
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Speed"},
			YAxis: &Axis{Title: "Alert"},
		},
	}
}

// BoxPlot builds per-alert speed box plots from precomputed summaries.
func BoxPlot(boxes []analytics.BoxSummary, title string) Figure {
	tr := Trace{Type: "box"}
	for _, b := range boxes {
		tr.X = append(tr.X, b.Alert)
		tr.LowerFence = append(tr.LowerFence, b.Min)
		tr.Q1 = append(tr.Q1, b.Q1)
		tr.Median = append(tr.Median, b.Median)
		tr.Q3 = append(tr.Q3, b.Q3)
		tr.UpperFence = append(tr.UpperFence, b.Max)
		tr.Outliers = append(tr.Outliers, b.Outliers)
	}
	return Figure{
		Data: []Trace{tr},
		Layout: Layout{
			Title: title,
			XAxis: &Axis{Title: "Alert"},
			YAxis: &Axis{Title: "Speed"},
		},
	}
}
