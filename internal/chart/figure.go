// Package chart maps aggregate tables onto declarative chart specifications.
// A Figure is a plotly-shaped document (traces plus layout) that serializes
// straight to JSON for API responses or to an embeddable fragment for the
// landing page. No computation happens here.
package chart

import (
	"encoding/json"
	"fmt"
	"html/template"
)

// Figure is one complete chart specification.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one data series within a figure. Only the fields relevant to the
// trace type are populated; the rest marshal away.
type Trace struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	Mode string `json:"mode,omitempty"`

	X []any `json:"x,omitempty"`
	Y []any `json:"y,omitempty"`

	// Pie.
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`

	// Heatmap.
	Z          [][]float64 `json:"z,omitempty"`
	ZX         []string    `json:"zx,omitempty"`
	ZY         []string    `json:"zy,omitempty"`
	Colorscale string      `json:"colorscale,omitempty"`

	// Density map.
	Lat    []float64 `json:"lat,omitempty"`
	Lon    []float64 `json:"lon,omitempty"`
	Radius int       `json:"radius,omitempty"`

	// Box (precomputed summaries, one entry per category in X).
	Q1         []float64   `json:"q1,omitempty"`
	Median     []float64   `json:"median,omitempty"`
	Q3         []float64   `json:"q3,omitempty"`
	LowerFence []float64   `json:"lowerfence,omitempty"`
	UpperFence []float64   `json:"upperfence,omitempty"`
	Outliers   [][]float64 `json:"outliers,omitempty"`
}

// Layout carries the presentation encoding: title, axes, and map framing.
type Layout struct {
	Title   string  `json:"title,omitempty"`
	XAxis   *Axis   `json:"xaxis,omitempty"`
	YAxis   *Axis   `json:"yaxis,omitempty"`
	BarMode string  `json:"barmode,omitempty"`
	Mapbox  *Mapbox `json:"mapbox,omitempty"`
}

// Axis describes one axis.
type Axis struct {
	Title         string `json:"title,omitempty"`
	CategoryOrder string `json:"categoryorder,omitempty"`
}

// Mapbox frames a density map.
type Mapbox struct {
	Style  string `json:"style,omitempty"`
	Zoom   int    `json:"zoom,omitempty"`
	Center Center `json:"center"`
}

// Center is a map center coordinate.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// HTML renders the figure as an embeddable fragment: a placeholder div plus
// the script that draws into it. The surrounding page must load the plotly
// runtime once.
func (f Figure) HTML(id string) (template.HTML, error) {
	data, err := json.Marshal(f.Data)
	if err != nil {
		return "", fmt.Errorf("marshal figure data: %w", err)
	}
	layout, err := json.Marshal(f.Layout)
	if err != nil {
		return "", fmt.Errorf("marshal figure layout: %w", err)
	}

	fragment := fmt.Sprintf(
		`<div id=%q class="chart"></div><script>Plotly.newPlot(%q, %s, %s);</script>`,
		id, id, data, layout,
	)
	return template.HTML(fragment), nil //nolint:gosec // both operands are json.Marshal output
}
