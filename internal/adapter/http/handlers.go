package http

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Meghaaa003/ADAS/internal/analytics"
	"github.com/Meghaaa003/ADAS/internal/chart"
	"github.com/Meghaaa003/ADAS/internal/dataset"
	"github.com/Meghaaa003/ADAS/internal/domain"
)

// snapshot runs the shared load-and-normalize pipeline for one request.
func (s *Server) snapshot() ([]domain.AlertRecord, *dataset.Dataset, error) {
	start := time.Now()
	ds, err := s.loader.Load()
	if err != nil {
		s.metrics.LoadFailures.Inc()
		return nil, nil, err
	}
	s.metrics.LoadDuration.Observe(time.Since(start).Seconds())

	records, stats := domain.Normalize(ds.Rows)
	s.metrics.FieldParseErrors.Add(float64(stats.DateParseFailures + stats.TimeParseFailures))

	return records, ds, nil
}

// serverError maps a load failure onto a 500 response. Both IO and format
// errors are fatal for the request; there are no partial results.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (s *Server) handleSpatialAnalysis(w http.ResponseWriter, r *http.Request) {
	records, _, err := s.snapshot()
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chart.DensityMap(records, "Spatial Distribution of Alert Occurrences"))
}

func (s *Server) handleAlertFrequency(w http.ResponseWriter, r *http.Request) {
	records, _, err := s.snapshot()
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]chart.Figure{
		"day_of_week_chart": chart.DayOfWeekBar(
			analytics.DayOfWeekFrequency(records), "Alert Frequency by Day of Week"),
		"speed_alert_chart": chart.SpeedAlertScatter(
			analytics.SpeedAlertPoints(records), "Alert Frequency Comparison Across Different Vehicles"),
		"speed_time": chart.TimeSpeedScatter(
			analytics.SpeedTimePoints(records), "Speed vs. Time with Alert Events"),
	})
}

func (s *Server) handleSpeedAnalysis(w http.ResponseWriter, r *http.Request) {
	records, _, err := s.snapshot()
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]chart.Figure{
		"speed_time_chart": chart.TimeSpeedScatter(
			analytics.SpeedTimePoints(records), "Speed vs. Time with Alert Events"),
		"speed_distribution_chart": chart.HistogramBar(
			analytics.SpeedHistogram(records, analytics.SpeedAnalysisBins), "Distribution of Speed", "Speed"),
		"speed_category_chart": chart.SpeedCategoryBar(
			analytics.SpeedCategoryCounts(records), "Alerts Count by Speed Category"),
	})
}

func (s *Server) handleCorrelationAnalysis(w http.ResponseWriter, r *http.Request) {
	records, _, err := s.snapshot()
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	matrix := analytics.CorrelationMatrix(records)
	writeJSON(w, http.StatusOK, chart.CorrelationHeatmap(matrix, "Correlation Between Alert Occurrence and Road Conditions"))
}

func (s *Server) handleDriverBehavior(w http.ResponseWriter, r *http.Request) {
	records, _, err := s.snapshot()
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chart.Pie(analytics.AlertFrequency(records), "Distribution of Driver Alerts"))
}

func (s *Server) handleSafetyImpact(w http.ResponseWriter, r *http.Request) {
	records, _, err := s.snapshot()
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	safety := domain.FilterSafety(records)

	writeJSON(w, http.StatusOK, map[string]chart.Figure{
		"safety_speed_frequency": chart.SpeedFrequencyScatter(
			analytics.SpeedFrequency(safety), nil, "Speed vs. Frequency of Safety-Related Alerts"),
		"safety_speed_distribution": chart.BoxPlot(
			analytics.SpeedBoxSummaries(safety), "Speed Distribution During Safety Alerts"),
	})
}

func (s *Server) handleSafetyAnalysis(w http.ResponseWriter, r *http.Request) {
	records, _, err := s.snapshot()
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	safety := domain.FilterSafety(records)
	speedFreq := analytics.SpeedFrequency(safety)

	writeJSON(w, http.StatusOK, map[string]chart.Figure{
		"safety_pie": chart.Pie(
			analytics.AlertFrequency(safety), "Distribution of Safety-Related Alerts"),
		"safety_speed": chart.SpeedFrequencyScatter(
			speedFreq, analytics.FitTrend(speedFreq), "Speed vs. Frequency of Safety-Related Alerts"),
	})
}

// coordinateRecord is one row of the /data/coordinates response with
// null-safe defaults: empty string for missing text, null for missing
// coordinates, zero for missing speed.
type coordinateRecord struct {
	Alert   string   `json:"alert"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	Lat     *float64 `json:"lat"`
	Long    *float64 `json:"long"`
	Vehicle string   `json:"vehicle"`
	Speed   float64  `json:"speed"`
}

func (s *Server) handleCoordinates(w http.ResponseWriter, r *http.Request) {
	_, ds, err := s.snapshot()
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, coordinateRecords(ds.Rows))
}

func coordinateRecords(rows []domain.RawAlertRow) []coordinateRecord {
	out := make([]coordinateRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, coordinateRecord{
			Alert:   textOrEmpty(row.Alert),
			Date:    textOrEmpty(row.Date),
			Time:    textOrEmpty(row.Time),
			Lat:     floatOrNull(row.Lat),
			Long:    floatOrNull(row.Long),
			Vehicle: textOrEmpty(row.Vehicle),
			Speed:   floatOrZero(row.Speed),
		})
	}
	return out
}

func textOrEmpty(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "nan") || strings.EqualFold(v, "na") || strings.EqualFold(v, "null") {
		return ""
	}
	return v
}

func floatOrNull(v string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil
	}
	return &f
}

func floatOrZero(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// homeData feeds the landing-page template.
type homeData struct {
	GeneratedAt    string
	SampledRows    int
	Summary        []analytics.ColumnSummary
	Heatmap        template.HTML
	AlertFrequency template.HTML
	SpeedAnalysis  template.HTML
	Locations      []coordinateRecord
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	records, ds, err := s.snapshot()
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	heatmap, err := chart.DensityMap(records, "Spatial Distribution of Alert Occurrences").HTML("heatmap")
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	alertBar, err := chart.DayBar(analytics.DayFrequency(records), "Alert Frequency by Day of the Week").HTML("alert-frequency")
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	speedHist, err := chart.HistogramBar(
		analytics.SpeedHistogram(records, analytics.LandingPageBins), "Vehicle Speed Distribution", "Speed (km/h)").HTML("speed-analysis")
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	data := homeData{
		GeneratedAt:    ds.LoadedAt.Format(time.RFC3339),
		SampledRows:    len(ds.Rows),
		Summary:        analytics.Describe(records),
		Heatmap:        heatmap,
		AlertFrequency: alertBar,
		SpeedAnalysis:  speedHist,
		Locations:      coordinateRecords(ds.Rows),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("render landing page", "error", err)
	}
}
