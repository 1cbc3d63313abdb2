package domain

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing the Date column. The telemetry
// exports are ISO dates, but older drops used day-first and slash forms.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"2006/01/02",
}

// timeLayouts are tried in order when parsing the Time column.
var timeLayouts = []string{
	"15:04:05",
	"15:04",
}

// NormalizeStats counts field-level parse failures recovered during
// normalization. Failures never abort a request; they only feed metrics.
type NormalizeStats struct {
	DateParseFailures int
	TimeParseFailures int
}

// Normalize coerces raw rows into typed records. It is the single place where
// text-to-value conversion happens, so every view sees identical typing.
//
// Unparseable dates leave a zero Date and empty DayOfWeek; unparseable times
// leave a nil Time. Both are counted in the returned stats. Speed is present
// on every row post-load, so a failed parse degrades to zero rather than null.
func Normalize(rows []RawAlertRow) ([]AlertRecord, NormalizeStats) {
	records := make([]AlertRecord, 0, len(rows))
	var stats NormalizeStats

	for _, row := range rows {
		rec := AlertRecord{
			Vehicle: strings.TrimSpace(row.Vehicle),
			Alert:   strings.TrimSpace(row.Alert),
			Lat:     parseFloatOrZero(row.Lat),
			Long:    parseFloatOrZero(row.Long),
			Speed:   parseFloatOrZero(row.Speed),
		}

		if date, ok := ParseDate(row.Date); ok {
			rec.Date = date
			rec.DayOfWeek = date.Weekday().String()
		} else {
			stats.DateParseFailures++
		}

		if tod, ok := ParseTimeOfDay(row.Time); ok {
			rec.Time = &tod
		} else {
			stats.TimeParseFailures++
		}

		records = append(records, rec)
	}

	return records, stats
}

// ParseDate parses a calendar date against the known layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseTimeOfDay parses a time-of-day string against the known layouts.
func ParseTimeOfDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Speed category bands. Boundaries are inclusive on the lower bound.
const (
	SpeedLow    = "Low"
	SpeedMedium = "Medium"
	SpeedHigh   = "High"

	mediumSpeedThreshold = 60.0
	highSpeedThreshold   = 80.0
)

// SpeedCategories returns the category labels in ascending band order.
func SpeedCategories() []string {
	return []string{SpeedLow, SpeedMedium, SpeedHigh}
}

// SpeedCategory bands a speed into Low (<60), Medium (60-80), or High (>=80).
func SpeedCategory(speed float64) string {
	switch {
	case speed < mediumSpeedThreshold:
		return SpeedLow
	case speed < highSpeedThreshold:
		return SpeedMedium
	default:
		return SpeedHigh
	}
}
