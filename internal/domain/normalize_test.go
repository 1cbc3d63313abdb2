package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	rows := []RawAlertRow{
		{Vehicle: "MH12AB1234", Date: "2024-03-18", Time: "08:15:00", Lat: "18.52", Long: "73.85", Speed: "45.0", Alert: "cas_hmw"},
		{Vehicle: "MH14CD5678", Date: "2024-03-19", Time: "garbage", Lat: "18.60", Long: "73.90", Speed: "82.5", Alert: "hard_brake"},
	}

	records, stats := Normalize(rows)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "MH12AB1234", first.Vehicle)
	assert.Equal(t, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Monday", first.DayOfWeek)
	require.NotNil(t, first.Time)
	assert.Equal(t, 8, first.Time.Hour())
	assert.Equal(t, 8, first.HourOfDay())
	assert.Equal(t, 18.52, first.Lat)
	assert.Equal(t, 73.85, first.Long)
	assert.Equal(t, 45.0, first.Speed)
	assert.Equal(t, "cas_hmw", first.Alert)

	// Unparseable time becomes null, never an error.
	second := records[1]
	assert.Nil(t, second.Time)
	assert.Equal(t, -1, second.HourOfDay())
	assert.Equal(t, "Tuesday", second.DayOfWeek)

	assert.Equal(t, 1, stats.TimeParseFailures)
	assert.Equal(t, 0, stats.DateParseFailures)
}

func TestNormalize_UnparseableDate(t *testing.T) {
	records, stats := Normalize([]RawAlertRow{
		{Vehicle: "MH12AB1234", Date: "not-a-date", Time: "08:15:00", Lat: "18.52", Long: "73.85", Speed: "45.0", Alert: "cas_hmw"},
	})
	require.Len(t, records, 1)

	assert.True(t, records[0].Date.IsZero())
	assert.Empty(t, records[0].DayOfWeek)
	assert.Equal(t, 1, stats.DateParseFailures)
}

func TestNormalize_Empty(t *testing.T) {
	records, stats := Normalize(nil)
	assert.Empty(t, records)
	assert.Zero(t, stats)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{"ISO", "2024-03-18", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), true},
		{"day first", "18-03-2024", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), true},
		{"slashes", "2024/03/18", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), true},
		{"whitespace", " 2024-03-18 ", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "yesterday", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		hour int
		min  int
		ok   bool
	}{
		{"with seconds", "15:04:05", 15, 4, true},
		{"no seconds", "15:04", 15, 4, true},
		{"midnight", "00:00:00", 0, 0, true},
		{"empty", "", 0, 0, false},
		{"out of range", "25:00:00", 0, 0, false},
		{"garbage", "noon", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimeOfDay(tt.in)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.hour, got.Hour())
				assert.Equal(t, tt.min, got.Minute())
			}
		})
	}
}

func TestSpeedCategory(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{0, SpeedLow},
		{59.9, SpeedLow},
		{60.0, SpeedMedium},
		{79.9, SpeedMedium},
		{80.0, SpeedHigh},
		{120.0, SpeedHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpeedCategory(tt.speed), "speed %v", tt.speed)
	}
}

func TestFilterSafety(t *testing.T) {
	records := []AlertRecord{
		{Alert: "cas_ldw"},
		{Alert: "dms_drowsiness"},
		{Alert: "hard_brake"},
		{Alert: "cas_hmw"},
		{Alert: "overspeed"},
		{Alert: "cas_pcw"},
		{Alert: "cas_fcw"},
	}

	safety := FilterSafety(records)
	require.Len(t, safety, 5)
	for _, r := range safety {
		assert.True(t, IsSafetyAlert(r.Alert), "alert %q is not safety-critical", r.Alert)
	}
}

func TestFilterSafety_Empty(t *testing.T) {
	assert.Empty(t, FilterSafety(nil))
	assert.Empty(t, FilterSafety([]AlertRecord{{Alert: "overspeed"}}))
}
