package domain

import "time"

// Columns is the required CSV schema, in canonical order. Both source files
// must carry every column; extras are dropped at load time.
var Columns = []string{"Vehicle", "Date", "Time", "Lat", "Long", "Speed", "Alert"}

// RawAlertRow is one CSV row with every field still in its textual form.
// The Loader guarantees no field is missing; typing happens in Normalize.
type RawAlertRow struct {
	Vehicle string
	Date    string
	Time    string
	Lat     string
	Long    string
	Speed   string
	Alert   string
}

// AlertRecord is the typed representation consumed by every aggregator.
type AlertRecord struct {
	Vehicle   string
	Date      time.Time
	DayOfWeek string     // derived from Date; empty when the date did not parse
	Time      *time.Time // time of day; nil when unparseable
	Lat       float64
	Long      float64
	Speed     float64
	Alert     string
}

// HourOfDay returns the hour component of the time-of-day field, or -1 when
// the time is null.
func (r AlertRecord) HourOfDay() int {
	if r.Time == nil {
		return -1
	}
	return r.Time.Hour()
}

// safetyAlerts is the fixed vocabulary of safety-critical alert types.
var safetyAlerts = map[string]bool{
	"cas_ldw":    true,
	"cas_hmw":    true,
	"hard_brake": true,
	"cas_pcw":    true,
	"cas_fcw":    true,
}

// SafetyAlerts returns the safety-critical vocabulary in a stable order.
func SafetyAlerts() []string {
	return []string{"cas_ldw", "cas_hmw", "hard_brake", "cas_pcw", "cas_fcw"}
}

// IsSafetyAlert reports whether the alert type is safety-critical.
func IsSafetyAlert(alert string) bool {
	return safetyAlerts[alert]
}

// FilterSafety returns the subset of records whose alert type is safety-critical.
func FilterSafety(records []AlertRecord) []AlertRecord {
	out := make([]AlertRecord, 0, len(records))
	for _, r := range records {
		if IsSafetyAlert(r.Alert) {
			out = append(out, r)
		}
	}
	return out
}
