// Package analytics holds the per-view aggregation recipes. Every function is
// a pure transform over normalized records and returns an empty aggregate, not
// an error, when the input is empty.
package analytics

import (
	"sort"

	"github.com/Meghaaa003/ADAS/internal/domain"
)

// weekdayOrder fixes the presentation order for day-of-week groupings.
var weekdayOrder = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// DayAlertCount is one (day-of-week, alert type) bucket.
type DayAlertCount struct {
	Day   string `json:"day"`
	Alert string `json:"alert"`
	Count int    `json:"count"`
}

// DayOfWeekFrequency counts records by (day-of-week, alert type). Records with
// an unparseable date group under the empty day, which sorts last.
func DayOfWeekFrequency(records []domain.AlertRecord) []DayAlertCount {
	counts := map[[2]string]int{}
	for _, r := range records {
		counts[[2]string{r.DayOfWeek, r.Alert}]++
	}

	out := make([]DayAlertCount, 0, len(counts))
	for key, n := range counts {
		out = append(out, DayAlertCount{Day: key[0], Alert: key[1], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return dayRank(out[i].Day) < dayRank(out[j].Day)
		}
		return out[i].Alert < out[j].Alert
	})
	return out
}

func dayRank(day string) int {
	if rank, ok := weekdayOrder[day]; ok {
		return rank
	}
	return len(weekdayOrder)
}

// DayCount is one day-of-week bucket, alert types collapsed.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// DayFrequency counts records by day-of-week, ordered by descending count for
// the landing-page bar.
func DayFrequency(records []domain.AlertRecord) []DayCount {
	counts := map[string]int{}
	for _, r := range records {
		counts[r.DayOfWeek]++
	}

	out := make([]DayCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DayCount{Day: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return dayRank(out[i].Day) < dayRank(out[j].Day)
	})
	return out
}

// AlertCount is one alert-type bucket.
type AlertCount struct {
	Alert string `json:"alert"`
	Count int    `json:"count"`
}

// AlertFrequency counts records by alert type, ordered by descending count.
func AlertFrequency(records []domain.AlertRecord) []AlertCount {
	counts := map[string]int{}
	for _, r := range records {
		counts[r.Alert]++
	}

	out := make([]AlertCount, 0, len(counts))
	for alert, n := range counts {
		out = append(out, AlertCount{Alert: alert, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Alert < out[j].Alert
	})
	return out
}

// CategoryAlertCount is one (speed category, alert type) bucket.
type CategoryAlertCount struct {
	Category string `json:"speed_category"`
	Alert    string `json:"alert"`
	Count    int    `json:"count"`
}

// SpeedCategoryCounts counts records by (speed category, alert type), ordered
// by ascending band then alert.
func SpeedCategoryCounts(records []domain.AlertRecord) []CategoryAlertCount {
	counts := map[[2]string]int{}
	for _, r := range records {
		counts[[2]string{domain.SpeedCategory(r.Speed), r.Alert}]++
	}

	bandRank := map[string]int{domain.SpeedLow: 0, domain.SpeedMedium: 1, domain.SpeedHigh: 2}
	out := make([]CategoryAlertCount, 0, len(counts))
	for key, n := range counts {
		out = append(out, CategoryAlertCount{Category: key[0], Alert: key[1], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return bandRank[out[i].Category] < bandRank[out[j].Category]
		}
		return out[i].Alert < out[j].Alert
	})
	return out
}
