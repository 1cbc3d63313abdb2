package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Meghaaa003/ADAS/internal/domain"
)

// SpeedAlertPoint is one (speed, alert type) observation.
type SpeedAlertPoint struct {
	Speed float64 `json:"speed"`
	Alert string  `json:"alert"`
}

// SpeedAlertPoints projects every record onto its (speed, alert) pair.
func SpeedAlertPoints(records []domain.AlertRecord) []SpeedAlertPoint {
	out := make([]SpeedAlertPoint, 0, len(records))
	for _, r := range records {
		out = append(out, SpeedAlertPoint{Speed: r.Speed, Alert: r.Alert})
	}
	return out
}

// TimeSpeedPoint is one (time-of-day, speed, alert type) observation.
type TimeSpeedPoint struct {
	Time  string  `json:"time"` // HH:MM:SS
	Speed float64 `json:"speed"`
	Alert string  `json:"alert"`
}

// SpeedTimePoints projects records onto (time-of-day, speed, alert) triples,
// sorted by time of day. Records with a null time are skipped: the time axis
// cannot place them.
func SpeedTimePoints(records []domain.AlertRecord) []TimeSpeedPoint {
	out := make([]TimeSpeedPoint, 0, len(records))
	for _, r := range records {
		if r.Time == nil {
			continue
		}
		out = append(out, TimeSpeedPoint{
			Time:  r.Time.Format("15:04:05"),
			Speed: r.Speed,
			Alert: r.Alert,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// SpeedCount is the number of records observed at one exact speed.
type SpeedCount struct {
	Speed float64 `json:"speed"`
	Count int     `json:"count"`
}

// SpeedFrequency counts records per exact speed value, sorted by speed.
func SpeedFrequency(records []domain.AlertRecord) []SpeedCount {
	counts := map[float64]int{}
	for _, r := range records {
		counts[r.Speed]++
	}

	out := make([]SpeedCount, 0, len(counts))
	for speed, n := range counts {
		out = append(out, SpeedCount{Speed: speed, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Speed < out[j].Speed })
	return out
}

// MeanCoordinate returns the mean (lat, long) of the dataset, used to center
// the spatial density map. Zero values are returned for an empty dataset.
func MeanCoordinate(records []domain.AlertRecord) (lat, long float64) {
	if len(records) == 0 {
		return 0, 0
	}
	lats := make([]float64, len(records))
	longs := make([]float64, len(records))
	for i, r := range records {
		lats[i] = r.Lat
		longs[i] = r.Long
	}
	return stat.Mean(lats, nil), stat.Mean(longs, nil)
}
