package domain

import "sort"

// BodyMetric is one measurement of a body statistic on a calendar date.
type BodyMetric struct {
	Value float64 `json:"value"`
	Date  string  `json:"date"` // YYYY-MM-DD
}

// RecordMetric inserts a measurement into a history series. A measurement
// for a date that already has an entry replaces it, so the series never
// holds two entries for the same day. The result is sorted ascending by
// date; the YYYY-MM-DD format makes lexicographic order chronological.
func RecordMetric(history []BodyMetric, value float64, date string) []BodyMetric {
	out := make([]BodyMetric, 0, len(history)+1)
	for _, m := range history {
		if m.Date != date {
			out = append(out, m)
		}
	}
	out = append(out, BodyMetric{Value: value, Date: date})
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// LatestMetric returns the most recent measurement, or zero if the series
// is empty.
func LatestMetric(history []BodyMetric) (BodyMetric, bool) {
	if len(history) == 0 {
		return BodyMetric{}, false
	}
	return history[len(history)-1], true
}
