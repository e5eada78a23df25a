package domain

// SupplementLog records which supplement inventory items were taken on a
// single date. The record is meaningful for one day only: a stored date
// that differs from the current date means the selection is stale.
type SupplementLog struct {
	Date         string   `json:"date"` // YYYY-MM-DD
	TakenItemIDs []string `json:"takenItemIds"`
}

// IsStale reports whether the record belongs to a day other than today.
func (s SupplementLog) IsStale(today string) bool {
	return s.Date != today
}

// EmptyForDate returns a fresh record with no items taken.
func EmptyForDate(date string) SupplementLog {
	return SupplementLog{Date: date, TakenItemIDs: []string{}}
}
