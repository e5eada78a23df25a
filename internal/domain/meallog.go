package domain

// LoggedFood is a food entry recorded in a meal slot.
type LoggedFood struct {
	Name      string    `json:"name"`
	Nutrients Nutrients `json:"nutrients"`
}

// MealLog holds everything the user ate on one calendar date, partitioned
// into the four meal slots. There is at most one MealLog per date.
type MealLog struct {
	ID    string                    `json:"id"`
	Date  string                    `json:"date"` // YYYY-MM-DD
	Meals map[MealSlot][]LoggedFood `json:"meals"`
}

// NewMealLog creates an empty log for the given date with all four slots
// present.
func NewMealLog(id, date string) MealLog {
	meals := make(map[MealSlot][]LoggedFood, len(MealSlots))
	for _, slot := range MealSlots {
		meals[slot] = []LoggedFood{}
	}
	return MealLog{ID: id, Date: date, Meals: meals}
}

// ensureSlots backfills missing slots so callers can always index the map.
func (m *MealLog) ensureSlots() {
	if m.Meals == nil {
		m.Meals = make(map[MealSlot][]LoggedFood, len(MealSlots))
	}
	for _, slot := range MealSlots {
		if m.Meals[slot] == nil {
			m.Meals[slot] = []LoggedFood{}
		}
	}
}

// Totals sums the nutrients of every entry across all slots.
func (m *MealLog) Totals() Nutrients {
	var total Nutrients
	for _, items := range m.Meals {
		for _, item := range items {
			total = total.Add(item.Nutrients)
		}
	}
	return total
}
