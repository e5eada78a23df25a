package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserData is the root aggregate holding all of a user's persisted state.
// It is exclusively owned by the tracker's state container; the local and
// remote copies are followers, never sources of truth while the app runs.
type UserData struct {
	IsProfileComplete bool `json:"isProfileComplete"`

	Gender        string        `json:"gender"`
	Age           int           `json:"age"`
	Height        float64       `json:"height"` // cm
	ActivityLevel ActivityLevel `json:"activityLevel"`

	Goals Goals `json:"goals"`

	WeightHistory  []BodyMetric `json:"weightHistory"`
	BodyFatHistory []BodyMetric `json:"bodyFatHistory"`

	Inventory []FoodItem  `json:"inventory"`
	Equipment []Equipment `json:"equipment"`

	SavedRecipes  []Recipe  `json:"savedRecipes"`
	SavedWorkouts []Workout `json:"savedWorkouts"`

	MealLogs []MealLog `json:"mealLogs"`

	SupplementsTaken SupplementLog `json:"supplementsTaken"`
}

// Today returns the current calendar date in the aggregate's date format.
func Today() string {
	return time.Now().Format(time.DateOnly)
}

// DefaultUserData returns the aggregate created on first run, before the
// setup flow has completed.
func DefaultUserData() UserData {
	return UserData{
		Gender:        "male",
		Age:           30,
		Height:        180,
		ActivityLevel: ActivityModerate,
		Goals: Goals{
			DailyNutrients: Nutrients{
				Calories: 2000,
				Protein:  150,
				Carbs:    200,
				Fat:      60,
				Fiber:    30,
				Sodium:   2300,
			},
		},
		WeightHistory:    []BodyMetric{},
		BodyFatHistory:   []BodyMetric{},
		Inventory:        []FoodItem{},
		Equipment:        []Equipment{},
		SavedRecipes:     []Recipe{},
		SavedWorkouts:    []Workout{},
		MealLogs:         []MealLog{},
		SupplementsTaken: EmptyForDate(Today()),
	}
}

// Repair makes a persisted aggregate structurally valid: every array field
// is non-nil, inventory items missing an id or name are dropped, legacy
// category values are remapped, equipment without a kind defaults to gym,
// and every meal log carries all four slots. Values Repair does not know
// about are left as-is.
func (d *UserData) Repair() {
	if d.ActivityLevel == "" {
		d.ActivityLevel = ActivityModerate
	}

	if d.WeightHistory == nil {
		d.WeightHistory = []BodyMetric{}
	}
	if d.BodyFatHistory == nil {
		d.BodyFatHistory = []BodyMetric{}
	}
	if d.SavedRecipes == nil {
		d.SavedRecipes = []Recipe{}
	}
	if d.SavedWorkouts == nil {
		d.SavedWorkouts = []Workout{}
	}

	inventory := make([]FoodItem, 0, len(d.Inventory))
	for _, item := range d.Inventory {
		if item.ID == "" || item.Name == "" {
			continue
		}
		item.Category = NormalizeCategory(item.Category)
		inventory = append(inventory, item)
	}
	d.Inventory = inventory

	equipment := make([]Equipment, 0, len(d.Equipment))
	for _, item := range d.Equipment {
		if item.ID == "" || item.Name == "" {
			continue
		}
		if !item.Kind.IsValid() {
			item.Kind = EquipmentGym
		}
		equipment = append(equipment, item)
	}
	d.Equipment = equipment

	if d.MealLogs == nil {
		d.MealLogs = []MealLog{}
	}
	for i := range d.MealLogs {
		d.MealLogs[i].ensureSlots()
	}

	if d.SupplementsTaken.TakenItemIDs == nil {
		d.SupplementsTaken.TakenItemIDs = []string{}
	}
}

// LogFood appends a food entry to the given slot of the date's meal log,
// creating the log with empty slots if the date has none yet. This is the
// single canonical mutation path for adding nutrition data.
func (d *UserData) LogFood(slot MealSlot, food LoggedFood, date string) {
	for i := range d.MealLogs {
		if d.MealLogs[i].Date == date {
			d.MealLogs[i].ensureSlots()
			d.MealLogs[i].Meals[slot] = append(d.MealLogs[i].Meals[slot], food)
			return
		}
	}
	log := NewMealLog(uuid.NewString(), date)
	log.Meals[slot] = append(log.Meals[slot], food)
	d.MealLogs = append(d.MealLogs, log)
}

// MealLogFor returns the meal log for a date, if one exists.
func (d *UserData) MealLogFor(date string) (*MealLog, bool) {
	for i := range d.MealLogs {
		if d.MealLogs[i].Date == date {
			return &d.MealLogs[i], true
		}
	}
	return nil, false
}

// ResetSupplementsIfStale replaces the supplements-taken record with an
// empty selection for today when the stored date is not today. Returns
// true if a reset happened.
func (d *UserData) ResetSupplementsIfStale(today string) bool {
	if !d.SupplementsTaken.IsStale(today) {
		return false
	}
	d.SupplementsTaken = EmptyForDate(today)
	return true
}

// DailyTotals sums the nutrients logged on the given date.
func (d *UserData) DailyTotals(date string) Nutrients {
	if log, ok := d.MealLogFor(date); ok {
		return log.Totals()
	}
	return Nutrients{}
}
