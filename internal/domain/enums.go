package domain

// Category classifies an inventory food item.
type Category string

const (
	CategoryFood        Category = "food"
	CategorySupplements Category = "supplements"
	CategoryBar         Category = "bar"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategorySupplements, CategoryBar:
		return true
	}
	return false
}

// legacyCategories maps retired category values to their current equivalent.
// Earlier releases split food storage into fridge and pantry.
var legacyCategories = map[Category]Category{
	"fridge": CategoryFood,
	"pantry": CategoryFood,
}

// NormalizeCategory remaps legacy category values and defaults anything
// unknown (including the empty string) to CategoryFood.
func NormalizeCategory(c Category) Category {
	if c.IsValid() {
		return c
	}
	if mapped, ok := legacyCategories[c]; ok {
		return mapped
	}
	return CategoryFood
}

// EquipmentKind classifies an equipment item.
type EquipmentKind string

const (
	EquipmentGym     EquipmentKind = "gym"
	EquipmentUtensil EquipmentKind = "utensil"
)

func (k EquipmentKind) String() string { return string(k) }

func (k EquipmentKind) IsValid() bool {
	switch k {
	case EquipmentGym, EquipmentUtensil:
		return true
	}
	return false
}

// MealSlot is one of the four fixed partitions of a day's logged food.
type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
	MealSnack     MealSlot = "snack"
)

// MealSlots lists all slots in display order.
var MealSlots = []MealSlot{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (s MealSlot) String() string { return string(s) }

func (s MealSlot) IsValid() bool {
	switch s {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// ActivityLevel describes habitual physical activity, used for TDEE estimation.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityVery      ActivityLevel = "very"
)

func (a ActivityLevel) String() string { return string(a) }

func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVery:
		return true
	}
	return false
}
