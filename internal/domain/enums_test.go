package domain

import "testing"

func TestNormalizeCategory(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   Category
		want Category
	}{
		{CategoryFood, CategoryFood},
		{CategorySupplements, CategorySupplements},
		{CategoryBar, CategoryBar},
		{"fridge", CategoryFood},
		{"pantry", CategoryFood},
		{"", CategoryFood},
		{"garage", CategoryFood},
	}

	for _, tc := range cases {
		if got := NormalizeCategory(tc.in); got != tc.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMealSlot_IsValid(t *testing.T) {
	t.Parallel()

	for _, slot := range MealSlots {
		if !slot.IsValid() {
			t.Errorf("expected %s to be valid", slot)
		}
	}
	if MealSlot("brunch").IsValid() {
		t.Error("brunch is not a meal slot")
	}
}
