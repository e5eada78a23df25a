package domain

import "math"

// Goals holds the user's body and daily nutrition targets.
type Goals struct {
	Weight         float64   `json:"weight"`  // kg
	BodyFat        float64   `json:"bodyFat"` // percent
	DailyNutrients Nutrients `json:"dailyNutrients"`
}

// activityMultipliers are the standard TDEE factors per activity level.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityActive:    1.725,
	ActivityVery:      1.9,
}

// DeriveDailyNutrients computes default daily nutrient targets from profile
// data using the Mifflin-St Jeor equation: BMR scaled by an activity
// multiplier, protein at 2 g per kg of target weight, fat at 25% of
// calories, the rest as carbs. Fiber and sodium use the fixed defaults.
// The result is a starting point the user can override during setup.
func DeriveDailyNutrients(gender string, age int, heightCm float64, weightKg float64, level ActivityLevel) Nutrients {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "female" {
		bmr -= 161
	} else {
		bmr += 5
	}

	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[ActivityModerate]
	}
	calories := math.Round(bmr * mult)

	protein := math.Round(2 * weightKg)
	fat := math.Round(calories * 0.25 / 9)
	carbs := math.Round((calories - protein*4 - fat*9) / 4)
	if carbs < 0 {
		carbs = 0
	}

	return Nutrients{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    30,
		Sodium:   2300,
	}
}

// ProfileInput is what the setup flow collects.
type ProfileInput struct {
	Gender        string
	Age           int
	HeightCm      float64
	WeightKg      float64
	BodyFatPct    float64 // 0 = not measured
	ActivityLevel ActivityLevel
	GoalWeightKg  float64 // 0 = maintain current weight
}

// Validate checks the setup inputs.
func (in ProfileInput) Validate() error {
	if in.Gender != "male" && in.Gender != "female" {
		return NewValidationError("gender", "must be male or female")
	}
	if in.Age < 13 || in.Age > 120 {
		return NewValidationError("age", "must be between 13 and 120")
	}
	if in.HeightCm < 90 || in.HeightCm > 250 {
		return NewValidationError("height", "must be between 90 and 250 cm")
	}
	if in.WeightKg < 25 || in.WeightKg > 400 {
		return NewValidationError("weight", "must be between 25 and 400 kg")
	}
	if in.BodyFatPct < 0 || in.BodyFatPct >= 100 {
		return NewValidationError("bodyFat", "must be between 0 and 100 percent")
	}
	if !in.ActivityLevel.IsValid() {
		return NewValidationError("activityLevel", "unknown activity level")
	}
	return nil
}

// CompleteProfile applies the setup flow: stores the profile fields,
// derives daily nutrition goals, records the starting measurements under
// date, and marks the profile complete. Callers validate the input first.
func (d *UserData) CompleteProfile(in ProfileInput, date string) {
	d.Gender = in.Gender
	d.Age = in.Age
	d.Height = in.HeightCm
	d.ActivityLevel = in.ActivityLevel

	goalWeight := in.GoalWeightKg
	if goalWeight == 0 {
		goalWeight = in.WeightKg
	}
	d.Goals.Weight = goalWeight
	d.Goals.DailyNutrients = DeriveDailyNutrients(in.Gender, in.Age, in.HeightCm, in.WeightKg, in.ActivityLevel)

	d.WeightHistory = RecordMetric(d.WeightHistory, in.WeightKg, date)
	if in.BodyFatPct > 0 {
		d.BodyFatHistory = RecordMetric(d.BodyFatHistory, in.BodyFatPct, date)
		d.Goals.BodyFat = in.BodyFatPct
	}

	d.IsProfileComplete = true
}
