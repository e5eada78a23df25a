package domain

// Recipe is a saved or AI-generated recipe. Nutritional info is an estimate,
// never authoritative.
type Recipe struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PrepTime        string    `json:"prepTime"`
	CookTime        string    `json:"cookTime"`
	Ingredients     []string  `json:"ingredients"`
	Instructions    []string  `json:"instructions"`
	NutritionalInfo Nutrients `json:"nutritionalInfo"`
}

// WorkoutExercise is one exercise within a workout plan.
type WorkoutExercise struct {
	Name  string `json:"name"`
	Sets  string `json:"sets"`
	Reps  string `json:"reps"`
	Notes string `json:"notes,omitempty"`
}

// Workout is a saved or AI-generated workout plan.
type Workout struct {
	Name      string            `json:"name"`
	Exercises []WorkoutExercise `json:"exercises"`
}
