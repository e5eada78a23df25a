package domain

// Nutrients holds the macro profile tracked for every logged food.
// Calories in kcal, sodium in mg, everything else in grams.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// Add returns the component-wise sum of n and other.
func (n Nutrients) Add(other Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
		Fiber:    n.Fiber + other.Fiber,
		Sodium:   n.Sodium + other.Sodium,
	}
}

// IsZero reports whether every component is zero.
func (n Nutrients) IsZero() bool {
	return n == Nutrients{}
}
