package domain

// FoodItem is a single entry in the user's food inventory.
// Nutrients and SupplementFrequency are optional: most pantry items carry
// neither, supplement items usually carry both.
type FoodItem struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Quantity            string     `json:"quantity"`
	Category            Category   `json:"category"`
	Nutrients           *Nutrients `json:"nutrients,omitempty"`
	SupplementFrequency string     `json:"supplementFrequency,omitempty"`
}

// Equipment is a gym or kitchen item the user owns.
type Equipment struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Kind EquipmentKind `json:"kind"`
}
