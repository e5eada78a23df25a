package ai

import (
	"fmt"
	"strings"
)

func recipesPrompt(ingredients []string, preferences string, cheatMode bool) string {
	mode := "Use ONLY the ingredients listed (plus basic pantry staples: oil, salt, pepper, water)."
	if cheatMode {
		mode = "Prefer the ingredients listed, but you may add up to 3 common extra ingredients."
	}
	if preferences == "" {
		preferences = "none"
	}
	return fmt.Sprintf(`You are a nutrition-focused home cooking assistant.

Available ingredients:
%s

Dietary preferences: %s
%s

Suggest exactly 2 healthy recipes. Output ONLY a valid JSON array matching this exact schema:
[
  {
    "name": "<recipe name>",
    "description": "<one sentence>",
    "prepTime": "<e.g. 10 min>",
    "cookTime": "<e.g. 20 min>",
    "ingredients": ["<ingredient with amount>"],
    "instructions": ["<step>"],
    "nutritionalInfo": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0, "fiber": 0, "sodium": 0}
  }
]

Rules:
- nutritionalInfo values are per serving, numbers only
- Output ONLY the JSON, no markdown, no explanations`,
		"- "+strings.Join(ingredients, "\n- "), preferences, mode)
}

func workoutPrompt(location string, equipment []string, focus, duration, intensity string) string {
	gear := "bodyweight only"
	if len(equipment) > 0 {
		gear = strings.Join(equipment, ", ")
	}
	return fmt.Sprintf(`You are a personal trainer.

Design a single %s workout session.
Location: %s
Available equipment: %s
Focus: %s
Intensity: %s

Output ONLY a valid JSON object matching this exact schema:
{
  "name": "<workout name>",
  "exercises": [
    {"name": "<exercise>", "sets": "<e.g. 3>", "reps": "<e.g. 8-12 or 30s>", "notes": "<form cue>"}
  ]
}

Rules:
- Only use the listed equipment
- 4-8 exercises, ordered warmup-compatible first
- Output ONLY the JSON, no markdown, no explanations`,
		duration, location, gear, focus, intensity)
}

func insightsPrompt(summaryJSON string) string {
	return fmt.Sprintf(`You are a supportive health coach reviewing a client's day.

Today's data:
%s

Write 2-3 short sentences of practical feedback: one observation about
intake versus goals, one concrete suggestion for tomorrow. Plain text,
no lists, no JSON, no greetings.`, summaryJSON)
}

func nutritionPrompt(name, quantity string) string {
	return fmt.Sprintf(`Estimate the nutritional content of: %s (%s).

Output ONLY a valid JSON object matching this exact schema:
{"calories": 0, "protein": 0, "carbs": 0, "fat": 0, "fiber": 0, "sodium": 0}

Rules:
- Values for the stated quantity, not per 100g
- protein/carbs/fat/fiber in grams, sodium in milligrams, numbers only
- Output ONLY the JSON, no markdown, no explanations`, name, quantity)
}

const receiptPrompt = `This image is a grocery receipt. Extract the food items.

Output ONLY a valid JSON array matching this exact schema:
[
  {"name": "<item name, cleaned up>", "quantity": "<e.g. 1, 500g>", "category": "<food|supplements|bar>"}
]

Rules:
- Skip non-food lines (totals, taxes, deposits, bags)
- Expand receipt abbreviations into readable names
- Output ONLY the JSON, no markdown, no explanations`
