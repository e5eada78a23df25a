package ai

import (
	"context"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"github.com/ignishealth/ignis/internal/domain"
)

// Assistant talks to the generative model behind every AI feature.
// It never returns an error to callers: each method yields a Result
// whose OK flag says whether the model answered, with a safe fallback
// value otherwise.
type Assistant struct {
	log     *slog.Logger
	client  anthropic.Client
	model   anthropic.Model
	enabled bool
}

// NewAssistant builds an assistant for the given API key and model.
// An empty key produces a disabled assistant whose methods return
// fallbacks immediately. Extra request options (base URL overrides in
// tests) are passed through to the SDK client.
func NewAssistant(logger *slog.Logger, apiKey, model string, opts ...option.RequestOption) *Assistant {
	a := &Assistant{
		log:     logger,
		model:   anthropic.Model(model),
		enabled: apiKey != "",
	}
	if a.enabled {
		a.client = anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	}
	return a
}

// Enabled reports whether an API key is configured.
func (a *Assistant) Enabled() bool { return a.enabled }

// GenerateRecipes suggests two recipes from the available ingredients.
// Returns an empty slice with OK=false when the model is unavailable.
func (a *Assistant) GenerateRecipes(ctx context.Context, ingredients []string, preferences string, cheatMode bool) Result[[]domain.Recipe] {
	var recipes []domain.Recipe
	if err := a.complete(ctx, "recipes", recipesPrompt(ingredients, preferences, cheatMode), &recipes); err != nil {
		return fallback([]domain.Recipe{})
	}
	return ok(recipes)
}

// GenerateWorkout designs a single workout session for the given setup.
func (a *Assistant) GenerateWorkout(ctx context.Context, location string, equipment []string, focus, duration, intensity string) Result[domain.Workout] {
	var workout domain.Workout
	if err := a.complete(ctx, "workout", workoutPrompt(location, equipment, focus, duration, intensity), &workout); err != nil {
		return fallback(domain.Workout{})
	}
	return ok(workout)
}

// DailyInsights turns a JSON summary of today's logs into a short piece
// of coach feedback. The fallback is a canned encouragement line.
func (a *Assistant) DailyInsights(ctx context.Context, summaryJSON string) Result[string] {
	raw, err := a.send(ctx, insightsPrompt(summaryJSON))
	if err != nil {
		a.log.Warn("ai call failed", slog.String("feature", "insights"), slog.String("error", err.Error()))
		return fallback("Keep logging your meals and metrics. Consistency beats perfection.")
	}
	return ok(raw)
}

// EstimateNutrition guesses the nutrients in a named food at the given
// quantity. Used by quick and voice logging.
func (a *Assistant) EstimateNutrition(ctx context.Context, name, quantity string) Result[domain.Nutrients] {
	var n domain.Nutrients
	if err := a.complete(ctx, "nutrition", nutritionPrompt(name, quantity), &n); err != nil {
		return fallback(domain.Nutrients{})
	}
	return ok(n)
}

// ScanReceipt extracts food items from a photographed grocery receipt.
// imageData is the raw base64 payload, mediaType its MIME type.
func (a *Assistant) ScanReceipt(ctx context.Context, imageData, mediaType string) Result[[]domain.FoodItem] {
	if !a.enabled {
		return fallback([]domain.FoodItem{})
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: 2048,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mediaType, imageData),
				anthropic.NewTextBlock(receiptPrompt),
			),
		},
	})
	if err != nil {
		a.log.Warn("ai call failed", slog.String("feature", "receipt"), slog.String("error", err.Error()))
		return fallback([]domain.FoodItem{})
	}

	var scanned []struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Category string `json:"category"`
	}
	if err := decodeResponse(messageText(msg), &scanned); err != nil {
		a.log.Warn("ai response unusable", slog.String("feature", "receipt"), slog.String("error", err.Error()))
		return fallback([]domain.FoodItem{})
	}

	items := make([]domain.FoodItem, 0, len(scanned))
	for _, it := range scanned {
		if it.Name == "" {
			continue
		}
		items = append(items, domain.FoodItem{
			ID:       uuid.NewString(),
			Name:     it.Name,
			Quantity: it.Quantity,
			Category: domain.NormalizeCategory(domain.Category(it.Category)),
		})
	}
	return ok(items)
}

// complete sends a text prompt and decodes the JSON payload of the
// answer into out.
func (a *Assistant) complete(ctx context.Context, feature, prompt string, out any) error {
	raw, err := a.send(ctx, prompt)
	if err != nil {
		a.log.Warn("ai call failed", slog.String("feature", feature), slog.String("error", err.Error()))
		return err
	}
	if err := decodeResponse(raw, out); err != nil {
		a.log.Warn("ai response unusable", slog.String("feature", feature), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (a *Assistant) send(ctx context.Context, prompt string) (string, error) {
	if !a.enabled {
		return "", fmt.Errorf("no API key configured")
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: 2048,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}
	text := messageText(msg)
	if text == "" {
		return "", fmt.Errorf("empty response")
	}
	return text, nil
}

func messageText(msg *anthropic.Message) string {
	if msg == nil || len(msg.Content) == 0 {
		return ""
	}
	return msg.Content[0].Text
}
