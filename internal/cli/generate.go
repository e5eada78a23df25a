package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/internal/tracker"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate recipes and workouts with AI",
}

var (
	recipePrefs string
	recipeCheat bool
	recipeSave  bool
)

var generateRecipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Suggest recipes from your food inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			var ingredients []string
			for _, it := range trk.Get().Inventory {
				if it.Category == domain.CategoryFood {
					ingredients = append(ingredients, fmt.Sprintf("%s (%s)", it.Name, it.Quantity))
				}
			}
			if len(ingredients) == 0 {
				return fmt.Errorf("inventory has no food items, add some first")
			}

			res := newAssistant(cfg).GenerateRecipes(ctx, ingredients, recipePrefs, recipeCheat)
			if !res.OK {
				return fmt.Errorf("recipe generation unavailable")
			}

			out := cmd.OutOrStdout()
			for _, r := range res.Value {
				fmt.Fprintf(out, "%s: %s\n", r.Name, r.Description)
				fmt.Fprintf(out, "  prep %s, cook %s, %.0f kcal\n", r.PrepTime, r.CookTime, r.NutritionalInfo.Calories)
				for _, step := range r.Instructions {
					fmt.Fprintf(out, "  - %s\n", step)
				}
			}

			if recipeSave {
				recipes := res.Value
				trk.Update(func(d *domain.UserData) {
					d.SavedRecipes = append(d.SavedRecipes, recipes...)
				})
				fmt.Fprintf(out, "Saved %d recipes.\n", len(recipes))
			}
			return nil
		})
	},
}

var (
	workoutLocation  string
	workoutFocus     string
	workoutDuration  string
	workoutIntensity string
	workoutSave      bool
)

var generateWorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Design a workout from your equipment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			var equipment []string
			for _, eq := range trk.Get().Equipment {
				if eq.Kind == domain.EquipmentGym {
					equipment = append(equipment, eq.Name)
				}
			}

			res := newAssistant(cfg).GenerateWorkout(ctx, workoutLocation, equipment, workoutFocus, workoutDuration, workoutIntensity)
			if !res.OK {
				return fmt.Errorf("workout generation unavailable")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Value.Name)
			for _, ex := range res.Value.Exercises {
				fmt.Fprintf(out, "  %s: %s x %s", ex.Name, ex.Sets, ex.Reps)
				if ex.Notes != "" {
					fmt.Fprintf(out, " (%s)", ex.Notes)
				}
				fmt.Fprintln(out)
			}

			if workoutSave {
				workout := res.Value
				trk.Update(func(d *domain.UserData) {
					d.SavedWorkouts = append(d.SavedWorkouts, workout)
				})
				fmt.Fprintln(out, "Saved.")
			}
			return nil
		})
	},
}

func init() {
	generateRecipesCmd.Flags().StringVar(&recipePrefs, "prefs", "", "Dietary preferences, free text")
	generateRecipesCmd.Flags().BoolVar(&recipeCheat, "cheat", false, "Allow a few ingredients you don't have")
	generateRecipesCmd.Flags().BoolVar(&recipeSave, "save", false, "Save the suggestions")

	generateWorkoutCmd.Flags().StringVar(&workoutLocation, "location", "home", "Where you train")
	generateWorkoutCmd.Flags().StringVar(&workoutFocus, "focus", "full body", "Muscle focus")
	generateWorkoutCmd.Flags().StringVar(&workoutDuration, "duration", "45 min", "Session length")
	generateWorkoutCmd.Flags().StringVar(&workoutIntensity, "intensity", "moderate", "Intensity")
	generateWorkoutCmd.Flags().BoolVar(&workoutSave, "save", false, "Save the workout")

	generateCmd.AddCommand(generateRecipesCmd, generateWorkoutCmd)
	rootCmd.AddCommand(generateCmd)
}
