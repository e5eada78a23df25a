package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/internal/tracker"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log meals and body metrics for today",
}

var (
	logSlot     string
	logQuantity string
	logEstimate bool
	logVoice    string
	logFood     domain.Nutrients
)

var logFoodCmd = &cobra.Command{
	Use:   "food [name]",
	Short: "Log eaten food under a meal slot",
	Long: "Log eaten food under a meal slot. Pass the name as an argument, or\n" +
		"--voice with an audio file to transcribe the description instead.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot := domain.MealSlot(logSlot)
		if !slot.IsValid() {
			return fmt.Errorf("invalid meal slot %q (breakfast, lunch, dinner, snack)", logSlot)
		}
		if len(args) == 0 && logVoice == "" {
			return fmt.Errorf("pass a food name or --voice <audio file>")
		}

		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}

			estimate := logEstimate
			if logVoice != "" {
				audio, err := os.Open(logVoice)
				if err != nil {
					return fmt.Errorf("open audio: %w", err)
				}
				defer audio.Close()

				res := newTranscriber(cfg).Transcribe(ctx, audio, filepath.Base(logVoice))
				if !res.OK {
					return fmt.Errorf("transcription unavailable, pass the food name directly")
				}
				name = res.Value
				// A spoken description carries no macros, so always estimate.
				estimate = true
			}

			nutrients := logFood
			if estimate {
				res := newAssistant(cfg).EstimateNutrition(ctx, name, logQuantity)
				if !res.OK {
					return fmt.Errorf("nutrition estimate unavailable, pass the macros explicitly")
				}
				nutrients = res.Value
			}

			trk.ResetSupplementsIfStale()
			trk.LogFood(slot, domain.LoggedFood{Name: name, Nutrients: nutrients})
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %q (%s): %.0f kcal\n", name, slot, nutrients.Calories)
			return nil
		})
	},
}

var logWeightCmd = &cobra.Command{
	Use:   "weight <kg>",
	Short: "Record today's weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil || value <= 0 {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			trk.RecordWeight(value)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded weight %.1f kg\n", value)
			return nil
		})
	},
}

var logFatCmd = &cobra.Command{
	Use:   "fat <percent>",
	Short: "Record today's body fat percentage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil || value <= 0 || value >= 100 {
			return fmt.Errorf("invalid body fat %q", args[0])
		}
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			trk.RecordBodyFat(value)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded body fat %.1f%%\n", value)
			return nil
		})
	},
}

func init() {
	logFoodCmd.Flags().StringVarP(&logSlot, "slot", "s", "snack", "Meal slot: breakfast, lunch, dinner, snack")
	logFoodCmd.Flags().StringVarP(&logQuantity, "quantity", "q", "1 serving", "Quantity eaten")
	logFoodCmd.Flags().BoolVar(&logEstimate, "estimate", false, "Estimate macros with AI instead of passing them")
	logFoodCmd.Flags().StringVar(&logVoice, "voice", "", "Audio file to transcribe into the food description")
	logFoodCmd.Flags().Float64Var(&logFood.Calories, "calories", 0, "Calories (kcal)")
	logFoodCmd.Flags().Float64Var(&logFood.Protein, "protein", 0, "Protein (g)")
	logFoodCmd.Flags().Float64Var(&logFood.Carbs, "carbs", 0, "Carbs (g)")
	logFoodCmd.Flags().Float64Var(&logFood.Fat, "fat", 0, "Fat (g)")
	logFoodCmd.Flags().Float64Var(&logFood.Fiber, "fiber", 0, "Fiber (g)")
	logFoodCmd.Flags().Float64Var(&logFood.Sodium, "sodium", 0, "Sodium (mg)")

	logCmd.AddCommand(logFoodCmd, logWeightCmd, logFatCmd)
	rootCmd.AddCommand(logCmd)
}
