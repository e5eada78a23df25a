package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/internal/tracker"
)

var setupInput domain.ProfileInput
var setupActivity string

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Complete your profile and derive daily nutrition goals",
	Long: "Complete your profile. The answers derive daily calorie and macro\n" +
		"goals and record your starting weight; rerun to recalculate later.",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupInput.ActivityLevel = domain.ActivityLevel(setupActivity)
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			if err := trk.CompleteProfile(setupInput); err != nil {
				return err
			}
			goals := trk.Get().Goals
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Profile complete. Daily goals:")
			fmt.Fprintf(out, "  calories %.0f kcal, protein %.0f g, carbs %.0f g, fat %.0f g\n",
				goals.DailyNutrients.Calories, goals.DailyNutrients.Protein,
				goals.DailyNutrients.Carbs, goals.DailyNutrients.Fat)
			fmt.Fprintf(out, "  goal weight %.1f kg\n", goals.Weight)
			return nil
		})
	},
}

func init() {
	setupCmd.Flags().StringVar(&setupInput.Gender, "gender", "", "male or female")
	setupCmd.Flags().IntVar(&setupInput.Age, "age", 0, "Age in years")
	setupCmd.Flags().Float64Var(&setupInput.HeightCm, "height", 0, "Height in cm")
	setupCmd.Flags().Float64Var(&setupInput.WeightKg, "weight", 0, "Current weight in kg")
	setupCmd.Flags().Float64Var(&setupInput.BodyFatPct, "bodyfat", 0, "Body fat percent, if measured")
	setupCmd.Flags().StringVar(&setupActivity, "activity", "moderate", "Activity level: sedentary, light, moderate, active, very")
	setupCmd.Flags().Float64Var(&setupInput.GoalWeightKg, "goal-weight", 0, "Target weight in kg (default: current weight)")
	setupCmd.MarkFlagRequired("gender")
	setupCmd.MarkFlagRequired("age")
	setupCmd.MarkFlagRequired("height")
	setupCmd.MarkFlagRequired("weight")

	rootCmd.AddCommand(setupCmd)
}
