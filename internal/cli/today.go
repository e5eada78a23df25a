package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/internal/tracker"
)

var todayInsights bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against your goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			trk.ResetSupplementsIfStale()

			data := trk.Get()
			date := domain.Today()
			totals := data.DailyTotals(date)
			goals := data.Goals.DailyNutrients

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Today (%s)\n", date)
			fmt.Fprintf(out, "  Calories %7.0f / %.0f kcal\n", totals.Calories, goals.Calories)
			fmt.Fprintf(out, "  Protein  %7.1f / %.0f g\n", totals.Protein, goals.Protein)
			fmt.Fprintf(out, "  Carbs    %7.1f / %.0f g\n", totals.Carbs, goals.Carbs)
			fmt.Fprintf(out, "  Fat      %7.1f / %.0f g\n", totals.Fat, goals.Fat)
			fmt.Fprintf(out, "  Fiber    %7.1f / %.0f g\n", totals.Fiber, goals.Fiber)
			fmt.Fprintf(out, "  Sodium   %7.0f / %.0f mg\n", totals.Sodium, goals.Sodium)

			if log, ok := data.MealLogFor(date); ok {
				for _, slot := range domain.MealSlots {
					for _, food := range log.Meals[slot] {
						fmt.Fprintf(out, "  %-9s %s (%.0f kcal)\n", slot+":", food.Name, food.Nutrients.Calories)
					}
				}
			}

			if todayInsights {
				summary := map[string]any{
					"date":   date,
					"totals": totals,
					"goals":  goals,
					"weight": latestValue(data.WeightHistory),
				}
				raw, err := json.Marshal(summary)
				if err != nil {
					return fmt.Errorf("marshal summary: %w", err)
				}
				res := newAssistant(cfg).DailyInsights(ctx, string(raw))
				fmt.Fprintf(out, "\n%s\n", res.Value)
			}
			return nil
		})
	},
}

func latestValue(history []domain.BodyMetric) float64 {
	if m, ok := domain.LatestMetric(history); ok {
		return m.Value
	}
	return 0
}

func init() {
	todayCmd.Flags().BoolVar(&todayInsights, "insights", false, "Add AI coach feedback")
	rootCmd.AddCommand(todayCmd)
}
