package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/internal/tracker"
)

var supplementsCmd = &cobra.Command{
	Use:     "supplements",
	Aliases: []string{"supps"},
	Short:   "Track the daily supplement checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			trk.ResetSupplementsIfStale()
			data := trk.Get()

			listed := false
			for _, it := range data.Inventory {
				if it.Category != domain.CategorySupplements {
					continue
				}
				listed = true
				mark := " "
				if slices.Contains(data.SupplementsTaken.TakenItemIDs, it.ID) {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s", mark, it.Name)
				if it.SupplementFrequency != "" {
					fmt.Fprintf(cmd.OutOrStdout(), " (%s)", it.SupplementFrequency)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			if !listed {
				fmt.Fprintln(cmd.OutOrStdout(), "No supplements in the inventory.")
			}
			return nil
		})
	},
}

var supplementsTakeCmd = &cobra.Command{
	Use:   "take <name>",
	Short: "Mark a supplement as taken today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		found := false
		err := withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			trk.ResetSupplementsIfStale()
			trk.Update(func(d *domain.UserData) {
				for _, it := range d.Inventory {
					if it.Category != domain.CategorySupplements || it.Name != args[0] {
						continue
					}
					found = true
					if !slices.Contains(d.SupplementsTaken.TakenItemIDs, it.ID) {
						d.SupplementsTaken.TakenItemIDs = append(d.SupplementsTaken.TakenItemIDs, it.ID)
					}
				}
			})
			return nil
		})
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no supplement named %q in the inventory", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Took %q\n", args[0])
		return nil
	},
}

func init() {
	supplementsCmd.AddCommand(supplementsTakeCmd)
	rootCmd.AddCommand(supplementsCmd)
}
