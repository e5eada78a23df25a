package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/tracker"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as JSON (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			if len(args) == 0 {
				return trk.Export(cmd.OutOrStdout())
			}
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			if err := trk.Export(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data with a previously exported backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()
			if err := trk.Import(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", args[0])
			return nil
		})
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push local data to the sync server now",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			if trk.Status() != tracker.StatusAuthenticated {
				return fmt.Errorf("not logged in, run `ignis login` first")
			}
			if err := trk.SyncNow(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Synced.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd, syncCmd)
}
