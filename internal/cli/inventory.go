package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ignishealth/ignis/internal/config"
	"github.com/ignishealth/ignis/internal/domain"
	"github.com/ignishealth/ignis/internal/tracker"
)

var inventoryCmd = &cobra.Command{
	Use:     "inventory",
	Aliases: []string{"inv"},
	Short:   "Manage the food inventory",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inventory items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			items := trk.Get().Inventory
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Inventory is empty.")
				return nil
			}
			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-30s %s\n", it.Category, it.Name, it.Quantity)
			}
			return nil
		})
	},
}

var (
	invQuantity string
	invCategory string
)

var inventoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an item to the inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := domain.NormalizeCategory(domain.Category(invCategory))
		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			trk.Update(func(d *domain.UserData) {
				d.Inventory = append(d.Inventory, domain.FoodItem{
					ID:       uuid.NewString(),
					Name:     args[0],
					Quantity: invQuantity,
					Category: category,
				})
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", args[0], category)
			return nil
		})
	},
}

var inventoryRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an item from the inventory by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		removed := false
		err := withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			trk.Update(func(d *domain.UserData) {
				kept := d.Inventory[:0]
				for _, it := range d.Inventory {
					if it.Name == args[0] && !removed {
						removed = true
						continue
					}
					kept = append(kept, it)
				}
				d.Inventory = kept
			})
			return nil
		})
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("no inventory item named %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", args[0])
		return nil
	},
}

var inventoryScanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Scan a receipt photo and add the recognized items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mediaType, err := imageMediaType(args[0])
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		encoded := base64.StdEncoding.EncodeToString(raw)

		return withTracker(func(ctx context.Context, cfg config.ClientConfig, trk *tracker.Store) error {
			res := newAssistant(cfg).ScanReceipt(ctx, encoded, mediaType)
			if !res.OK {
				return fmt.Errorf("receipt scan unavailable, add items with `ignis inventory add`")
			}
			if len(res.Value) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No food items recognized on the receipt.")
				return nil
			}

			trk.Update(func(d *domain.UserData) {
				d.Inventory = append(d.Inventory, res.Value...)
			})
			for _, it := range res.Value {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-30s %s\n", it.Category, it.Name, it.Quantity)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d item(s) to the inventory\n", len(res.Value))
			return nil
		})
	},
}

// imageMediaType maps a file extension to the media type the vision
// API expects. Unknown extensions are rejected up front, before the
// file is read or sent anywhere.
func imageMediaType(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".gif":
		return "image/gif", nil
	case ".webp":
		return "image/webp", nil
	default:
		return "", fmt.Errorf("unsupported image type %q (jpg, png, gif, webp)", filepath.Ext(path))
	}
}

func init() {
	inventoryAddCmd.Flags().StringVarP(&invQuantity, "quantity", "q", "1", "Quantity on hand")
	inventoryAddCmd.Flags().StringVarP(&invCategory, "category", "c", "food", "Category: food, supplements, bar")

	inventoryCmd.AddCommand(inventoryListCmd, inventoryAddCmd, inventoryRemoveCmd, inventoryScanCmd)
	rootCmd.AddCommand(inventoryCmd)
}
