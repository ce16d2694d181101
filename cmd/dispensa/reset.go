package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dispensa/internal/cli"
	"dispensa/internal/inventory"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all stock data to the default catalog",
		Long: `Reset deletes the stored products and categories and re-seeds the
default catalog. This is a destructive operation; current data is lost.
It also recovers from a corrupted database.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force && !confirm("Delete all stock data and restore the defaults?") {
				fmt.Println(cli.InfoStyle.Render("aborted"))
				return nil
			}

			// Open the gateway without loading: reset must also work
			// when the stored state cannot be parsed.
			gateway, err := openGateway()
			if err != nil {
				return fmt.Errorf("failed to open storage: %w", err)
			}
			defer gateway.Close()

			store, err := inventory.NewStore(gateway)
			if err != nil {
				return err
			}
			if err := store.Reset(ctx); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"%s reset complete: %d products in %d categories",
				cli.SuccessIcon, store.TotalItems(), len(store.Categories()))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}
