package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dispensa/internal/cli"
	"dispensa/internal/model"
)

func alertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show low and out-of-stock products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			alerts := store.Alerts()
			if len(alerts) == 0 {
				fmt.Println(cli.SuccessStyle.Render(cli.SuccessIcon + " No alerts, all stock is OK."))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Alerts (%d)", len(alerts))))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, a := range alerts {
				icon := cli.WarningIcon
				msg := cli.WarningStyle.Render(a.Message())
				if a.Status == model.StatusOut {
					icon = cli.AlertIcon
					msg = cli.ErrorStyle.Render(a.Message())
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					icon, a.Product.Name,
					cli.SubtleStyle.Render(a.Product.Category), msg)
			}
			return nil
		},
	}
}
