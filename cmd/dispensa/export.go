package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dispensa/internal/cli"
)

func exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the product collection",
		Long: `Export products as a JSON dump (full fidelity, re-importable) or as a
CSV table (spreadsheet-friendly, includes the derived status, not meant
to round-trip).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var data []byte
			switch format {
			case "json":
				data, err = store.ExportJSON()
			case "csv":
				data, err = store.ExportCSV()
			default:
				return fmt.Errorf("invalid export format: %s", format)
			}
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("stock_export_%s.%s", time.Now().Format("2006-01-02"), format)
			}
			if output == "-" {
				fmt.Print(string(data))
				return nil
			}

			if err := os.WriteFile(output, data, 0600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("%s exported %d products to %s",
				cli.SuccessIcon, store.TotalItems(), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "export format (json, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stock_export_<date>.<ext>, - for stdout)")
	return cmd
}
