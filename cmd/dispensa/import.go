package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"dispensa/internal/cli"
	"dispensa/internal/inventory"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a product collection",
		Long: `Replace the whole product collection with the contents of a .json dump
or a .csv table. The format is picked from the file extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("failed to stat import file: %w", err)
			}

			bar := progressbar.DefaultBytes(info.Size(), "importing")
			var buf bytes.Buffer
			if _, err := io.Copy(io.MultiWriter(&buf, bar), f); err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var n inventory.Notification
			switch strings.ToLower(filepath.Ext(path)) {
			case ".json":
				n, err = store.ImportJSON(ctx, buf.Bytes())
			case ".csv":
				n, err = store.ImportCSV(ctx, buf.Bytes())
			default:
				return fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
			}
			if err != nil {
				return err
			}
			fmt.Println(cli.RenderNotification(n))
			return nil
		},
	}
}
