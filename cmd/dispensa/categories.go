package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dispensa/internal/cli"
	"dispensa/internal/inventory"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage product categories",
		Long:  `List, add, update, and delete product categories. Default categories cannot be deleted.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with their stock counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Println(cli.FormatTitle("Categories"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Products"),
				cli.HeaderStyle.Render("Total qty"),
				cli.HeaderStyle.Render("Alerts"),
				cli.HeaderStyle.Render("Default"))

			for _, cc := range store.CategoryCounts() {
				def := ""
				if cc.Category.IsDefault {
					def = cli.SubtleStyle.Render("yes")
				}
				alerts := fmt.Sprintf("%d", cc.Alerts)
				if cc.Alerts > 0 {
					alerts = cli.WarningStyle.Render(alerts)
				}
				fmt.Fprintf(w, "%s\t%s %s\t%d\t%d\t%s\t%s\n",
					cc.Category.ID, cc.Category.Icon, cc.Category.Name,
					cc.Products, cc.TotalQuantity, alerts, def)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var in inventory.CategoryInput

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Long:  `Create a category. The id is derived from the name unless --id is given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in.Name = args[0]

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := store.AddCategory(ctx, in)
			if err != nil {
				return err
			}
			fmt.Println(cli.RenderNotification(n))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.ID, "id", "", "category id (default: derived from name)")
	cmd.Flags().StringVar(&in.Icon, "icon", "", "display glyph (default 📦)")
	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var in inventory.CategoryInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category's name or icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			current, ok := store.Category(id)
			if !ok {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("category %q not found", id)))
				return nil
			}
			if !cmd.Flags().Changed("name") {
				in.Name = current.Name
			}
			if !cmd.Flags().Changed("icon") {
				in.Icon = current.Icon
			}

			n, err := store.UpdateCategory(ctx, id, in)
			if err != nil {
				return err
			}
			fmt.Println(cli.RenderNotification(n))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Icon, "icon", "", "display glyph")
	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var reassignTo string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a non-default category",
		Long: `Delete a category. A category still referenced by products is only
deleted when --reassign-to names the category that takes them over.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var n inventory.Notification
			if referenced := store.ProductsByCategory(id); len(referenced) > 0 && reassignTo != "" {
				n, err = store.ReassignProducts(ctx, id, reassignTo)
			} else {
				n, err = store.DeleteCategory(ctx, id)
			}
			if err != nil {
				return err
			}
			fmt.Println(cli.RenderNotification(n))
			return nil
		},
	}

	cmd.Flags().StringVar(&reassignTo, "reassign-to", "", "category that takes over this category's products")
	return cmd
}
