package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dispensa/internal/cli"
	"dispensa/internal/inventory"
	"dispensa/internal/model"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage stock products",
		Long:  `List, add, update, and delete products, and adjust their quantities.`,
	}

	cmd.AddCommand(listProductsCmd())
	cmd.AddCommand(addProductCmd())
	cmd.AddCommand(updateProductCmd())
	cmd.AddCommand(deleteProductCmd())
	cmd.AddCommand(adjustQuantityCmd())

	return cmd
}

func listProductsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products as a stock grid",
		Long:  `Display the stock grid, optionally filtered to a single category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store.SetFilter(category)
			products := store.FilteredProducts()

			if len(products) == 0 {
				fmt.Println(cli.InfoStyle.Render("No products found. Use 'dispensa products add' to create one."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Stock"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Qty"),
				cli.HeaderStyle.Render("Min"),
				cli.HeaderStyle.Render("Unit"),
				cli.HeaderStyle.Render("Status"))

			for _, p := range products {
				icon := model.DefaultIcon
				if c, ok := store.Category(p.Category); ok {
					icon = c.Icon
				}
				fmt.Fprintf(w, "%d\t%s\t%s %s\t%d\t%d\t%s\t%s\n",
					p.ID, p.Name, icon, p.Category,
					p.Quantity, p.MinThreshold, p.Unit,
					cli.RenderStatus(model.ProductStatus(p)))
			}

			fmt.Fprintf(w, "\n%s\n", cli.SubtleStyle.Render(
				fmt.Sprintf("%d products total", store.TotalItems())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", inventory.FilterAll, "show only this category")
	return cmd
}

func addProductCmd() *cobra.Command {
	var in inventory.ProductInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new product",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := store.AddProduct(ctx, in)
			if err != nil {
				return err
			}
			fmt.Println(cli.RenderNotification(n))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&in.Category, "category", "", "category id (required)")
	cmd.Flags().StringVar(&in.Quantity, "quantity", "", "starting quantity (default 0)")
	cmd.Flags().StringVar(&in.MinThreshold, "min", "", "minimum threshold (default 1)")
	cmd.Flags().StringVar(&in.Unit, "unit", "", "unit label (default pz)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func updateProductCmd() *cobra.Command {
	var in inventory.ProductInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Long:  `Update a product's fields. Flags that are not set keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			current, ok := store.Product(id)
			if !ok {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("product %d not found", id)))
				return nil
			}

			// Fill unset flags from the current product
			if !cmd.Flags().Changed("name") {
				in.Name = current.Name
			}
			if !cmd.Flags().Changed("category") {
				in.Category = current.Category
			}
			if !cmd.Flags().Changed("quantity") {
				in.Quantity = strconv.Itoa(current.Quantity)
			}
			if !cmd.Flags().Changed("min") {
				in.MinThreshold = strconv.Itoa(current.MinThreshold)
			}
			if !cmd.Flags().Changed("unit") {
				in.Unit = current.Unit
			}

			n, err := store.UpdateProduct(ctx, id, in)
			if err != nil {
				return err
			}
			fmt.Println(cli.RenderNotification(n))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "product name")
	cmd.Flags().StringVar(&in.Category, "category", "", "category id")
	cmd.Flags().StringVar(&in.Quantity, "quantity", "", "quantity")
	cmd.Flags().StringVar(&in.MinThreshold, "min", "", "minimum threshold")
	cmd.Flags().StringVar(&in.Unit, "unit", "", "unit label")
	return cmd
}

func deleteProductCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if p, ok := store.Product(id); ok && !yes {
				if !confirm(fmt.Sprintf("Delete product %q?", p.Name)) {
					fmt.Println(cli.InfoStyle.Render("aborted"))
					return nil
				}
			}

			n, err := store.DeleteProduct(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(cli.RenderNotification(n))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

func adjustQuantityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjust <id> <delta>",
		Short: "Adjust a product's quantity",
		Long:  `Apply a positive or negative delta to a product's quantity. Quantities never go below zero.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			delta, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil {
				return fmt.Errorf("invalid delta %q: %w", args[1], err)
			}

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := store.AdjustQuantity(ctx, id, delta)
			if err != nil {
				return err
			}
			fmt.Println(cli.RenderNotification(n))
			return nil
		},
	}
}

func parseProductID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q: %w", arg, err)
	}
	return id, nil
}
