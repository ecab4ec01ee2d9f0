// Product commands: the typed view over the product/inventory list.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shopfront-io/shopfront/pkg/cache"
	"github.com/shopfront-io/shopfront/pkg/store"
	"github.com/shopfront-io/shopfront/pkg/types"
)

var productSearch string

func newProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products and inventory",
	}
	cmd.AddCommand(newProductListCmd())
	cmd.AddCommand(newProductRestockCmd())
	return cmd
}

func newProductCache() (*cache.Cache[types.Product], error) {
	c, _, err := newAPIClient()
	if err != nil {
		return nil, err
	}
	path, err := types.Endpoint(types.EntityProducts)
	if err != nil {
		return nil, err
	}
	return cache.New(c, path, func(p types.Product) string { return p.ID }, logger), nil
}

func newProductListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products with stock levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := newProductCache()
			if err != nil {
				return err
			}
			if err := pc.FetchAll(cmdContext()); err != nil {
				return fmt.Errorf("fetch products: %w", err)
			}

			products := pc.Store().Snapshot()
			if productSearch != "" {
				needle := strings.ToLower(productSearch)
				products = store.Filter(products, func(p types.Product) bool {
					return strings.Contains(strings.ToLower(p.Name), needle) ||
						strings.Contains(strings.ToLower(p.SKU), needle)
				})
			}

			if flags.jsonMode {
				return printJSON(cmd, products)
			}
			printProductTable(cmd, products)
			return nil
		},
	}
	cmd.Flags().StringVar(&productSearch, "search", "", "filter by name or SKU")
	return cmd
}

func newProductRestockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restock <id> <delta>",
		Short: "Adjust a product's stock count",
		Long: `Restock adds delta to the product's stock (negative to deduct).

Example:
  shopctl product restock p-3 25
  shopctl product restock p-3 -- -4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("delta must be an integer: %q", args[1])
			}

			pc, err := newProductCache()
			if err != nil {
				return err
			}
			if err := pc.FetchAll(cmdContext()); err != nil {
				return fmt.Errorf("fetch products: %w", err)
			}
			product, ok := pc.Store().Get(id)
			if !ok {
				return fmt.Errorf("product %q not found", id)
			}
			if err := product.Restock(delta); err != nil {
				return fmt.Errorf("restock by %d: %w (current stock %d)", delta, err, product.Stock)
			}

			updated, err := pc.Update(cmdContext(), id, product)
			if err != nil {
				return fmt.Errorf("update product %s: %w", id, err)
			}
			cmd.Printf("Product %s stock is now %d\n", id, updated.Stock)
			return nil
		},
	}
}

// printProductTable prints products in a human-readable table format.
func printProductTable(cmd *cobra.Command, products []types.Product) {
	if len(products) == 0 {
		cmd.Println("No products found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSKU\tNAME\tPRICE\tSTOCK\tSTATUS")
	for _, p := range products {
		name := p.Name
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		price := fmt.Sprintf("%.2f %s", float64(p.PriceCents)/100, p.Currency)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", p.ID, p.SKU, name, price, p.Stock, p.Status)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		if line != "" {
			cmd.Println(strings.TrimRight(line, " "))
		}
	}
	cmd.Printf("Total: %d product(s)\n", len(products))
}
