// Customer commands: the typed view over the customers list.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shopfront-io/shopfront/pkg/cache"
	"github.com/shopfront-io/shopfront/pkg/store"
	"github.com/shopfront-io/shopfront/pkg/types"
)

var customerStatusFilter string

func newCustomerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage customers",
	}
	cmd.AddCommand(newCustomerListCmd())
	cmd.AddCommand(newCustomerSetStatusCmd())
	return cmd
}

// newCustomerCache builds a typed cache for the customers endpoint.
func newCustomerCache() (*cache.Cache[types.Customer], error) {
	c, _, err := newAPIClient()
	if err != nil {
		return nil, err
	}
	path, err := types.Endpoint(types.EntityCustomers)
	if err != nil {
		return nil, err
	}
	return cache.New(c, path, func(c types.Customer) string { return c.ID }, logger), nil
}

func newCustomerListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long: `List fetches all customers and displays them.

Example:
  shopctl customer list
  shopctl customer list --status inactive
  shopctl customer list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCustomerCache()
			if err != nil {
				return err
			}
			if err := cc.FetchAll(cmdContext()); err != nil {
				return fmt.Errorf("fetch customers: %w", err)
			}

			customers := cc.Store().Snapshot()
			if customerStatusFilter != "" {
				customers = store.Filter(customers, func(c types.Customer) bool {
					return c.Status == customerStatusFilter
				})
			}

			if flags.jsonMode {
				return printJSON(cmd, customers)
			}
			printCustomerTable(cmd, customers)
			return nil
		},
	}
	cmd.Flags().StringVar(&customerStatusFilter, "status", "", "filter by status (active, inactive)")
	return cmd
}

func newCustomerSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change a customer's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, status := args[0], args[1]

			cc, err := newCustomerCache()
			if err != nil {
				return err
			}
			if err := cc.FetchAll(cmdContext()); err != nil {
				return fmt.Errorf("fetch customers: %w", err)
			}
			customer, ok := cc.Store().Get(id)
			if !ok {
				return fmt.Errorf("customer %q not found", id)
			}
			if err := customer.SetStatus(status); err != nil {
				return fmt.Errorf("set status %q: %w (valid: active, inactive)", status, err)
			}

			if _, err := cc.Update(cmdContext(), id, customer); err != nil {
				return fmt.Errorf("update customer %s: %w", id, err)
			}
			cmd.Printf("Customer %s is now %s\n", id, status)
			return nil
		},
	}
}

// printCustomerTable prints customers in a human-readable table format.
func printCustomerTable(cmd *cobra.Command, customers []types.Customer) {
	if len(customers) == 0 {
		cmd.Println("No customers found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSTATUS")
	for _, c := range customers {
		name := c.Name
		if len(name) > 32 {
			name = name[:29] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, name, c.Email, c.Status)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		if line != "" {
			cmd.Println(strings.TrimRight(line, " "))
		}
	}
	cmd.Printf("Total: %d customer(s)\n", len(customers))
}
