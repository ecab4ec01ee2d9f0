// Delete command: remove one record, with confirmation.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entity> <id>",
		Short: "Delete a record",
		Long: `Delete removes the record from the backend and the local cache. Asks for
confirmation unless --yes is given.

Example:
  shopctl delete customers c-17
  shopctl delete discounts d-9 --yes`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, id := args[0], args[1]
			if err := requireEntity(entity); err != nil {
				return err
			}
			if !confirm(fmt.Sprintf("Delete %s %s?", entity, id)) {
				cmd.Println("Aborted.")
				return nil
			}

			cc, _, err := newRecordCache(entity)
			if err != nil {
				return err
			}
			if err := cc.Remove(cmdContext(), id); err != nil {
				return fmt.Errorf("delete %s %s: %w", entity, id, err)
			}
			cmd.Printf("Deleted %s %s\n", entity, id)
			return nil
		},
	}
}
