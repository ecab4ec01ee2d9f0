// Get command: show a single record by id, found locally in the fetched (or
// snapshotted) collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getOffline bool

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <entity> <id>",
		Short: "Show one record by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, id := args[0], args[1]
			if err := requireEntity(entity); err != nil {
				return err
			}

			records, err := loadRecords(entity, getOffline)
			if err != nil {
				return err
			}
			for _, rec := range records {
				if rec.ID() == id {
					return printJSON(cmd, rec)
				}
			}
			return fmt.Errorf("%s %q not found", entity, id)
		},
	}
	cmd.Flags().BoolVar(&getOffline, "offline", false, "read the local snapshot instead of the API")
	return cmd
}
