// Update command: PUT changed fields of one record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateData string

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <entity> <id>",
		Short: "Update fields of a record",
		Long: `Update sends the given fields to the record's endpoint. Fields absent from
the payload keep their current value. The server's response body is preferred
for the cached result; when the server returns no body, the sent fields are
merged instead.

Example:
  shopctl update customers c-17 --data '{"status":"inactive"}'
  shopctl update products p-3 --data @price-change.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, id := args[0], args[1]
			payload, err := parsePayload(updateData)
			if err != nil {
				return err
			}

			cc, _, err := newRecordCache(entity)
			if err != nil {
				return err
			}
			merged, err := cc.Update(cmdContext(), id, payload)
			if err != nil {
				return fmt.Errorf("update %s %s: %w", entity, id, err)
			}
			if flags.jsonMode {
				return printJSON(cmd, merged)
			}
			cmd.Printf("Updated %s %s\n", entity, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&updateData, "data", "", "changed fields: JSON object, @file, or - for stdin")
	return cmd
}
