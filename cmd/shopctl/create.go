// Create command: POST a new record to an entity collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createData string

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <entity>",
		Short: "Create a record",
		Long: `Create posts a new record to the entity's collection endpoint. The server
assigns the id and returns the created record.

Example:
  shopctl create customers --data '{"name":"Ann","email":"ann@example.com","status":"active"}'
  shopctl create discounts --data @discount.json
  cat giftcard.json | shopctl create gift-cards --data -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity := args[0]
			payload, err := parsePayload(createData)
			if err != nil {
				return err
			}

			cc, _, err := newRecordCache(entity)
			if err != nil {
				return err
			}
			record, err := cc.Create(cmdContext(), payload)
			if err != nil {
				return fmt.Errorf("create %s: %w", entity, err)
			}
			if flags.jsonMode {
				return printJSON(cmd, record)
			}
			cmd.Printf("Created %s %s\n", entity, record.ID())
			return nil
		},
	}
	cmd.Flags().StringVar(&createData, "data", "", "record payload: JSON object, @file, or - for stdin")
	return cmd
}
