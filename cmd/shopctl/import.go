// Import command: seed the local snapshot of an entity type from JSONL.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <entity> <file>",
		Short: "Import a JSONL file into the local snapshot",
		Long: `Import replaces the local snapshot of an entity type with the records read
from a JSONL file. Lines that are not JSON objects with an id are skipped.
The backend is not touched; use create/update to push records.

Example:
  shopctl import customers customers.jsonl
  shopctl list customers --offline`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, file := args[0], args[1]
			if err := requireEntity(entity); err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			snaps, err := openSnapshots(cfg)
			if err != nil {
				return err
			}
			defer snaps.Close()

			n, err := snaps.ImportJSONL(entity, file)
			if err != nil {
				return fmt.Errorf("import %s: %w", entity, err)
			}
			cmd.Printf("Imported %d record(s) into the %s snapshot\n", n, entity)
			return nil
		},
	}
}
