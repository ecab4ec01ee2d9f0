// Export command: write the local snapshot of an entity type to JSONL.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportOut string

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <entity>",
		Short: "Export the local snapshot to a JSONL file",
		Long: `Export writes the last saved snapshot of an entity type as JSON Lines,
one record per line. Run a list first (or import) to populate the snapshot.

Example:
  shopctl list customers
  shopctl export customers --out customers.jsonl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity := args[0]
			if err := requireEntity(entity); err != nil {
				return err
			}
			out := exportOut
			if out == "" {
				out = entity + ".jsonl"
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

			if err := snaps.ExportJSONL(entity, out); err != nil {
				return fmt.Errorf("export %s: %w", entity, err)
			}
			cmd.Printf("Exported %s snapshot to %s\n", entity, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&exportOut, "out", "", "output file (default: <entity>.jsonl)")
	return cmd
}
