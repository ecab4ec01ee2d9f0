// Browse command: the interactive entity browser.
package main

import (
	"github.com/spf13/cobra"

	"github.com/shopfront-io/shopfront/internal/browse"
)

var browsePageSize int

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <entity>",
		Short: "Browse an entity collection interactively",
		Long: `Browse opens a terminal view over one entity collection with local search
and pagination. Keys: / search, esc clear, n/p page, r refresh, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity := args[0]
			cc, _, err := newRecordCache(entity)
			if err != nil {
				return err
			}
			return browse.Run(cc, entity, browsePageSize)
		},
	}
	cmd.Flags().IntVar(&browsePageSize, "page-size", 15, "records per page")
	return cmd
}
