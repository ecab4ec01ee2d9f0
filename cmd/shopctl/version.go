package main

import (
	"github.com/spf13/cobra"
)

// Version of the console. Overridable at link time.
var Version = "0.3.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("shopctl " + Version)
		},
	}
}
