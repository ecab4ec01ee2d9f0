package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shopfront-io/shopfront/internal/logging"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	debug     bool
	yes       bool
}

var (
	flags  rootFlags
	logger *zap.Logger
)

// newRootCmd creates the top-level "shopctl" command with global flags and
// all subcommands registered.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shopctl",
		Short: "Admin console for a Shopfront store",
		Long: `Shopctl manages the store's customers, products, discounts, gift cards,
invoices, loyalty program, returns, shipping, carriers, and orders through
the Shopfront admin API. Listings are cached client-side; search, sort, and
pagination run locally over the cached collection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(flags.debug)
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .shopfront)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory for snapshots (default: .shopfront-data)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&flags.yes, "yes", "y", false, "skip confirmation prompts")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newCreateCmd())
	root.AddCommand(newUpdateCmd())
	root.AddCommand(newDeleteCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newCustomerCmd())
	root.AddCommand(newProductCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shopctl:", err)
		return exitUserError
	}
	return exitSuccess
}
