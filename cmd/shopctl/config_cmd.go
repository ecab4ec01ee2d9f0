// Config commands: show and edit the console's settings file.
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopfront-io/shopfront/internal/paths"
)

// settableKeys are the config.yaml keys "config set" accepts.
var settableKeys = []string{cfgKeyBaseURL, cfgKeyToken, cfgKeyTimeout, cfgKeyDataDir}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change console settings",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if flags.jsonMode {
				redacted := cfg
				if redacted.Token != "" {
					redacted.Token = "(set)"
				}
				return printJSON(cmd, redacted)
			}

			cmd.Printf("base_url:        %s\n", orUnset(cfg.BaseURL))
			token := "(unset)"
			if cfg.Token != "" {
				token = "(set)"
			}
			cmd.Printf("token:           %s\n", token)
			cmd.Printf("timeout:         %s\n", cfg.EffectiveTimeout())
			cmd.Printf("data_dir:        %s\n", cfg.DataDir)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one configuration key",
		Long: `Set writes one key to config.yaml in the config directory.

Keys: ` + strings.Join(settableKeys, ", ") + `

Example:
  shopctl config set base_url https://store.example.com/admin/api
  shopctl config set timeout_seconds 30`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !isSettableKey(key) {
				return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(settableKeys, ", "))
			}

			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			v, err := loadViper(configDir)
			if err != nil {
				return err
			}
			v.Set(key, value)
			if err := v.WriteConfigAs(filepath.Join(configDir, configFileExt)); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			cmd.Printf("Set %s\n", key)
			return nil
		},
	}
}

func isSettableKey(key string) bool {
	for _, k := range settableKeys {
		if k == key {
			return true
		}
	}
	return false
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
