// Config loading for the shopctl CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/shopfront-io/shopfront/internal/paths"
	"github.com/shopfront-io/shopfront/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBaseURL = "base_url"
	cfgKeyToken   = "token"
	cfgKeyTimeout = "timeout_seconds"
	cfgKeyDataDir = "data_dir"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Shopfront admin console configuration

# Base URL of the Shopfront admin API, e.g. https://store.example.com/admin/api
base_url: ""

# API token. The SHOPFRONT_TOKEN environment variable overrides this.
token: ""

# Per-request timeout in seconds (0 = default)
timeout_seconds: 0

# Data directory for offline snapshots (optional; overridable by --data-dir)
# data_dir:
`

// loadViper reads config.yaml from the resolved config directory, creating
// the directory and a default config.yaml on first run. A missing config.yaml
// is not an error.
func loadViper(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o600)
}

// loadConfig resolves directories, reads config.yaml, and applies the flag
// and environment overrides. The returned config is not yet validated;
// commands that talk to the API validate via client.New.
func loadConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadViper(configDir)
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{
		BaseURL: v.GetString(cfgKeyBaseURL),
		Token:   v.GetString(cfgKeyToken),
		Timeout: time.Duration(v.GetInt(cfgKeyTimeout)) * time.Second,
		DataDir: v.GetString(cfgKeyDataDir),
	}
	if tok := os.Getenv(paths.EnvToken); tok != "" {
		cfg.Token = tok
	}

	dataFlag := flags.dataDir
	if dataFlag == "" && cfg.DataDir != "" {
		dataFlag = cfg.DataDir
	}
	cfg.DataDir, err = paths.ResolveDataDir(dataFlag)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return cfg, nil
}
