// Package paths resolves configuration and data directory locations for the
// shopctl CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names used when no override is given.
const (
	DefaultConfigDirName = ".shopfront"
	DefaultDataDirName   = ".shopfront-data"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SHOPFRONT_CONFIG_DIR"
	EnvDataDir   = "SHOPFRONT_DATA_DIR"
	EnvToken     = "SHOPFRONT_TOKEN"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/shopfront (fallback ~/.config/shopfront)
// macOS:   ~/Library/Application Support/shopfront
// Windows: %APPDATA%/shopfront
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "shopfront"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "shopfront"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "shopfront"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory where
// snapshots live.
//
// Linux:   $XDG_DATA_HOME/shopfront (fallback ~/.local/share/shopfront)
// macOS:   ~/Library/Application Support/shopfront
// Windows: %APPDATA%/shopfront
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "shopfront"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "shopfront"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "shopfront"), nil
	}
}

// ResolveConfigDir picks the config directory: the flag value when set, then
// the environment override, then the CWD-relative default when it exists,
// then the platform default.
func ResolveConfigDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := os.Getenv(EnvConfigDir); v != "" {
		return v, nil
	}
	if info, err := os.Stat(DefaultConfigDirName); err == nil && info.IsDir() {
		return DefaultConfigDirName, nil
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks the data directory with the same precedence as
// ResolveConfigDir: flag, environment, CWD-relative default when present,
// platform default.
func ResolveDataDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		return v, nil
	}
	if info, err := os.Stat(DefaultDataDirName); err == nil && info.IsDir() {
		return DefaultDataDirName, nil
	}
	return DefaultDataDir()
}
