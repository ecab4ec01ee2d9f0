package types

import (
	"errors"
	"net/url"
	"time"
)

// DefaultTimeout bounds each API round-trip when the config does not set one.
const DefaultTimeout = 15 * time.Second

// Config holds the connection parameters for the Shopfront API and the local
// data directory for snapshots.
type Config struct {
	BaseURL string        `json:"base_url" yaml:"base_url"`
	Token   string        `json:"token" yaml:"token"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	DataDir string        `json:"data_dir" yaml:"data_dir"`
}

// Config validation errors.
var (
	ErrBaseURLEmpty    = errors.New("base URL must not be empty")
	ErrBaseURLInvalid  = errors.New("base URL is not a valid http(s) URL")
	ErrTimeoutNegative = errors.New("timeout must not be negative")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. A zero Timeout is valid and means
// DefaultTimeout.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrBaseURLEmpty
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrBaseURLInvalid
	}
	if c.Timeout < 0 {
		return ErrTimeoutNegative
	}
	return nil
}

// EffectiveTimeout returns the configured timeout, or DefaultTimeout when
// unset.
func (c Config) EffectiveTimeout() time.Duration {
	if c.Timeout == 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
