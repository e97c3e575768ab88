// Package config manages the molbridge configuration file. It handles
// loading, saving, and initializing the per-user configuration that points
// the CLI at a running PyMOL RPC server.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	ConfigDirName = "molbridge"
	ConfigFile    = "config.toml"

	// EnvConfigPath overrides the configuration file location.
	EnvConfigPath = "MOLBRIDGE_CONFIG"

	DefaultRPCAddress = "localhost:9123"
)

// Config represents the molbridge configuration
type Config struct {
	RPCAddress string `toml:"rpc_address"`
	LogLevel   string `toml:"log_level"`

	path string // path to the loaded config file
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RPCAddress: DefaultRPCAddress,
		LogLevel:   "info",
	}
}

// Path returns the configuration file location: the EnvConfigPath override,
// or config.toml under the user's config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigDirName, ConfigFile), nil
}

// Load loads the configuration file. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		cfg.path = path
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.path = path
	return cfg, nil
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(c.path, data, 0644)
}

// Initialize writes a new configuration file with the given RPC address.
func Initialize(rpcAddress string) (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if rpcAddress != "" {
		cfg.RPCAddress = rpcAddress
	}
	cfg.path = path

	if err := cfg.Save(); err != nil {
		return nil, err
	}
	return cfg, nil
}
