// Package config holds the YAML-backed application configuration.
// Configuration is read once at startup and passed around as a value;
// nothing mutates it mid-run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/macsweep/macsweep/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// MaxDepth bounds how many directory levels below the scan root are
	// descended into.
	MaxDepth int `yaml:"max_depth"`

	// QuickScanPaths are the well-known roots scanned in quick mode.
	// Entries may start with "~" and are expanded against the home
	// directory; roots that do not exist are skipped.
	QuickScanPaths []string `yaml:"quick_scan_paths"`

	// LargeFileSize is the large-file fallback threshold, e.g. "100MB".
	LargeFileSize string `yaml:"large_file_size"`

	// OldFileDays is the old-file fallback threshold in days.
	OldFileDays int `yaml:"old_file_days"`

	DryRun  bool   `yaml:"dry_run"`
	Verbose bool   `yaml:"verbose"`
	Output  string `yaml:"output"` // default report format: summary, table, json, yaml
}

// Load loads configuration from a file, falling back to the defaults when
// the file does not exist.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Save saves configuration to a file, creating parent directories.
func Save(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must be >= 0")
	}
	if c.OldFileDays < 0 {
		return fmt.Errorf("old file days must be >= 0")
	}
	if c.LargeFileSize != "" {
		if _, err := utils.ParseSize(c.LargeFileSize); err != nil {
			return fmt.Errorf("invalid large file size %q: %w", c.LargeFileSize, err)
		}
	}
	switch c.Output {
	case "", "summary", "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return nil
}

// LargeFileBytes returns the large-file threshold in bytes.
func (c *Config) LargeFileBytes() (int64, error) {
	if c.LargeFileSize == "" {
		return 0, nil
	}
	return utils.ParseSize(c.LargeFileSize)
}

// OldFileAge returns the old-file threshold as a duration.
func (c *Config) OldFileAge() time.Duration {
	return time.Duration(c.OldFileDays) * 24 * time.Hour
}

// GetConfigPath returns the default config path.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "macsweep", "config.yaml"), nil
}

// EnsureConfigExists creates a default config file if it doesn't exist.
func EnsureConfigExists() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(GetDefault(), configPath); err != nil {
			return "", err
		}
	}

	return configPath, nil
}
