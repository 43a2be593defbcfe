// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for jsonlens configuration.
	DefaultConfigDir = ".jsonlens"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultHistoryFile is the default history database file name.
	DefaultHistoryFile = "history.db"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Format  FormatConfig  `yaml:"format,omitempty"`
	Snippet SnippetConfig `yaml:"snippet,omitempty"`
	History HistoryConfig `yaml:"history,omitempty"`
	SQLite  SQLiteConfig  `yaml:"sqlite,omitempty"`
}

// FormatConfig holds reformatting defaults.
type FormatConfig struct {
	// Indent is the number of spaces per indent level.
	Indent int `yaml:"indent,omitempty"`
}

// SnippetConfig holds error snippet rendering defaults.
type SnippetConfig struct {
	// ContextBefore is the number of lines shown above the error line.
	ContextBefore int `yaml:"context_before,omitempty"`
	// ContextAfter is the number of lines shown below the error line.
	ContextAfter int `yaml:"context_after,omitempty"`
}

// HistoryConfig holds operation history settings.
type HistoryConfig struct {
	// Enabled controls whether operations are recorded at all.
	Enabled bool `yaml:"enabled"`
	// Limit is the maximum number of entries retained.
	Limit int `yaml:"limit,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite history database.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database. When empty the
	// default path inside the config directory is used.
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Format: FormatConfig{
			Indent: 2,
		},
		Snippet: SnippetConfig{
			ContextBefore: 3,
			ContextAfter:  2,
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   100,
		},
	}
}

// Load loads configuration from the .jsonlens directory in the given path.
// A missing config file is not an error: defaults apply, so validate and
// format work in any directory without scaffolding.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("JSONLENS_HISTORY"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.History.Enabled = enabled
		}
	}
	if v := os.Getenv("JSONLENS_INDENT"); v != "" {
		if indent, err := strconv.Atoi(v); err == nil && indent > 0 {
			c.Format.Indent = indent
		}
	}
}

// ConfigDir returns the path to the .jsonlens config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// HistoryPath returns the path to the history database.
func HistoryPath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultHistoryFile)
}

// Exists checks if a jsonlens config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
