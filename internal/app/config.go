package app

import (
	"fmt"
	"path/filepath"
)

const (
	// DefaultTablePath is the recipe table location relative to the project root.
	DefaultTablePath = "data/alchemy_recipe_table.json"
	// DefaultOutDir is the output directory relative to the project root.
	DefaultOutDir = "resources/recipes"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Root is the game project root. Asset folders are looked up under it.
	Root string
	// TablePath and OutDir are relative to Root unless absolute.
	TablePath string
	OutDir    string

	LogFormat string
	LogLevel  string
	// FailFast aborts the whole batch on the first failing recipe, before
	// any file is written.
	FailFast bool
}

// NewConfig fills in defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.TablePath == "" {
		cfg.TablePath = DefaultTablePath
	}
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	return &cfg, nil
}

// Table returns the resolved recipe table path.
func (c *Config) Table() string {
	return c.underRoot(c.TablePath)
}

// Output returns the resolved output directory.
func (c *Config) Output() string {
	return c.underRoot(c.OutDir)
}

func (c *Config) underRoot(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}
