package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Output format names accepted in the config file and on the command line.
const (
	FormatTable   = "table"
	FormatMenubar = "menubar"
)

// Counting policy names. The empty string means "use the format's
// historical default": tracked-only for the table report, all-lines for the
// menu-bar listing.
const (
	PolicyDefault     = ""
	PolicyAllLines    = "all"
	PolicyTrackedOnly = "tracked"
)

// Config holds every knob the tool honors. It is resolved once at startup;
// components receive the values as parameters and never read the
// environment themselves.
//
// IncludeRoot is a pointer so "not set" is distinguishable from an explicit
// false: when nil, each output format keeps its historical default (the
// table report scans the root itself, the menu-bar listing does not).
type Config struct {
	DefaultRoot string `toml:"default_root"`
	Format      string `toml:"format"`
	CountPolicy string `toml:"count_policy"`
	IncludeRoot *bool  `toml:"include_root,omitempty"`
	Detailed    bool   `toml:"detailed"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Format:      FormatTable,
		CountPolicy: PolicyDefault,
	}
}

// DefaultPath returns the config file location under the user config
// directory, falling back to a dot directory in the home directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gitscan", "config.toml")
}

// Load reads the config file at path. A missing file yields the defaults; a
// malformed file is an error so a typo never silently changes counting
// semantics.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.DefaultRoot = expandHome(cfg.DefaultRoot)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects unknown format and policy names.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatMenubar:
	default:
		return fmt.Errorf("unknown format %q (want %q or %q)", c.Format, FormatTable, FormatMenubar)
	}
	switch c.CountPolicy {
	case PolicyDefault, PolicyAllLines, PolicyTrackedOnly:
	default:
		return fmt.Errorf("unknown count policy %q (want %q or %q)", c.CountPolicy, PolicyAllLines, PolicyTrackedOnly)
	}
	return nil
}

// expandHome resolves a leading "~/" against the home directory so paths
// like ~/GitHub work as a default root.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
