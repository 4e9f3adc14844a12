package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the complete yumbridge configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Output  OutputConfig  `toml:"output"`
	Yum     YumConfig     `toml:"yum"`
	History HistoryConfig `toml:"history"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// AutoConfirm skips confirmation prompts when true (like -y flag).
	AutoConfirm bool `toml:"auto_confirm"`

	// DryRun shows what would happen without executing when true.
	DryRun bool `toml:"dry_run"`

	// Refresh cleans the cached metadata before install and upgrade
	// operations unless the command line says otherwise.
	Refresh bool `toml:"refresh"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`

	// VersionsAsList renders one row per installed version instead of
	// joining multi-version packages with commas.
	VersionsAsList bool `toml:"versions_as_list"`
}

// YumConfig contains settings passed through to the tool.
type YumConfig struct {
	// SkipGPGCheck disables package signature verification.
	SkipGPGCheck bool `toml:"skip_gpg_check"`

	// FromRepo restricts operations to a single repository.
	FromRepo string `toml:"from_repo"`

	// EnableRepo enables an otherwise disabled repository.
	EnableRepo string `toml:"enable_repo"`

	// DisableRepo disables an otherwise enabled repository.
	DisableRepo string `toml:"disable_repo"`
}

// HistoryConfig controls the operation journal.
type HistoryConfig struct {
	// Enabled records mutating operations in the journal.
	Enabled bool `toml:"enabled"`

	// Keep bounds how many journal entries Prune retains.
	Keep int `toml:"keep"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			AutoConfirm: false,
			DryRun:      false,
			Refresh:     false,
		},
		Output: OutputConfig{
			Color:   true,
			Verbose: false,
		},
		Yum: YumConfig{},
		History: HistoryConfig{
			Enabled: true,
			Keep:    200,
		},
	}
}

// Load loads the configuration from the default path.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}

// IsTrue coerces loosely typed flag values to a boolean. Numbers are
// true when non-zero; the strings "true", "yes", "on" and "1" are true
// regardless of case; everything else is false.
func IsTrue(value string) bool {
	v := strings.TrimSpace(strings.ToLower(value))
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n != 0
	}
	switch v {
	case "true", "yes", "on":
		return true
	}
	return false
}
