// Package config provides configuration management for adoc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/dwomick/adoc-mode/pkg/adoc"
)

// Config holds the adoc configuration. Grammar fields map onto
// adoc.GrammarConfig; Entities layers user-defined character entity names
// over the built-in table.
type Config struct {
	OutputFormat           string            `yaml:"output_format,omitempty"`
	TitleMaxLevel          int               `yaml:"title_max_level"`
	UnderlineDiffThreshold int               `yaml:"underline_diff_threshold"`
	UnderlineDisableLength int               `yaml:"underline_disable_length,omitempty"`
	SpecialWords           []string          `yaml:"special_words,omitempty"`
	Entities               map[string]string `yaml:"entities,omitempty"`
}

// Default returns the stock configuration.
func Default() *Config {
	g := adoc.DefaultGrammar()
	return &Config{
		OutputFormat:           "table",
		TitleMaxLevel:          g.TitleMaxLevel,
		UnderlineDiffThreshold: g.UnderlineDiffThreshold,
		UnderlineDisableLength: g.UnderlineDisableLength,
	}
}

// ToGrammar converts the configuration into a grammar for the classifier.
func (c *Config) ToGrammar() adoc.GrammarConfig {
	g := adoc.DefaultGrammar()
	g.TitleMaxLevel = c.TitleMaxLevel
	g.UnderlineDiffThreshold = c.UnderlineDiffThreshold
	g.UnderlineDisableLength = c.UnderlineDisableLength
	g.SpecialWords = c.SpecialWords
	return g
}

// EntityResolver builds the character entity resolver: user-defined entities
// shadow the built-in table. Entity values must be a single rune.
func (c *Config) EntityResolver() adoc.Resolver {
	if len(c.Entities) == 0 {
		return adoc.MapResolver(adoc.BuiltinEntities)
	}
	custom := make(map[string]rune, len(c.Entities))
	for name, v := range c.Entities {
		r, size := utf8.DecodeRuneInString(v)
		if size == 0 || r == utf8.RuneError {
			continue
		}
		custom[name] = r
	}
	return adoc.MapResolver(adoc.BuiltinEntities, custom)
}

// Validate checks that the configuration describes a usable grammar.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "", "table", "json", "plain":
	default:
		return fmt.Errorf("invalid output_format %q: must be table, json, or plain", c.OutputFormat)
	}
	if err := c.ToGrammar().Validate(); err != nil {
		return err
	}
	for name, v := range c.Entities {
		if name == "" {
			return fmt.Errorf("entity with empty name")
		}
		if utf8.RuneCountInString(v) != 1 {
			return fmt.Errorf("entity %q must map to exactly one character, got %q", name, v)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if f := os.Getenv("ADOC_OUTPUT_FORMAT"); f != "" {
		c.OutputFormat = f
	}
	if v := os.Getenv("ADOC_TITLE_MAX_LEVEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TitleMaxLevel = n
		}
	}
	if v := os.Getenv("ADOC_UNDERLINE_DIFF_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UnderlineDiffThreshold = n
		}
	}
	if v := os.Getenv("ADOC_UNDERLINE_DISABLE_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UnderlineDisableLength = n
		}
	}
	if v := os.Getenv("ADOC_SPECIAL_WORDS"); v != "" {
		words := strings.Split(v, ",")
		c.SpecialWords = c.SpecialWords[:0]
		for _, w := range words {
			if w = strings.TrimSpace(w); w != "" {
				c.SpecialWords = append(c.SpecialWords, w)
			}
		}
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "adoc", "config.yml")
	}

	// Fall back to ~/.config/adoc/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".adoc", "config.yml")
	}

	return filepath.Join(home, ".config", "adoc", "config.yml")
}

// ResolvePath returns the explicit path when one was given, otherwise the
// default config file location. Commands pass the --config flag value here.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return DefaultConfigPath()
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file falls back to defaults.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = Default()
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
