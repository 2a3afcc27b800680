// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete configuration.
type Config struct {
	// Prompt is written before each line is read
	Prompt string `toml:"prompt" json:"prompt" yaml:"prompt"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui" yaml:"ui"`

	// Log configuration
	Log LogConfig `toml:"log" json:"log" yaml:"log"`
}

// UIConfig controls terminal behavior.
type UIConfig struct {
	// Color is "auto", "always", or "never"
	Color string `toml:"color" json:"color" yaml:"color"`
	// Terminal is "auto" (line editing when stdin is a terminal) or "never"
	Terminal string `toml:"terminal" json:"terminal" yaml:"terminal"`
	// HistorySize caps in-memory line history; 0 keeps everything
	HistorySize int `toml:"history_size" json:"history_size" yaml:"history_size"`
}

// LogConfig controls diagnostic logging. Logs never go to stdout.
type LogConfig struct {
	// Level is "off", "debug", "info", "warn", or "error"
	Level string `toml:"level" json:"level" yaml:"level"`
	// File receives log output; empty means stderr
	File string `toml:"file" json:"file" yaml:"file"`
	// JSON selects the JSON encoder instead of the console encoder
	JSON bool `toml:"json" json:"json" yaml:"json"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Terminal modes.
const (
	TerminalAuto  = "auto"
	TerminalNever = "never"
)

// LevelOff disables logging.
const LevelOff = "off"

// DefaultPrompt is the prompt used when none is configured.
const DefaultPrompt = "> "

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Prompt: DefaultPrompt,
		UI: UIConfig{
			Color:       ColorAuto,
			Terminal:    TerminalAuto,
			HistorySize: 500,
		},
		Log: LogConfig{
			Level: LevelOff,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns ~/.modal-prompt.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".modal-prompt"), nil
}

// candidatePaths lists the default config files in lookup order.
func candidatePaths() ([]string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.json"),
		filepath.Join(dir, "config.yaml"),
	}, nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the first default config file that exists, or the defaults if
// none does, then applies environment overrides and validates.
func Load() (*Config, error) {
	paths, err := candidatePaths()
	if err == nil {
		for _, path := range paths {
			if _, statErr := os.Stat(path); statErr == nil {
				return LoadFromPath(path)
			}
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath reads one config file. The extension picks the format;
// anything other than .json, .yaml, or .yml is read as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = LoadJSON(cfg, path)
	case ".yaml", ".yml":
		err = LoadYAML(cfg, path)
	default:
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadYAML decodes a YAML file over cfg.
func LoadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode YAML file: %w", err)
	}
	return nil
}

// SaveTOML writes cfg to path, creating parent directories.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT
// =============================================================================

// ApplyEnvOverrides applies MODALPROMPT_* variables.
func (c *Config) ApplyEnvOverrides() {
	// MODALPROMPT_PROMPT may be set to an empty string on purpose
	if prompt, ok := os.LookupEnv("MODALPROMPT_PROMPT"); ok {
		c.Prompt = prompt
	}

	if color := os.Getenv("MODALPROMPT_COLOR"); color != "" {
		c.UI.Color = strings.ToLower(color)
	}

	if terminal := os.Getenv("MODALPROMPT_TERMINAL"); terminal != "" {
		c.UI.Terminal = strings.ToLower(terminal)
	}

	if size := os.Getenv("MODALPROMPT_HISTORY_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			c.UI.HistorySize = n
		}
	}

	if level := os.Getenv("MODALPROMPT_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}

	if file := os.Getenv("MODALPROMPT_LOG_FILE"); file != "" {
		c.Log.File = file
	}

	if asJSON := os.Getenv("MODALPROMPT_LOG_JSON"); asJSON != "" {
		if b, err := strconv.ParseBool(asJSON); err == nil {
			c.Log.JSON = b
		}
	}
}

// SetDefaults fills fields a config file left empty.
func (c *Config) SetDefaults() {
	if c.UI.Color == "" {
		c.UI.Color = ColorAuto
	}
	if c.UI.Terminal == "" {
		c.UI.Terminal = TerminalAuto
	}
	if c.Log.Level == "" {
		c.Log.Level = LevelOff
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate returns ValidateErrors listing every invalid field, or nil.
func (c *Config) Validate() error {
	var errs ValidateErrors

	switch c.UI.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, ValidationError{Field: "ui.color", Message: fmt.Sprintf("must be auto, always, or never (got %q)", c.UI.Color)})
	}

	switch c.UI.Terminal {
	case TerminalAuto, TerminalNever:
	default:
		errs = append(errs, ValidationError{Field: "ui.terminal", Message: fmt.Sprintf("must be auto or never (got %q)", c.UI.Terminal)})
	}

	if c.UI.HistorySize < 0 {
		errs = append(errs, ValidationError{Field: "ui.history_size", Message: "must not be negative"})
	}

	switch c.Log.Level {
	case LevelOff, "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)})
	}

	if strings.ContainsAny(c.Prompt, "\n\r") {
		errs = append(errs, ValidationError{Field: "prompt", Message: "must not contain line breaks"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	var errs ValidateErrors
	return errors.As(err, &errs)
}
