package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel     = "claude-sonnet-4-5-20250901"
	DefaultMaxTokens = 1024
)

// Config holds the operator settings for the coach chat backend. The
// database itself needs no configuration; this file only exists so the
// Anthropic credentials and model choice survive between runs.
type Config struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// Load reads the config file at path, falling back to zero values when the
// file does not exist. The ANTHROPIC_API_KEY environment variable always
// wins over the file.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if env := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); env != "" {
		cfg.APIKey = env
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return cfg, nil
}

// Save writes the config back to path with owner-only permissions since it
// carries an API key.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("anthropic api key is not configured (set ANTHROPIC_API_KEY or run macrocoach auth set)")
	}
	return nil
}
