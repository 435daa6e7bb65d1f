package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mdivincenzo/macrocoach/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != config.DefaultModel {
		t.Fatalf("expected default model, got %q", cfg.Model)
	}
	if cfg.MaxTokens != config.DefaultMaxTokens {
		t.Fatalf("expected default max tokens, got %d", cfg.MaxTokens)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validate to fail without api key")
	}
}

func TestEnvKeyOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_key: from-file\nmodel: m1\nmax_tokens: 99\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ANTHROPIC_API_KEY", "from-env")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Fatalf("expected env key to win, got %q", cfg.APIKey)
	}
	if cfg.Model != "m1" || cfg.MaxTokens != 99 {
		t.Fatalf("expected file values preserved, got %+v", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := config.Config{APIKey: "k", Model: "m", MaxTokens: 12}
	if err := config.Save(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}
