package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"textkit/internal/config"
	"textkit/internal/textutil"
)

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "textkit", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Length.Min != 1 || cfg.Length.Max != 1000 {
		t.Fatalf("unexpected length defaults: %+v", cfg.Length)
	}
	if !cfg.Sanitize.AllowNumbers || !cfg.Sanitize.AllowSpaces {
		t.Fatalf("expected numbers and spaces allowed by default: %+v", cfg.Sanitize)
	}
	if cfg.Sanitize.AllowedSpecialChars != "" {
		t.Fatalf("expected no special characters by default, got %q", cfg.Sanitize.AllowedSpecialChars)
	}
	if cfg.Normalization() != textutil.NormalizeNone {
		t.Fatalf("unexpected normalization %q", cfg.Normalization())
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadFromExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "textkit.toml")
	content := `
[length]
min = 3
max = 12

[sanitize]
allow_numbers = false
allowed_special_chars = "@#"

[input]
normalization = " NFKC "

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected explicit path to be used, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Length.Min != 3 || cfg.Length.Max != 12 {
		t.Fatalf("unexpected length: %+v", cfg.Length)
	}
	if cfg.Sanitize.AllowNumbers {
		t.Fatal("expected allow_numbers=false from file")
	}
	if !cfg.Sanitize.AllowSpaces {
		t.Fatal("expected allow_spaces to keep its default")
	}
	if cfg.Sanitize.AllowedSpecialChars != "@#" {
		t.Fatalf("unexpected special chars %q", cfg.Sanitize.AllowedSpecialChars)
	}
	if cfg.Normalization() != textutil.NormalizeNFKC {
		t.Fatalf("unexpected normalization %q", cfg.Input.Normalization)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
}

func TestLoadFallsBackToProjectFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "textkit.toml"), []byte("[length]\nmax = 50\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "textkit.toml" {
		t.Fatalf("expected project config, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Length.Max != 50 {
		t.Fatalf("unexpected max %d", cfg.Length.Max)
	}
}

func TestLoadEnvironmentOverridesLogging(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TEXTKIT_LOG_LEVEL", "warn")
	t.Setenv("TEXTKIT_LOG_FORMAT", "json")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Fatalf("expected env overrides, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"negative min", "[length]\nmin = -1\n", "length.min"},
		{"max below min", "[length]\nmin = 10\nmax = 5\n", "length.max"},
		{"bad normalization", "[input]\nnormalization = \"nfx\"\n", "input.normalization"},
		{"bad log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad log level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"unknown key", "[length]\nminimum = 2\n", "parse config"},
		{"malformed toml", "[length\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	cfg := config.Default()
	var fromSample config.Config
	if err := toml.Unmarshal([]byte(config.SampleConfig()), &fromSample); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if fromSample != cfg {
		t.Fatalf("sample config drifted from defaults:\n got %+v\nwant %+v", fromSample, cfg)
	}
}

func TestCreateSampleWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if *cfg != config.Default() {
		t.Fatalf("sample config should load as defaults, got %+v", *cfg)
	}
}

func TestExpandPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/cfg/textkit.toml")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "cfg", "textkit.toml") {
		t.Fatalf("unexpected expansion %q", got)
	}
}
