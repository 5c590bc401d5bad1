// File: config_test.go
// Title: Config Unit Tests
// Description: Tests for TOML/YAML loading, dot-notation lookup,
//              environment overrides and defaults.

package config

import (
	"os"
	"path/filepath"
	"testing"

	lterror "github.com/tlforge/ltlspec/core/error"
)

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ltlspec.toml")
	content := `
domains = "domains.yaml"

[log]
level = "debug"
format = "console"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
	if got := cfg.GetString("domains"); got != "domains.yaml" {
		t.Errorf("domains = %q, want domains.yaml", got)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ltlspec.yaml")
	content := "log:\n  level: warn\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := cfg.GetString("log.level"); got != "warn" {
		t.Errorf("log.level = %q, want warn", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !lterror.HasCode(err, lterror.CodeConfig) {
		t.Errorf("error code = %v, want %v", lterror.GetCode(err), lterror.CodeConfig)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString(`verbose = true`, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}
	if !cfg.GetBool("verbose") {
		t.Error("verbose = false, want true")
	}
}

func TestLoadFromStringParseError(t *testing.T) {
	if _, err := LoadFromString("not [ valid", FormatTOML); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestTypedGetters(t *testing.T) {
	cfg, err := LoadFromString(`
count = 3
name = "tool"
flag = false
`, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetInt("count"); got != 3 {
		t.Errorf("GetInt(count) = %d, want 3", got)
	}
	if got := cfg.GetInt("missing", 7); got != 7 {
		t.Errorf("GetInt(missing, 7) = %d, want 7", got)
	}
	if got := cfg.GetString("name", "other"); got != "tool" {
		t.Errorf("GetString(name) = %q, want tool", got)
	}
	if got := cfg.GetBool("flag", true); got {
		t.Error("GetBool(flag) = true, want false")
	}
	if got := cfg.GetBool("missing", true); !got {
		t.Error("GetBool(missing, true) = false, want true")
	}
	if !cfg.Has("count") || cfg.Has("missing") {
		t.Error("Has() wrong")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LTLSPEC_LOG_LEVEL", "trace")

	cfg, err := LoadFromString("[log]\nlevel = \"info\"\n", FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.GetString("log.level"); got != "trace" {
		t.Errorf("log.level = %q, want trace (env override)", got)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if got := cfg.GetString("log.level", "info"); got != "info" {
		t.Errorf("default log.level = %q, want info", got)
	}
	if cfg.Has("anything") {
		t.Error("default config should be empty")
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatTOML, "toml"},
		{FormatYAML, "yaml"},
		{FormatAuto, "auto"},
		{Format(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}
