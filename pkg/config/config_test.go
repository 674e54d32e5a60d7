package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Format != "markdown" {
		t.Errorf("Format = %q, want markdown", cfg.Format)
	}
	if cfg.MaxFileSizeKB != 1024 {
		t.Errorf("MaxFileSizeKB = %d, want 1024", cfg.MaxFileSizeKB)
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("COMPENDEX_FORMAT", "json")
	t.Setenv("COMPENDEX_MAX_FILE_SIZE_KB", "256")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json (env override)", cfg.Format)
	}
	if cfg.MaxFileSizeKB != 256 {
		t.Errorf("MaxFileSizeKB = %d, want 256 (env override)", cfg.MaxFileSizeKB)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "compendex.yaml")
	content := "format: plain\nmax_file_size_kb: 64\nignore_dirs:\n  - cache\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Format != "plain" {
		t.Errorf("Format = %q, want plain", cfg.Format)
	}
	if cfg.MaxFileSizeKB != 64 {
		t.Errorf("MaxFileSizeKB = %d, want 64", cfg.MaxFileSizeKB)
	}
	if len(cfg.IgnoreDirs) != 1 || cfg.IgnoreDirs[0] != "cache" {
		t.Errorf("IgnoreDirs = %v, want [cache]", cfg.IgnoreDirs)
	}
}

func TestLoad_MissingConfigFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicitly named missing config file must fail")
	}
}
