package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.General.DBPath != "expenses.db" {
		t.Errorf("DBPath = %q", cfg.General.DBPath)
	}
	if cfg.General.Currency != "$" {
		t.Errorf("Currency = %q", cfg.General.Currency)
	}
	if cfg.General.TopN != 5 {
		t.Errorf("TopN = %d", cfg.General.TopN)
	}
	if cfg.Import.OnMalformed != "skip" {
		t.Errorf("OnMalformed = %q", cfg.Import.OnMalformed)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "outlay"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "[general]\ndb_path = \"/tmp/custom.db\"\ncurrency = \"€\"\ntop_n = 10\n\n[import]\non_malformed = \"abort\"\n"
	if err := os.WriteFile(filepath.Join(dir, "outlay", "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.General.DBPath != "/tmp/custom.db" || cfg.General.Currency != "€" || cfg.General.TopN != 10 {
		t.Errorf("general = %+v", cfg.General)
	}
	if cfg.Import.OnMalformed != "abort" {
		t.Errorf("OnMalformed = %q, want abort", cfg.Import.OnMalformed)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OUTLAY_DB", "/tmp/env.db")
	t.Setenv("OUTLAY_CURRENCY", "£")
	t.Setenv("OUTLAY_ON_MALFORMED", "abort")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.General.DBPath != "/tmp/env.db" {
		t.Errorf("DBPath = %q, want env override", cfg.General.DBPath)
	}
	if cfg.General.Currency != "£" {
		t.Errorf("Currency = %q, want env override", cfg.General.Currency)
	}
	if cfg.Import.OnMalformed != "abort" {
		t.Errorf("OnMalformed = %q, want env override", cfg.Import.OnMalformed)
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := DefaultConfig()
	want.General.Currency = "¥"
	want.General.TopN = 3
	if err := Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	if !Exists() {
		t.Fatal("config file missing after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
