// Package config loads outlay settings from the TOML config file, an
// optional .env file, and OUTLAY_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds all outlay configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Import  ImportConfig  `toml:"import"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath   string `toml:"db_path" env:"OUTLAY_DB"`
	Currency string `toml:"currency" env:"OUTLAY_CURRENCY"`
	TopN     int    `toml:"top_n" env:"OUTLAY_TOP_N"`
}

// ImportConfig holds CSV import behavior.
type ImportConfig struct {
	// OnMalformed is "skip" or "abort" for rows with a bad amount or date.
	OnMalformed string `toml:"on_malformed" env:"OUTLAY_ON_MALFORMED"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DBPath:   "expenses.db",
			Currency: "$",
			TopN:     5,
		},
		Import: ImportConfig{
			OnMalformed: "skip",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "outlay")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "outlay")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load builds the effective configuration: defaults, then the config file,
// then a .env file in the working directory, then environment variables.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	if err := env.Parse(&cfg.General); err != nil {
		return cfg, fmt.Errorf("parsing env overrides: %w", err)
	}
	if err := env.Parse(&cfg.Import); err != nil {
		return cfg, fmt.Errorf("parsing env overrides: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}
