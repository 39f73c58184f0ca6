// Package config loads and saves horizon's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all horizon configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Sheets     SheetsConfig     `toml:"sheets"`
	AI         AIConfig         `toml:"ai"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// LiveIntervalSeconds is the delay between simulated registrations
	// while live mode is on.
	LiveIntervalSeconds int    `toml:"live_interval_seconds"`
	SnapshotPath        string `toml:"snapshot_path,omitempty"`
}

// SheetsConfig holds Google Sheets source settings. An empty spreadsheet
// ID means horizon runs on its built-in demo portfolio.
type SheetsConfig struct {
	SpreadsheetID string `toml:"spreadsheet_id,omitempty"`
	APIKey        string `toml:"api_key,omitempty"`
}

// AIConfig holds text-generation service settings.
type AIConfig struct {
	APIKey  string `toml:"api_key,omitempty"`
	BaseURL string `toml:"base_url,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			LiveIntervalSeconds: 3,
		},
		Appearance: AppearanceConfig{
			Theme: "dusk",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "horizon")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "horizon")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// SnapshotPath returns where the fetched dataset snapshot lives.
func SnapshotPath(cfg Config) string {
	if cfg.General.SnapshotPath != "" {
		return cfg.General.SnapshotPath
	}
	return filepath.Join(ConfigDir(), "snapshot.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetSheetsAPIKey returns the Sheets key from env var or config, in that order.
func GetSheetsAPIKey(cfg Config) string {
	if key := os.Getenv("HORIZON_SHEETS_KEY"); key != "" {
		return key
	}
	return cfg.Sheets.APIKey
}

// GetAIKey returns the text-generation key from env var or config, in that order.
func GetAIKey(cfg Config) string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return cfg.AI.APIKey
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
