package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all duita configuration.
type Config struct {
	General       GeneralConfig       `toml:"general"`
	Chat          ChatConfig          `toml:"chat"`
	Advisor       AdvisorConfig       `toml:"advisor"`
	Appearance    AppearanceConfig    `toml:"appearance"`
	Notifications NotificationsConfig `toml:"notifications"`
	Daemon        DaemonConfig        `toml:"daemon"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// ChatConfig holds conversation preferences.
type ChatConfig struct {
	Tone string `toml:"tone"` // "formal" or "santai"
}

// AdvisorConfig holds adaptive-model settings.
type AdvisorConfig struct {
	AutoTrain           bool    `toml:"auto_train"`
	ConfidenceThreshold float64 `toml:"confidence_threshold"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// NotificationsConfig holds reminder settings. Asked tracks whether the
// one-time permission question has been put to the user.
type NotificationsConfig struct {
	Enabled bool `toml:"enabled"`
	Asked   bool `toml:"asked"`
}

// DaemonConfig holds reminder-daemon settings.
type DaemonConfig struct {
	Addr         string `toml:"addr,omitempty"`
	ReminderCron string `toml:"reminder_cron,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Chat: ChatConfig{Tone: "formal"},
		Advisor: AdvisorConfig{
			AutoTrain:           true,
			ConfidenceThreshold: 0.6,
		},
		Appearance: AppearanceConfig{Theme: "flexoki-dark"},
		Daemon: DaemonConfig{
			Addr:         "127.0.0.1:7865",
			ReminderCron: "0 9 * * *",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "duita")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "duita")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// ResolvedDataDir returns the configured data directory, or the XDG default.
func (c Config) ResolvedDataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "duita")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "duita")
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

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
