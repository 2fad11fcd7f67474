// Package config manages the eggtimer configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything eggtimer reads from ~/.eggtimer/config.toml.
type Config struct {
	FirstRun      bool               `mapstructure:"first_run"`
	Server        ServerConfig       `mapstructure:"server"`
	Timer         TimerConfig        `mapstructure:"timer"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// ServerConfig holds backend connection settings.
type ServerConfig struct {
	URL     string   `mapstructure:"url"`
	Timeout Duration `mapstructure:"timeout"`
}

// TimerConfig holds countdown settings.
type TimerConfig struct {
	WorkDuration  Duration `mapstructure:"work_duration"`
	BreakDuration Duration `mapstructure:"break_duration"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorWork           string `mapstructure:"color_work"`
	ColorBreak          string `mapstructure:"color_break"`
	ColorPaused         string `mapstructure:"color_paused"`
	ColorTitle          string `mapstructure:"color_title"`
	ColorTask           string `mapstructure:"color_task"`
	ColorHelp           string `mapstructure:"color_help"`
	ColorToast          string `mapstructure:"color_toast"`
	ColorBar            string `mapstructure:"color_bar"`
	WorkGradientStart   string `mapstructure:"work_gradient_start"`
	WorkGradientEnd     string `mapstructure:"work_gradient_end"`
	BreakGradientStart  string `mapstructure:"break_gradient_start"`
	BreakGradientEnd    string `mapstructure:"break_gradient_end"`
	PausedGradientStart string `mapstructure:"paused_gradient_start"`
	PausedGradientEnd   string `mapstructure:"paused_gradient_end"`
	IconApp             string `mapstructure:"icon_app"`
	IconTask            string `mapstructure:"icon_task"`
	IconStats           string `mapstructure:"icon_stats"`
	IconGit             string `mapstructure:"icon_git"`
	IconPaused          string `mapstructure:"icon_paused"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the configuration a fresh install starts from.
func DefaultConfig() *Config {
	return &Config{
		FirstRun: true,
		Server: ServerConfig{
			URL:     "http://localhost:5000",
			Timeout: Duration(10 * time.Second),
		},
		Timer: TimerConfig{
			WorkDuration:  Duration(25 * time.Minute),
			BreakDuration: Duration(5 * time.Minute),
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Theme: DefaultThemeConfig(),
	}
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorWork:           "#E05E4B",
		ColorBreak:          "#4ECDC4",
		ColorPaused:         "#6B7280",
		ColorTitle:          "#6B7280",
		ColorTask:           "#A0AEC0",
		ColorHelp:           "#95A5A6",
		ColorToast:          "#F6C90E",
		ColorBar:            "#E05E4B",
		WorkGradientStart:   "#E05E4B",
		WorkGradientEnd:     "#F2A65A",
		BreakGradientStart:  "#4ECDC4",
		BreakGradientEnd:    "#2ECC71",
		PausedGradientStart: "#6B7280",
		PausedGradientEnd:   "#4B5563",
		IconApp:             "🍅",
		IconTask:            "📋",
		IconStats:           "📊",
		IconGit:             "🌿",
		IconPaused:          "⏸",
	}
}

// flatten maps a Config onto its TOML keys. Load seeds viper defaults from
// the flattened default config; Save writes the flattened current values.
// Every settable key must appear here.
func flatten(cfg *Config) map[string]any {
	return map[string]any{
		"first_run":                   cfg.FirstRun,
		"server.url":                  cfg.Server.URL,
		"server.timeout":              cfg.Server.Timeout.String(),
		"timer.work_duration":         cfg.Timer.WorkDuration.String(),
		"timer.break_duration":        cfg.Timer.BreakDuration.String(),
		"notifications.enabled":       cfg.Notifications.Enabled,
		"notifications.sound":         cfg.Notifications.Sound,
		"theme.color_work":            cfg.Theme.ColorWork,
		"theme.color_break":           cfg.Theme.ColorBreak,
		"theme.color_paused":          cfg.Theme.ColorPaused,
		"theme.color_title":           cfg.Theme.ColorTitle,
		"theme.color_task":            cfg.Theme.ColorTask,
		"theme.color_help":            cfg.Theme.ColorHelp,
		"theme.color_toast":           cfg.Theme.ColorToast,
		"theme.color_bar":             cfg.Theme.ColorBar,
		"theme.work_gradient_start":   cfg.Theme.WorkGradientStart,
		"theme.work_gradient_end":     cfg.Theme.WorkGradientEnd,
		"theme.break_gradient_start":  cfg.Theme.BreakGradientStart,
		"theme.break_gradient_end":    cfg.Theme.BreakGradientEnd,
		"theme.paused_gradient_start": cfg.Theme.PausedGradientStart,
		"theme.paused_gradient_end":   cfg.Theme.PausedGradientEnd,
		"theme.icon_app":              cfg.Theme.IconApp,
		"theme.icon_task":             cfg.Theme.IconTask,
		"theme.icon_stats":            cfg.Theme.IconStats,
		"theme.icon_git":              cfg.Theme.IconGit,
		"theme.icon_paused":           cfg.Theme.IconPaused,
	}
}

// Load reads the config file, creating it with defaults on first use.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	if err := targetFile(path); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	for key, value := range flatten(defaults) {
		viper.SetDefault(key, value)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(defaults); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Save writes the full configuration back to disk.
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if err := targetFile(path); err != nil {
		return err
	}

	for key, value := range flatten(cfg) {
		viper.Set(key, value)
	}
	return viper.WriteConfig()
}

// targetFile points viper at the config file and ensures its directory exists.
func targetFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("toml")
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".eggtimer", "config.toml"), nil
}

// Durations returns the work and break durations as time.Duration values.
func (c *Config) Durations() (work, brk time.Duration) {
	return time.Duration(c.Timer.WorkDuration), time.Duration(c.Timer.BreakDuration)
}

// ApplyPreset copies a preset's durations into the timer section.
func (c *Config) ApplyPreset(work, brk time.Duration) {
	c.Timer.WorkDuration = Duration(work)
	c.Timer.BreakDuration = Duration(brk)
}
