package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// CurrentSettingsVersion marks the supported settings version.
const CurrentSettingsVersion = 1

// Settings is the user-editable editor configuration (settings.yaml).
type Settings struct {
	SettingsVersion int          `mapstructure:"settings_version" yaml:"settings_version"`
	ThemeFile       string       `mapstructure:"theme_file" yaml:"theme_file"`
	DateTimeLayout  string       `mapstructure:"datetime_layout" yaml:"datetime_layout"`
	Font            FontSettings `mapstructure:"font" yaml:"font"`
	Editor          EditorConfig `mapstructure:"editor" yaml:"editor"`
	Recent          RecentConfig `mapstructure:"recent" yaml:"recent"`
	Logging         LogConfig    `mapstructure:"logging" yaml:"logging"`
}

// FontSettings controls the point sizes offered by the Format menu.
type FontSettings struct {
	Default  int `mapstructure:"default" yaml:"default"`
	Increase int `mapstructure:"increase" yaml:"increase"`
	Decrease int `mapstructure:"decrease" yaml:"decrease"`
}

// EditorConfig controls buffer behaviour.
type EditorConfig struct {
	UndoLimit  int  `mapstructure:"undo_limit" yaml:"undo_limit"`
	TabWidth   int  `mapstructure:"tab_width" yaml:"tab_width"`
	StatusBar  bool `mapstructure:"status_bar" yaml:"status_bar"`
	LineNumber bool `mapstructure:"line_numbers" yaml:"line_numbers"`
}

// RecentConfig controls the recent files list.
type RecentConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	Limit   int  `mapstructure:"limit" yaml:"limit"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		SettingsVersion: CurrentSettingsVersion,
		ThemeFile:       "",
		DateTimeLayout:  "Mon Jan 2 15:04:05 2006",
		Font: FontSettings{
			Default:  12,
			Increase: 14,
			Decrease: 10,
		},
		Editor: EditorConfig{
			UndoLimit:  1000,
			TabWidth:   4,
			StatusBar:  true,
			LineNumber: false,
		},
		Recent: RecentConfig{
			Enabled: true,
			Limit:   20,
		},
		Logging: LogConfig{
			Level:      "info",
			MaxAgeDays: 14,
			MaxSizeMB:  10,
		},
	}
}

// LoadSettings reads settings from path. A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		path = SettingsFile
	}

	cfg := DefaultSettings()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TABPAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("settings_version", cfg.SettingsVersion)
	v.SetDefault("theme_file", cfg.ThemeFile)
	v.SetDefault("datetime_layout", cfg.DateTimeLayout)
	v.SetDefault("font.default", cfg.Font.Default)
	v.SetDefault("font.increase", cfg.Font.Increase)
	v.SetDefault("font.decrease", cfg.Font.Decrease)
	v.SetDefault("editor.undo_limit", cfg.Editor.UndoLimit)
	v.SetDefault("editor.tab_width", cfg.Editor.TabWidth)
	v.SetDefault("editor.status_bar", cfg.Editor.StatusBar)
	v.SetDefault("editor.line_numbers", cfg.Editor.LineNumber)
	v.SetDefault("recent.enabled", cfg.Recent.Enabled)
	v.SetDefault("recent.limit", cfg.Recent.Limit)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.max_age_days", cfg.Logging.MaxAgeDays)
	v.SetDefault("logging.max_size_mb", cfg.Logging.MaxSizeMB)

	if err := v.ReadInConfig(); err != nil {
		// viper reports a plain fs error when SetConfigFile points at a missing file
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	if v.GetInt("settings_version") != CurrentSettingsVersion {
		return Settings{}, fmt.Errorf("unsupported settings_version %d; expected %d", v.GetInt("settings_version"), CurrentSettingsVersion)
	}

	var out Settings
	if err := v.Unmarshal(&out); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := out.Validate(); err != nil {
		return Settings{}, err
	}

	return out, nil
}

// Validate checks settings values that would break the editor.
func (s Settings) Validate() error {
	if s.Font.Default <= 0 || s.Font.Increase <= 0 || s.Font.Decrease <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}
	if s.DateTimeLayout == "" {
		return fmt.Errorf("datetime_layout cannot be empty")
	}
	if s.Editor.UndoLimit < 0 {
		return fmt.Errorf("editor.undo_limit cannot be negative")
	}
	if s.Recent.Limit < 0 {
		return fmt.Errorf("recent.limit cannot be negative")
	}
	return nil
}

// WriteSettings writes settings as YAML to path.
func WriteSettings(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
