package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// DefaultThemeFile is the theme file name, resolved against the working directory
	DefaultThemeFile = "theme.json"
)

var (
	// ConfigDir is the global configuration directory (~/.tabpad)
	ConfigDir string

	// LogDir holds the rotated log files
	LogDir string

	// DatabasePath is the SQLite database file for recent files
	DatabasePath string

	// SettingsFile is the settings.yaml file
	SettingsFile string

	// KeybindsFile is the user keybinding override file
	KeybindsFile string
)

// Initialize sets up the configuration directories and files
// It creates ~/.tabpad/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeAt(filepath.Join(homeDir, ".tabpad"))
}

// InitializeAt sets the global paths below dir and creates the directories
func InitializeAt(dir string) error {
	ConfigDir = dir
	LogDir = filepath.Join(ConfigDir, "logs")
	DatabasePath = filepath.Join(ConfigDir, "tabpad.db")
	SettingsFile = filepath.Join(ConfigDir, "settings.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")

	dirs := []string{ConfigDir, LogDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Write a default settings file on first run so users can discover the options
	if _, err := os.Stat(SettingsFile); os.IsNotExist(err) {
		if err := WriteSettings(SettingsFile, DefaultSettings()); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	return nil
}

// ExpandPath expands a leading ~/ to the home directory
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// GetThemeFilePath returns the theme file path to use.
// An explicit override wins, then the settings value, then theme.json in the working directory.
func GetThemeFilePath(override string, settings Settings) string {
	if override != "" {
		return override
	}
	if settings.ThemeFile != "" {
		if expanded, err := ExpandPath(settings.ThemeFile); err == nil {
			return expanded
		}
	}
	return DefaultThemeFile
}

// GetKeybindsFilePath returns the keybinds file path (local or global)
func GetKeybindsFilePath() string {
	if _, err := os.Stat("keybinds.json"); err == nil {
		return "keybinds.json"
	}
	return KeybindsFile
}
