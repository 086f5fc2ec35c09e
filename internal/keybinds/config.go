package keybinds

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Unbind is the action name that removes a default binding.
const Unbind = "none"

// Config represents the user's keybinding configuration.
// Each section maps a key to an action name.
type Config struct {
	Version string                       `json:"version"`
	Global  map[string]string            `json:"global,omitempty"`
	Editor  map[string]string            `json:"editor,omitempty"`
	Menu    map[string]string            `json:"menu,omitempty"`
	Recent  map[string]string            `json:"recent,omitempty"`
	Help    map[string]string            `json:"help,omitempty"`
	Custom  map[string]map[string]string `json:"custom,omitempty"`
}

// sections pairs each config section with its context.
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal: c.Global,
		ContextEditor: c.Editor,
		ContextMenu:   c.Menu,
		ContextRecent: c.Recent,
		ContextHelp:   c.Help,
	}
}

// LoadConfig loads keybinding configuration from a JSON file.
// Comments and trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings; the action "none" removes a key.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, bindings := range config.sections() {
		if err := applySection(registry, context, bindings); err != nil {
			return err
		}
	}

	for contextName, bindings := range config.Custom {
		if err := applySection(registry, Context(contextName), bindings); err != nil {
			return err
		}
	}

	return nil
}

func applySection(registry *Registry, context Context, bindings map[string]string) error {
	for key, actionStr := range bindings {
		if err := ValidateKey(key); err != nil {
			return fmt.Errorf("context '%s': %w", context, err)
		}
		if actionStr == Unbind {
			registry.Unregister(context, key)
			continue
		}
		if err := ValidateAction(actionStr); err != nil {
			return fmt.Errorf("context '%s', key '%s': %w", context, key, err)
		}
		registry.Register(context, key, Action(actionStr))
	}
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	config, err := LoadConfig(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return registry, nil
		}
		return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
	}

	if err := ApplyConfig(registry, config); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}

	return registry, nil
}

// ExportConfig converts a registry into a config file structure
func ExportConfig(registry *Registry) *Config {
	config := &Config{Version: "1.0"}
	for _, context := range registry.Contexts() {
		section := make(map[string]string)
		for _, b := range registry.sortedBindings(context) {
			section[b.Key] = string(b.Action)
		}
		switch context {
		case ContextGlobal:
			config.Global = section
		case ContextEditor:
			config.Editor = section
		case ContextMenu:
			config.Menu = section
		case ContextRecent:
			config.Recent = section
		case ContextHelp:
			config.Help = section
		default:
			if config.Custom == nil {
				config.Custom = make(map[string]map[string]string)
			}
			config.Custom[string(context)] = section
		}
	}
	return config
}

// ExportDefaults exports default keybindings as a config file
func ExportDefaults() *Config {
	return ExportConfig(NewDefaultRegistry())
}

// GetDefaultConfigPath returns the default path for keybinds.json
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".tabpad", "keybinds.json"), nil
}

// CreateExampleConfig writes the default bindings to path
func CreateExampleConfig(path string) error {
	return SaveConfig(ExportDefaults(), path)
}
