package keybinds

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	r, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got %v", err)
	}
	if action, _ := r.Match(ContextEditor, "ctrl+c"); action != ActionCopy {
		t.Errorf("Expected default copy binding, got %s", action)
	}
}

func TestLoadOrDefaultAppliesOverrides(t *testing.T) {
	path := writeConfig(t, `{
  "version": "1.0",
  // swap cut for a rename shortcut
  "editor": {
    "ctrl+x": "none",
    "f2": "rename",
  },
  "global": {
    "ctrl+x": "quit"
  }
}`)

	r, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}

	if action, _ := r.Match(ContextEditor, "f2"); action != ActionRename {
		t.Errorf("Expected f2 -> rename, got %s", action)
	}
	if action, _ := r.Match(ContextEditor, "ctrl+x"); action != ActionQuit {
		t.Errorf("Expected ctrl+x to fall back to global quit, got %s", action)
	}
	if action, _ := r.Match(ContextEditor, "ctrl+v"); action != ActionPaste {
		t.Errorf("Expected untouched defaults to remain, got %s", action)
	}
}

func TestLoadOrDefaultRejectsUnknownAction(t *testing.T) {
	path := writeConfig(t, `{"editor": {"ctrl+k": "explode"}}`)

	_, err := LoadOrDefault(path)
	if err == nil {
		t.Fatal("Expected error for unknown action")
	}
	if !strings.Contains(err.Error(), "explode") {
		t.Errorf("Expected error to name the action, got %v", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, `{"editor": [}`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestCustomContext(t *testing.T) {
	r := NewRegistry()
	config := &Config{
		Custom: map[string]map[string]string{
			"sidebar": {"x": "close_modal"},
		},
	}
	if err := ApplyConfig(r, config); err != nil {
		t.Fatalf("ApplyConfig failed: %v", err)
	}
	if action, _ := r.Match(Context("sidebar"), "x"); action != ActionCloseModal {
		t.Errorf("Expected custom binding, got %s", action)
	}

	exported := ExportConfig(r)
	if exported.Custom["sidebar"]["x"] != "close_modal" {
		t.Errorf("Expected custom section in export, got %+v", exported.Custom)
	}
}

func TestExampleConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := CreateExampleConfig(path); err != nil {
		t.Fatalf("CreateExampleConfig failed: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Global["ctrl+s"] != "save" {
		t.Errorf("Expected ctrl+s -> save, got %q", config.Global["ctrl+s"])
	}
	if config.Editor["ctrl+c"] != "copy" {
		t.Errorf("Expected ctrl+c -> copy, got %q", config.Editor["ctrl+c"])
	}

	r, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("Exported defaults should load, got %v", err)
	}
	if len(r.ListBindings(ContextEditor)) != len(NewDefaultRegistry().ListBindings(ContextEditor)) {
		t.Error("Expected exported defaults to reproduce the default editor bindings")
	}
}
