package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/studiowebux/tabpad/internal/editor"
	"github.com/studiowebux/tabpad/internal/logger"
)

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("alpha"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("beta"), 0644); err != nil {
		t.Fatal(err)
	}

	ed := editor.New(editor.Options{})
	err := openFiles(ed, []string{a, filepath.Join(dir, "missing.txt"), b}, logger.Discard())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tabs := ed.Registry().Tabs()
	if len(tabs) != 2 {
		t.Fatalf("Expected 2 tabs, got %d", len(tabs))
	}
	if tabs[0].Path != a || tabs[0].Buffer.Text() != "alpha" {
		t.Errorf("Expected first tab to hold %s, got %s %q", a, tabs[0].Path, tabs[0].Buffer.Text())
	}
	if tabs[1].Path != b {
		t.Errorf("Expected second tab to hold %s, got %s", b, tabs[1].Path)
	}
}

func TestOpenFiles_Directory(t *testing.T) {
	ed := editor.New(editor.Options{})
	if err := openFiles(ed, []string{t.TempDir()}, logger.Discard()); err == nil {
		t.Error("Expected error when opening a directory")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	want := []string{"theme", "keybinds", "recent", "version"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Expected subcommand %s, got %v (err=%v)", name, cmd, err)
		}
	}
}
