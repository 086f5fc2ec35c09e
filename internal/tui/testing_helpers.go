package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tabpad/internal/clipboard"
	"github.com/studiowebux/tabpad/internal/document"
	"github.com/studiowebux/tabpad/internal/editor"
	"github.com/studiowebux/tabpad/internal/recent"
	"github.com/studiowebux/tabpad/internal/theme"
)

// testNow is the clock used by test models
var testNow = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)

// CreateTestModel creates a Model instance for testing with an 80x24 window,
// an in-memory clipboard and a theme file in a temp directory
func CreateTestModel(t *testing.T) *Model {
	t.Helper()
	return createTestModel(t, nil)
}

// CreateTestModelWithRecent creates a test Model backed by a recent files database
func CreateTestModelWithRecent(t *testing.T) (*Model, *recent.Manager) {
	t.Helper()

	mgr, err := recent.NewManager(filepath.Join(t.TempDir(), "recent.db"))
	if err != nil {
		t.Fatalf("Failed to create recent manager: %v", err)
	}
	t.Cleanup(func() { _ = mgr.Close() })

	return createTestModel(t, mgr), mgr
}

func createTestModel(t *testing.T, mgr *recent.Manager) *Model {
	t.Helper()

	opts := editor.Options{
		Registry:  document.NewRegistry(document.Options{}),
		Themes:    theme.NewStore(filepath.Join(t.TempDir(), "theme.json"), nil),
		Clipboard: clipboard.NewMemory(),
		Now:       func() time.Time { return testNow },
	}
	if mgr != nil {
		opts.Recent = mgr
	}

	m := New(Options{
		Editor: editor.New(opts),
		Recent: mgr,
	})
	m.messageTimeout = 0
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	return m
}

// sendKey delivers one key press and returns the resulting command
func sendKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

// typeText types s one rune at a time
func typeText(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			sendKey(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		sendKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// activeTab returns the focused tab or fails the test
func activeTab(t *testing.T, m *Model) *document.Tab {
	t.Helper()
	tab, err := m.editor.Registry().ActiveTab()
	if err != nil {
		t.Fatalf("No active tab: %v", err)
	}
	return tab
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
