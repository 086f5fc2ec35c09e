package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tabpad/internal/config"
	"github.com/studiowebux/tabpad/internal/editor"
	"github.com/studiowebux/tabpad/internal/keybinds"
	"github.com/studiowebux/tabpad/internal/logger"
	"github.com/studiowebux/tabpad/internal/recent"
)

// Options wires the model to the editor and its stores
type Options struct {
	Editor   *editor.Editor
	Keybinds *keybinds.Registry
	Recent   *recent.Manager // optional
	Settings config.Settings
	Logger   *slog.Logger
}

// New creates a new TUI model and applies the persisted theme
func New(opts Options) *Model {
	if opts.Editor == nil {
		opts.Editor = editor.New(editor.Options{Logger: opts.Logger})
	}
	if opts.Keybinds == nil {
		opts.Keybinds = keybinds.NewDefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	settings := opts.Settings
	if settings.SettingsVersion == 0 {
		settings = config.DefaultSettings()
	}
	tabWidth := settings.Editor.TabWidth
	if tabWidth <= 0 {
		tabWidth = 4
	}
	recentLimit := settings.Recent.Limit
	if recentLimit <= 0 {
		recentLimit = recent.DefaultLimit
	}

	m := &Model{
		editor:         opts.Editor,
		keybinds:       opts.Keybinds,
		recent:         opts.Recent,
		log:            opts.Logger,
		mode:           ModeEditor,
		menu:           NewMenuState(),
		find:           NewFindState(),
		recentLimit:    recentLimit,
		panes:          make(map[int]*paneView),
		helpView:       viewport.New(80, 20),
		modalView:      viewport.New(80, 20),
		tabWidth:       tabWidth,
		lineNumbers:    settings.Editor.LineNumber,
		showStatusBar:  settings.Editor.StatusBar,
		messageTimeout: DefaultMessageTimeout,
	}

	m.editor.ReloadTheme(m)
	m.updateHelpView()

	return m
}

// Run starts the TUI and blocks until the user quits
func Run(opts Options) error {
	m := New(opts)
	defer m.Cleanup()

	// Mouse is disabled by default in bubbletea
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
