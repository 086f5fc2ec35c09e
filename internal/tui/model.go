package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tabpad/internal/editor"
	"github.com/studiowebux/tabpad/internal/keybinds"
	"github.com/studiowebux/tabpad/internal/recent"
	"github.com/studiowebux/tabpad/internal/theme"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeEditor Mode = iota
	ModeMenu
	ModeDialog
	ModeRecent
	ModeHelp
)

// Model represents the TUI state
type Model struct {
	// Core state
	editor   *editor.Editor
	keybinds *keybinds.Registry
	recent   *recent.Manager // nil when the database could not be opened
	log      *slog.Logger
	mode     Mode

	// Theme
	theme  theme.Theme
	styles theme.Styles

	// Menu bar and dialogs
	menu   *MenuState
	find   *FindState
	prompt *prompt

	// Recent files list
	recentEntries  []recent.Entry
	recentFiltered []recent.Entry
	recentQuery    string
	recentIndex    int
	recentLimit    int

	// Views
	panes     map[int]*paneView // scroll position per tab ID
	helpView  viewport.Model
	modalView viewport.Model

	// Settings
	tabWidth       int
	lineNumbers    bool
	showStatusBar  bool
	messageTimeout time.Duration

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
	msgSeq    int
}

// paneView is the scroll offset of one tab's editor pane
type paneView struct {
	top  int // first visible line
	left int // first visible display column
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Cleanup releases resources held by the model
func (m *Model) Cleanup() {
	if m.recent != nil {
		if err := m.recent.Close(); err != nil {
			m.log.Error("close recent files database", "error", err)
		}
	}
}

// ApplyTheme implements theme.Applier
func (m *Model) ApplyTheme(t theme.Theme) {
	m.theme = t
	m.styles = theme.NewStyles(t)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Dialogs are huh forms that also need their own internal messages
	if m.mode == ModeDialog && m.prompt != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m, m.handleDialogKeys(keyMsg)
		}
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			return m, m.updatePrompt(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewport()
		m.ensureCursorVisible()

	case clearStatusMsg:
		if msg.seq == m.msgSeq {
			m.statusMsg = ""
		}

	case clearErrorMsg:
		if msg.seq == m.msgSeq {
			m.errorMsg = ""
		}
	}

	if cmd == nil && m.mode == ModeHelp {
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			m.helpView, cmd = m.helpView.Update(msg)
		}
	}

	return m, cmd
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeRecent:
		return m.renderRecentModal()
	case ModeDialog:
		return m.renderDialog()
	default:
		return m.renderMain()
	}
}

type clearStatusMsg struct{ seq int }
type clearErrorMsg struct{ seq int }

// setStatusMessage shows msg in the status bar and clears any error
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.msgSeq++
	m.errorMsg = ""
	m.statusMsg = truncateMessage(msg)

	if m.messageTimeout > 0 {
		seq := m.msgSeq
		return tea.Tick(m.messageTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})
	}
	return nil
}

// setErrorMessage shows msg as an error in the status bar
func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.msgSeq++
	m.statusMsg = ""
	m.errorMsg = truncateMessage(msg)
	m.log.Debug("status error", "message", msg)

	if m.messageTimeout > 0 {
		seq := m.msgSeq
		return tea.Tick(m.messageTimeout, func(time.Time) tea.Msg {
			return clearErrorMsg{seq: seq}
		})
	}
	return nil
}

// setError formats err for the status bar
func (m *Model) setError(action string, err error) tea.Cmd {
	return m.setErrorMessage(fmt.Sprintf("%s: %v", action, err))
}

func truncateMessage(msg string) string {
	if len(msg) > MaxStatusMessageLength {
		return msg[:MaxStatusMessageLength-3] + "..."
	}
	return msg
}
