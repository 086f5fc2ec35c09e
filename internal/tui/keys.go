package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tabpad/internal/document"
	"github.com/studiowebux/tabpad/internal/editor"
	"github.com/studiowebux/tabpad/internal/keybinds"
	"github.com/studiowebux/tabpad/internal/theme"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModeMenu:
		return m.handleMenuKeys(msg)
	case ModeRecent:
		return m.handleRecentKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeDialog:
		return m.handleDialogKeys(msg)
	default:
		return m.handleEditorKeys(msg)
	}
}

// handleEditorKeys runs bound actions and types everything else into the active tab
func (m *Model) handleEditorKeys(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	if action, ok := m.keybinds.Match(keybinds.ContextEditor, msg.String()); ok {
		cmd = m.runAction(action)
	} else {
		m.typeKey(msg)
	}

	m.ensureCursorVisible()
	return cmd
}

// typeKey inserts printable input at the cursor
func (m *Model) typeKey(msg tea.KeyMsg) {
	tab, err := m.editor.Registry().ActiveTab()
	if err != nil {
		return
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste {
			// Bracketed paste is one undo step
			tab.Buffer.Insert(string(msg.Runes))
			return
		}
		for _, r := range msg.Runes {
			tab.Buffer.InsertRune(r)
		}
	case tea.KeySpace:
		tab.Buffer.InsertRune(' ')
	}
}

// runAction executes an action from a key binding or a menu item
func (m *Model) runAction(action keybinds.Action) tea.Cmd {
	reg := m.editor.Registry()
	tab, err := reg.ActiveTab()
	if err != nil {
		return m.setError("No document", err)
	}
	buf := tab.Buffer

	switch action {
	// Global
	case keybinds.ActionQuit:
		return m.quit()
	case keybinds.ActionOpenMenu:
		m.openMenu()
	case keybinds.ActionOpenHelp:
		m.openHelp()

	// File
	case keybinds.ActionNewTab:
		m.editor.NewTab()
		return m.setStatusMessage("New tab")
	case keybinds.ActionOpenFile:
		return m.openPrompt(promptOpen)
	case keybinds.ActionOpenRecent:
		return m.openRecent()
	case keybinds.ActionSave:
		return m.save()
	case keybinds.ActionSaveAs:
		return m.openPrompt(promptSaveAs)
	case keybinds.ActionRename:
		return m.openPrompt(promptRename)
	case keybinds.ActionCloseTab:
		if tab.Modified() {
			return m.openPrompt(promptConfirmClose)
		}
		return m.closeActiveTab()

	// Edit
	case keybinds.ActionCut:
		if err := m.editor.Cut(); err != nil {
			return m.editError("Cut", err)
		}
	case keybinds.ActionCopy:
		if err := m.editor.Copy(); err != nil {
			return m.editError("Copy", err)
		}
		return m.setStatusMessage("Copied to clipboard")
	case keybinds.ActionPaste:
		if err := m.editor.Paste(); err != nil {
			return m.editError("Paste", err)
		}
	case keybinds.ActionUndo:
		if !m.editor.Undo() {
			return m.setStatusMessage("Nothing to undo")
		}
	case keybinds.ActionRedo:
		if !m.editor.Redo() {
			return m.setStatusMessage("Nothing to redo")
		}
	case keybinds.ActionSelectAll:
		if err := m.editor.SelectAll(); err != nil {
			return m.editError("Select all", err)
		}

	// Format
	case keybinds.ActionFontIncrease:
		if err := m.editor.IncreaseFontSize(); err != nil {
			return m.setError("Font size", err)
		}
		return m.setStatusMessage(fmt.Sprintf("Font size %dpt", tab.FontSize))
	case keybinds.ActionFontDecrease:
		if err := m.editor.DecreaseFontSize(); err != nil {
			return m.setError("Font size", err)
		}
		return m.setStatusMessage(fmt.Sprintf("Font size %dpt", tab.FontSize))
	case keybinds.ActionReplace:
		return m.openPrompt(promptReplace)
	case keybinds.ActionFind:
		return m.openPrompt(promptFind)
	case keybinds.ActionFindNext:
		if m.find.GetWord() == "" {
			return m.openPrompt(promptFind)
		}
		return m.findNext()

	// View
	case keybinds.ActionToggleStatusBar:
		m.showStatusBar = !m.showStatusBar
	case keybinds.ActionNextTab:
		reg.Next()
	case keybinds.ActionPrevTab:
		reg.Prev()

	// Options
	case keybinds.ActionThemeWhite:
		return m.applyTheme("white")
	case keybinds.ActionThemeDark:
		return m.applyTheme("dark")
	case keybinds.ActionThemeBlue:
		return m.applyTheme("blue")
	case keybinds.ActionThemeGreen:
		return m.applyTheme("green")
	case keybinds.ActionThemeReload:
		m.editor.ReloadTheme(m)
		return m.setStatusMessage("Theme reloaded from " + m.editor.Themes().Path())
	case keybinds.ActionChangeBorder:
		return m.openColorPrompt(colorBorder)
	case keybinds.ActionChangeBackground:
		return m.openColorPrompt(colorBackground)
	case keybinds.ActionChangeText:
		return m.openColorPrompt(colorText)
	case keybinds.ActionInsertDateTime:
		if _, err := m.editor.InsertDateTime(); err != nil {
			return m.setError("Insert date/time", err)
		}

	// Cursor movement
	case keybinds.ActionMoveLeft:
		buf.MoveLeft(false)
	case keybinds.ActionMoveRight:
		buf.MoveRight(false)
	case keybinds.ActionMoveUp:
		buf.MoveUp(false)
	case keybinds.ActionMoveDown:
		buf.MoveDown(false)
	case keybinds.ActionMoveLineStart:
		buf.MoveLineStart(false)
	case keybinds.ActionMoveLineEnd:
		buf.MoveLineEnd(false)
	case keybinds.ActionMoveDocStart:
		buf.MoveDocStart(false)
	case keybinds.ActionMoveDocEnd:
		buf.MoveDocEnd(false)
	case keybinds.ActionPageUp:
		buf.MoveLines(-m.pageSize(), false)
	case keybinds.ActionPageDown:
		buf.MoveLines(m.pageSize(), false)

	// Selection
	case keybinds.ActionSelectLeft:
		buf.MoveLeft(true)
	case keybinds.ActionSelectRight:
		buf.MoveRight(true)
	case keybinds.ActionSelectUp:
		buf.MoveUp(true)
	case keybinds.ActionSelectDown:
		buf.MoveDown(true)
	case keybinds.ActionSelectLineStart:
		buf.MoveLineStart(true)
	case keybinds.ActionSelectLineEnd:
		buf.MoveLineEnd(true)

	// Text editing
	case keybinds.ActionBackspace:
		buf.DeleteBackward()
	case keybinds.ActionDelete:
		buf.DeleteForward()
	case keybinds.ActionNewline:
		buf.InsertRune('\n')
	case keybinds.ActionIndent:
		buf.InsertRune('\t')

	default:
		m.log.Debug("action not available in editor", "action", action)
	}

	return nil
}

// pageSize is the number of lines moved by page up and down
func (m *Model) pageSize() int {
	_, height := m.editorSize()
	return max(height-PageOverlap, 1)
}

// quit exits, asking first when tabs have unsaved changes
func (m *Model) quit() tea.Cmd {
	if m.editor.Registry().ModifiedCount() > 0 {
		return m.openPrompt(promptConfirmQuit)
	}
	return tea.Quit
}

// save writes the active tab, falling back to Save As for new tabs
func (m *Model) save() tea.Cmd {
	err := m.editor.Save()
	if errors.Is(err, document.ErrNoPath) {
		return m.openPrompt(promptSaveAs)
	}
	if err != nil {
		return m.setFileError("Save failed", err)
	}
	tab, _ := m.editor.Registry().ActiveTab()
	return m.setStatusMessage("Saved " + tab.Path)
}

// closeActiveTab closes the focused tab and forgets its scroll state
func (m *Model) closeActiveTab() tea.Cmd {
	reg := m.editor.Registry()
	tab, err := reg.ActiveTab()
	if err != nil {
		return m.setError("Close tab", err)
	}
	if err := m.editor.CloseActive(); err != nil {
		return m.setError("Close tab", err)
	}
	delete(m.panes, tab.ID)
	return m.setStatusMessage("Closed " + tab.Label)
}

// findNext searches forward for the remembered word
func (m *Model) findNext() tea.Cmd {
	word := m.find.GetWord()
	err := m.editor.FindWord(word)
	switch {
	case errors.Is(err, editor.ErrNotFound):
		return m.setStatusMessage(fmt.Sprintf("%q not found", word))
	case err != nil:
		return m.setError("Find", err)
	}
	return nil
}

// applyTheme applies a preset theme and persists it
func (m *Model) applyTheme(name string) tea.Cmd {
	if !m.editor.ApplyNamedTheme(name, m) {
		return m.setErrorMessage(fmt.Sprintf("Theme %s not found", name))
	}
	return m.setStatusMessage("Theme: " + name)
}

// editError reports clipboard and selection problems
func (m *Model) editError(action string, err error) tea.Cmd {
	if errors.Is(err, editor.ErrNothingSelected) {
		return m.setStatusMessage("Nothing selected")
	}
	return m.setError(action, err)
}

// colorField selects the theme colour edited by the colour dialog
type colorField int

const (
	colorBorder colorField = iota
	colorBackground
	colorText
)

func (f colorField) String() string {
	switch f {
	case colorBackground:
		return "Background"
	case colorText:
		return "Text"
	default:
		return "Border"
	}
}

// current returns the field's value from t
func (f colorField) current(t theme.Theme) string {
	r := t.Resolved()
	switch f {
	case colorBackground:
		return r.BackgroundColor
	case colorText:
		return r.TextColor
	default:
		return r.BorderColor
	}
}

// partial returns a theme with only this field set
func (f colorField) partial(value string) theme.Theme {
	switch f {
	case colorBackground:
		return theme.Theme{BackgroundColor: value}
	case colorText:
		return theme.Theme{TextColor: value}
	default:
		return theme.Theme{BorderColor: value}
	}
}
