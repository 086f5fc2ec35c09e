package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tabpad/internal/keybinds"
	"github.com/studiowebux/tabpad/internal/recent"
)

// openRecent loads the recent files list and shows it
func (m *Model) openRecent() tea.Cmd {
	if m.recent == nil {
		return m.setErrorMessage("Recent files are not available")
	}

	entries, err := m.recent.List(m.recentLimit)
	if err != nil {
		return m.setError("Recent files", err)
	}

	m.recentEntries = entries
	m.recentQuery = ""
	m.recentIndex = 0
	m.refilterRecent()
	m.modalView.GotoTop()
	m.mode = ModeRecent
	return nil
}

// refilterRecent applies the fuzzy query to the loaded entries
func (m *Model) refilterRecent() {
	m.recentFiltered = recent.Filter(m.recentEntries, m.recentQuery)
	if m.recentIndex >= len(m.recentFiltered) {
		m.recentIndex = max(len(m.recentFiltered)-1, 0)
	}
}

// handleRecentKeys handles keyboard input in the recent files list.
// Unbound printable keys edit the filter.
func (m *Model) handleRecentKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextRecent, msg.String())
	if !ok {
		m.editRecentQuery(msg)
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal:
		m.mode = ModeEditor

	case keybinds.ActionNavigateDown:
		if len(m.recentFiltered) > 0 {
			m.recentIndex = (m.recentIndex + 1) % len(m.recentFiltered)
		}

	case keybinds.ActionNavigateUp:
		if len(m.recentFiltered) > 0 {
			m.recentIndex = (m.recentIndex - 1 + len(m.recentFiltered)) % len(m.recentFiltered)
		}

	case keybinds.ActionConfirm:
		if len(m.recentFiltered) == 0 {
			return m.setErrorMessage("No recent files")
		}
		selected := m.recentFiltered[m.recentIndex]
		if _, err := m.editor.OpenInNewTab(selected.Path); err != nil {
			return m.setFileError("Open failed", err)
		}
		m.mode = ModeEditor
		m.ensureCursorVisible()
		return m.setStatusMessage("Opened " + selected.Path)

	case keybinds.ActionRemoveEntry:
		if len(m.recentFiltered) == 0 {
			return nil
		}
		selected := m.recentFiltered[m.recentIndex]
		if err := m.recent.Remove(selected.Path); err != nil {
			return m.setError("Remove recent file", err)
		}
		for i, e := range m.recentEntries {
			if e.Path == selected.Path {
				m.recentEntries = append(m.recentEntries[:i], m.recentEntries[i+1:]...)
				break
			}
		}
		m.refilterRecent()
		return m.setStatusMessage("Forgot " + selected.Path)

	default:
		// Global accelerators close the list first
		m.mode = ModeEditor
		return m.runAction(action)
	}

	return nil
}

// editRecentQuery applies typing and backspace to the filter
func (m *Model) editRecentQuery(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace:
		if m.recentQuery == "" {
			return
		}
		runes := []rune(m.recentQuery)
		m.recentQuery = string(runes[:len(runes)-1])
	case tea.KeyRunes:
		m.recentQuery += string(msg.Runes)
	case tea.KeySpace:
		m.recentQuery += " "
	default:
		return
	}
	m.recentIndex = 0
	m.refilterRecent()
}

// renderRecentModal renders the recent files list
func (m *Model) renderRecentModal() string {
	var content strings.Builder

	content.WriteString("Filter: " + m.recentQuery + "█\n\n")

	if len(m.recentFiltered) == 0 {
		if len(m.recentEntries) == 0 {
			content.WriteString(styleSubtle.Render("No recent files"))
		} else {
			content.WriteString(styleSubtle.Render("No matches"))
		}
	}

	for i, entry := range m.recentFiltered {
		line := fmt.Sprintf("%-28s %s", entry.Name(), styleSubtle.Render(entry.Path))
		if i == m.recentIndex {
			content.WriteString(styleSelected.Render("> "+line) + "\n")
		} else {
			content.WriteString("  " + line + "\n")
		}
	}

	if m.errorMsg != "" {
		content.WriteString("\n")
		content.WriteString(styleError.Render(m.errorMsg))
	}

	footer := fmt.Sprintf("[↑/↓] navigate [type] filter [%s] open [%s] forget [%s] close",
		m.keybinds.GetBindingString(keybinds.ContextRecent, keybinds.ActionConfirm),
		m.keybinds.GetBindingString(keybinds.ContextRecent, keybinds.ActionRemoveEntry),
		m.keybinds.GetBindingString(keybinds.ContextRecent, keybinds.ActionCloseModal))

	// Two header lines precede the entries
	return m.renderModalWithFooterAndScroll("Recent Files", content.String(), footer, RecentModalWidth, RecentModalHeight, m.recentIndex+2)
}
