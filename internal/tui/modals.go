package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/tabpad/internal/keybinds"
)

// helpCategories is the order of sections in the help viewer
var helpCategories = []string{
	"File", "Edit", "Format", "View", "Theme", "Options",
	"Navigation", "Selection", "Editing", "Global", "Lists", "Other",
}

// openHelp shows the key binding viewer
func (m *Model) openHelp() {
	m.updateHelpView()
	m.helpView.GotoTop()
	m.mode = ModeHelp
}

// handleHelpKeys handles keyboard input in the help viewer
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal:
		m.mode = ModeEditor
	case keybinds.ActionNavigateUp:
		m.helpView.LineUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.LineDown(1)
	case keybinds.ActionPageUp:
		m.helpView.ViewUp()
	case keybinds.ActionPageDown:
		m.helpView.ViewDown()
	case keybinds.ActionQuit:
		return m.quit()
	}

	return nil
}

// updateHelpView rebuilds the help text from the active key bindings
func (m *Model) updateHelpView() {
	byCategory := make(map[string][]string)

	seen := make(map[keybinds.Action]bool)
	for _, b := range m.keybinds.ListBindings(keybinds.ContextEditor) {
		if seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		info := keybinds.GetActionInfo(b.Action)
		keys := m.keybinds.GetBindingString(keybinds.ContextEditor, b.Action)
		byCategory[info.Category] = append(byCategory[info.Category],
			fmt.Sprintf("  %-24s %s", keys, info.Description))
	}

	var sb strings.Builder
	sb.WriteString("tabpad - Keyboard Shortcuts\n")
	for _, category := range helpCategories {
		lines := byCategory[category]
		if len(lines) == 0 {
			continue
		}
		sort.Strings(lines)
		sb.WriteString("\n" + strings.ToUpper(category) + "\n")
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n")
	}

	sb.WriteString("\nMENUS\n")
	sb.WriteString(fmt.Sprintf("  %-24s %s\n", m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionOpenMenu), "Open the menu bar; arrows move, enter selects"))
	sb.WriteString("  Every menu command works even when it has no key\n")

	sb.WriteString("\nCustomize bindings in ~/.tabpad/keybinds.json\n")

	m.helpView.SetContent(sb.String())
}

// renderHelp renders the help modal
func (m *Model) renderHelp() string {
	title := styleTitle.Render("Keyboard Shortcuts")
	footer := "↑/↓ j/k: scroll | PgUp/PgDn: page | ESC/q: close"

	// Footer is outside the viewport so it stays visible
	fullContent := title + "\n\n" + m.helpView.View() + "\n\n" + styleSubtle.Render(footer)

	helpView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - ModalWidthMarginNarrow).
		Height(m.height - ModalHeightMarginMed).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpView,
	)
}

// renderModalWithFooter renders a modal dialog with scrollable content and a fixed footer
func (m *Model) renderModalWithFooter(title, content, footer string, width, height int) string {
	return m.renderModalWithFooterAndScroll(title, content, footer, width, height, -1)
}

// renderModalWithFooterAndScroll renders a modal with footer and auto-scrolls to keep selectedLine visible
// Pass selectedLine=-1 to preserve existing scroll position
func (m *Model) renderModalWithFooterAndScroll(title, content, footer string, width, height, selectedLine int) string {
	maxWidth := m.width - ViewportPaddingHorizontal
	maxHeight := m.height - ModalHeightMarginSmall

	if width > maxWidth {
		width = maxWidth
	}
	if height > maxHeight {
		height = maxHeight
	}
	if width < 30 && m.width >= 30 {
		width = 30
	}
	if height < 8 && m.height >= 8 {
		height = 8
	}

	footerLines := 0
	if footer != "" {
		footerLines = ModalFooterLines
	}
	contentHeight := height - ModalOverheadLines - footerLines
	if contentHeight < 1 {
		contentHeight = max(height-ModalOverheadMinimal-footerLines, 1)
	}

	m.modalView.Width = max(width-ViewportPaddingHorizontal, 10)
	m.modalView.Height = contentHeight

	// Save scroll before SetContent resets it
	savedOffset := m.modalView.YOffset
	m.modalView.SetContent(content)

	if selectedLine >= 0 && m.modalView.Height > 0 {
		topVisible := savedOffset
		bottomVisible := savedOffset + m.modalView.Height - 1

		switch {
		case selectedLine < topVisible:
			m.modalView.SetYOffset(selectedLine)
		case selectedLine > bottomVisible:
			m.modalView.SetYOffset(selectedLine - m.modalView.Height + 1)
		default:
			m.modalView.SetYOffset(savedOffset)
		}
	} else {
		m.modalView.SetYOffset(savedOffset)
	}

	fullContent := styleTitle.Render(title) + "\n\n" + m.modalView.View()
	if footer != "" {
		fullContent += "\n\n" + styleSubtle.Render(footer)
	}

	modalBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(fullContent)

	if width >= m.width-2 || height >= m.height-1 {
		return modalBox
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalBox,
	)
}
