package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/studiowebux/tabpad/internal/keybinds"
)

// menuItem is one entry of a drop-down menu
type menuItem struct {
	label  string
	action keybinds.Action
}

// menu is one title of the menu bar
type menu struct {
	title string
	items []menuItem
}

var menus = []menu{
	{
		title: "File",
		items: []menuItem{
			{"New", keybinds.ActionNewTab},
			{"Open...", keybinds.ActionOpenFile},
			{"Recent...", keybinds.ActionOpenRecent},
			{"Save", keybinds.ActionSave},
			{"Save As...", keybinds.ActionSaveAs},
			{"Rename...", keybinds.ActionRename},
			{"Close Tab", keybinds.ActionCloseTab},
			{"Exit", keybinds.ActionQuit},
		},
	},
	{
		title: "Edit",
		items: []menuItem{
			{"Cut", keybinds.ActionCut},
			{"Copy", keybinds.ActionCopy},
			{"Paste", keybinds.ActionPaste},
			{"Undo", keybinds.ActionUndo},
			{"Redo", keybinds.ActionRedo},
			{"Select All", keybinds.ActionSelectAll},
		},
	},
	{
		title: "Format",
		items: []menuItem{
			{"Increase Font Size", keybinds.ActionFontIncrease},
			{"Decrease Font Size", keybinds.ActionFontDecrease},
			{"Replace...", keybinds.ActionReplace},
			{"Find...", keybinds.ActionFind},
			{"Find Next", keybinds.ActionFindNext},
		},
	},
	{
		title: "View",
		items: []menuItem{
			{"Toggle Status Bar", keybinds.ActionToggleStatusBar},
			{"Next Tab", keybinds.ActionNextTab},
			{"Previous Tab", keybinds.ActionPrevTab},
			{"Key Bindings", keybinds.ActionOpenHelp},
		},
	},
	{
		title: "Options",
		items: []menuItem{
			{"Theme: White", keybinds.ActionThemeWhite},
			{"Theme: Dark", keybinds.ActionThemeDark},
			{"Theme: Blue", keybinds.ActionThemeBlue},
			{"Theme: Green", keybinds.ActionThemeGreen},
			{"Theme: Reload", keybinds.ActionThemeReload},
			{"Change Border Color...", keybinds.ActionChangeBorder},
			{"Change Background Color...", keybinds.ActionChangeBackground},
			{"Change Text Color...", keybinds.ActionChangeText},
			{"Insert Date/Time", keybinds.ActionInsertDateTime},
		},
	},
}

// openMenu focuses the menu bar on the File menu
func (m *Model) openMenu() {
	m.menu.Reset()
	m.mode = ModeMenu
}

// handleMenuKeys handles keyboard input while the menu bar is open
func (m *Model) handleMenuKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextMenu, msg.String())
	if !ok {
		return nil
	}

	current := menus[m.menu.GetMenu()]

	switch action {
	case keybinds.ActionNavigateLeft:
		m.menu.MoveMenu(-1, len(menus))
	case keybinds.ActionNavigateRight:
		m.menu.MoveMenu(1, len(menus))
	case keybinds.ActionNavigateUp:
		m.menu.MoveItem(-1, len(current.items))
	case keybinds.ActionNavigateDown:
		m.menu.MoveItem(1, len(current.items))
	case keybinds.ActionConfirm:
		item := current.items[m.menu.GetItem()]
		m.mode = ModeEditor
		cmd := m.runAction(item.action)
		m.ensureCursorVisible()
		return cmd
	case keybinds.ActionCloseModal:
		m.mode = ModeEditor
	default:
		// Global accelerators keep working while the menu is open
		m.mode = ModeEditor
		cmd := m.runAction(action)
		m.ensureCursorVisible()
		return cmd
	}

	return nil
}

// renderMenuBar renders the menu titles, highlighting the open one
func (m *Model) renderMenuBar() string {
	var parts []string
	for i, mn := range menus {
		if m.mode == ModeMenu && i == m.menu.GetMenu() {
			parts = append(parts, m.styles.MenuFocus.Render(mn.title))
		} else {
			parts = append(parts, m.styles.MenuItem.Render(mn.title))
		}
	}

	hint := m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionOpenMenu)
	bar := strings.Join(parts, "")
	spacing := m.width - lipgloss.Width(bar) - lipgloss.Width(hint) - 1
	if spacing < 1 {
		spacing = 1
	}
	return m.styles.MenuBar.Width(m.width).Render(bar + strings.Repeat(" ", spacing) + hint + " ")
}

// menuOffset returns the display column where menu index starts
func (m *Model) menuOffset(index int) int {
	offset := 0
	for i := 0; i < index && i < len(menus); i++ {
		offset += lipgloss.Width(m.styles.MenuItem.Render(menus[i].title))
	}
	return offset
}

// renderMenuDropdown renders the item list of the open menu
func (m *Model) renderMenuDropdown() string {
	current := menus[m.menu.GetMenu()]
	selected := m.menu.GetItem()

	labelWidth := 0
	for _, item := range current.items {
		labelWidth = max(labelWidth, lipgloss.Width(item.label))
	}
	keyWidth := 0
	keys := make([]string, len(current.items))
	for i, item := range current.items {
		if k := m.keybinds.GetBinding(keybinds.ContextEditor, item.action); len(k) > 0 {
			keys[i] = k[0]
		}
		keyWidth = max(keyWidth, lipgloss.Width(keys[i]))
	}

	var lines []string
	for i, item := range current.items {
		line := item.label + strings.Repeat(" ", labelWidth-lipgloss.Width(item.label))
		if keyWidth > 0 {
			line += "  " + strings.Repeat(" ", keyWidth-lipgloss.Width(keys[i])) + keys[i]
		}
		if i == selected {
			lines = append(lines, m.styles.MenuFocus.Render(line))
		} else {
			lines = append(lines, m.styles.MenuItem.Render(line))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Border).
		BorderBackground(m.styles.TabBg).
		Render(strings.Join(lines, "\n"))
}

// overlay draws box over base with its top-left corner at column x, row y
func overlay(base, box string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")

	for i, boxLine := range boxLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		line := baseLines[row]
		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(boxLine), "")
		baseLines[row] = left + boxLine + right
	}

	return strings.Join(baseLines, "\n")
}
