package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/studiowebux/tabpad/internal/buffer"
	"github.com/studiowebux/tabpad/internal/document"
	"github.com/studiowebux/tabpad/internal/keybinds"
)

// Adaptive color definitions for light/dark terminal support.
// Modals use these; the editor chrome follows the theme.
var (
	colorRed  = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorBlue = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"} // Dark blue / Blue
	colorGray = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// renderMain renders the editor: menu bar, tab bar, editor pane and status bar
func (m *Model) renderMain() string {
	parts := []string{
		m.renderMenuBar(),
		m.renderTabBar(),
		m.renderEditorPane(),
	}
	if m.statusBarVisible() {
		parts = append(parts, m.renderStatusBar())
	}

	view := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.mode == ModeMenu {
		view = overlay(view, m.renderMenuDropdown(), m.menuOffset(m.menu.GetMenu()), MenuBarHeight)
	}

	return view
}

// statusBarVisible reports whether the status bar takes a row. Errors are
// shown even when the bar is toggled off.
func (m *Model) statusBarVisible() bool {
	return m.showStatusBar || m.errorMsg != ""
}

// renderTabBar renders one label per tab, keeping the active tab in view
func (m *Model) renderTabBar() string {
	reg := m.editor.Registry()
	tabs := reg.Tabs()
	active := reg.ActiveIndex()

	labels := make([]string, len(tabs))
	for i, tab := range tabs {
		label := tabLabel(tab)
		if i == active {
			labels[i] = m.styles.ActiveTab.Render(label)
		} else {
			labels[i] = m.styles.Tab.Render(label)
		}
	}

	// Grow a window around the active tab until the bar is full
	from, to := active, active+1
	used := lipgloss.Width(labels[active])
	for {
		grew := false
		if to < len(labels) && used+lipgloss.Width(labels[to]) <= m.width {
			used += lipgloss.Width(labels[to])
			to++
			grew = true
		}
		if from > 0 && used+lipgloss.Width(labels[from-1]) <= m.width {
			from--
			used += lipgloss.Width(labels[from])
			grew = true
		}
		if !grew {
			break
		}
	}

	bar := strings.Join(labels[from:to], "")
	return m.styles.TabBar.Width(m.width).MaxWidth(m.width).Render(bar)
}

// tabLabel returns the tab title with a modified marker
func tabLabel(tab *document.Tab) string {
	label := tab.Label
	if runewidth.StringWidth(label) > MaxTabLabelWidth {
		label = runewidth.Truncate(label, MaxTabLabelWidth, "…")
	}
	if tab.Modified() {
		label += " *"
	}
	return label
}

// editorSize returns the size of the text area inside the pane border,
// without the line number gutter
func (m *Model) editorSize() (width, height int) {
	width = m.width - ViewportBorderWidth
	height = m.height - MenuBarHeight - TabBarHeight - ViewportBorderWidth
	if m.statusBarVisible() {
		height -= StatusBarHeight
	}
	if m.lineNumbers {
		width -= LineNumberWidth
	}
	return max(width, 1), max(height, 1)
}

// pane returns the scroll state of a tab
func (m *Model) pane(tab *document.Tab) *paneView {
	view, ok := m.panes[tab.ID]
	if !ok {
		view = &paneView{}
		m.panes[tab.ID] = view
	}
	return view
}

// cell is one rendered rune of a line
type cell struct {
	text   string
	width  int
	offset int // rune offset in the buffer
}

// lineCells expands a line into display cells. Tabs advance to the next tab
// stop and control characters use caret notation.
func (m *Model) lineCells(line string, start int) []cell {
	cells := make([]cell, 0, len(line))
	col := 0
	offset := start
	for _, r := range line {
		switch {
		case r == '\t':
			n := m.tabWidth - col%m.tabWidth
			cells = append(cells, cell{text: strings.Repeat(" ", n), width: n, offset: offset})
			col += n
		case unicode.IsControl(r):
			text := "^" + string(rune('@'+r%32))
			cells = append(cells, cell{text: text, width: 2, offset: offset})
			col += 2
		default:
			w := runewidth.RuneWidth(r)
			cells = append(cells, cell{text: string(r), width: w, offset: offset})
			col += w
		}
		offset++
	}
	return cells
}

// cursorColumn returns the display column of the cursor on its line
func (m *Model) cursorColumn(buf *buffer.Buffer) int {
	line, _ := buf.LineCol(buf.Cursor())
	lines := buf.Lines()
	start := buf.Offset(line, 0)
	col := 0
	for _, c := range m.lineCells(lines[line], start) {
		if c.offset >= buf.Cursor() {
			break
		}
		col += c.width
	}
	return col
}

// ensureCursorVisible scrolls the active pane so the cursor is on screen
func (m *Model) ensureCursorVisible() {
	if m.width == 0 {
		return
	}
	tab, err := m.editor.Registry().ActiveTab()
	if err != nil {
		return
	}
	view := m.pane(tab)
	width, height := m.editorSize()
	buf := tab.Buffer

	line, _ := buf.LineCol(buf.Cursor())
	if line < view.top {
		view.top = line
	}
	if line >= view.top+height {
		view.top = line - height + 1
	}

	col := m.cursorColumn(buf)
	if col < view.left {
		view.left = col
	}
	if col >= view.left+width {
		view.left = col - width + 1
	}
}

const (
	cellNormal = iota
	cellSelected
	cellCursor
)

// renderEditorPane renders the visible part of the active buffer inside the themed border
func (m *Model) renderEditorPane() string {
	width, height := m.editorSize()
	tab, err := m.editor.Registry().ActiveTab()
	if err != nil {
		return m.styles.Pane.Render(strings.Repeat(" ", width))
	}
	view := m.pane(tab)
	buf := tab.Buffer

	lines := buf.Lines()
	cursor := buf.Cursor()
	selStart, selEnd, hasSel := buf.Selection()

	// Offset of the first visible line
	start := 0
	for i := 0; i < view.top && i < len(lines); i++ {
		start += len([]rune(lines[i])) + 1
	}

	rows := make([]string, 0, height)
	for row := 0; row < height; row++ {
		lineNo := view.top + row
		var gutter string
		if m.lineNumbers {
			if lineNo < len(lines) {
				gutter = m.styles.Window.Faint(true).Render(fmt.Sprintf("%*d ", LineNumberWidth-1, lineNo+1))
			} else {
				gutter = m.styles.Window.Render(strings.Repeat(" ", LineNumberWidth))
			}
		}

		if lineNo >= len(lines) {
			rows = append(rows, gutter+m.styles.Window.Render(strings.Repeat(" ", width)))
			continue
		}

		line := lines[lineNo]
		end := start + len([]rune(line))
		cells := append(m.lineCells(line, start), cell{text: " ", width: 1, offset: end})
		rows = append(rows, gutter+m.renderCells(cells, view.left, width, cursor, selStart, selEnd, hasSel))
		start = end + 1
	}

	return m.styles.Pane.Render(strings.Join(rows, "\n"))
}

// renderCells renders the cells between display columns left and left+width
func (m *Model) renderCells(cells []cell, left, width, cursor, selStart, selEnd int, hasSel bool) string {
	var out strings.Builder
	var run strings.Builder
	runKind := cellNormal

	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch runKind {
		case cellCursor:
			out.WriteString(m.styles.Cursor.Render(run.String()))
		case cellSelected:
			out.WriteString(m.styles.Selection.Render(run.String()))
		default:
			out.WriteString(m.styles.Window.Render(run.String()))
		}
		run.Reset()
	}

	col, used := 0, 0
	for _, c := range cells {
		cellStart := col
		col += c.width
		if (c.width > 0 && col <= left) || (c.width == 0 && cellStart < left) {
			continue
		}
		if used >= width {
			break
		}

		text, w := c.text, c.width
		if cellStart < left {
			// Wide rune or tab cut by the left edge
			w = col - left
			text = strings.Repeat(" ", w)
		}
		if used+w > width {
			w = width - used
			text = strings.Repeat(" ", w)
		}

		kind := cellNormal
		if c.offset == cursor && m.mode != ModeDialog {
			kind = cellCursor
		} else if hasSel && c.offset >= selStart && c.offset < selEnd {
			kind = cellSelected
		}
		if kind != runKind {
			flush()
			runKind = kind
		}
		run.WriteString(text)
		used += w
	}
	flush()

	if used < width {
		out.WriteString(m.styles.Window.Render(strings.Repeat(" ", width-used)))
	}
	return out.String()
}

// renderStatusBar renders the cursor position, font size, file and messages
func (m *Model) renderStatusBar() string {
	reg := m.editor.Registry()
	tab, err := reg.ActiveTab()

	left := ""
	if err == nil {
		line, col := tab.Buffer.LineCol(tab.Buffer.Cursor())
		name := tab.Path
		if name == "" {
			name = tab.Label + " (unsaved)"
		} else if home, herr := homeRelative(name); herr == nil {
			name = home
		}
		left = fmt.Sprintf(" Ln %d, Col %d | %dpt | %s", line+1, col+1, tab.FontSize, name)
		if tab.Modified() {
			left += " | Modified"
		}
		if reg.Len() > 1 {
			left += fmt.Sprintf(" | Tab %d/%d", reg.ActiveIndex()+1, reg.Len())
		}
	}

	bar := m.styles.StatusBar
	right := ""
	if m.errorMsg != "" {
		right = bar.Foreground(colorRed).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		right = bar.Render(m.statusMsg)
	} else {
		right = bar.Faint(true).Render(fmt.Sprintf("%s menu | %s help | %s quit",
			m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionOpenMenu),
			m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionOpenHelp),
			m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionQuit)))
	}

	// Messages give way to the position info on narrow screens
	if room := m.width - lipgloss.Width(left) - 2; lipgloss.Width(right) > room {
		right = ansi.Truncate(right, max(room, 0), "…")
	}

	// Center spacing
	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if spacing < 1 {
		spacing = 1
	}

	return bar.MaxWidth(m.width).Render(left+strings.Repeat(" ", spacing)) + right + bar.Render(" ")
}

var userHomeDir = os.UserHomeDir

// homeRelative shortens paths below the home directory to ~/...
func homeRelative(path string) (string, error) {
	home, err := userHomeDir()
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path, nil
	}
	return filepath.Join("~", rel), nil
}

// updateViewport resizes the help viewport to the window
func (m *Model) updateViewport() {
	m.helpView.Width = m.width - ModalWidthMarginNarrow - ViewportPaddingHorizontal - ViewportBorderWidth
	m.helpView.Height = m.height - ModalHeightMarginMed - ModalOverheadLines - ModalFooterLines
	if m.helpView.Height < 1 {
		m.helpView.Height = 1
	}
}
