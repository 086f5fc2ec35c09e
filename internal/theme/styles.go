package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Window    lipgloss.Style // editor background and text
	Pane      lipgloss.Style // bordered editor pane
	TabBar    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	MenuBar   lipgloss.Style
	MenuItem  lipgloss.Style
	MenuFocus lipgloss.Style
	StatusBar lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Background lipgloss.Color
	Text       lipgloss.Color
	Border     lipgloss.Color
	TabBg      lipgloss.Color
}

// NewStyles resolves defaults on t and builds the styles. Colours that do
// not parse fall back to the defaults.
func NewStyles(t Theme) Styles {
	r := t.Resolved()
	bg := lipglossColor(r.BackgroundColor, DefaultBackground)
	fg := lipglossColor(r.TextColor, DefaultText)
	border := lipglossColor(r.BorderColor, DefaultBorder)
	tabBg := lipglossColor(r.TabBgColor, DefaultTabBg)

	window := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg)

	return Styles{
		Window: window,
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			BorderBackground(bg).
			Background(bg).
			Foreground(fg),
		TabBar: lipgloss.NewStyle().
			Background(tabBg).
			Foreground(fg),
		Tab: lipgloss.NewStyle().
			Background(tabBg).
			Foreground(fg).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Background(bg).
			Foreground(fg).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		MenuBar: lipgloss.NewStyle().
			Background(tabBg).
			Foreground(fg),
		MenuItem: lipgloss.NewStyle().
			Background(tabBg).
			Foreground(fg).
			Padding(0, 1),
		MenuFocus: lipgloss.NewStyle().
			Background(fg).
			Foreground(tabBg).
			Bold(true).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Background(bg).
			Foreground(fg),
		Selection: lipgloss.NewStyle().
			Background(selectionColor(r.BackgroundColor, r.TextColor)).
			Foreground(fg),
		Cursor: window.Reverse(true),

		Background: bg,
		Text:       fg,
		Border:     border,
		TabBg:      tabBg,
	}
}
