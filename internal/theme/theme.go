// Package theme persists the editor colours in a JSON file and turns them
// into lipgloss styles.
package theme

// Defaults used for any colour a theme leaves empty.
const (
	DefaultBackground = "black"
	DefaultText       = "white"
	DefaultBorder     = "white"
	DefaultTabBg      = "#333"
)

// Theme is the persisted colour record. Every field is optional.
type Theme struct {
	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
	BorderColor     string `json:"border_color,omitempty"`
	TabBgColor      string `json:"tab_bg_color,omitempty"`
}

// IsZero reports whether no colour is set.
func (t Theme) IsZero() bool {
	return t == Theme{}
}

// Resolved returns a copy with the defaults filled in.
func (t Theme) Resolved() Theme {
	if t.BackgroundColor == "" {
		t.BackgroundColor = DefaultBackground
	}
	if t.TextColor == "" {
		t.TextColor = DefaultText
	}
	if t.BorderColor == "" {
		t.BorderColor = DefaultBorder
	}
	if t.TabBgColor == "" {
		t.TabBgColor = DefaultTabBg
	}
	return t
}

// Merge returns t with every non-empty field of partial copied over it.
func (t Theme) Merge(partial Theme) Theme {
	if partial.BackgroundColor != "" {
		t.BackgroundColor = partial.BackgroundColor
	}
	if partial.TextColor != "" {
		t.TextColor = partial.TextColor
	}
	if partial.BorderColor != "" {
		t.BorderColor = partial.BorderColor
	}
	if partial.TabBgColor != "" {
		t.TabBgColor = partial.TabBgColor
	}
	return t
}

// Applier receives a theme whenever the store applies one.
type Applier interface {
	ApplyTheme(Theme)
}

// ApplierFunc adapts a function to Applier.
type ApplierFunc func(Theme)

// ApplyTheme calls f.
func (f ApplierFunc) ApplyTheme(t Theme) {
	f(t)
}
