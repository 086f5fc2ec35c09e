package editor

import (
	"path/filepath"

	"github.com/studiowebux/tabpad/internal/document"
	"github.com/studiowebux/tabpad/internal/theme"
)

// NewTab opens a blank tab.
func (e *Editor) NewTab() *document.Tab {
	return e.reg.NewTab()
}

// CloseActive closes the focused tab.
func (e *Editor) CloseActive() error {
	return e.reg.CloseTab(e.reg.ActiveIndex())
}

// Open loads path into the active tab, or focuses the tab that already
// shows it.
func (e *Editor) Open(path string) error {
	path = absPath(path)
	if idx := e.reg.FindByPath(path); idx >= 0 {
		return e.reg.SetActive(idx)
	}
	if err := e.reg.Open(path); err != nil {
		return err
	}
	e.touch(path)
	return nil
}

// OpenInNewTab loads path into a new tab, or focuses the tab that already
// shows it.
func (e *Editor) OpenInNewTab(path string) (*document.Tab, error) {
	path = absPath(path)
	if idx := e.reg.FindByPath(path); idx >= 0 {
		if err := e.reg.SetActive(idx); err != nil {
			return nil, err
		}
		return e.reg.ActiveTab()
	}
	tab, err := e.reg.OpenInNewTab(path)
	if err != nil {
		return nil, err
	}
	e.touch(path)
	return tab, nil
}

// Save writes the active tab. It returns document.ErrNoPath for a tab that
// needs a name first.
func (e *Editor) Save() error {
	tab, err := e.active()
	if err != nil {
		return err
	}
	if err := e.reg.Save(tab); err != nil {
		return err
	}
	e.touch(tab.Path)
	return nil
}

// SaveAs writes the active tab to path.
func (e *Editor) SaveAs(path string) error {
	tab, err := e.active()
	if err != nil {
		return err
	}
	path = absPath(path)
	if err := e.reg.SaveAs(tab, path); err != nil {
		return err
	}
	e.touch(path)
	return nil
}

// Rename moves the active tab's file to path.
func (e *Editor) Rename(path string) error {
	tab, err := e.active()
	if err != nil {
		return err
	}
	path = absPath(path)
	if err := e.reg.Rename(tab, path); err != nil {
		return err
	}
	e.touch(path)
	return nil
}

// ApplyNamedTheme applies a preset and reports whether it exists.
func (e *Editor) ApplyNamedTheme(name string, applier theme.Applier) bool {
	return e.themes.ApplyNamed(name, applier)
}

// UpdateColors merges partial into the persisted theme and applies it.
func (e *Editor) UpdateColors(partial theme.Theme, applier theme.Applier) theme.Theme {
	return e.themes.UpdateColors(partial, applier)
}

// ReloadTheme reads the theme file again and applies it.
func (e *Editor) ReloadTheme(applier theme.Applier) theme.Theme {
	return e.themes.Reload(applier)
}

func (e *Editor) touch(path string) {
	if e.recent == nil || path == "" {
		return
	}
	if err := e.recent.Touch(path); err != nil {
		e.log.Warn("record recent file", "path", path, "error", err)
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
