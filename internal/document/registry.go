// Package document owns the open tabs and moves their text to and from disk.
//
// The Registry is the only authority over which tabs exist, which one is
// active and which have never been saved. A tab is in the unsaved set exactly
// when its Path is empty; every method that changes a path keeps the two in
// step.
package document

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/studiowebux/tabpad/internal/buffer"
	"github.com/studiowebux/tabpad/internal/logger"
)

// DefaultLabel is the label of a tab that has no file yet.
const DefaultLabel = "New Tab"

// DefaultFontSize is used when Options.FontSize is not set.
const DefaultFontSize = 12

// Tab is one open document.
type Tab struct {
	ID       int
	Label    string
	Path     string // "" until the tab is saved or opened from a file
	Buffer   *buffer.Buffer
	FontSize int

	savedState uint64
}

// Modified reports whether the text changed since it was last loaded or saved.
func (t *Tab) Modified() bool {
	return t.Buffer.State() != t.savedState
}

func (t *Tab) markSaved() {
	// Typing after a save must not extend the saved undo step
	t.Buffer.Seal()
	t.savedState = t.Buffer.State()
}

// Options configures a Registry.
type Options struct {
	FontSize  int
	UndoLimit int
	Logger    *slog.Logger
}

// Registry tracks the open tabs. It always holds at least one tab.
type Registry struct {
	mu      sync.RWMutex
	tabs    []*Tab
	active  int
	unsaved map[int]struct{}
	nextID  int
	opts    Options
	log     *slog.Logger
}

// NewRegistry creates a registry holding one blank tab.
func NewRegistry(opts Options) *Registry {
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultFontSize
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	r := &Registry{
		unsaved: make(map[int]struct{}),
		opts:    opts,
		log:     log,
	}
	r.newTabLocked()
	return r
}

// NewTab creates a blank unsaved tab and makes it active.
func (r *Registry) NewTab() *Tab {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.newTabLocked()
}

func (r *Registry) newTabLocked() *Tab {
	r.nextID++
	b := buffer.New("")
	b.SetUndoLimit(r.opts.UndoLimit)
	tab := &Tab{
		ID:       r.nextID,
		Label:    DefaultLabel,
		Buffer:   b,
		FontSize: r.opts.FontSize,
	}
	r.tabs = append(r.tabs, tab)
	r.unsaved[tab.ID] = struct{}{}
	r.active = len(r.tabs) - 1
	return tab
}

// CloseTab removes the tab at index. Closing the last tab leaves a fresh
// blank tab in its place. Nothing is written to disk.
func (r *Registry) CloseTab(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.tabs) {
		return fmt.Errorf("close tab %d: %w", index, ErrTabIndex)
	}

	tab := r.tabs[index]
	delete(r.unsaved, tab.ID)
	r.tabs = append(r.tabs[:index], r.tabs[index+1:]...)

	if len(r.tabs) == 0 {
		r.newTabLocked()
		return nil
	}
	if r.active > index || r.active >= len(r.tabs) {
		r.active--
	}
	return nil
}

// ActiveTab returns the focused tab.
func (r *Registry) ActiveTab() (*Tab, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.active < 0 || r.active >= len(r.tabs) {
		return nil, ErrNoActiveTab
	}
	return r.tabs[r.active], nil
}

// ActiveIndex returns the index of the focused tab.
func (r *Registry) ActiveIndex() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// SetActive focuses the tab at index.
func (r *Registry) SetActive(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.tabs) {
		return fmt.Errorf("select tab %d: %w", index, ErrTabIndex)
	}
	r.active = index
	return nil
}

// Next focuses the following tab, wrapping around.
func (r *Registry) Next() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = (r.active + 1) % len(r.tabs)
}

// Prev focuses the preceding tab, wrapping around.
func (r *Registry) Prev() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = (r.active - 1 + len(r.tabs)) % len(r.tabs)
}

// RenameTab changes the label of the tab at index. The backing path is not touched.
func (r *Registry) RenameTab(index int, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.tabs) {
		return fmt.Errorf("rename tab %d: %w", index, ErrTabIndex)
	}
	r.tabs[index].Label = label
	return nil
}

// Tabs returns a snapshot of the open tabs in display order.
func (r *Registry) Tabs() []*Tab {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Tab, len(r.tabs))
	copy(out, r.tabs)
	return out
}

// Len returns the number of open tabs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tabs)
}

// IsUnsaved reports whether tab has never been saved to a path.
func (r *Registry) IsUnsaved(tab *Tab) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.unsaved[tab.ID]
	return ok
}

// UnsavedCount returns the size of the unsaved set.
func (r *Registry) UnsavedCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.unsaved)
}

// ModifiedCount returns how many tabs hold changes that are not on disk.
func (r *Registry) ModifiedCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, tab := range r.tabs {
		if tab.Modified() {
			n++
		}
	}
	return n
}

// FindByPath returns the index of the tab backed by path, or -1.
func (r *Registry) FindByPath(path string) int {
	clean := filepath.Clean(path)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i, tab := range r.tabs {
		if tab.Path != "" && filepath.Clean(tab.Path) == clean {
			return i
		}
	}
	return -1
}

// IndexOf returns the position of tab, or -1 when it is not open.
func (r *Registry) IndexOf(tab *Tab) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexLocked(tab)
}

func (r *Registry) indexLocked(tab *Tab) int {
	for i, t := range r.tabs {
		if t == tab {
			return i
		}
	}
	return -1
}

// assignPathLocked sets the backing file of tab and keeps the unsaved set in step.
// Caller holds r.mu.
func (r *Registry) assignPathLocked(tab *Tab, path string) {
	tab.Path = path
	tab.Label = filepath.Base(path)
	delete(r.unsaved, tab.ID)
	tab.markSaved()
}
