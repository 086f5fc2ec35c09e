// Package editor runs the editing commands against the active tab.
//
// An Editor is handed its collaborators explicitly: the tab registry, the
// theme store, a clipboard and a clock. Nothing is looked up from global
// state, so the same commands back the TUI menus, the key bindings and the
// tests.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/studiowebux/tabpad/internal/buffer"
	"github.com/studiowebux/tabpad/internal/clipboard"
	"github.com/studiowebux/tabpad/internal/document"
	"github.com/studiowebux/tabpad/internal/logger"
	"github.com/studiowebux/tabpad/internal/theme"
)

// DefaultDateTimeLayout is the timestamp inserted by InsertDateTime.
const DefaultDateTimeLayout = "Mon Jan 2 15:04:05 2006"

// Default font sizes offered by the Format menu.
const (
	DefaultFontIncrease = 14
	DefaultFontDecrease = 10
)

var (
	// ErrNotFound is returned by FindWord when the word is not after the cursor.
	ErrNotFound = buffer.ErrNotFound
	// ErrEmptyPattern is returned for an empty find or replace pattern.
	ErrEmptyPattern = buffer.ErrEmptyPattern
	// ErrNothingSelected is returned by Cut and Copy without a selection.
	ErrNothingSelected = errors.New("nothing selected")
	// ErrInvalidFontSize is returned for a font size below 1.
	ErrInvalidFontSize = errors.New("font size must be positive")
)

// Recorder is told about every file that is opened or saved.
type Recorder interface {
	Touch(path string) error
}

// Options configures an Editor. Registry is required.
type Options struct {
	Registry       *document.Registry
	Themes         *theme.Store
	Clipboard      clipboard.Clipboard
	Recent         Recorder
	Now            func() time.Time
	DateTimeLayout string
	FontIncrease   int
	FontDecrease   int
	Logger         *slog.Logger
}

// Editor executes commands on the active tab.
type Editor struct {
	reg    *document.Registry
	themes *theme.Store
	clip   clipboard.Clipboard
	recent Recorder
	now    func() time.Time
	layout string
	fontUp int
	fontDn int
	log    *slog.Logger
}

// New creates an Editor, filling unset options with defaults.
func New(opts Options) *Editor {
	if opts.Registry == nil {
		opts.Registry = document.NewRegistry(document.Options{Logger: opts.Logger})
	}
	if opts.Themes == nil {
		opts.Themes = theme.NewStore("", opts.Logger)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewMemory()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DateTimeLayout == "" {
		opts.DateTimeLayout = DefaultDateTimeLayout
	}
	if opts.FontIncrease <= 0 {
		opts.FontIncrease = DefaultFontIncrease
	}
	if opts.FontDecrease <= 0 {
		opts.FontDecrease = DefaultFontDecrease
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	return &Editor{
		reg:    opts.Registry,
		themes: opts.Themes,
		clip:   opts.Clipboard,
		recent: opts.Recent,
		now:    opts.Now,
		layout: opts.DateTimeLayout,
		fontUp: opts.FontIncrease,
		fontDn: opts.FontDecrease,
		log:    opts.Logger,
	}
}

// Registry returns the tab registry.
func (e *Editor) Registry() *document.Registry {
	return e.reg
}

// Themes returns the theme store.
func (e *Editor) Themes() *theme.Store {
	return e.themes
}

func (e *Editor) active() (*document.Tab, error) {
	return e.reg.ActiveTab()
}

func (e *Editor) activeBuffer() (*buffer.Buffer, error) {
	tab, err := e.active()
	if err != nil {
		return nil, err
	}
	return tab.Buffer, nil
}

// Cut moves the selection to the clipboard.
func (e *Editor) Cut() error {
	buf, err := e.activeBuffer()
	if err != nil {
		return err
	}
	if !buf.HasSelection() {
		return ErrNothingSelected
	}
	if err := e.clip.WriteAll(buf.SelectedText()); err != nil {
		e.log.Warn("clipboard write failed", "error", err)
	}
	buf.DeleteSelection()
	return nil
}

// Copy puts the selection on the clipboard.
func (e *Editor) Copy() error {
	buf, err := e.activeBuffer()
	if err != nil {
		return err
	}
	if !buf.HasSelection() {
		return ErrNothingSelected
	}
	if err := e.clip.WriteAll(buf.SelectedText()); err != nil {
		e.log.Warn("clipboard write failed", "error", err)
	}
	return nil
}

// Paste inserts the clipboard at the cursor, replacing any selection.
func (e *Editor) Paste() error {
	buf, err := e.activeBuffer()
	if err != nil {
		return err
	}
	text, err := e.clip.ReadAll()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	if text == "" {
		return nil
	}
	buf.Insert(text)
	return nil
}

// Undo reverts the last change in the active tab.
func (e *Editor) Undo() bool {
	buf, err := e.activeBuffer()
	if err != nil {
		return false
	}
	return buf.Undo()
}

// Redo reapplies the last undone change in the active tab.
func (e *Editor) Redo() bool {
	buf, err := e.activeBuffer()
	if err != nil {
		return false
	}
	return buf.Redo()
}

// SelectAll selects the whole active tab.
func (e *Editor) SelectAll() error {
	buf, err := e.activeBuffer()
	if err != nil {
		return err
	}
	buf.SelectAll()
	return nil
}

// ChangeFontSize sets the active tab's font size to points.
func (e *Editor) ChangeFontSize(points int) error {
	if points < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidFontSize, points)
	}
	tab, err := e.active()
	if err != nil {
		return err
	}
	tab.FontSize = points
	return nil
}

// IncreaseFontSize sets the font size offered by "Increase Font Size".
func (e *Editor) IncreaseFontSize() error {
	return e.ChangeFontSize(e.fontUp)
}

// DecreaseFontSize sets the font size offered by "Decrease Font Size".
func (e *Editor) DecreaseFontSize() error {
	return e.ChangeFontSize(e.fontDn)
}

// FindWord selects the next occurrence of word after the cursor.
func (e *Editor) FindWord(word string) error {
	buf, err := e.activeBuffer()
	if err != nil {
		return err
	}
	if _, _, err := buf.Find(word); err != nil {
		if errors.Is(err, ErrNotFound) {
			e.log.Info("word not found", "word", word)
		}
		return err
	}
	return nil
}

// ReplaceWord replaces every occurrence of old in the active tab and returns
// how many were replaced.
func (e *Editor) ReplaceWord(old, repl string) (int, error) {
	buf, err := e.activeBuffer()
	if err != nil {
		return 0, err
	}
	n, err := buf.ReplaceAll(old, repl)
	if err != nil {
		return 0, err
	}
	e.log.Debug("replaced", "old", old, "count", n)
	return n, nil
}

// InsertDateTime inserts the current local time at the cursor and returns it.
func (e *Editor) InsertDateTime() (string, error) {
	buf, err := e.activeBuffer()
	if err != nil {
		return "", err
	}
	stamp := e.now().Format(e.layout)
	buf.Insert(stamp)
	return stamp, nil
}
