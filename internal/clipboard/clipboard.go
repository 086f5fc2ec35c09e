// Package clipboard gives the editor a clipboard that works with or without
// a system clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard stores text for cut, copy and paste.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System uses the OS clipboard and keeps a private copy for terminals where
// the OS clipboard is unavailable (no xclip/xsel/wl-clipboard, SSH sessions).
type System struct {
	mu       sync.Mutex
	fallback string
}

// NewSystem returns a clipboard backed by the OS clipboard.
func NewSystem() *System {
	return &System{}
}

// ReadAll returns the OS clipboard, or the last text written here when the
// OS clipboard cannot be read.
func (s *System) ReadAll() (string, error) {
	if !clipboard.Unsupported {
		if text, err := clipboard.ReadAll(); err == nil {
			return text, nil
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fallback, nil
}

// WriteAll writes to the OS clipboard and the private copy. Only the OS
// write can fail; the private copy is always updated.
func (s *System) WriteAll(text string) error {
	s.mu.Lock()
	s.fallback = text
	s.mu.Unlock()

	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadAll returns the stored text.
func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// WriteAll replaces the stored text.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
