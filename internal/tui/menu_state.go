package tui

import (
	"sync"
)

// MenuState tracks the open menu and the highlighted item
type MenuState struct {
	mu sync.RWMutex

	menu int
	item int
}

// NewMenuState creates a menu state pointing at the first item of File
func NewMenuState() *MenuState {
	return &MenuState{}
}

// GetMenu returns the index of the open menu
func (s *MenuState) GetMenu() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menu
}

// GetItem returns the index of the highlighted item
func (s *MenuState) GetItem() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.item
}

// MoveMenu moves to the neighbouring menu, wrapping around, and highlights
// its first item
func (s *MenuState) MoveMenu(delta, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if count <= 0 {
		return
	}
	s.menu = (s.menu + delta%count + count) % count
	s.item = 0
}

// MoveItem moves the highlight within a menu of count items, wrapping around
func (s *MenuState) MoveItem(delta, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if count <= 0 {
		return
	}
	s.item = (s.item + delta%count + count) % count
}

// Reset returns to the first item of the first menu
func (s *MenuState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = 0
	s.item = 0
}
