package tui

import (
	"sync"
)

// FindState remembers the last find and replace input so Find Next and the
// dialogs can reuse it
type FindState struct {
	mu sync.RWMutex

	word        string
	replaceFrom string
	replaceTo   string
}

// NewFindState creates a new find state
func NewFindState() *FindState {
	return &FindState{}
}

// GetWord returns the last searched word
func (s *FindState) GetWord() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.word
}

// SetWord sets the searched word
func (s *FindState) SetWord(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.word = word
}

// GetReplace returns the last replace pair
func (s *FindState) GetReplace() (from, to string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.replaceFrom, s.replaceTo
}

// SetReplace stores the replace pair. The searched text also becomes the
// word for Find Next.
func (s *FindState) SetReplace(from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceFrom = from
	s.replaceTo = to
	s.word = from
}

// Reset clears all find state
func (s *FindState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.word = ""
	s.replaceFrom = ""
	s.replaceTo = ""
}
