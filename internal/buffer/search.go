package buffer

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a search has no match after the cursor.
	ErrNotFound = errors.New("not found")
	// ErrEmptyPattern is returned for an empty search or replace pattern.
	ErrEmptyPattern = errors.New("search pattern cannot be empty")
)

// Find searches forward from the cursor for word, case-sensitively and without
// wrapping. A match is selected with the cursor at its end, so calling Find
// again continues after it.
func (b *Buffer) Find(word string) (start, end int, err error) {
	if word == "" {
		return 0, 0, ErrEmptyPattern
	}
	needle := []rune(word)
	_, from := b.selectionRange()
	idx := indexRunes(b.text, needle, from)
	if idx < 0 {
		return 0, 0, ErrNotFound
	}
	b.Select(idx, idx+len(needle))
	return idx, idx + len(needle), nil
}

// Count returns the number of non-overlapping occurrences of word.
func (b *Buffer) Count(word string) int {
	if word == "" {
		return 0
	}
	return strings.Count(string(b.text), word)
}

// ReplaceAll replaces every literal occurrence of old with repl as one undoable
// step and returns the number of replacements. No match leaves the buffer and
// its history untouched.
func (b *Buffer) ReplaceAll(old, repl string) (int, error) {
	if old == "" {
		return 0, ErrEmptyPattern
	}
	text := string(b.text)
	n := strings.Count(text, old)
	if n == 0 {
		return 0, nil
	}
	cursor := b.cursor
	b.replace(0, len(b.text), []rune(strings.ReplaceAll(text, old, repl)), false)
	b.keepCursor(cursor)
	return n, nil
}

func indexRunes(hay, needle []rune, from int) int {
	if len(needle) == 0 {
		return -1
	}
	for i := from; i+len(needle) <= len(hay); i++ {
		match := true
		for j, r := range needle {
			if hay[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
