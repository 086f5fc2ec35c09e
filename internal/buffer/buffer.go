// Package buffer implements the editable text of a single document.
//
// A Buffer holds the text as runes together with a cursor, an optional
// selection anchor and an undo/redo history. Positions are rune offsets
// into the text; every method clamps positions, so callers never see a
// panic for an out-of-range offset.
package buffer

// DefaultUndoLimit caps the undo history when no limit is configured.
const DefaultUndoLimit = 1000

// Buffer is the text of one tab.
type Buffer struct {
	text   []rune
	cursor int
	anchor int // equal to cursor when nothing is selected

	goalCol int // preferred column for vertical movement, -1 when unset

	undo   []edit
	redo   []edit
	limit  int
	nextID uint64
	base   uint64 // state of the oldest text still reachable by undo
	sealed bool   // true when the next typed rune must start a new undo step
}

// New creates a buffer holding text with the cursor at the start.
func New(text string) *Buffer {
	b := &Buffer{
		limit:   DefaultUndoLimit,
		goalCol: -1,
	}
	b.Load(text)
	return b
}

// SetUndoLimit changes the number of undo steps kept. Zero or less keeps the default.
func (b *Buffer) SetUndoLimit(limit int) {
	if limit <= 0 {
		limit = DefaultUndoLimit
	}
	b.limit = limit
	b.trimHistory()
}

// Load replaces the whole text and clears the history. Used when a file is opened.
func (b *Buffer) Load(text string) {
	b.text = []rune(text)
	b.cursor = 0
	b.anchor = 0
	b.goalCol = -1
	b.undo = nil
	b.redo = nil
	b.base = 0
	b.sealed = true
}

// Text returns the full text.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Len returns the text length in runes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// SetText replaces the whole text as a single undoable step.
func (b *Buffer) SetText(text string) {
	cursor := b.cursor
	b.replace(0, len(b.text), []rune(text), false)
	b.keepCursor(cursor)
}

// keepCursor moves the cursor after a whole-text replacement and records the
// new position as the redo target of the last change.
func (b *Buffer) keepCursor(pos int) {
	b.cursor = clamp(pos, 0, len(b.text))
	b.anchor = b.cursor
	if n := len(b.undo); n > 0 {
		b.undo[n-1].after = selection{anchor: b.anchor, cursor: b.cursor}
	}
	b.sealed = true
}

// Insert inserts s at the cursor, replacing the selection if there is one.
func (b *Buffer) Insert(s string) {
	start, end := b.selectionRange()
	b.replace(start, end, []rune(s), false)
}

// InsertRune inserts a typed rune. Consecutive typed runes are undone together.
func (b *Buffer) InsertRune(r rune) {
	start, end := b.selectionRange()
	typing := start == end && r != '\n'
	b.replace(start, end, []rune{r}, typing)
	if !typing {
		b.sealed = true
	}
}

// DeleteBackward deletes the selection, or the rune before the cursor.
func (b *Buffer) DeleteBackward() {
	start, end := b.selectionRange()
	if start == end {
		if start == 0 {
			return
		}
		start--
	}
	b.replace(start, end, nil, false)
	b.sealed = true
}

// DeleteForward deletes the selection, or the rune after the cursor.
func (b *Buffer) DeleteForward() {
	start, end := b.selectionRange()
	if start == end {
		if end >= len(b.text) {
			return
		}
		end++
	}
	b.replace(start, end, nil, false)
	b.sealed = true
}

// DeleteSelection removes the selected text and returns it.
func (b *Buffer) DeleteSelection() string {
	start, end := b.selectionRange()
	if start == end {
		return ""
	}
	removed := string(b.text[start:end])
	b.replace(start, end, nil, false)
	b.sealed = true
	return removed
}

// replace swaps text[start:end] for ins, leaves the cursor after the inserted
// text and records the change in the undo history.
func (b *Buffer) replace(start, end int, ins []rune, typing bool) {
	start = clamp(start, 0, len(b.text))
	end = clamp(end, start, len(b.text))

	before := selection{anchor: b.anchor, cursor: b.cursor}
	removed := append([]rune(nil), b.text[start:end]...)
	inserted := append([]rune(nil), ins...)

	b.text = splice(b.text, start, end, inserted)
	b.cursor = start + len(inserted)
	b.anchor = b.cursor
	b.goalCol = -1

	b.record(edit{
		at:       start,
		removed:  removed,
		inserted: inserted,
		before:   before,
		after:    selection{anchor: b.anchor, cursor: b.cursor},
		typing:   typing,
	})
}

func splice(text []rune, start, end int, ins []rune) []rune {
	out := make([]rune, 0, len(text)-(end-start)+len(ins))
	out = append(out, text[:start]...)
	out = append(out, ins...)
	out = append(out, text[end:]...)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
