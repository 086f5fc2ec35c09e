package buffer

// Cursor returns the cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor and drops the selection.
func (b *Buffer) SetCursor(pos int) {
	b.cursor = clamp(pos, 0, len(b.text))
	b.anchor = b.cursor
	b.goalCol = -1
	b.sealed = true
}

// Select selects text between anchor and cursor. The cursor ends at `cursor`.
func (b *Buffer) Select(anchor, cursor int) {
	b.anchor = clamp(anchor, 0, len(b.text))
	b.cursor = clamp(cursor, 0, len(b.text))
	b.goalCol = -1
	b.sealed = true
}

// SelectAll selects the whole text.
func (b *Buffer) SelectAll() {
	b.Select(0, len(b.text))
}

// ClearSelection keeps the cursor and drops the anchor.
func (b *Buffer) ClearSelection() {
	b.anchor = b.cursor
}

// HasSelection reports whether a non-empty range is selected.
func (b *Buffer) HasSelection() bool {
	return b.anchor != b.cursor
}

// Selection returns the ordered selected range.
func (b *Buffer) Selection() (start, end int, ok bool) {
	start, end = b.selectionRange()
	return start, end, start != end
}

// SelectedText returns the selected text, or "" when nothing is selected.
func (b *Buffer) SelectedText() string {
	start, end := b.selectionRange()
	return string(b.text[start:end])
}

func (b *Buffer) selectionRange() (int, int) {
	if b.anchor < b.cursor {
		return b.anchor, b.cursor
	}
	return b.cursor, b.anchor
}

// move places the cursor at pos, extending the selection when extend is set.
func (b *Buffer) move(pos int, extend bool) {
	b.cursor = clamp(pos, 0, len(b.text))
	if !extend {
		b.anchor = b.cursor
	}
	b.sealed = true
}

// MoveLeft moves one rune left. Without extend, a selection collapses to its start.
func (b *Buffer) MoveLeft(extend bool) {
	if !extend && b.HasSelection() {
		start, _ := b.selectionRange()
		b.SetCursor(start)
		return
	}
	b.move(b.cursor-1, extend)
	b.goalCol = -1
}

// MoveRight moves one rune right. Without extend, a selection collapses to its end.
func (b *Buffer) MoveRight(extend bool) {
	if !extend && b.HasSelection() {
		_, end := b.selectionRange()
		b.SetCursor(end)
		return
	}
	b.move(b.cursor+1, extend)
	b.goalCol = -1
}

// MoveUp moves to the previous line, keeping the preferred column.
func (b *Buffer) MoveUp(extend bool) {
	b.MoveLines(-1, extend)
}

// MoveDown moves to the next line, keeping the preferred column.
func (b *Buffer) MoveDown(extend bool) {
	b.MoveLines(1, extend)
}

// MoveLines moves n lines up (negative) or down, keeping the preferred column.
func (b *Buffer) MoveLines(n int, extend bool) {
	line, col := b.LineCol(b.cursor)
	if b.goalCol < 0 {
		b.goalCol = col
	}
	target := clamp(line+n, 0, b.LineCount()-1)
	if target == line {
		if n < 0 {
			b.move(0, extend)
		} else if n > 0 {
			b.move(len(b.text), extend)
		}
		return
	}
	goal := b.goalCol
	b.move(b.Offset(target, goal), extend)
	b.goalCol = goal
}

// MoveLineStart moves to the start of the current line.
func (b *Buffer) MoveLineStart(extend bool) {
	line, _ := b.LineCol(b.cursor)
	b.move(b.Offset(line, 0), extend)
	b.goalCol = -1
}

// MoveLineEnd moves to the end of the current line.
func (b *Buffer) MoveLineEnd(extend bool) {
	line, _ := b.LineCol(b.cursor)
	b.move(b.lineEnd(line), extend)
	b.goalCol = -1
}

// MoveDocStart moves to the start of the text.
func (b *Buffer) MoveDocStart(extend bool) {
	b.move(0, extend)
	b.goalCol = -1
}

// MoveDocEnd moves to the end of the text.
func (b *Buffer) MoveDocEnd(extend bool) {
	b.move(len(b.text), extend)
	b.goalCol = -1
}

// LineCol converts an offset to a zero-based line and column.
func (b *Buffer) LineCol(pos int) (line, col int) {
	pos = clamp(pos, 0, len(b.text))
	for i := 0; i < pos; i++ {
		if b.text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// Offset converts a line and column to an offset. The column is clamped to the line length.
func (b *Buffer) Offset(line, col int) int {
	if line <= 0 {
		line = 0
	}
	start := 0
	for l := 0; l < line; l++ {
		next := indexRune(b.text, '\n', start)
		if next < 0 {
			return len(b.text)
		}
		start = next + 1
	}
	end := b.lineEndFrom(start)
	return clamp(start+col, start, end)
}

// LineCount returns the number of lines. An empty text has one line.
func (b *Buffer) LineCount() int {
	n := 1
	for _, r := range b.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// Lines splits the text into lines without their newline.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.LineCount())
	start := 0
	for i, r := range b.text {
		if r == '\n' {
			lines = append(lines, string(b.text[start:i]))
			start = i + 1
		}
	}
	return append(lines, string(b.text[start:]))
}

func (b *Buffer) lineEnd(line int) int {
	return b.lineEndFrom(b.Offset(line, 0))
}

func (b *Buffer) lineEndFrom(start int) int {
	if end := indexRune(b.text, '\n', start); end >= 0 {
		return end
	}
	return len(b.text)
}

func indexRune(text []rune, r rune, from int) int {
	for i := from; i < len(text); i++ {
		if text[i] == r {
			return i
		}
	}
	return -1
}
