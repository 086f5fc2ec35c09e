package buffer

// edit is one reversible change: at offset `at`, `removed` was replaced by `inserted`.
type edit struct {
	id       uint64
	at       int
	removed  []rune
	inserted []rune
	before   selection
	after    selection
	typing   bool
}

type selection struct {
	anchor int
	cursor int
}

func (b *Buffer) record(e edit) {
	b.redo = nil

	if e.typing && !b.sealed && len(b.undo) > 0 {
		last := &b.undo[len(b.undo)-1]
		if last.typing && len(last.removed) == 0 && last.at+len(last.inserted) == e.at {
			last.inserted = append(last.inserted, e.inserted...)
			last.after = e.after
			return
		}
	}

	b.nextID++
	e.id = b.nextID
	b.undo = append(b.undo, e)
	b.sealed = !e.typing
	b.trimHistory()
}

func (b *Buffer) trimHistory() {
	if b.limit > 0 && len(b.undo) > b.limit {
		drop := len(b.undo) - b.limit
		// Undoing everything left now stops at the text after the last dropped edit
		b.base = b.undo[drop-1].id
		b.undo = append([]edit(nil), b.undo[drop:]...)
	}
}

// Undo reverts the last change. It reports false when there is nothing to undo.
func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	e := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]

	b.text = splice(b.text, e.at, e.at+len(e.inserted), e.removed)
	b.restore(e.before)
	b.redo = append(b.redo, e)
	b.sealed = true
	return true
}

// Redo reapplies the last undone change. It reports false when there is nothing to redo.
func (b *Buffer) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	e := b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]

	b.text = splice(b.text, e.at, e.at+len(e.removed), e.inserted)
	b.restore(e.after)
	b.undo = append(b.undo, e)
	b.sealed = true
	return true
}

// Seal ends the current typing group, so the next typed rune gets a new
// state. Callers seal when they record State as a checkpoint.
func (b *Buffer) Seal() {
	b.sealed = true
}

// CanUndo reports whether Undo would change the text.
func (b *Buffer) CanUndo() bool {
	return len(b.undo) > 0
}

// CanRedo reports whether Redo would change the text.
func (b *Buffer) CanRedo() bool {
	return len(b.redo) > 0
}

// State identifies the current point in the history. Two equal states mean
// equal text, so callers compare it with the state recorded at save time.
func (b *Buffer) State() uint64 {
	if len(b.undo) == 0 {
		return b.base
	}
	return b.undo[len(b.undo)-1].id
}

func (b *Buffer) restore(s selection) {
	b.anchor = clamp(s.anchor, 0, len(b.text))
	b.cursor = clamp(s.cursor, 0, len(b.text))
	b.goalCol = -1
}
